package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"mealtrack/internal/domain/entity"
	domainerrors "mealtrack/internal/domain/errors"
	"mealtrack/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var userColumns = []string{"id", "login", "password_hash", "created_at", "updated_at"}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestUserRepository_FindByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	id := uuid.New()
	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE id = $1`)).
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(id, "alice", "hash", now, now))

	user, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "alice", user.Login)
	assert.Equal(t, "hash", user.PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE id = $1`)).
		WillReturnRows(sqlmock.NewRows(userColumns))

	user, err := repo.FindByID(context.Background(), uuid.New())
	assert.Nil(t, user)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByLogin(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	id := uuid.New()
	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE login = $1`)).
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(id, "bob", "hash", now, now))

	user, err := repo.FindByLogin(context.Background(), "bob")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByLogin_Errors(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE login = $1`)).
			WillReturnRows(sqlmock.NewRows(userColumns))

		_, err := repo.FindByLogin(context.Background(), "ghost")
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})

	t.Run("database failure", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE login = $1`)).
			WillReturnError(sql.ErrConnDone)

		_, err := repo.FindByLogin(context.Background(), "bob")
		require.Error(t, err)
		assert.NotErrorIs(t, err, repository.ErrUserNotFound)
		assert.ErrorIs(t, err, sql.ErrConnDone)
	})
}

func TestUserRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "users"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	user := &entity.User{Login: "alice", PasswordHash: "hash"}
	require.NoError(t, repo.Create(context.Background(), user))

	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, uuid.Version(7), user.ID.Version())
	assert.False(t, user.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_DuplicateLogin(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "users"`)).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_login_key"})

	err := repo.Create(context.Background(), &entity.User{Login: "alice", PasswordHash: "hash"})
	assert.ErrorIs(t, err, domainerrors.ErrLoginTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_DatabaseFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "users"`)).
		WillReturnError(errors.New("connection reset"))

	err := repo.Create(context.Background(), &entity.User{Login: "alice", PasswordHash: "hash"})
	require.Error(t, err)

	var dbErr *domainerrors.DatabaseExecuteError
	assert.True(t, errors.As(err, &dbErr))
}

func TestUserRepository_DeleteByID(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "users" WHERE id = $1`)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.DeleteByID(context.Background(), uuid.New()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already gone", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "users" WHERE id = $1`)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteByID(context.Background(), uuid.New())
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})
}

func TestUserRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows(userColumns).
		AddRow(uuid.New(), "alice", "h1", now, now).
		AddRow(uuid.New(), "bob", "h2", now.Add(time.Second), now.Add(time.Second))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" ORDER BY created_at ASC`)).
		WillReturnRows(rows)

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Login)
	assert.Equal(t, "bob", users[1].Login)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_List_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users"`)).
		WillReturnRows(sqlmock.NewRows(userColumns))

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}
