package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"mealtrack/internal/domain/entity"
	"mealtrack/internal/domain/repository"
	mockRepo "mealtrack/internal/mocks/repository"
	mockSvc "mealtrack/internal/mocks/service"
	"mealtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

// expectTransaction makes the mocked manager run fn against a factory handing out txRepo.
func (f userServiceFixtures) expectTransaction(t *testing.T, txRepo repository.UserRepository) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(txRepo).Maybe()

	f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func newStoredUser(login string) *entity.User {
	return &entity.User{
		ID:           uuid.Must(uuid.NewV7()),
		Login:        login,
		PasswordHash: "$2a$07$storedhash",
	}
}
