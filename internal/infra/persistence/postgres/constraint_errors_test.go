package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "gorm duplicated key", err: gorm.ErrDuplicatedKey, want: true},
		{name: "pg unique violation", err: &pgconn.PgError{Code: "23505"}, want: true},
		{name: "wrapped pg unique violation", err: errors.Wrap(&pgconn.PgError{Code: "23505"}, "insert"), want: true},
		{name: "pg not null violation", err: &pgconn.PgError{Code: "23502"}, want: false},
		{name: "plain error", err: errors.New("duplicate key"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueConstraintViolation(tt.err))
		})
	}
}

func TestIsNotNullConstraintViolation(t *testing.T) {
	assert.True(t, isNotNullConstraintViolation(&pgconn.PgError{Code: "23502"}))
	assert.False(t, isNotNullConstraintViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isNotNullConstraintViolation(errors.New("null value")))
}
