package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs are assigned by the application as UUIDv7.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Login        string    `gorm:"type:varchar(255);uniqueIndex:users_login_key;not null"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
