package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// BearerScheme prefixes every issued token.
const BearerScheme = "Bearer "

// TokenTTL is the lifetime of every issued token.
const TokenTTL = time.Hour

// Token verification failures.
var (
	ErrTokenMalformed        = errors.New("token is malformed")
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")
	ErrTokenExpired          = errors.New("token has expired")
)

// Claims is the identity carried inside a token.
type Claims struct {
	UserID uuid.UUID `json:"id"`
	Login  string    `json:"login"`
	jwt.RegisteredClaims
}

// TokenService signs identities into bearer tokens and verifies them back.
type TokenService interface {
	// IssueToken returns "Bearer <jwt>" valid for TokenTTL.
	IssueToken(userID uuid.UUID, login string) (string, error)

	// ValidateToken checks a "Bearer <jwt>" string and returns its claims.
	// Failures are ErrTokenMalformed, ErrTokenSignatureInvalid or ErrTokenExpired.
	ValidateToken(bearer string) (*Claims, error)
}
