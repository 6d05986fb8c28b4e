// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"mealtrack/config"
	"mealtrack/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte        // Symmetric key for signing and verifying.
	ttl    time.Duration // Time-to-live for issued tokens.
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return newJWTService(cfg.JWT.Secret, service.TokenTTL), nil
}

func newJWTService(secret string, ttl time.Duration) *jwtService {
	return &jwtService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// IssueToken signs the identity into a bearer token valid for the configured TTL.
func (s *jwtService) IssueToken(userID uuid.UUID, login string) (string, error) {
	now := s.now()
	claims := service.Claims{
		UserID: userID,
		Login:  login,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(), // two tokens issued in the same second still differ
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return service.BearerScheme + signed, nil
}

// ValidateToken verifies a bearer token and returns its claims.
// Signature is checked before expiry, so an expired forgery reports a bad signature.
func (s *jwtService) ValidateToken(bearer string) (*service.Claims, error) {
	raw, ok := strings.CutPrefix(bearer, service.BearerScheme)
	if !ok || raw == "" {
		return nil, service.ErrTokenMalformed
	}

	claims := &service.Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, mapJWTError(err)
	}

	if claims.UserID == uuid.Nil || claims.Login == "" {
		return nil, service.ErrTokenMalformed
	}

	return claims, nil
}

func mapJWTError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return service.ErrTokenMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid),
		errors.Is(err, jwt.ErrTokenUnverifiable):
		return service.ErrTokenSignatureInvalid
	case errors.Is(err, jwt.ErrTokenExpired):
		return service.ErrTokenExpired
	default:
		// Remaining claim failures (nbf, iat, missing exp) are treated as malformed.
		return service.ErrTokenMalformed
	}
}
