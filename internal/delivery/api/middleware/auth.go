package middleware

import (
	deliverycontext "mealtrack/internal/delivery/context"
	domainerrors "mealtrack/internal/domain/errors"
	"mealtrack/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const contextKeyClaims = "claims"

// AuthMiddleware is the authorization gate in front of protected routes.
// It only verifies the token; it never reads the credential store.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and attaches its claims to the request.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrNoToken
		}

		claims, err := m.tokenSvc.ValidateToken(authHeader)
		if err != nil {
			return mapTokenError(err)
		}

		SetClaims(c, claims)
		c.SetRequest(c.Request().WithContext(deliverycontext.WithIdentity(c.Request().Context(), claims)))

		return next(c)
	}
}

func mapTokenError(err error) error {
	switch {
	case errors.Is(err, service.ErrTokenExpired):
		return domainerrors.ErrTokenExpired
	case errors.Is(err, service.ErrTokenSignatureInvalid):
		return domainerrors.ErrTokenInvalid
	case errors.Is(err, service.ErrTokenMalformed):
		return domainerrors.ErrTokenMalformed
	default:
		return errors.Wrap(domainerrors.ErrTokenInvalid, err.Error())
	}
}

// SetClaims stores verified claims on the echo context.
func SetClaims(c echo.Context, claims *service.Claims) {
	c.Set(contextKeyClaims, claims)
}

// GetClaims returns the claims stored by Authenticate.
func GetClaims(c echo.Context) (*service.Claims, bool) {
	claims, ok := c.Get(contextKeyClaims).(*service.Claims)

	return claims, ok && claims != nil
}
