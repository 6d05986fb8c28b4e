package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "mealtrack/internal/delivery/context"
	domainerrors "mealtrack/internal/domain/errors"
	"mealtrack/internal/domain/service"
	mockSvc "mealtrack/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGateContext(authHeader string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users/auth", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}

	return e.NewContext(req, httptest.NewRecorder())
}

func TestAuthMiddleware_NoToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	gate := NewAuthMiddleware(tokenSvc)

	called := false
	err := gate.Authenticate(func(echo.Context) error {
		called = true
		return nil
	})(newGateContext(""))

	assert.ErrorIs(t, err, domainerrors.ErrNoToken)
	assert.False(t, called)
}

func TestAuthMiddleware_Success(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	gate := NewAuthMiddleware(tokenSvc)

	claims := &service.Claims{UserID: uuid.New(), Login: "alice"}
	tokenSvc.EXPECT().ValidateToken("Bearer good").Return(claims, nil)

	c := newGateContext("Bearer good")
	err := gate.Authenticate(func(c echo.Context) error {
		fromEcho, ok := GetClaims(c)
		require.True(t, ok)
		assert.Same(t, claims, fromEcho)

		fromCtx, ok := deliverycontext.GetIdentity(c.Request().Context())
		require.True(t, ok)
		assert.Same(t, claims, fromCtx)

		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
}

func TestAuthMiddleware_TokenFailures(t *testing.T) {
	tests := []struct {
		name     string
		codecErr error
		wantErr  error
	}{
		{name: "malformed", codecErr: service.ErrTokenMalformed, wantErr: domainerrors.ErrTokenMalformed},
		{name: "bad signature", codecErr: service.ErrTokenSignatureInvalid, wantErr: domainerrors.ErrTokenInvalid},
		{name: "expired", codecErr: service.ErrTokenExpired, wantErr: domainerrors.ErrTokenExpired},
		{name: "unexpected", codecErr: errors.New("boom"), wantErr: domainerrors.ErrTokenInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			gate := NewAuthMiddleware(tokenSvc)
			tokenSvc.EXPECT().ValidateToken("Bearer x").Return(nil, tt.codecErr)

			err := gate.Authenticate(func(echo.Context) error {
				t.Fatal("next must not run")
				return nil
			})(newGateContext("Bearer x"))

			assert.ErrorIs(t, err, tt.wantErr)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
		})
	}
}

func TestGetClaims_Missing(t *testing.T) {
	_, ok := GetClaims(newGateContext(""))
	assert.False(t, ok)
}
