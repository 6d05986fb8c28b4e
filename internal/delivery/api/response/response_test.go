package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "mealtrack/internal/delivery/context"
	domainerrors "mealtrack/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-1")

	return c, rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestSuccess_WritesPayloadDirectly(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Success(c, http.StatusOK, map[string]string{"token": "Bearer x"}))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"token":"Bearer x"}`, rec.Body.String())
}

func TestError_Body(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, BadRequestWithDetails(c, "VALIDATION_FAILED", "bad input", []string{"login"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeError(t, rec)
	assert.Equal(t, "bad input", body.Message)
	assert.Equal(t, "VALIDATION_FAILED", body.Code)
	assert.Equal(t, "req-1", body.RequestID)
	assert.NotNil(t, body.Details)
}

func TestError_DropsDetailsForAuthAndServerErrors(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden, http.StatusInternalServerError} {
		c, rec := newContext()

		require.NoError(t, Error(c, status, "CODE", "msg", "secret detail"))
		assert.Nil(t, decodeError(t, rec).Details)
	}
}

func TestHandleAppError(t *testing.T) {
	t.Run("client error is rendered", func(t *testing.T) {
		c, rec := newContext()

		err := HandleAppError(c, errors.Wrap(domainerrors.ErrUserNotFound, "login"))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "USER_NOT_FOUND", decodeError(t, rec).Code)
	})

	t.Run("server app error is passed on", func(t *testing.T) {
		c, rec := newContext()

		err := HandleAppError(c, domainerrors.ErrPasswordHashFailed)
		assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
		assert.Zero(t, rec.Body.Len())
	})

	t.Run("plain error is passed on", func(t *testing.T) {
		c, _ := newContext()
		boom := errors.New("boom")

		assert.ErrorIs(t, HandleAppError(c, boom), boom)
	})
}
