// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"mealtrack/internal/delivery/api/middleware"
	"mealtrack/internal/delivery/api/response"
	"mealtrack/internal/delivery/api/validator"
	domainerrors "mealtrack/internal/domain/errors"
	"mealtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const registeredMessage = "user registered successfully"

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for account and session handlers.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Login         string `json:"login" validate:"max=255"`
	Password      string `json:"password" validate:"maxbytes=72"`
	PasswordCheck string `json:"passwordCheck" validate:"maxbytes=72"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Login    string `json:"login" validate:"max=255"`
	Password string `json:"password" validate:"maxbytes=72"`
}

// UserView is the public part of an account.
type UserView struct {
	ID    uuid.UUID `json:"id"`
	Login string    `json:"login"`
}

// AuthResponse carries a fresh token and the identity it was issued for.
type AuthResponse struct {
	Token   string   `json:"token"`
	User    UserView `json:"user"`
	Message string   `json:"message,omitempty"`
}

// UserRecordResponse is one stored account as listed by GET /.
type UserRecordResponse struct {
	ID        uuid.UUID `json:"id"`
	Login     string    `json:"login"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Register handles account creation.
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	output, err := h.userUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Login:                req.Login,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordCheck,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := toAuthResponse(output)
	resp.Message = registeredMessage

	return response.Success(c, http.StatusOK, resp)
}

// Login handles credential sign-in.
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	output, err := h.userUC.Login(c.Request().Context(), &usecase.LoginInput{
		Login:    req.Login,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAuthResponse(output))
}

// Reauthenticate issues a fresh token for the caller. Requires the authorization gate.
func (h *UserHandler) Reauthenticate(c echo.Context) error {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrNoToken)
	}

	output, err := h.userUC.Reauthenticate(c.Request().Context(), claims)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAuthResponse(output))
}

// DeleteSelf removes the caller's account. Requires the authorization gate.
func (h *UserHandler) DeleteSelf(c echo.Context) error {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrNoToken)
	}

	deleted, err := h.userUC.DeleteSelf(c.Request().Context(), claims)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, UserView{ID: deleted.ID, Login: deleted.Login})
}

// ListUsers returns every stored account including its password hash.
// The route is unauthenticated; it is kept for compatibility with existing clients
// and must not be exposed publicly.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userUC.ListUsers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	records := make([]UserRecordResponse, 0, len(users))
	for _, u := range users {
		records = append(records, UserRecordResponse{
			ID:        u.ID,
			Login:     u.Login,
			Password:  u.PasswordHash,
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
		})
	}

	return response.Success(c, http.StatusOK, records)
}

func toAuthResponse(output *usecase.AuthOutput) AuthResponse {
	return AuthResponse{
		Token: output.Token,
		User:  UserView{ID: output.User.ID, Login: output.User.Login},
	}
}

func validationError(c echo.Context, err error) error {
	return response.BadRequestWithDetails(c,
		domainerrors.ErrValidationFailed.ErrorCode(),
		domainerrors.ErrValidationFailed.Message(),
		validator.Describe(err),
	)
}
