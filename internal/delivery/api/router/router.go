// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"mealtrack/internal/delivery/api/middleware"
	"mealtrack/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// The gate is attached per route so unknown paths under the group still 404.
	gate := r.authMiddleware.Authenticate

	usersGroup := e.Group("/api/users")
	{
		usersGroup.POST("/register", r.userHandler.Register)
		usersGroup.POST("/login", r.userHandler.Login)
		usersGroup.GET("/auth", r.userHandler.Reauthenticate, gate)

		// Listed without the gate for compatibility; see ListUsers.
		usersGroup.GET("", r.userHandler.ListUsers)
		usersGroup.GET("/", r.userHandler.ListUsers)

		usersGroup.DELETE("", r.userHandler.DeleteSelf, gate)
		usersGroup.DELETE("/", r.userHandler.DeleteSelf, gate)
	}
}
