// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"kickoff/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler   *handler.AuthHandler
	DrillsHandler *handler.DrillsHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler   *handler.AuthHandler
	drillsHandler *handler.DrillsHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:   params.AuthHandler,
		drillsHandler: params.DrillsHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.RegisterUser)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Drill lookup, age-bracketed per user
	e.GET("/drills", r.drillsHandler.ListDrills)
}
