// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"kickoff/internal/delivery/http/response"
	"kickoff/internal/usecase"

	"github.com/labstack/echo/v4"
)

// registerRequest is the registration form DTO. Field-presence rules live in
// the tags; business rules (age range and so on) belong to the core and are
// re-checked there.
type registerRequest struct {
	Username  string `json:"username" validate:"required"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Age       int    `json:"age" validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthHandler holds dependencies for registration and login handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// RegisterUser handles the user registration request.
func (h *AuthHandler) RegisterUser(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "A required field is missing")
	}

	ok := h.uc.RegisterUser(c.Request().Context(), &usecase.RegisterUserInput{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Age:       req.Age,
	})
	if !ok {
		// The core reports failure without a reason; the response stays
		// equally generic so callers cannot probe for taken usernames.
		return response.BadRequest(c, "REGISTRATION_FAILED", "Unable to register with the provided details")
	}

	return response.Success(c, http.StatusCreated, map[string]string{
		"username": req.Username,
	}, "User registered successfully")
}

// Login handles the credential check request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "A required field is missing")
	}

	if !h.uc.ValidateCredential(c.Request().Context(), req.Username, req.Password) {
		return response.Unauthorized(c, "INVALID_CREDENTIALS", "Username or password is incorrect")
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"username": req.Username,
	}, "Login successful")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
