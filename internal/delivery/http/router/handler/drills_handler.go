package handler

import (
	"log/slog"
	"net/http"

	"kickoff/internal/delivery/http/response"
	"kickoff/internal/usecase"

	"github.com/labstack/echo/v4"
)

// drillsResponse carries the resolved age bracket and its drill list.
type drillsResponse struct {
	Username string   `json:"username"`
	Age      int      `json:"age"`
	Bracket  string   `json:"bracket"`
	Drills   []string `json:"drills"`
}

// DrillsHandler serves age-appropriate soccer drills.
type DrillsHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewDrillsHandler is the constructor for DrillsHandler, injected by Fx.
func NewDrillsHandler(uc usecase.AuthUsecase, logger *slog.Logger) *DrillsHandler {
	return &DrillsHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListDrills resolves the user's age and returns the drills for their
// bracket. An unknown user resolves to age -1 and gets an empty bracket.
func (h *DrillsHandler) ListDrills(c echo.Context) error {
	username := c.QueryParam("username")

	age := h.uc.GetUserAge(c.Request().Context(), username)
	bracket, drills := drillsForAge(age)

	return response.Success(c, http.StatusOK, drillsResponse{
		Username: username,
		Age:      age,
		Bracket:  bracket,
		Drills:   drills,
	}, "")
}

// drillsForAge maps an age to a training bracket. Age -1 (unknown user)
// yields the empty bracket.
func drillsForAge(age int) (string, []string) {
	switch {
	case age < 0:
		return "", []string{}
	case age < 8:
		return "U8", []string{"red light green light", "sharks and minnows", "dribble relay"}
	case age < 13:
		return "U13", []string{"rondo 4v1", "passing gates", "1v1 to small goals"}
	case age < 18:
		return "U18", []string{"rondo 6v2", "shooting circuit", "transition 3v2"}
	default:
		return "adult", []string{"possession 8v8", "finishing patterns", "pressing triggers"}
	}
}
