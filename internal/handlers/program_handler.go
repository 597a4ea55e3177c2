package handlers

import (
	"net/http"

	"github.com/aeiluminate/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// ProgramHandler handles HTTP requests for academic programs
type ProgramHandler struct {
	programRepository repositories.ProgramRepository
}

// NewProgramHandler creates a new ProgramHandler
func NewProgramHandler(programRepo repositories.ProgramRepository) *ProgramHandler {
	return &ProgramHandler{programRepository: programRepo}
}

// RegisterProgramRoutes registers program routes. The listing is public so
// the registration form can populate its dropdown.
func (h *ProgramHandler) RegisterProgramRoutes(g *echo.Group) {
	g.GET("/programs", h.ListPrograms)
}

// ListPrograms returns every academic program
func (h *ProgramHandler) ListPrograms(c echo.Context) error {
	programs, err := h.programRepository.ListPrograms()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch programs")
	}
	return c.JSON(http.StatusOK, echo.Map{"programs": programs})
}
