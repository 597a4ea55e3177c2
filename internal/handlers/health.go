package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RegisterHealthRoutes registers the health check route
func RegisterHealthRoutes(g *echo.Group) {
	g.GET("/health", Health)
}

// Health reports that the API is up
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
