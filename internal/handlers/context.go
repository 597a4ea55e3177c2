package handlers

import (
	"net/http"
	"strconv"

	"github.com/aeiluminate/backend/internal/middleware"
	"github.com/aeiluminate/backend/internal/models"
	"github.com/labstack/echo/v4"
)

// currentUser returns the verified claims the auth middleware stored on the
// request context, or nil on unauthenticated routes
func currentUser(c echo.Context) *models.JwtCustomClaims {
	claims, ok := c.Get(middleware.ContextUserKey).(*models.JwtCustomClaims)
	if !ok {
		return nil
	}
	return claims
}

// pageParams reads the page/length query parameters. Absent parameters fall
// back to the first page of ten rows; explicit non-positive values are a
// validation error.
func pageParams(c echo.Context) (page, length int, err error) {
	page, length = 1, 10

	if raw := c.QueryParam("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid page parameter")
		}
	}
	if raw := c.QueryParam("length"); raw != "" {
		length, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid length parameter")
		}
	}
	if page < 1 || length < 1 {
		return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "page and length must be positive")
	}
	return page, length, nil
}

// totalPages computes the page count for a total row count and page size
func totalPages(total int64, length int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(length) - 1) / int64(length))
}
