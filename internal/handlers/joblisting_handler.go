package handlers

import (
	"net/http"
	"time"

	"github.com/aeiluminate/backend/internal/models"
	"github.com/aeiluminate/backend/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// JobListingHandler handles HTTP requests for job listings
type JobListingHandler struct {
	jobListingRepository repositories.JobListingRepository
}

// NewJobListingHandler creates a new JobListingHandler
func NewJobListingHandler(jobRepo repositories.JobListingRepository) *JobListingHandler {
	return &JobListingHandler{jobListingRepository: jobRepo}
}

// RegisterJobListingRoutes registers job listing routes
func (h *JobListingHandler) RegisterJobListingRoutes(g *echo.Group) {
	g.GET("/joblisting", h.ListJobListings)
	g.POST("/joblisting", h.CreateJobListing)
	g.DELETE("/joblisting/:id", h.DeleteJobListing)
}

// ListJobListings returns the paginated job listing feed, newest first
func (h *JobListingHandler) ListJobListings(c echo.Context) error {
	page, length, err := pageParams(c)
	if err != nil {
		return err
	}

	jobs, total, err := h.jobListingRepository.ListJobListings(page, length)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Error fetching paginated job listings")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"jobs":      jobs,
		"totalJobs": total,
		"totalPage": totalPages(total, length),
	})
}

// CreateJobListing posts a new job listing
func (h *JobListingHandler) CreateJobListing(c echo.Context) error {
	claims := currentUser(c)

	var req models.CreateJobListingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	listing := &models.JobListing{
		JobID:       uuid.NewString(),
		JobTitle:    req.JobTitle,
		Company:     req.Company,
		Description: req.Description,
		URL:         req.URL,
		CreatedBy:   claims.UserID,
		CreatedOn:   time.Now(),
	}
	if err := h.jobListingRepository.CreateJobListing(listing); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create job listing")
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Job listing created", "jobID": listing.JobID})
}

// DeleteJobListing removes a job listing the caller owns
func (h *JobListingHandler) DeleteJobListing(c echo.Context) error {
	claims := currentUser(c)
	jobID := c.Param("id")

	listing, err := h.jobListingRepository.GetJobListingByID(jobID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Job listing not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch job listing")
	}
	if listing.CreatedBy != claims.UserID {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to delete this job listing")
	}

	if err := h.jobListingRepository.DeleteJobListing(jobID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete job listing")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Job listing deleted"})
}
