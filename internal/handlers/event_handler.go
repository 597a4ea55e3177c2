package handlers

import (
	"mime/multipart"
	"net/http"
	"time"

	"github.com/aeiluminate/backend/internal/models"
	"github.com/aeiluminate/backend/internal/repositories"
	"github.com/aeiluminate/backend/internal/storage"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// EventHandler handles HTTP requests for events and interest marks
type EventHandler struct {
	eventRepository repositories.EventRepository
	uploader        storage.Uploader
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(eventRepo repositories.EventRepository, uploader storage.Uploader) *EventHandler {
	return &EventHandler{
		eventRepository: eventRepo,
		uploader:        uploader,
	}
}

// RegisterEventRoutes registers event-related routes
func (h *EventHandler) RegisterEventRoutes(g *echo.Group) {
	g.GET("/events", h.ListEvents)
	g.POST("/event", h.CreateEvent)
	g.DELETE("/event/:id", h.DeleteEvent)
	g.GET("/event/stats/:id", h.GetEventStats)
	g.GET("/event/interested_status/:id", h.GetInterestedStatus)
	g.POST("/event/interested/:id", h.MarkInterested)
	g.POST("/event/uninterested/:id", h.UnmarkInterested)
	g.GET("/events/user/:id", h.GetUserEvents)
	g.GET("/events/interested", h.GetInterestedEvents)
}

// ListEvents returns the paginated event listing, soonest first
func (h *EventHandler) ListEvents(c echo.Context) error {
	page, length, err := pageParams(c)
	if err != nil {
		return err
	}

	events, total, err := h.eventRepository.ListEvents(page, length)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Error fetching paginated events")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"events":      events,
		"totalEvents": total,
		"totalPage":   totalPages(total, length),
	})
}

// CreateEvent creates a new event, optionally with a banner image
func (h *EventHandler) CreateEvent(c echo.Context) error {
	claims := currentUser(c)

	var req models.CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	eventTime, err := time.Parse(time.RFC3339, req.EventDateTime)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid event date, expected RFC3339")
	}

	var imageURL string
	var uploaded []models.Media
	if file, err := c.FormFile("image"); err == nil {
		media, err := uploadFiles(c.Request().Context(), h.uploader, []*multipart.FileHeader{file})
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to store event image")
		}
		uploaded = media
		imageURL = media[0].MediaURL
	}

	event := &models.Event{
		EventID:       uuid.NewString(),
		Title:         req.Title,
		Description:   req.Description,
		EventDateTime: eventTime,
		Location:      req.Location,
		EventType:     req.EventType,
		ImageURL:      imageURL,
		CreatedBy:     claims.UserID,
		CreatedOn:     time.Now(),
	}

	if err := h.eventRepository.CreateEvent(event); err != nil {
		rollbackUploads(c.Request().Context(), h.uploader, uploaded)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create event")
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Event created successfully", "eventID": event.EventID})
}

// DeleteEvent removes an event the caller owns along with its interest marks
func (h *EventHandler) DeleteEvent(c echo.Context) error {
	claims := currentUser(c)
	eventID := c.Param("id")

	event, err := h.eventRepository.GetEventByID(eventID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Event not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch event")
	}
	if event.CreatedBy != claims.UserID {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to delete this event")
	}

	if err := h.eventRepository.DeleteEvent(eventID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete event")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Event deleted"})
}

// GetEventStats returns the interested users and whether the caller is
// among them
func (h *EventHandler) GetEventStats(c echo.Context) error {
	claims := currentUser(c)
	eventID := c.Param("id")

	if _, err := h.eventRepository.GetEventByID(eventID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Event not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch event")
	}

	users, err := h.eventRepository.GetInterestedUsers(eventID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch interested users")
	}
	interested, err := h.eventRepository.IsInterested(eventID, claims.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to check interest status")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"interestedUsers": users,
		"totalInterested": len(users),
		"isInterested":    interested,
	})
}

// GetInterestedStatus reports whether the caller has marked the event
func (h *EventHandler) GetInterestedStatus(c echo.Context) error {
	claims := currentUser(c)
	eventID := c.Param("id")

	if _, err := h.eventRepository.GetEventByID(eventID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Event not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch event")
	}

	interested, err := h.eventRepository.IsInterested(eventID, claims.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to check interest status")
	}
	return c.JSON(http.StatusOK, echo.Map{"isInterested": interested})
}

// MarkInterested adds the caller's interest mark on an event. Marking the
// same event twice is a conflict, not a toggle.
func (h *EventHandler) MarkInterested(c echo.Context) error {
	claims := currentUser(c)
	eventID := c.Param("id")

	if _, err := h.eventRepository.GetEventByID(eventID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Event not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch event")
	}

	interested, err := h.eventRepository.IsInterested(eventID, claims.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to check interest status")
	}
	if interested {
		return echo.NewHTTPError(http.StatusConflict, "You are already interested in this event")
	}

	mark := &models.InterestedUser{
		EventID: eventID,
		UserID:  claims.UserID,
		AddedAt: time.Now(),
	}
	if err := h.eventRepository.AddInterest(mark); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to add interest")
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Interest added", "isInterested": true})
}

// UnmarkInterested removes the caller's interest mark from an event
func (h *EventHandler) UnmarkInterested(c echo.Context) error {
	claims := currentUser(c)
	eventID := c.Param("id")

	if _, err := h.eventRepository.GetEventByID(eventID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Event not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch event")
	}

	interested, err := h.eventRepository.IsInterested(eventID, claims.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to check interest status")
	}
	if !interested {
		return echo.NewHTTPError(http.StatusNotFound, "You have not marked interest in this event")
	}

	if err := h.eventRepository.RemoveInterest(eventID, claims.UserID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to remove interest")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Interest removed", "isInterested": false})
}

// GetUserEvents returns every event created by a user
func (h *EventHandler) GetUserEvents(c echo.Context) error {
	events, err := h.eventRepository.ListUserEvents(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch user events")
	}
	return c.JSON(http.StatusOK, echo.Map{"events": events})
}

// GetInterestedEvents returns every event the caller marked interest in
func (h *EventHandler) GetInterestedEvents(c echo.Context) error {
	claims := currentUser(c)

	events, err := h.eventRepository.ListInterestedEvents(claims.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch interested events")
	}
	return c.JSON(http.StatusOK, echo.Map{"events": events})
}
