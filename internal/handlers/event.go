package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/calendar-api/internal/dto"
	apierrors "github.com/yukikurage/calendar-api/internal/errors"
	"github.com/yukikurage/calendar-api/internal/middleware"
	"github.com/yukikurage/calendar-api/internal/repository"
	"github.com/yukikurage/calendar-api/internal/services"
)

// EventHandler coordinates event-related HTTP handlers.
type EventHandler struct {
	eventService *services.EventService
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(eventService *services.EventService) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

// ListEvents returns all events of the current user.
func (h *EventHandler) ListEvents(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	events, err := h.eventService.List(userID)
	if err != nil {
		respondEventError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.EventListResponse{Success: true, Events: events})
}

// ListEventsByDate returns the current user's events on a specific date.
func (h *EventHandler) ListEventsByDate(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	eventDate := c.Param("eventDate")
	if eventDate == "" {
		apierrors.BadRequest(c, "Date is required")
		return
	}

	events, err := h.eventService.ListByDate(userID, eventDate)
	if err != nil {
		respondEventError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.EventListResponse{Success: true, Events: events})
}

// ListEventsByRange returns the current user's events between two dates.
func (h *EventHandler) ListEventsByRange(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	startDate := c.Query("startDate")
	endDate := c.Query("endDate")
	if startDate == "" || endDate == "" {
		apierrors.BadRequest(c, "Start date and end date are required")
		return
	}

	events, err := h.eventService.ListByRange(userID, startDate, endDate)
	if err != nil {
		respondEventError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.EventListResponse{Success: true, Events: events})
}

// CreateEvent creates a new event owned by the current user.
func (h *EventHandler) CreateEvent(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateEventRequest struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		EventDate   string `json:"eventDate"`
		StartTime   string `json:"startTime"`
		EndTime     string `json:"endTime"`
		Category    string `json:"category"`
		Color       string `json:"color"`
	}

	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	event, err := h.eventService.Create(userID, services.CreateEventInput{
		Title:       req.Title,
		Description: req.Description,
		EventDate:   req.EventDate,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Category:    req.Category,
		Color:       req.Color,
	})
	if err != nil {
		respondEventError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.EventResponse{
		Success: true,
		Message: "Event created successfully",
		Event:   event,
	})
}

// GetEvent returns a single event owned by the current user.
func (h *EventHandler) GetEvent(c *gin.Context) {
	userID, eventID, ok := eventRequestIDs(c)
	if !ok {
		return
	}

	event, err := h.eventService.Get(userID, eventID)
	if err != nil {
		respondEventError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.EventResponse{Success: true, Event: event})
}

// UpdateEvent applies a partial update to an event owned by the current user.
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	userID, eventID, ok := eventRequestIDs(c)
	if !ok {
		return
	}

	type UpdateEventRequest struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		EventDate   *string `json:"eventDate"`
		StartTime   *string `json:"startTime"`
		EndTime     *string `json:"endTime"`
		Category    *string `json:"category"`
		Color       *string `json:"color"`
	}

	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	event, err := h.eventService.Update(userID, eventID, repository.EventUpdate{
		Title:       req.Title,
		Description: req.Description,
		EventDate:   req.EventDate,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Category:    req.Category,
		Color:       req.Color,
	})
	if err != nil {
		respondEventError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.EventResponse{
		Success: true,
		Message: "Event updated successfully",
		Event:   event,
	})
}

// DeleteEvent removes an event owned by the current user.
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	userID, eventID, ok := eventRequestIDs(c)
	if !ok {
		return
	}

	if err := h.eventService.Delete(userID, eventID); err != nil {
		respondEventError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Success: true,
		Message: "Event deleted successfully",
	})
}

// eventRequestIDs extracts the caller identity and the :id path parameter.
// It writes the error response itself when either is missing.
func eventRequestIDs(c *gin.Context) (userID, eventID uint64, ok bool) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return 0, 0, false
	}

	eventID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid event ID")
		return 0, 0, false
	}

	return userID, eventID, true
}

func respondEventError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEventFieldsRequired),
		errors.Is(err, services.ErrEventTitleEmpty),
		errors.Is(err, services.ErrInvalidTimeOrder),
		errors.Is(err, services.ErrInvalidDateFormat),
		errors.Is(err, services.ErrInvalidTimeFormat):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrEventNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
