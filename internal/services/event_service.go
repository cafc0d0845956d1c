package services

import (
	"errors"
	"fmt"

	"github.com/yukikurage/calendar-api/internal/constants"
	"github.com/yukikurage/calendar-api/internal/models"
	"github.com/yukikurage/calendar-api/internal/repository"
	"github.com/yukikurage/calendar-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrEventFieldsRequired = errors.New("Title, date, and times are required")
	ErrEventTitleEmpty     = errors.New("Title cannot be empty")
	ErrInvalidTimeOrder    = errors.New("Start time must be before end time")
	ErrInvalidDateFormat   = errors.New("Date must be in YYYY-MM-DD format")
	ErrInvalidTimeFormat   = errors.New("Time must be in HH:MM format")
	ErrEventNotFound       = errors.New("Event not found")
)

// EventService handles event business logic.
type EventService struct {
	eventRepo repository.EventRepository
}

// NewEventService creates a new EventService.
func NewEventService(eventRepo repository.EventRepository) *EventService {
	return &EventService{eventRepo: eventRepo}
}

// CreateEventInput represents input for creating an event.
type CreateEventInput struct {
	Title       string
	Description string
	EventDate   string
	StartTime   string
	EndTime     string
	Category    string
	Color       string
}

// Create validates and stores a new event owned by the given user.
func (s *EventService) Create(ownerID uint64, input CreateEventInput) (*models.Event, error) {
	if input.Title == "" || input.EventDate == "" || input.StartTime == "" || input.EndTime == "" {
		return nil, ErrEventFieldsRequired
	}
	if err := validateEventFields(&input.EventDate, &input.StartTime, &input.EndTime); err != nil {
		return nil, err
	}
	if input.StartTime >= input.EndTime {
		return nil, ErrInvalidTimeOrder
	}

	category := input.Category
	if category == "" {
		category = constants.DefaultEventCategory
	}
	color := input.Color
	if color == "" {
		color = constants.DefaultEventColor
	}

	event := &models.Event{
		OwnerID:     ownerID,
		Title:       input.Title,
		Description: input.Description,
		EventDate:   input.EventDate,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Category:    category,
		Color:       color,
	}

	if err := s.eventRepo.Create(event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return event, nil
}

// List returns all events of a user.
func (s *EventService) List(ownerID uint64) ([]models.Event, error) {
	events, err := s.eventRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// ListByDate returns a user's events on a specific date.
func (s *EventService) ListByDate(ownerID uint64, date string) ([]models.Event, error) {
	if !utils.IsValidDate(date) {
		return nil, ErrInvalidDateFormat
	}
	events, err := s.eventRepo.ListByDate(ownerID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list events by date: %w", err)
	}
	return events, nil
}

// ListByRange returns a user's events between two dates inclusive.
func (s *EventService) ListByRange(ownerID uint64, startDate, endDate string) ([]models.Event, error) {
	if !utils.IsValidDate(startDate) || !utils.IsValidDate(endDate) {
		return nil, ErrInvalidDateFormat
	}
	events, err := s.eventRepo.ListByDateRange(ownerID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list events by range: %w", err)
	}
	return events, nil
}

// Get returns a single event owned by the user.
func (s *EventService) Get(ownerID, eventID uint64) (*models.Event, error) {
	event, err := s.eventRepo.FindByID(eventID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to find event: %w", err)
	}
	return event, nil
}

// Update applies a partial update to an event owned by the user. The time
// ordering is validated when both times are supplied together.
func (s *EventService) Update(ownerID, eventID uint64, update repository.EventUpdate) (*models.Event, error) {
	if _, err := s.Get(ownerID, eventID); err != nil {
		return nil, err
	}

	if err := validateEventFields(update.EventDate, update.StartTime, update.EndTime); err != nil {
		return nil, err
	}
	if update.StartTime != nil && update.EndTime != nil && *update.StartTime >= *update.EndTime {
		return nil, ErrInvalidTimeOrder
	}
	if update.Title != nil && *update.Title == "" {
		return nil, ErrEventTitleEmpty
	}

	event, err := s.eventRepo.Update(eventID, ownerID, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return event, nil
}

// Delete removes an event owned by the user.
func (s *EventService) Delete(ownerID, eventID uint64) error {
	if _, err := s.Get(ownerID, eventID); err != nil {
		return err
	}

	deleted, err := s.eventRepo.Delete(eventID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if !deleted {
		return ErrEventNotFound
	}
	return nil
}

// validateEventFields format-checks the date and time fields that are
// present. Nil fields are skipped so partial updates validate only what
// they carry.
func validateEventFields(date, startTime, endTime *string) error {
	if date != nil && !utils.IsValidDate(*date) {
		return ErrInvalidDateFormat
	}
	if startTime != nil && !utils.IsValidClockTime(*startTime) {
		return ErrInvalidTimeFormat
	}
	if endTime != nil && !utils.IsValidClockTime(*endTime) {
		return ErrInvalidTimeFormat
	}
	return nil
}
