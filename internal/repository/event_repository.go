package repository

import (
	"github.com/yukikurage/calendar-api/internal/database"
	"github.com/yukikurage/calendar-api/internal/models"
	"gorm.io/gorm"
)

// GormEventRepository is a GORM implementation of EventRepository
type GormEventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *gorm.DB) EventRepository {
	return &GormEventRepository{db: db}
}

// Create creates a new event
func (r *GormEventRepository) Create(event *models.Event) error {
	return r.db.Create(event).Error
}

// FindByID finds an event by ID for the given owner
func (r *GormEventRepository) FindByID(id, ownerID uint64) (*models.Event, error) {
	var event models.Event
	if err := r.db.Scopes(database.OwnedBy(ownerID)).
		Where("id = ?", id).
		First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// ListByOwner lists all events of a user ordered by date then start time
func (r *GormEventRepository) ListByOwner(ownerID uint64) ([]models.Event, error) {
	var events []models.Event
	if err := r.db.Scopes(database.OwnedBy(ownerID)).
		Order("event_date ASC, start_time ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// ListByDate lists a user's events on a specific date
func (r *GormEventRepository) ListByDate(ownerID uint64, date string) ([]models.Event, error) {
	var events []models.Event
	if err := r.db.Scopes(database.OwnedBy(ownerID)).
		Where("event_date = ?", date).
		Order("start_time ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// ListByDateRange lists a user's events between two dates inclusive
func (r *GormEventRepository) ListByDateRange(ownerID uint64, startDate, endDate string) ([]models.Event, error) {
	var events []models.Event
	if err := r.db.Scopes(database.OwnedBy(ownerID)).
		Where("event_date BETWEEN ? AND ?", startDate, endDate).
		Order("event_date ASC, start_time ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// Update applies a partial update to an event and returns the resulting
// row. An empty update skips the write and returns the current row.
func (r *GormEventRepository) Update(id, ownerID uint64, update EventUpdate) (*models.Event, error) {
	if !update.Empty() {
		columns := map[string]interface{}{}
		if update.Title != nil {
			columns["title"] = *update.Title
		}
		if update.Description != nil {
			columns["description"] = *update.Description
		}
		if update.EventDate != nil {
			columns["event_date"] = *update.EventDate
		}
		if update.StartTime != nil {
			columns["start_time"] = *update.StartTime
		}
		if update.EndTime != nil {
			columns["end_time"] = *update.EndTime
		}
		if update.Category != nil {
			columns["category"] = *update.Category
		}
		if update.Color != nil {
			columns["color"] = *update.Color
		}

		if err := r.db.Model(&models.Event{}).
			Scopes(database.OwnedBy(ownerID)).
			Where("id = ?", id).
			Updates(columns).Error; err != nil {
			return nil, err
		}
	}

	return r.FindByID(id, ownerID)
}

// Delete removes an event, reporting whether a row matched owner and id
func (r *GormEventRepository) Delete(id, ownerID uint64) (bool, error) {
	result := r.db.Scopes(database.OwnedBy(ownerID)).
		Where("id = ?", id).
		Delete(&models.Event{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
