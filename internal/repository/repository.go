package repository

import "github.com/yukikurage/calendar-api/internal/models"

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email, matched exactly as stored
	FindByEmail(email string) (*models.User, error)
}

// EventUpdate enumerates the fields a partial event update may change.
// Nil fields are left untouched. Unknown payload fields never reach the
// store because they have no slot here.
type EventUpdate struct {
	Title       *string
	Description *string
	EventDate   *string
	StartTime   *string
	EndTime     *string
	Category    *string
	Color       *string
}

// Empty reports whether the update would change nothing.
func (u EventUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.EventDate == nil &&
		u.StartTime == nil && u.EndTime == nil && u.Category == nil && u.Color == nil
}

// EventRepository defines the interface for event data access. Every read
// and mutation is scoped to the owning user: a mismatched owner is
// indistinguishable from a missing row.
type EventRepository interface {
	// Create creates a new event
	Create(event *models.Event) error

	// FindByID finds an event by ID for the given owner
	FindByID(id, ownerID uint64) (*models.Event, error)

	// ListByOwner lists all events of a user ordered by date then start time
	ListByOwner(ownerID uint64) ([]models.Event, error)

	// ListByDate lists a user's events on a specific date
	ListByDate(ownerID uint64, date string) ([]models.Event, error)

	// ListByDateRange lists a user's events between two dates inclusive
	ListByDateRange(ownerID uint64, startDate, endDate string) ([]models.Event, error)

	// Update applies a partial update and returns the resulting row
	Update(id, ownerID uint64, update EventUpdate) (*models.Event, error)

	// Delete removes an event, reporting whether a row matched owner and id
	Delete(id, ownerID uint64) (bool, error)
}

// TodoUpdate enumerates the fields a partial todo update may change.
type TodoUpdate struct {
	Title       *string
	Description *string
	Priority    *models.TodoPriority
	Completed   *bool
	DueDate     *string
}

// Empty reports whether the update would change nothing.
func (u TodoUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.Priority == nil &&
		u.Completed == nil && u.DueDate == nil
}

// TodoRepository defines the interface for todo data access, scoped to the
// owning user the same way as EventRepository.
type TodoRepository interface {
	// Create creates a new todo
	Create(todo *models.Todo) error

	// FindByID finds a todo by ID for the given owner
	FindByID(id, ownerID uint64) (*models.Todo, error)

	// ListByOwner lists all todos of a user, incomplete first then by due date
	ListByOwner(ownerID uint64) ([]models.Todo, error)

	// Update applies a partial update and returns the resulting row
	Update(id, ownerID uint64, update TodoUpdate) (*models.Todo, error)

	// Delete removes a todo, reporting whether a row matched owner and id
	Delete(id, ownerID uint64) (bool, error)
}
