package dto

import (
	"time"

	"github.com/yukikurage/calendar-api/internal/models"
)

// UserDTO represents a user in API responses. The password hash is never
// part of any response body.
type UserDTO struct {
	ID        uint64    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		CreatedAt: user.CreatedAt,
	}
}

// AuthResponse is the envelope returned by register and login.
type AuthResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Token   string  `json:"token"`
	User    UserDTO `json:"user"`
}

// ProfileResponse is the envelope returned by the profile endpoint.
type ProfileResponse struct {
	Success bool    `json:"success"`
	User    UserDTO `json:"user"`
}

// EventListResponse wraps a list of events.
type EventListResponse struct {
	Success bool           `json:"success"`
	Events  []models.Event `json:"events"`
}

// EventResponse wraps a single event, with an optional message for writes.
type EventResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Event   *models.Event `json:"event"`
}

// TodoListResponse wraps a list of todos.
type TodoListResponse struct {
	Success bool          `json:"success"`
	Todos   []models.Todo `json:"todos"`
}

// TodoResponse wraps a single todo, with an optional message for writes.
type TodoResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Todo    *models.Todo `json:"todo"`
}

// MessageResponse is the envelope for operations with no payload, such as
// deletes.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
