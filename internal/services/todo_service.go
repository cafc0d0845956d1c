package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/calendar-api/internal/models"
	"github.com/yukikurage/calendar-api/internal/repository"
	"github.com/yukikurage/calendar-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrTodoTitleRequired = errors.New("Title is required")
	ErrInvalidPriority   = errors.New("Priority must be low, medium, or high")
	ErrTodoNotFound      = errors.New("Todo not found")
)

// TodoService handles todo business logic.
type TodoService struct {
	todoRepo repository.TodoRepository
}

// NewTodoService creates a new TodoService.
func NewTodoService(todoRepo repository.TodoRepository) *TodoService {
	return &TodoService{todoRepo: todoRepo}
}

// CreateTodoInput represents input for creating a todo.
type CreateTodoInput struct {
	Title       string
	Description string
	Priority    models.TodoPriority
	DueDate     *string
}

// Create validates and stores a new todo owned by the given user.
func (s *TodoService) Create(ownerID uint64, input CreateTodoInput) (*models.Todo, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTodoTitleRequired
	}

	priority := input.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !models.ValidPriority(priority) {
		return nil, ErrInvalidPriority
	}
	if input.DueDate != nil && !utils.IsValidDate(*input.DueDate) {
		return nil, ErrInvalidDateFormat
	}

	todo := &models.Todo{
		OwnerID:     ownerID,
		Title:       input.Title,
		Description: input.Description,
		Priority:    priority,
		DueDate:     input.DueDate,
	}

	if err := s.todoRepo.Create(todo); err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}

	return todo, nil
}

// List returns all todos of a user.
func (s *TodoService) List(ownerID uint64) ([]models.Todo, error) {
	todos, err := s.todoRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	return todos, nil
}

// Get returns a single todo owned by the user.
func (s *TodoService) Get(ownerID, todoID uint64) (*models.Todo, error) {
	todo, err := s.todoRepo.FindByID(todoID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTodoNotFound
		}
		return nil, fmt.Errorf("failed to find todo: %w", err)
	}
	return todo, nil
}

// Update applies a partial update to a todo owned by the user.
func (s *TodoService) Update(ownerID, todoID uint64, update repository.TodoUpdate) (*models.Todo, error) {
	if _, err := s.Get(ownerID, todoID); err != nil {
		return nil, err
	}

	if update.Title != nil && strings.TrimSpace(*update.Title) == "" {
		return nil, ErrTodoTitleRequired
	}
	if update.Priority != nil && !models.ValidPriority(*update.Priority) {
		return nil, ErrInvalidPriority
	}
	if update.DueDate != nil && !utils.IsValidDate(*update.DueDate) {
		return nil, ErrInvalidDateFormat
	}

	todo, err := s.todoRepo.Update(todoID, ownerID, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update todo: %w", err)
	}
	return todo, nil
}

// Delete removes a todo owned by the user.
func (s *TodoService) Delete(ownerID, todoID uint64) error {
	if _, err := s.Get(ownerID, todoID); err != nil {
		return err
	}

	deleted, err := s.todoRepo.Delete(todoID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	if !deleted {
		return ErrTodoNotFound
	}
	return nil
}
