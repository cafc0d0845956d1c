package repository

import (
	"github.com/yukikurage/calendar-api/internal/database"
	"github.com/yukikurage/calendar-api/internal/models"
	"gorm.io/gorm"
)

// GormTodoRepository is a GORM implementation of TodoRepository
type GormTodoRepository struct {
	db *gorm.DB
}

// NewTodoRepository creates a new TodoRepository
func NewTodoRepository(db *gorm.DB) TodoRepository {
	return &GormTodoRepository{db: db}
}

// Create creates a new todo
func (r *GormTodoRepository) Create(todo *models.Todo) error {
	return r.db.Create(todo).Error
}

// FindByID finds a todo by ID for the given owner
func (r *GormTodoRepository) FindByID(id, ownerID uint64) (*models.Todo, error) {
	var todo models.Todo
	if err := r.db.Scopes(database.OwnedBy(ownerID)).
		Where("id = ?", id).
		First(&todo).Error; err != nil {
		return nil, err
	}
	return &todo, nil
}

// ListByOwner lists all todos of a user, incomplete first then by due date
func (r *GormTodoRepository) ListByOwner(ownerID uint64) ([]models.Todo, error) {
	var todos []models.Todo
	if err := r.db.Scopes(database.OwnedBy(ownerID)).
		Order("completed ASC, due_date ASC").
		Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}

// Update applies a partial update to a todo and returns the resulting
// row. An empty update skips the write and returns the current row.
func (r *GormTodoRepository) Update(id, ownerID uint64, update TodoUpdate) (*models.Todo, error) {
	if !update.Empty() {
		columns := map[string]interface{}{}
		if update.Title != nil {
			columns["title"] = *update.Title
		}
		if update.Description != nil {
			columns["description"] = *update.Description
		}
		if update.Priority != nil {
			columns["priority"] = *update.Priority
		}
		if update.Completed != nil {
			columns["completed"] = *update.Completed
		}
		if update.DueDate != nil {
			columns["due_date"] = *update.DueDate
		}

		if err := r.db.Model(&models.Todo{}).
			Scopes(database.OwnedBy(ownerID)).
			Where("id = ?", id).
			Updates(columns).Error; err != nil {
			return nil, err
		}
	}

	return r.FindByID(id, ownerID)
}

// Delete removes a todo, reporting whether a row matched owner and id
func (r *GormTodoRepository) Delete(id, ownerID uint64) (bool, error) {
	result := r.db.Scopes(database.OwnedBy(ownerID)).
		Where("id = ?", id).
		Delete(&models.Todo{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
