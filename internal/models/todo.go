package models

import "time"

type TodoPriority string

const (
	PriorityLow    TodoPriority = "low"
	PriorityMedium TodoPriority = "medium"
	PriorityHigh   TodoPriority = "high"
)

// ValidPriority reports whether p is one of the known priority levels.
func ValidPriority(p TodoPriority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Todo struct {
	ID          uint64       `gorm:"primarykey" json:"id"`
	OwnerID     uint64       `gorm:"not null;index" json:"ownerId"`
	Title       string       `gorm:"type:varchar(255);not null" json:"title"`
	Description string       `gorm:"type:text" json:"description"`
	Priority    TodoPriority `gorm:"type:varchar(10);not null;default:'medium'" json:"priority"`
	Completed   bool         `gorm:"not null;default:false" json:"completed"`
	DueDate     *string      `gorm:"type:varchar(10)" json:"dueDate"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`

	// Relations
	Owner User `gorm:"foreignKey:OwnerID" json:"-"`
}
