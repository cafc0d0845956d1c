package models

import "time"

type Event struct {
	ID          uint64 `gorm:"primarykey" json:"id"`
	OwnerID     uint64 `gorm:"not null;index" json:"ownerId"`
	Title       string `gorm:"type:varchar(255);not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	// EventDate is a calendar date in YYYY-MM-DD form. StartTime and
	// EndTime are HH:MM wall-clock strings; lexicographic order matches
	// temporal order, which range queries and the time-order check rely on.
	EventDate string    `gorm:"type:varchar(10);not null;index" json:"eventDate"`
	StartTime string    `gorm:"type:varchar(5);not null" json:"startTime"`
	EndTime   string    `gorm:"type:varchar(5);not null" json:"endTime"`
	Category  string    `gorm:"type:varchar(50);not null;default:'Personal'" json:"category"`
	Color     string    `gorm:"type:varchar(20);not null;default:'#667eea'" json:"color"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations
	Owner User `gorm:"foreignKey:OwnerID" json:"-"`
}
