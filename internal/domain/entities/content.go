package entities

import (
	"time"

	"github.com/google/uuid"
)

// Content carries the attributes shared by every content collection record.
// The identifier and creation timestamp are assigned once, at construction,
// and are never writable through a patch.
type Content struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}

// NewContent assigns a fresh identifier and creation timestamp
func NewContent() Content {
	return Content{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
	}
}
