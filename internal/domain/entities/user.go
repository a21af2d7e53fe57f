package entities

import (
	"time"

	"github.com/google/uuid"
)

// User is an administrative account used for login only. Accounts are
// provisioned out of band; there is no signup flow.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username     string    `gorm:"type:text;uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"column:password;type:text;not null" json:"-"`
	Email        string    `gorm:"type:text;not null" json:"email"`
	CreatedAt    time.Time `gorm:"not null" json:"createdAt"`
}

func (User) TableName() string { return "users" }

// LoginInput is the login request payload
type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
