package repositories

import (
	"context"

	"github.com/google/uuid"
	"research-nest.backend/internal/domain/entities"
)

// UserRepository stores admin accounts. There is no update or delete;
// accounts are provisioned out of band.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByUsername(ctx context.Context, username string) (*entities.User, error)
}
