package repositories

import (
	"context"

	"github.com/google/uuid"
)

// ContentStore is the uniform persistence contract shared by all six content
// collections. M is the collection's record type.
//
// GetByID and Update report a missing record with errors.ErrNotFound; Delete
// reports it through the boolean instead, so a repeated delete is not an error.
type ContentStore[M any] interface {
	// List returns every record in the collection's canonical order. An empty
	// collection yields an empty slice, never an error.
	List(ctx context.Context) ([]M, error)
	GetByID(ctx context.Context, id uuid.UUID) (*M, error)
	Create(ctx context.Context, record *M) error
	// Update applies only the supplied column changes and returns the updated
	// record. An empty change-set degenerates to a read.
	Update(ctx context.Context, id uuid.UUID, changes map[string]interface{}) (*M, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
