package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	domainerrors "research-nest.backend/internal/domain/errors"
)

// ContentRepository is the GORM-backed store shared by all six content
// collections. One instance is built per collection at startup, carrying
// that collection's canonical ORDER BY clause.
type ContentRepository[M any] struct {
	db      *gorm.DB
	orderBy string
}

func NewContentRepository[M any](db *gorm.DB, orderBy string) *ContentRepository[M] {
	return &ContentRepository[M]{db: db, orderBy: orderBy}
}

func (r *ContentRepository[M]) List(ctx context.Context) ([]M, error) {
	records := make([]M, 0)
	if err := r.db.WithContext(ctx).Order(r.orderBy).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *ContentRepository[M]) GetByID(ctx context.Context, id uuid.UUID) (*M, error) {
	var record M
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *ContentRepository[M]) Create(ctx context.Context, record *M) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *ContentRepository[M]) Update(ctx context.Context, id uuid.UUID, changes map[string]interface{}) (*M, error) {
	if len(changes) > 0 {
		result := r.db.WithContext(ctx).Model(new(M)).Where("id = ?", id).Updates(changes)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, domainerrors.ErrNotFound
		}
	}
	return r.GetByID(ctx, id)
}

func (r *ContentRepository[M]) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(new(M))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
