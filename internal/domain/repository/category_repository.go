package repository

import (
	"context"

	"github.com/flogin/flogin-api/internal/domain/entity"
)

// CategoryRepository defines category persistence operations.
type CategoryRepository interface {
	Save(ctx context.Context, c *entity.Category) error
	FindByID(ctx context.Context, id int64) (*entity.Category, error)
	FindAll(ctx context.Context) ([]entity.Category, error)
	Delete(ctx context.Context, id int64) error
}
