package repository

import (
	"context"

	"github.com/flogin/flogin-api/internal/domain/entity"
)

// ProductRepository defines product persistence operations.
type ProductRepository interface {
	Save(ctx context.Context, p *entity.Product) error
	FindByID(ctx context.Context, id int64) (*entity.Product, error)
	FindAll(ctx context.Context) ([]entity.Product, error)
	Update(ctx context.Context, p *entity.Product) error
	Delete(ctx context.Context, id int64) error
}
