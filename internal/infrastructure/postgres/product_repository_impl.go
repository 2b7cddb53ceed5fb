package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/flogin/flogin-api/internal/domain/entity"
	"github.com/flogin/flogin-api/internal/domain/repository"
)

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func (r *ProductRepository) Save(ctx context.Context, p *entity.Product) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO products (name, price, quantity, description, category_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, p.Name, p.Price, p.Quantity, p.Description, p.CategoryID)

	return row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	p := &entity.Product{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, name, price, quantity, description, category_id, created_at, updated_at
		FROM products
		WHERE id = $1
	`, id)

	if err := row.Scan(&p.ID, &p.Name, &p.Price, &p.Quantity, &p.Description,
		&p.CategoryID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return p, nil
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]entity.Product, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, price, quantity, description, category_id, created_at, updated_at
		FROM products
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Quantity, &p.Description,
			&p.CategoryID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ProductRepository) Update(ctx context.Context, p *entity.Product) error {
	p.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE products
		SET name = $1, price = $2, quantity = $3, description = $4, category_id = $5, updated_at = $6
		WHERE id = $7
	`, p.Name, p.Price, p.Quantity, p.Description, p.CategoryID, p.UpdatedAt, p.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.ProductRepository = (*ProductRepository)(nil)
