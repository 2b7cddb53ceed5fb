package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/flogin/flogin-api/internal/domain/entity"
	"github.com/flogin/flogin-api/internal/domain/repository"
)

type CategoryRepository struct {
	pool *pgxpool.Pool
}

func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

func (r *CategoryRepository) Save(ctx context.Context, c *entity.Category) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO categories (name)
		VALUES ($1)
		RETURNING id, created_at, updated_at
	`, c.Name)

	if err := row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id int64) (*entity.Category, error) {
	c := &entity.Category{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, name, created_at, updated_at
		FROM categories
		WHERE id = $1
	`, id)

	if err := row.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return c, nil
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]entity.Category, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, created_at, updated_at
		FROM categories
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.CategoryRepository = (*CategoryRepository)(nil)
