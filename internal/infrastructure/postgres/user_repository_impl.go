package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/flogin/flogin-api/internal/domain/entity"
	"github.com/flogin/flogin-api/internal/domain/repository"
)

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	u := &entity.User{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, full_name, username, password_hash, created_at, updated_at
		FROM users
		WHERE username = $1
	`, username)

	if err := row.Scan(&u.ID, &u.FullName, &u.Username, &u.PasswordHash,
		&u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return u, nil
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)
	`, username).Scan(&exists)
	return exists, err
}

// Save inserts the user and fills in the generated id and timestamps.
// The unique index on username turns concurrent registrations for the same
// name into ErrDuplicate instead of a second row.
func (r *UserRepository) Save(ctx context.Context, u *entity.User) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (full_name, username, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, u.FullName, u.Username, u.PasswordHash)

	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	return nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
