package repository

import (
	"context"

	"github.com/flogin/flogin-api/internal/domain/entity"
)

// UserRepository defines the credential store: lookup, existence and
// persistence of user records keyed by username. Username comparison is
// literal (case-sensitive).
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Save(ctx context.Context, u *entity.User) error
}
