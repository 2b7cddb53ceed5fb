package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/flogin/flogin-api/internal/domain/entity"
	repo "github.com/flogin/flogin-api/internal/domain/repository"
	"github.com/flogin/flogin-api/pkg/helpers"
)

// BearerHeader is the fixed scheme label returned with every issued token.
const BearerHeader = "Bearer Token"

// AuthService orchestrates credential verification, registration and token
// issuance. It is safe for concurrent use: all state is an immutable secret
// plus the repository handle.
type AuthService struct {
	Repo   repo.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(r repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Repo: r, JWT: jwt, Logger: logger}
}

// LoginResult is the login response body: the scheme label and the token.
type LoginResult struct {
	Header      string `json:"header"`
	AccessToken string `json:"accessToken"`
}

// RegisterResult echoes only the public fields of the created account.
type RegisterResult struct {
	FullName string `json:"fullName"`
	Username string `json:"username"`
}

// Login resolves the username, verifies the password against the stored
// bcrypt hash and issues an access token. Unknown accounts and wrong
// passwords fail with distinct errors, matching the public API contract.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	u, err := s.Repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return nil, ErrWrongPassword
	}

	token, _, err := s.JWT.GenerateAccessToken(u.Username)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("username", u.Username).Error("generate access token failed")
		}
		return nil, err
	}
	return &LoginResult{Header: BearerHeader, AccessToken: token}, nil
}

// Register creates a new account. The advisory existence check gives a clean
// error in the common case; the unique index on username catches the race
// between concurrent registrations for the same name.
func (s *AuthService) Register(ctx context.Context, fullName, username, password string) (*RegisterResult, error) {
	exists, err := s.Repo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUsernameTaken
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &entity.User{FullName: fullName, Username: username, PasswordHash: hash}
	if err := s.Repo.Save(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	if s.Logger != nil {
		s.Logger.WithField("username", u.Username).Info("user registered")
	}
	return &RegisterResult{FullName: u.FullName, Username: u.Username}, nil
}

// GetUserByUsername projects an already-authenticated principal into full
// user data for the profile flow.
func (s *AuthService) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	u, err := s.Repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// EnsureAdmin creates the seeded admin account if it does not exist yet.
// Runs once at startup, outside the request path; a concurrent boot losing
// the race to the unique index is treated as success.
func (s *AuthService) EnsureAdmin(ctx context.Context, fullName, username, password string) error {
	exists, err := s.Repo.ExistsByUsername(ctx, username)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return err
	}
	u := &entity.User{FullName: fullName, Username: username, PasswordHash: hash}
	if err := s.Repo.Save(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil
		}
		return err
	}
	if s.Logger != nil {
		s.Logger.WithField("username", username).Info("admin account seeded")
	}
	return nil
}
