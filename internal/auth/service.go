package auth

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/beken0w/yatube/internal/db"
	"github.com/beken0w/yatube/internal/models"
	"github.com/beken0w/yatube/internal/validate"
	"github.com/beken0w/yatube/pkg/config"
	"github.com/beken0w/yatube/pkg/logging"
)

var (
	// ErrUsernameTaken is returned when signing up with an existing username
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidCredentials is returned on a failed login
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Service owns user registration and session handling
type Service struct {
	users      *db.UserRepository
	secret     []byte
	sessionTTL time.Duration
	logger     *zap.Logger
}

// NewService creates an auth service
func NewService(database *db.DB, cfg *config.AuthConfig) *Service {
	return &Service{
		users:      db.NewUserRepository(db.NewRepository(database.DB)),
		secret:     []byte(cfg.SessionSecret),
		sessionTTL: cfg.SessionTTL,
		logger:     logging.WithComponent("auth"),
	}
}

// Signup registers a new user with a hashed password
func (s *Service) Signup(ctx context.Context, username, password string) (*models.User, error) {
	cleaned, err := validate.Text(username)
	if err != nil {
		return nil, err
	}

	existing, err := s.users.GetByUsername(ctx, cleaned)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     cleaned,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	s.logger.Info("User registered", zap.String("username", user.Username))
	return user, nil
}

// Login verifies credentials and returns the user
func (s *Service) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil || !CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
