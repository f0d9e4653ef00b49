package services

import (
	"context"
	"database/sql"
	"errors"

	"avoska-api/internal/models"
	"avoska-api/internal/store"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type UserService struct {
	users  store.UserStore
	logger zerolog.Logger
}

func NewUserService(users store.UserStore, logger zerolog.Logger) *UserService {
	return &UserService{
		users:  users,
		logger: logger,
	}
}

// Register creates the user and returns the new id. Store errors
// (duplicate login included) are returned as-is for the handler to
// surface.
func (s *UserService) Register(ctx context.Context, req *models.RegisterRequest) (int64, error) {
	if req.Login == "" || req.Password == "" {
		return 0, errors.New("login and password are required")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error hashing password")
		return 0, err
	}

	id, err := s.users.Create(ctx, req.FullName, req.Phone, req.Email, req.Login, string(hashedPassword))
	if err != nil {
		s.logger.Error().Err(err).Str("login", req.Login).Msg("Error creating user")
		return 0, err
	}

	s.logger.Info().Int64("user_id", id).Str("login", req.Login).Msg("User registered")
	return id, nil
}

func (s *UserService) Authenticate(ctx context.Context, login, password string) (*models.User, error) {
	user, err := s.users.GetByLogin(ctx, login)
	if err == sql.ErrNoRows {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		s.logger.Error().Err(err).Msg("Error querying user")
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn().Str("login", login).Msg("Failed authentication attempt")
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
