package store

import (
	"context"
	"database/sql"

	"avoska-api/internal/models"
)

type UserStore interface {
	Create(ctx context.Context, fullName, phone, email, login, passwordHash string) (int64, error)
	GetByLogin(ctx context.Context, login string) (*models.User, error)
}

type Users struct {
	db *sql.DB
}

func NewUsers(db *sql.DB) *Users {
	return &Users{db: db}
}

func (s *Users) Create(ctx context.Context, fullName, phone, email, login, passwordHash string) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		"INSERT INTO users (full_name, phone, email, login, password) VALUES (?, ?, ?, ?, ?)",
		fullName, phone, email, login, passwordHash,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func (s *Users) GetByLogin(ctx context.Context, login string) (*models.User, error) {
	var user models.User
	err := s.db.QueryRowContext(ctx,
		"SELECT id, full_name, phone, email, login, password, created_at FROM users WHERE login = ?",
		login,
	).Scan(
		&user.ID, &user.FullName, &user.Phone, &user.Email, &user.Login, &user.PasswordHash, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
