package postgres

import (
	"context"
	"errors"

	"github.com/crimetrack/crimetrack-be/internal/models"
	"github.com/crimetrack/crimetrack-be/internal/storage"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// CreateUser inserts a new user row.
func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	const query = `
	INSERT INTO users (username, full_name, role, password_hash)
	VALUES ($1, $2, $3, $4)
	RETURNING id, username, full_name, role, password_hash, created_at;
	`
	row := s.pool.QueryRow(ctx, query, user.Username, user.FullName, user.Role, user.PasswordHash)
	created, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return models.User{}, storage.ErrAlreadyExists
		}
		return models.User{}, err
	}
	return created, nil
}

// FindByUsername fetches a user by username, including the password hash
// for the login-verification path.
func (s *Store) FindByUsername(ctx context.Context, username string) (models.User, error) {
	const query = `
	SELECT id, username, full_name, role, password_hash, created_at
	FROM users
	WHERE username = $1;
	`
	row := s.pool.QueryRow(ctx, query, username)
	return scanUser(row)
}

func scanUser(row pgx.Row) (models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Username, &user.FullName, &user.Role, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, storage.ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}
