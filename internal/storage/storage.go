package storage

import (
	"context"
	"errors"

	"github.com/crimetrack/crimetrack-be/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// UserStore captures credential persistence needed by the auth handlers.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindByUsername(ctx context.Context, username string) (models.User, error)
}

// CriminalStore captures case-record persistence needed by the record API.
// List returns newest-created first; search filters by case-insensitive
// substring match on first or last name and may be empty.
type CriminalStore interface {
	ListCriminals(ctx context.Context, search string) ([]models.Criminal, error)
	GetCriminal(ctx context.Context, id string) (models.Criminal, error)
	CreateCriminal(ctx context.Context, record models.Criminal) (models.Criminal, error)
	UpdateCriminal(ctx context.Context, record models.Criminal) (models.Criminal, error)
	DeleteCriminal(ctx context.Context, id string) error
}

// Store combines the two stores behind one handle backed by a single
// connection pool.
type Store interface {
	UserStore
	CriminalStore
}
