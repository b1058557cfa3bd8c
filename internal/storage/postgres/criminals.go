package postgres

import (
	"context"
	"errors"

	"github.com/crimetrack/crimetrack-be/internal/models"
	"github.com/crimetrack/crimetrack-be/internal/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const criminalColumns = `id, first_name, last_name, age, gender, crime_type, status, description, date_arrested, image_url, created_at, updated_at`

// ListCriminals returns records newest-created first, optionally filtered by
// a case-insensitive substring match on first or last name.
func (s *Store) ListCriminals(ctx context.Context, search string) ([]models.Criminal, error) {
	const query = `
	SELECT ` + criminalColumns + `
	FROM criminals
	WHERE $1 = '' OR first_name ILIKE '%' || $1 || '%' OR last_name ILIKE '%' || $1 || '%'
	ORDER BY created_at DESC;
	`
	rows, err := s.pool.Query(ctx, query, search)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.Criminal{}
	for rows.Next() {
		record, err := scanCriminal(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// GetCriminal fetches a single record by id. A malformed id is reported as
// not found rather than as a cast error from the UUID column.
func (s *Store) GetCriminal(ctx context.Context, id string) (models.Criminal, error) {
	if _, err := uuid.Parse(id); err != nil {
		return models.Criminal{}, storage.ErrNotFound
	}
	const query = `
	SELECT ` + criminalColumns + `
	FROM criminals
	WHERE id = $1;
	`
	return scanCriminal(s.pool.QueryRow(ctx, query, id))
}

// CreateCriminal inserts a new record; created_at and updated_at are
// assigned by the store.
func (s *Store) CreateCriminal(ctx context.Context, record models.Criminal) (models.Criminal, error) {
	const query = `
	INSERT INTO criminals (id, first_name, last_name, age, gender, crime_type, status, description, date_arrested, image_url)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	RETURNING ` + criminalColumns + `;
	`
	row := s.pool.QueryRow(ctx, query,
		record.ID, record.FirstName, record.LastName, record.Age, record.Gender,
		record.CrimeType, record.Status, record.Description, record.DateArrested, record.ImageURL)
	return scanCriminal(row)
}

// UpdateCriminal overwrites every mutable field of an existing record and
// bumps updated_at. Partial-update merging happens in the handler.
func (s *Store) UpdateCriminal(ctx context.Context, record models.Criminal) (models.Criminal, error) {
	const query = `
	UPDATE criminals
	SET first_name = $2, last_name = $3, age = $4, gender = $5, crime_type = $6,
	    status = $7, description = $8, date_arrested = $9, image_url = $10,
	    updated_at = NOW()
	WHERE id = $1
	RETURNING ` + criminalColumns + `;
	`
	row := s.pool.QueryRow(ctx, query,
		record.ID, record.FirstName, record.LastName, record.Age, record.Gender,
		record.CrimeType, record.Status, record.Description, record.DateArrested, record.ImageURL)
	return scanCriminal(row)
}

// DeleteCriminal permanently removes a record.
func (s *Store) DeleteCriminal(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return storage.ErrNotFound
	}
	tag, err := s.pool.Exec(ctx, `DELETE FROM criminals WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func scanCriminal(row pgx.Row) (models.Criminal, error) {
	var record models.Criminal
	err := row.Scan(
		&record.ID, &record.FirstName, &record.LastName, &record.Age, &record.Gender,
		&record.CrimeType, &record.Status, &record.Description, &record.DateArrested,
		&record.ImageURL, &record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Criminal{}, storage.ErrNotFound
		}
		return models.Criminal{}, err
	}
	return record, nil
}
