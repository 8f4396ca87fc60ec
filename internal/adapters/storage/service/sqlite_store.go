package service

import (
	"context"
	"database/sql"
	"fmt"

	"fitstudio/internal/adapters/storage"
	domain "fitstudio/internal/domain/service"
)

const serviceColumns = "id, name, description, duration_minutes, price, image_file"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new service store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a Service by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Service, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+serviceColumns+" FROM service WHERE id = ?", id)

	var entity domain.Service
	err := row.Scan(
		&entity.ID,
		&entity.Name,
		&entity.Description,
		&entity.DurationMinutes,
		&entity.Price,
		&entity.ImageFile,
	)
	if err == sql.ErrNoRows {
		return domain.Service{}, fmt.Errorf("service not found: %w", err)
	}
	return entity, err
}

// Save persists a Service to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Service) error {
	query := `INSERT INTO service (` + serviceColumns + `) VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
		name=excluded.name, description=excluded.description,
		duration_minutes=excluded.duration_minutes, price=excluded.price,
		image_file=excluded.image_file`

	_, err := s.db.ExecContext(ctx, query,
		entity.ID,
		entity.Name,
		entity.Description,
		entity.DurationMinutes,
		entity.Price,
		entity.ImageFile,
	)
	return err
}

// Delete removes a Service from the database.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM service WHERE id = ?", id)
	return err
}

// List retrieves all Services ordered by name.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Service, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+serviceColumns+" FROM service ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Service
	for rows.Next() {
		var entity domain.Service
		if err := rows.Scan(
			&entity.ID,
			&entity.Name,
			&entity.Description,
			&entity.DurationMinutes,
			&entity.Price,
			&entity.ImageFile,
		); err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}
