package trainer

import (
	"context"
	"database/sql"
	"fmt"

	"fitstudio/internal/adapters/storage"
	domain "fitstudio/internal/domain/trainer"
)

const trainerColumns = "id, full_name, specialization, work_start, work_end, image_file"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new trainer store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a Trainer by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Trainer, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+trainerColumns+" FROM trainer WHERE id = ?", id)

	var entity domain.Trainer
	err := row.Scan(
		&entity.ID,
		&entity.FullName,
		&entity.Specialization,
		&entity.WorkStart,
		&entity.WorkEnd,
		&entity.ImageFile,
	)
	if err == sql.ErrNoRows {
		return domain.Trainer{}, fmt.Errorf("trainer not found: %w", err)
	}
	return entity, err
}

// Save persists a Trainer to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Trainer) error {
	query := `INSERT INTO trainer (` + trainerColumns + `) VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
		full_name=excluded.full_name, specialization=excluded.specialization,
		work_start=excluded.work_start, work_end=excluded.work_end,
		image_file=excluded.image_file`

	_, err := s.db.ExecContext(ctx, query,
		entity.ID,
		entity.FullName,
		entity.Specialization,
		entity.WorkStart,
		entity.WorkEnd,
		entity.ImageFile,
	)
	return err
}

// Delete removes a Trainer from the database.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM trainer WHERE id = ?", id)
	return err
}

// List retrieves Trainers matching the filter, ordered by name. SQLite's LIKE
// is case-insensitive for ASCII, which gives the substring match the public
// API documents.
func (s *SQLiteStore) List(ctx context.Context, filter ListFilter) ([]domain.Trainer, error) {
	query := "SELECT " + trainerColumns + " FROM trainer"
	var args []any
	if filter.Specialization != "" {
		query += " WHERE specialization LIKE ?"
		args = append(args, "%"+filter.Specialization+"%")
	}
	query += " ORDER BY full_name"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Trainer
	for rows.Next() {
		var entity domain.Trainer
		if err := rows.Scan(
			&entity.ID,
			&entity.FullName,
			&entity.Specialization,
			&entity.WorkStart,
			&entity.WorkEnd,
			&entity.ImageFile,
		); err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}
