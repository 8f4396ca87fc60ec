package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"fitstudio/internal/adapters/storage"
	domain "fitstudio/internal/domain/appointment"
)

const appointmentColumns = "id, member_id, trainer_id, service_id, starts_at, price, confirmed, rejected, created_at"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new appointment store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves an Appointment by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Appointment, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+appointmentColumns+" FROM appointment WHERE id = ?", id)

	var entity domain.Appointment
	var startsAt, createdAt string
	var confirmed, rejected bool
	err := row.Scan(
		&entity.ID,
		&entity.MemberID,
		&entity.TrainerID,
		&entity.ServiceID,
		&startsAt,
		&entity.Price,
		&confirmed,
		&rejected,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return domain.Appointment{}, fmt.Errorf("appointment not found: %w", err)
	}
	if err != nil {
		return domain.Appointment{}, err
	}
	return hydrate(entity, startsAt, createdAt, confirmed, rejected)
}

// Save persists an Appointment. Both status flags are written in a single
// statement so a transition can never leave the pair half-updated.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Appointment) error {
	confirmed, rejected := entity.Flags()

	query := `INSERT INTO appointment (` + appointmentColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
		member_id=excluded.member_id, trainer_id=excluded.trainer_id,
		service_id=excluded.service_id, starts_at=excluded.starts_at,
		price=excluded.price, confirmed=excluded.confirmed, rejected=excluded.rejected`

	_, err := s.db.ExecContext(ctx, query,
		entity.ID,
		entity.MemberID,
		entity.TrainerID,
		entity.ServiceID,
		entity.StartsAt.Format(time.RFC3339),
		entity.Price,
		confirmed,
		rejected,
		entity.CreatedAt.Format(time.RFC3339),
	)
	return err
}

// ListByMember retrieves a member's appointments, newest first.
// PRE: memberID is non-empty
// POST: Returns matching entities ordered by starts_at descending
func (s *SQLiteStore) ListByMember(ctx context.Context, memberID string) ([]domain.Appointment, error) {
	query := "SELECT " + appointmentColumns + " FROM appointment WHERE member_id = ? ORDER BY starts_at DESC"
	rows, err := s.db.QueryContext(ctx, query, memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Appointment
	for rows.Next() {
		var entity domain.Appointment
		var startsAt, createdAt string
		var confirmed, rejected bool
		if err := rows.Scan(
			&entity.ID,
			&entity.MemberID,
			&entity.TrainerID,
			&entity.ServiceID,
			&startsAt,
			&entity.Price,
			&confirmed,
			&rejected,
			&createdAt,
		); err != nil {
			return nil, err
		}
		entity, err = hydrate(entity, startsAt, createdAt, confirmed, rejected)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

// ListAll retrieves every appointment joined to member, trainer, and service
// names for the back-office list, newest first. Trainer and service joins are
// LEFT JOINs: catalog deletes are unguarded, so the referenced row may be gone.
func (s *SQLiteStore) ListAll(ctx context.Context) ([]AdminRow, error) {
	query := `SELECT a.id,
		TRIM(acc.first_name || ' ' || acc.last_name), acc.email,
		COALESCE(t.full_name, ''), COALESCE(sv.name, ''),
		a.starts_at, a.price, a.confirmed, a.rejected
	FROM appointment a
	JOIN account acc ON acc.id = a.member_id
	LEFT JOIN trainer t ON t.id = a.trainer_id
	LEFT JOIN service sv ON sv.id = a.service_id
	ORDER BY a.starts_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []AdminRow
	for rows.Next() {
		var row AdminRow
		var startsAt string
		var confirmed, rejected bool
		if err := rows.Scan(
			&row.ID,
			&row.MemberName,
			&row.MemberEmail,
			&row.TrainerName,
			&row.ServiceName,
			&startsAt,
			&row.Price,
			&confirmed,
			&rejected,
		); err != nil {
			return nil, err
		}
		if row.StartsAt, err = time.Parse(time.RFC3339, startsAt); err != nil {
			return nil, fmt.Errorf("invalid starts_at: %w", err)
		}
		if row.Status, err = domain.StatusFromFlags(confirmed, rejected); err != nil {
			return nil, fmt.Errorf("appointment %s: %w", row.ID, err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

func hydrate(entity domain.Appointment, startsAt, createdAt string, confirmed, rejected bool) (domain.Appointment, error) {
	var err error
	if entity.StartsAt, err = time.Parse(time.RFC3339, startsAt); err != nil {
		return domain.Appointment{}, fmt.Errorf("invalid starts_at: %w", err)
	}
	if entity.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return domain.Appointment{}, fmt.Errorf("invalid created_at: %w", err)
	}
	if entity.Status, err = domain.StatusFromFlags(confirmed, rejected); err != nil {
		return domain.Appointment{}, fmt.Errorf("appointment %s: %w", entity.ID, err)
	}
	return entity, nil
}
