package receipts

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists the receipt activity log.
type Repository interface {
	Record(ctx context.Context, event Event) error
	ListRecent(ctx context.Context, userID string, limit int) ([]Event, error)
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed activity repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Record inserts one activity event.
func (r *PostgresRepository) Record(ctx context.Context, event Event) error {
	id, err := uuid.Parse(event.ID)
	if err != nil {
		id = uuid.New()
	}
	_, err = r.db.Exec(ctx, `INSERT INTO receipt_events (id, user_id, transaction_id, receipt_number, action, verified_count, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, event.UserID, event.TransactionID, event.ReceiptNumber, event.Action, event.VerifiedCount, event.CreatedAt.UTC())
	return err
}

// ListRecent returns the newest events for a user, newest first.
func (r *PostgresRepository) ListRecent(ctx context.Context, userID string, limit int) ([]Event, error) {
	rows, err := r.db.Query(ctx, `SELECT id, user_id, transaction_id, receipt_number, action, verified_count, created_at
        FROM receipt_events WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var (
			id        uuid.UUID
			createdAt time.Time
			event     Event
		)
		if err := rows.Scan(&id, &event.UserID, &event.TransactionID, &event.ReceiptNumber, &event.Action, &event.VerifiedCount, &createdAt); err != nil {
			return nil, err
		}
		event.ID = id.String()
		event.CreatedAt = createdAt.UTC()
		events = append(events, event)
	}
	return events, rows.Err()
}
