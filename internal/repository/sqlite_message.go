package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/gigsim/internal/db"
	"github.com/alexanderramin/gigsim/internal/domain"
)

// SQLiteMessageRepo implements MessageRepo on SQLite.
type SQLiteMessageRepo struct {
	db db.DBTX
}

func NewSQLiteMessageRepo(db db.DBTX) *SQLiteMessageRepo {
	return &SQLiteMessageRepo{db: db}
}

func (r *SQLiteMessageRepo) Create(ctx context.Context, m *domain.Message) error {
	query := `INSERT INTO messages (id, simulation_id, sender, body, sent_at) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		m.SimulationID,
		string(m.Sender),
		m.Body,
		formatTime(m.SentAt),
	)
	if err != nil {
		return fmt.Errorf("inserting message: %w", err)
	}
	return nil
}

// ListBySimulation returns messages oldest first.
func (r *SQLiteMessageRepo) ListBySimulation(ctx context.Context, simulationID string) ([]*domain.Message, error) {
	query := `SELECT id, simulation_id, sender, body, sent_at
		FROM messages WHERE simulation_id = ? ORDER BY sent_at, rowid`
	rows, err := r.db.QueryContext(ctx, query, simulationID)
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}
	defer rows.Close()

	var msgs []*domain.Message
	for rows.Next() {
		var m domain.Message
		var sender, sentAt string
		if err := rows.Scan(&m.ID, &m.SimulationID, &sender, &m.Body, &sentAt); err != nil {
			return nil, fmt.Errorf("scanning message: %w", err)
		}
		m.Sender = domain.Sender(sender)
		if m.SentAt, err = parseTime("sent_at", sentAt); err != nil {
			return nil, err
		}
		msgs = append(msgs, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating messages: %w", err)
	}
	return msgs, nil
}

func (r *SQLiteMessageRepo) CountBySimulation(ctx context.Context, simulationID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM messages WHERE simulation_id = ?`, simulationID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting messages: %w", err)
	}
	return n, nil
}

func (r *SQLiteMessageRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM messages WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting message: %w", err)
	}
	return requireAffected(res, "message", id)
}
