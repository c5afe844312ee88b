package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/gigsim/internal/db"
	"github.com/alexanderramin/gigsim/internal/domain"
)

// SQLiteSimulationRepo implements SimulationRepo on SQLite.
type SQLiteSimulationRepo struct {
	db db.DBTX
}

func NewSQLiteSimulationRepo(db db.DBTX) *SQLiteSimulationRepo {
	return &SQLiteSimulationRepo{db: db}
}

const simulationColumns = `s.id, s.short_id, s.title, s.client, s.status, s.deadline,
	s.imported_messages, s.archived_at, s.created_at, s.updated_at`

func (r *SQLiteSimulationRepo) Create(ctx context.Context, s *domain.Simulation) error {
	query := `INSERT INTO simulations (id, short_id, title, client, status, deadline,
		imported_messages, archived_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.ShortID,
		s.Title,
		s.Client,
		string(s.Status),
		nullableTime(s.Deadline),
		s.ImportedMessages,
		nullableTime(s.ArchivedAt),
		formatTime(s.CreatedAt),
		formatTime(s.UpdatedAt),
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("inserting simulation %s: %w", s.ShortID, ErrDuplicateShortID)
	}
	if err != nil {
		return fmt.Errorf("inserting simulation: %w", err)
	}
	return nil
}

func (r *SQLiteSimulationRepo) GetByID(ctx context.Context, id string) (*domain.Simulation, error) {
	query := `SELECT ` + simulationColumns + ` FROM simulations s WHERE s.id = ?`
	return r.getOne(ctx, query, id)
}

func (r *SQLiteSimulationRepo) GetByShortID(ctx context.Context, shortID string) (*domain.Simulation, error) {
	query := `SELECT ` + simulationColumns + ` FROM simulations s WHERE UPPER(s.short_id) = UPPER(?)`
	return r.getOne(ctx, query, shortID)
}

func (r *SQLiteSimulationRepo) getOne(ctx context.Context, query string, arg any) (*domain.Simulation, error) {
	s, err := scanSimulation(r.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("simulation %v: %w", arg, ErrNotFound)
	}
	return s, err
}

func (r *SQLiteSimulationRepo) List(ctx context.Context, includeArchived bool) ([]*domain.Simulation, error) {
	query := `SELECT ` + simulationColumns + ` FROM simulations s`
	if !includeArchived {
		query += ` WHERE s.archived_at IS NULL`
	}
	query += ` ORDER BY s.created_at, s.id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing simulations: %w", err)
	}
	defer rows.Close()

	var sims []*domain.Simulation
	for rows.Next() {
		s, err := scanSimulation(rows)
		if err != nil {
			return nil, err
		}
		sims = append(sims, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating simulations: %w", err)
	}
	return sims, nil
}

// ListActivity returns every simulation with its stored message count in
// one query.
func (r *SQLiteSimulationRepo) ListActivity(ctx context.Context, includeArchived bool) ([]ActivityRow, error) {
	query := `SELECT ` + simulationColumns + `, COUNT(m.id)
		FROM simulations s
		LEFT JOIN messages m ON m.simulation_id = s.id`
	if !includeArchived {
		query += ` WHERE s.archived_at IS NULL`
	}
	query += ` GROUP BY s.id ORDER BY s.created_at, s.id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing simulation activity: %w", err)
	}
	defer rows.Close()

	var out []ActivityRow
	for rows.Next() {
		var count int
		s, err := scanSimulation(rows, &count)
		if err != nil {
			return nil, err
		}
		out = append(out, ActivityRow{Simulation: s, StoredMessages: count})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating simulation activity: %w", err)
	}
	return out, nil
}

func (r *SQLiteSimulationRepo) Update(ctx context.Context, s *domain.Simulation) error {
	query := `UPDATE simulations SET short_id = ?, title = ?, client = ?, status = ?, deadline = ?,
		imported_messages = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		s.ShortID,
		s.Title,
		s.Client,
		string(s.Status),
		nullableTime(s.Deadline),
		s.ImportedMessages,
		formatTime(s.UpdatedAt),
		s.ID,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("updating simulation %s: %w", s.ShortID, ErrDuplicateShortID)
	}
	if err != nil {
		return fmt.Errorf("updating simulation: %w", err)
	}
	return requireAffected(res, "simulation", s.ID)
}

func (r *SQLiteSimulationRepo) Archive(ctx context.Context, id string) error {
	now := nowUTC()
	res, err := r.db.ExecContext(ctx,
		`UPDATE simulations SET archived_at = ?, updated_at = ? WHERE id = ?`, now, now, id)
	if err != nil {
		return fmt.Errorf("archiving simulation: %w", err)
	}
	return requireAffected(res, "simulation", id)
}

func (r *SQLiteSimulationRepo) Unarchive(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE simulations SET archived_at = NULL, updated_at = ? WHERE id = ?`, nowUTC(), id)
	if err != nil {
		return fmt.Errorf("unarchiving simulation: %w", err)
	}
	return requireAffected(res, "simulation", id)
}

func (r *SQLiteSimulationRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM simulations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting simulation: %w", err)
	}
	return requireAffected(res, "simulation", id)
}

// scanSimulation reads simulationColumns followed by any extra columns.
func scanSimulation(row rowScanner, extra ...any) (*domain.Simulation, error) {
	var s domain.Simulation
	var status, createdAt, updatedAt string
	var deadline, archivedAt sql.NullString

	dest := []any{
		&s.ID, &s.ShortID, &s.Title, &s.Client, &status, &deadline,
		&s.ImportedMessages, &archivedAt, &createdAt, &updatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning simulation: %w", err)
	}

	s.Status = domain.SimulationStatus(status)
	s.Deadline = parseNullableTime(deadline)
	s.ArchivedAt = parseNullableTime(archivedAt)

	var err error
	if s.CreatedAt, err = parseTime("created_at", createdAt); err != nil {
		return nil, err
	}
	if s.UpdatedAt, err = parseTime("updated_at", updatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

func requireAffected(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, ErrNotFound)
	}
	return nil
}
