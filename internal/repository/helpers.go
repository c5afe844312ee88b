package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// timeLayout keeps nanoseconds at a fixed width so stored UTC timestamps
// sort lexically in ORDER BY.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// parseNullableTime returns nil for NULL, empty or unparseable values.
func parseNullableTime(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s.String)
	if err != nil {
		return nil
	}
	return &t
}

// nullableTime converts a *time.Time to a SQLite value, nil for NULL.
func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(timeLayout)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(column, s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %s: %w", column, err)
	}
	return t, nil
}

func nowUTC() string {
	return formatTime(time.Now())
}

// isUniqueViolation matches SQLite's constraint error text; modernc.org/sqlite
// does not export typed constraint errors.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}
