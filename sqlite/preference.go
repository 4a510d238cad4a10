package sqlite

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"github.com/fwojciec/pinmark"
)

// Compile-time interface verification.
var _ pinmark.PreferenceService = (*PreferenceService)(nil)

// PreferenceService implements pinmark.PreferenceService using SQLite.
type PreferenceService struct {
	db *DB
}

// NewPreferenceService creates a new PreferenceService.
func NewPreferenceService(db *DB) *PreferenceService {
	return &PreferenceService{db: db}
}

// BoolPreference returns the stored value for key, or def when unset.
func (s *PreferenceService) BoolPreference(ctx context.Context, key string, def bool) (bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM preferences WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return def, nil
	}
	if err != nil {
		return def, err
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return def, pinmark.Errorf(pinmark.EINVALID, "preference %s is not a boolean: %q", key, value)
	}
	return b, nil
}

// SetBoolPreference stores value for key.
func (s *PreferenceService) SetBoolPreference(ctx context.Context, key string, value bool) error {
	if key == "" {
		return pinmark.Errorf(pinmark.EINVALID, "preference key required")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, strconv.FormatBool(value), time.Now().UTC().Format(time.RFC3339))

	return err
}
