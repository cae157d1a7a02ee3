// internal/profile/store.go

// Package profile persists fill profiles in a local SQLite database. The
// collection keeps two invariants: it is never empty once opened (a starter
// profile is seeded, and deleting the last profile is rejected), and exactly
// one profile is active after every write (if none is marked, the oldest
// becomes active).
package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/mitchellh/go-homedir"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/xkilldash9x/formpilot-cli/api/schemas"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	// ErrNotFound indicates no profile exists with the given ID.
	ErrNotFound = errors.New("profile not found")
	// ErrLastProfile indicates a delete was rejected because it would
	// empty the store.
	ErrLastProfile = errors.New("cannot delete the last remaining profile")
)

const schema = `
CREATE TABLE IF NOT EXISTS profiles (
	id           TEXT PRIMARY KEY,
	display_name TEXT NOT NULL,
	is_active    INTEGER NOT NULL DEFAULT 0,
	data         TEXT NOT NULL,
	created_at   TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now')),
	updated_at   TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now'))
);
CREATE INDEX IF NOT EXISTS idx_profiles_active ON profiles(is_active);
`

// Store is the SQLite-backed schemas.ProfileStore.
type Store struct {
	db  *sql.DB
	log *zap.Logger
}

var _ schemas.ProfileStore = (*Store)(nil)

// Open opens (creating if needed) the profile database at path. A leading
// "~" expands to the user's home directory. An empty store is seeded with a
// blank active "Default" profile.
func Open(path string, logger *zap.Logger) (*Store, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("expand profile db path: %w", err)
	}
	if expanded != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
			return nil, fmt.Errorf("create profile db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", expanded)
	if err != nil {
		return nil, fmt.Errorf("open profile db: %w", err)
	}
	if expanded == ":memory:" {
		// Each connection to :memory: is a distinct database.
		db.SetMaxOpenConns(1)
	}

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 10000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", p, err)
		}
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply profile schema: %w", err)
	}

	s := &Store{db: db, log: logger.Named("profile_store")}
	if err := s.seed(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// seed inserts the starter profile when the table is empty.
func (s *Store) seed(ctx context.Context) error {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM profiles`).Scan(&count); err != nil {
		return fmt.Errorf("count profiles: %w", err)
	}
	if count > 0 {
		return nil
	}
	starter := &schemas.Profile{
		ID:          uuid.New().String(),
		DisplayName: "Default",
		IsActive:    true,
	}
	if err := s.insert(ctx, starter); err != nil {
		return err
	}
	s.log.Info("Seeded starter profile.", zap.String("profile_id", starter.ID))
	return nil
}

// ListProfiles returns all profiles, oldest first.
func (s *Store) ListProfiles(ctx context.Context) ([]schemas.Profile, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT data, is_active FROM profiles ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []schemas.Profile
	for rows.Next() {
		var data string
		var active bool
		if err := rows.Scan(&data, &active); err != nil {
			return nil, fmt.Errorf("scan profile row: %w", err)
		}
		var p schemas.Profile
		if err := json.UnmarshalFromString(data, &p); err != nil {
			return nil, fmt.Errorf("decode profile: %w", err)
		}
		p.IsActive = active
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// GetProfile fetches one profile by ID.
func (s *Store) GetProfile(ctx context.Context, id string) (*schemas.Profile, error) {
	var data string
	var active bool
	err := s.db.QueryRowContext(ctx,
		`SELECT data, is_active FROM profiles WHERE id = ?`, id).Scan(&data, &active)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	var p schemas.Profile
	if err := json.UnmarshalFromString(data, &p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	p.IsActive = active
	return &p, nil
}

// ActiveProfile returns the active profile, healing the marker first if a
// previous crash left none set.
func (s *Store) ActiveProfile(ctx context.Context) (*schemas.Profile, error) {
	if err := s.healActive(ctx); err != nil {
		return nil, err
	}
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM profiles WHERE is_active = 1 ORDER BY created_at, id LIMIT 1`).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("active profile: %w", err)
	}
	var p schemas.Profile
	if err := json.UnmarshalFromString(data, &p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	p.IsActive = true
	return &p, nil
}

// SaveProfile upserts by ID, generating one when empty. A profile saved
// with IsActive set deactivates the others.
func (s *Store) SaveProfile(ctx context.Context, p *schemas.Profile) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}

	var exists bool
	if err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM profiles WHERE id = ?)`, p.ID).Scan(&exists); err != nil {
		return fmt.Errorf("check profile exists: %w", err)
	}

	if exists {
		data, err := json.MarshalToString(p)
		if err != nil {
			return fmt.Errorf("encode profile: %w", err)
		}
		if _, err := s.db.ExecContext(ctx,
			`UPDATE profiles
			 SET display_name = ?, is_active = ?, data = ?,
			     updated_at = strftime('%Y-%m-%dT%H:%M:%fZ','now')
			 WHERE id = ?`,
			p.DisplayName, p.IsActive, data, p.ID); err != nil {
			return fmt.Errorf("update profile: %w", err)
		}
	} else if err := s.insert(ctx, p); err != nil {
		return err
	}

	if p.IsActive {
		if err := s.SetActive(ctx, p.ID); err != nil {
			return err
		}
	}
	return s.healActive(ctx)
}

// DeleteProfile removes a profile, rejecting the delete that would empty
// the store.
func (s *Store) DeleteProfile(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete: %w", err)
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM profiles`).Scan(&count); err != nil {
		return fmt.Errorf("count profiles: %w", err)
	}
	if count <= 1 {
		return ErrLastProfile
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM profiles WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete: %w", err)
	}

	s.log.Info("Profile deleted.", zap.String("profile_id", id))
	return s.healActive(ctx)
}

// SetActive marks id active and every other profile inactive.
func (s *Store) SetActive(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin set active: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM profiles WHERE id = ?)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("check profile exists: %w", err)
	}
	if !exists {
		return ErrNotFound
	}

	if _, err := tx.ExecContext(ctx, `UPDATE profiles SET is_active = 0 WHERE id != ?`, id); err != nil {
		return fmt.Errorf("deactivate profiles: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `UPDATE profiles SET is_active = 1 WHERE id = ?`, id); err != nil {
		return fmt.Errorf("activate profile: %w", err)
	}
	return tx.Commit()
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) insert(ctx context.Context, p *schemas.Profile) error {
	data, err := json.MarshalToString(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO profiles (id, display_name, is_active, data) VALUES (?, ?, ?, ?)`,
		p.ID, p.DisplayName, p.IsActive, data); err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

// healActive restores the exactly-one-active invariant: no active profile
// promotes the oldest, more than one keeps only the oldest active.
func (s *Store) healActive(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin heal: %w", err)
	}
	defer tx.Rollback()

	var activeCount int
	if err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM profiles WHERE is_active = 1`).Scan(&activeCount); err != nil {
		return fmt.Errorf("count active: %w", err)
	}
	if activeCount == 1 {
		return nil
	}

	var keep string
	err = tx.QueryRowContext(ctx, `
		SELECT id FROM profiles
		WHERE is_active = 1 OR NOT EXISTS (SELECT 1 FROM profiles WHERE is_active = 1)
		ORDER BY created_at, id LIMIT 1`).Scan(&keep)
	if errors.Is(err, sql.ErrNoRows) {
		// Empty table; nothing to heal.
		return nil
	}
	if err != nil {
		return fmt.Errorf("select heal candidate: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `UPDATE profiles SET is_active = 0 WHERE id != ?`, keep); err != nil {
		return fmt.Errorf("heal deactivate: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `UPDATE profiles SET is_active = 1 WHERE id = ?`, keep); err != nil {
		return fmt.Errorf("heal activate: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit heal: %w", err)
	}
	s.log.Debug("Healed active profile marker.", zap.String("profile_id", keep))
	return nil
}
