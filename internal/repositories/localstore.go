package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ahhzhzbbb/projectI-imdb-clone/internal/shared"
)

// LocalStore is a key-value table in the local database. Keys are unique;
// Set overwrites.
type LocalStore struct {
	db *sql.DB
}

// NewLocalStore creates a LocalStore over an open database. The schema comes
// from [shared.RunMigrations].
func NewLocalStore(db *sql.DB) *LocalStore {
	return &LocalStore{db: db}
}

// Get returns the value for key, or "" when the key is absent.
func (s *LocalStore) Get(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM local_store WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %q: %w", key, err)
	}
	return value, nil
}

// Set writes the value for key, replacing any previous value.
func (s *LocalStore) Set(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO local_store (id, key, value, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		shared.GenerateID(), key, value, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}

// Delete removes the key. Deleting an absent key is not an error.
func (s *LocalStore) Delete(key string) error {
	if _, err := s.db.Exec(`DELETE FROM local_store WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	return nil
}
