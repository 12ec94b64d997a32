package repositories

import (
	"encoding/json"
	"fmt"
)

const settingsKey = "settings"

// Settings are the user's display preferences, stored as a JSON blob in the
// local store. Saves are last-write-wins.
type Settings struct {
	AppName      string `json:"appName"`
	Description  string `json:"description"`
	ShowSpoilers bool   `json:"showSpoilers"`
	ShowTrending bool   `json:"showTrending"`
	PlainOutput  bool   `json:"plainOutput"`
}

// DefaultSettings returns the preferences used before the user saves any.
func DefaultSettings() Settings {
	return Settings{
		AppName:      "imdb-clone",
		Description:  "movie catalog client",
		ShowTrending: true,
	}
}

// SettingsRepository reads and writes the settings blob.
type SettingsRepository struct {
	store *LocalStore
}

// NewSettingsRepository creates a settings repository over the local store.
func NewSettingsRepository(store *LocalStore) *SettingsRepository {
	return &SettingsRepository{store: store}
}

// Load returns the stored settings, falling back to defaults when none have
// been saved yet.
func (r *SettingsRepository) Load() (Settings, error) {
	raw, err := r.store.Get(settingsKey)
	if err != nil {
		return Settings{}, err
	}
	if raw == "" {
		return DefaultSettings(), nil
	}

	var s Settings
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return Settings{}, fmt.Errorf("failed to decode stored settings: %w", err)
	}
	return s, nil
}

// Save overwrites the stored settings.
func (r *SettingsRepository) Save(s Settings) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	return r.store.Set(settingsKey, string(raw))
}

// Reset drops the stored settings so the next Load returns defaults.
func (r *SettingsRepository) Reset() error {
	return r.store.Delete(settingsKey)
}
