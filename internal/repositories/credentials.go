package repositories

import (
	"github.com/charmbracelet/log"
)

// CredentialRepository keeps the bearer token in the local store under a
// configurable key. It satisfies both the HTTP client's credential source and
// the session's credential store, so every request reads the persisted value.
type CredentialRepository struct {
	store  *LocalStore
	key    string
	logger *log.Logger
}

// NewCredentialRepository creates a credential repository over the local
// store. key defaults to "jwtToken" when empty, matching the config default.
func NewCredentialRepository(store *LocalStore, key string, logger *log.Logger) *CredentialRepository {
	if key == "" {
		key = "jwtToken"
	}
	return &CredentialRepository{store: store, key: key, logger: logger}
}

// Credential returns the stored token, or "" when none is stored. Read
// failures degrade to anonymous requests rather than aborting the call.
func (r *CredentialRepository) Credential() string {
	token, err := r.store.Get(r.key)
	if err != nil {
		r.logger.Warn("failed to read stored credential", "error", err)
		return ""
	}
	return token
}

// Save persists the token.
func (r *CredentialRepository) Save(token string) error {
	return r.store.Set(r.key, token)
}

// Clear removes the stored token.
func (r *CredentialRepository) Clear() error {
	return r.store.Delete(r.key)
}
