// Package session tracks the signed-in identity for the lifetime of the
// process. A Holder owns the stored bearer credential and the resolved user,
// and is safe for concurrent use.
package session

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/golang-jwt/jwt/v5"

	"github.com/ahhzhzbbb/projectI-imdb-clone/internal/models"
	"github.com/ahhzhzbbb/projectI-imdb-clone/internal/services"
	"github.com/ahhzhzbbb/projectI-imdb-clone/internal/shared"
)

// State describes where the holder is in its sign-in lifecycle.
type State int

const (
	// Unauthenticated means no identity is resolved and requests go out
	// anonymously.
	Unauthenticated State = iota
	// Authenticating means a login or startup resolution is in flight.
	Authenticating
	// Authenticated means a credential is stored and the identity behind it
	// is known.
	Authenticated
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// CredentialStore persists the bearer credential between runs. Credential
// doubles as the [services.CredentialSource] implementation, so a store can
// be handed straight to the HTTP client.
type CredentialStore interface {
	Credential() string
	Save(token string) error
	Clear() error
}

// Holder is the process-wide session. It resolves the stored credential into
// an identity at startup, exchanges credentials on login, and drops local
// state on logout.
type Holder struct {
	mu      sync.RWMutex
	auth    *services.AuthService
	store   CredentialStore
	logger  *log.Logger
	state   State
	current *models.User
}

// NewHolder creates a session holder over the given auth service and
// credential store.
func NewHolder(auth *services.AuthService, store CredentialStore, logger *log.Logger) *Holder {
	return &Holder{
		auth:   auth,
		store:  store,
		logger: logger,
		state:  Unauthenticated,
	}
}

// Initialize resolves a credential left over from a previous run. A missing,
// expired, or rejected credential is cleared and the holder stays signed out;
// startup never fails because of a stale token.
func (h *Holder) Initialize(ctx context.Context) {
	token := h.store.Credential()
	if token == "" {
		return
	}

	if expired(token) {
		h.logger.Debug("stored credential expired, clearing")
		h.discardCredential()
		return
	}

	h.setState(Authenticating)
	user, err := h.auth.CurrentUser(ctx)
	if err != nil {
		h.logger.Debug("stored credential rejected, clearing", "error", err)
		h.discardCredential()
		h.setState(Unauthenticated)
		return
	}

	h.mu.Lock()
	h.current = user
	h.state = Authenticated
	h.mu.Unlock()

	h.logger.Debug("session restored", "user", user.Username)
}

// Login exchanges credentials for a token, persists it, and resolves the
// identity behind it. On any failure the holder is left signed out.
func (h *Holder) Login(ctx context.Context, username, password string) (*models.User, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", shared.ErrValidation)
	}

	h.setState(Authenticating)

	token, err := h.auth.Login(ctx, services.LoginRequest{Username: username, Password: password})
	if err != nil {
		h.setState(Unauthenticated)
		return nil, fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
	}

	if err := h.store.Save(token); err != nil {
		h.setState(Unauthenticated)
		return nil, fmt.Errorf("failed to persist credential: %w", err)
	}

	user, err := h.auth.CurrentUser(ctx)
	if err != nil {
		h.discardCredential()
		h.setState(Unauthenticated)
		return nil, fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
	}

	h.mu.Lock()
	h.current = user
	h.state = Authenticated
	h.mu.Unlock()

	h.logger.Info("signed in", "user", user.Username, "role", user.Role)
	return user, nil
}

// Signup registers a new account and signs it in.
func (h *Holder) Signup(ctx context.Context, username, password, confirmPassword, phoneNumber string) (*models.User, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", shared.ErrValidation)
	}
	if password != confirmPassword {
		return nil, fmt.Errorf("%w: passwords do not match", shared.ErrValidation)
	}

	req := services.SignupRequest{
		Username:        username,
		Password:        password,
		ConfirmPassword: confirmPassword,
		PhoneNumber:     phoneNumber,
	}
	if err := h.auth.Signup(ctx, req); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
	}

	return h.Login(ctx, username, password)
}

// Logout drops the stored credential and the resolved identity. It is a
// purely local operation and always leaves the holder signed out.
func (h *Holder) Logout() {
	h.discardCredential()

	h.mu.Lock()
	h.current = nil
	h.state = Unauthenticated
	h.mu.Unlock()

	h.logger.Info("signed out")
}

// SetLogger swaps the holder's logger, used when the TUI owns the terminal.
func (h *Holder) SetLogger(l *log.Logger) {
	h.mu.Lock()
	h.logger = l
	h.mu.Unlock()
}

// Current returns the resolved identity, or nil when signed out.
func (h *Holder) Current() *models.User {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// State returns the holder's lifecycle state.
func (h *Holder) State() State {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.state
}

// IsAuthenticated reports whether an identity is resolved.
func (h *Holder) IsAuthenticated() bool {
	return h.State() == Authenticated
}

func (h *Holder) setState(s State) {
	h.mu.Lock()
	h.state = s
	h.mu.Unlock()
}

func (h *Holder) discardCredential() {
	if err := h.store.Clear(); err != nil {
		h.logger.Warn("failed to clear stored credential", "error", err)
	}
}

// expired reports whether the token carries an exp claim in the past. The
// signature is not verified here, only the server can do that; an unparsable
// token is passed through and left for the server to reject.
func expired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
