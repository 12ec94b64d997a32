// Package wishlist keeps a local snapshot of the signed-in user's wishlist
// and pushes mutations to the backend without blocking on its agreement.
//
// Mutations are optimistic: the snapshot changes first, the server is told
// second, and a failed push is recorded rather than rolled back. The next
// Load replaces the snapshot wholesale and squares it with the server again.
package wishlist

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/ahhzhzbbb/projectI-imdb-clone/internal/models"
	"github.com/ahhzhzbbb/projectI-imdb-clone/internal/services"
	"github.com/ahhzhzbbb/projectI-imdb-clone/internal/shared"
)

// Identity is the slice of the session the store needs: who is signed in, if
// anyone.
type Identity interface {
	Current() *models.User
	IsAuthenticated() bool
}

// Applied describes how a mutation landed.
type Applied int

const (
	// Unchanged means the snapshot already satisfied the request and nothing
	// was sent to the server.
	Unchanged Applied = iota
	// Confirmed means the snapshot changed and the server agreed.
	Confirmed
	// Optimistic means the snapshot changed but the server push failed; the
	// local change stands and the divergence waits for the next Load.
	Optimistic
)

// String implements fmt.Stringer.
func (a Applied) String() string {
	switch a {
	case Confirmed:
		return "confirmed"
	case Optimistic:
		return "optimistic"
	default:
		return "unchanged"
	}
}

// Store is the in-process wishlist. It is safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	svc      *services.WishlistService
	identity Identity
	logger   *log.Logger

	movies  []models.Movie
	ownerID int64
	loaded  bool
	syncErr error
}

// NewStore creates a Store over the given wishlist service and session.
func NewStore(svc *services.WishlistService, identity Identity, logger *log.Logger) *Store {
	return &Store{
		svc:      svc,
		identity: identity,
		logger:   logger,
	}
}

// SetLogger swaps the store's logger. The TUI points it at a file so a push
// that fails mid-session does not write over the terminal.
func (s *Store) SetLogger(l *log.Logger) {
	s.mu.Lock()
	s.logger = l
	s.mu.Unlock()
}

// Load fetches the signed-in user's wishlist and replaces the snapshot with
// it. On failure the previous snapshot is kept untouched and the failure is
// recorded for SyncError.
func (s *Store) Load(ctx context.Context) error {
	user := s.identity.Current()
	if user == nil {
		return shared.ErrNotAuthenticated
	}

	movies, err := s.svc.Movies(ctx)
	if err != nil {
		wrapped := fmt.Errorf("%w: %v", shared.ErrLoadFailed, err)
		s.mu.Lock()
		s.syncErr = wrapped
		s.mu.Unlock()
		return wrapped
	}

	s.mu.Lock()
	s.movies = movies
	s.ownerID = user.UserID
	s.loaded = true
	s.syncErr = nil
	logger := s.logger
	s.mu.Unlock()

	logger.Debug("wishlist loaded", "count", len(movies), "user", user.Username)
	return nil
}

// Movies returns a copy of the snapshot. The copy is empty when signed out or
// when the snapshot belongs to a previously signed-in user.
func (s *Store) Movies() []models.Movie {
	if !s.usable() {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Movie, len(s.movies))
	copy(out, s.movies)
	return out
}

// Len returns the snapshot size, zero when signed out.
func (s *Store) Len() int {
	if !s.usable() {
		return 0
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.movies)
}

// IsMember reports whether the movie is on the snapshot. It is always false
// when signed out, regardless of what the snapshot holds.
func (s *Store) IsMember(movieID int64) bool {
	if !s.usable() {
		return false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexOf(movieID) >= 0
}

// Add puts a movie on the wishlist. Adding a movie that is already present is
// a no-op and never reaches the server. The snapshot gains the movie even if
// the server push fails.
func (s *Store) Add(ctx context.Context, movie models.Movie) (Applied, error) {
	if !s.identity.IsAuthenticated() {
		return Unchanged, shared.ErrNotAuthenticated
	}

	s.mu.Lock()
	if s.indexOf(movie.ID) >= 0 {
		s.mu.Unlock()
		return Unchanged, nil
	}
	s.movies = append(s.movies, movie)
	s.mu.Unlock()

	if err := s.svc.Add(ctx, movie.ID); err != nil {
		s.recordSyncFailure("add", movie.ID, err)
		return Optimistic, nil
	}
	return Confirmed, nil
}

// Remove takes a movie off the wishlist. The snapshot loses the movie even if
// the server push fails.
func (s *Store) Remove(ctx context.Context, movieID int64) (Applied, error) {
	if !s.identity.IsAuthenticated() {
		return Unchanged, shared.ErrNotAuthenticated
	}

	s.mu.Lock()
	i := s.indexOf(movieID)
	if i < 0 {
		s.mu.Unlock()
		return Unchanged, nil
	}
	s.movies = append(s.movies[:i], s.movies[i+1:]...)
	s.mu.Unlock()

	if err := s.svc.Remove(ctx, movieID); err != nil {
		s.recordSyncFailure("remove", movieID, err)
		return Optimistic, nil
	}
	return Confirmed, nil
}

// Toggle adds the movie when absent and removes it when present.
func (s *Store) Toggle(ctx context.Context, movie models.Movie) (Applied, error) {
	if s.IsMember(movie.ID) {
		return s.Remove(ctx, movie.ID)
	}
	return s.Add(ctx, movie)
}

// Reset drops the snapshot. Call it after logout so the next user starts
// clean.
func (s *Store) Reset() {
	s.mu.Lock()
	s.movies = nil
	s.ownerID = 0
	s.loaded = false
	s.syncErr = nil
	s.mu.Unlock()
}

// SyncError returns the most recent failed server exchange, a rejected push
// or a failed load, or nil when the snapshot and server last agreed. A
// successful Load clears it.
func (s *Store) SyncError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.syncErr
}

// usable reports whether the snapshot belongs to the currently signed-in
// user. A snapshot loaded under a previous identity reads as empty.
func (s *Store) usable() bool {
	user := s.identity.Current()
	if user == nil {
		return false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.loaded || s.ownerID == user.UserID
}

// indexOf expects s.mu to be held.
func (s *Store) indexOf(movieID int64) int {
	for i, m := range s.movies {
		if m.ID == movieID {
			return i
		}
	}
	return -1
}

func (s *Store) recordSyncFailure(op string, movieID int64, err error) {
	s.mu.Lock()
	s.syncErr = fmt.Errorf("%s of movie %d not acknowledged: %w", op, movieID, err)
	logger := s.logger
	s.mu.Unlock()

	logger.Warn("wishlist change kept locally, server push failed",
		"op", op, "movie_id", movieID, "error", err)
}
