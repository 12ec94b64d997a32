package wishlist

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/ahhzhzbbb/projectI-imdb-clone/internal/models"
	"github.com/ahhzhzbbb/projectI-imdb-clone/internal/services"
	"github.com/ahhzhzbbb/projectI-imdb-clone/internal/shared"
)

type fakeIdentity struct {
	user *models.User
}

func (f *fakeIdentity) Current() *models.User { return f.user }
func (f *fakeIdentity) IsAuthenticated() bool { return f.user != nil }

// fakeBackend serves the wishlist endpoints with switchable behavior.
type fakeBackend struct {
	mu        sync.Mutex
	listBody  string
	failList  bool
	failWrite bool
	requests  []string
}

func (b *fakeBackend) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.requests = append(b.requests, r.Method+" "+r.URL.Path)

		if r.Method == http.MethodGet {
			if b.failList {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Write([]byte(b.listBody))
			return
		}

		if b.failWrite {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}

func (b *fakeBackend) requestCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.requests)
}

func newTestStore(t *testing.T, backend *fakeBackend, id *fakeIdentity) (*Store, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(backend.handler())
	t.Cleanup(server.Close)

	svc := services.NewWishlistService(services.NewClient(server.URL, nil, nil, 0))
	return NewStore(svc, id, shared.NewLogger(io.Discard)), server
}

func signedIn(id int64, name string) *fakeIdentity {
	return &fakeIdentity{user: &models.User{UserID: id, Username: name, Role: "USER"}}
}

func TestLoad(t *testing.T) {
	t.Run("requires a signed-in user", func(t *testing.T) {
		store, _ := newTestStore(t, &fakeBackend{listBody: `{"movies": []}`}, &fakeIdentity{})

		if err := store.Load(context.Background()); !errors.Is(err, shared.ErrNotAuthenticated) {
			t.Errorf("expected not-authenticated error, got %v", err)
		}
	})

	t.Run("replaces the snapshot instead of merging", func(t *testing.T) {
		backend := &fakeBackend{listBody: `{"movies": [{"id": 1, "name": "Dune"}, {"id": 2, "name": "Heat"}]}`}
		store, _ := newTestStore(t, backend, signedIn(4, "sam"))

		if err := store.Load(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if store.Len() != 2 {
			t.Fatalf("expected 2 movies, got %d", store.Len())
		}

		backend.mu.Lock()
		backend.listBody = `{"movies": [{"id": 3, "name": "Alien"}]}`
		backend.mu.Unlock()

		if err := store.Load(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if store.Len() != 1 {
			t.Errorf("expected reload to replace the snapshot, got %d movies", store.Len())
		}
		if store.IsMember(1) || store.IsMember(2) {
			t.Error("expected old entries to be gone after reload")
		}
		if !store.IsMember(3) {
			t.Error("expected new entry to be present after reload")
		}
	})

	t.Run("keeps the previous snapshot when the fetch fails", func(t *testing.T) {
		backend := &fakeBackend{listBody: `{"movies": [{"id": 1, "name": "Dune"}]}`}
		store, _ := newTestStore(t, backend, signedIn(4, "sam"))

		if err := store.Load(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		backend.mu.Lock()
		backend.failList = true
		backend.mu.Unlock()

		err := store.Load(context.Background())
		if !errors.Is(err, shared.ErrLoadFailed) {
			t.Errorf("expected load failure, got %v", err)
		}
		if !store.IsMember(1) {
			t.Error("expected previous snapshot to survive a failed load")
		}
		if !errors.Is(store.SyncError(), shared.ErrLoadFailed) {
			t.Errorf("expected the failure to be recorded, got %v", store.SyncError())
		}

		backend.mu.Lock()
		backend.failList = false
		backend.mu.Unlock()

		if err := store.Load(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if store.SyncError() != nil {
			t.Errorf("expected a successful load to clear the failure, got %v", store.SyncError())
		}
	})
}

func TestAdd(t *testing.T) {
	movie := models.Movie{ID: 7, Name: "Alien"}

	t.Run("rejects when signed out", func(t *testing.T) {
		store, _ := newTestStore(t, &fakeBackend{}, &fakeIdentity{})

		if _, err := store.Add(context.Background(), movie); !errors.Is(err, shared.ErrNotAuthenticated) {
			t.Errorf("expected not-authenticated error, got %v", err)
		}
	})

	t.Run("adds locally and confirms with the server", func(t *testing.T) {
		backend := &fakeBackend{}
		store, _ := newTestStore(t, backend, signedIn(4, "sam"))

		applied, err := store.Add(context.Background(), movie)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if applied != Confirmed {
			t.Errorf("expected confirmed, got %v", applied)
		}
		if !store.IsMember(7) {
			t.Error("expected movie to be on the snapshot")
		}
	})

	t.Run("is a no-op when the movie is already present", func(t *testing.T) {
		backend := &fakeBackend{}
		store, _ := newTestStore(t, backend, signedIn(4, "sam"))

		if _, err := store.Add(context.Background(), movie); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		before := backend.requestCount()

		applied, err := store.Add(context.Background(), movie)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if applied != Unchanged {
			t.Errorf("expected unchanged, got %v", applied)
		}
		if backend.requestCount() != before {
			t.Error("expected no server push for a duplicate add")
		}
		if store.Len() != 1 {
			t.Errorf("expected a single entry, got %d", store.Len())
		}
	})

	t.Run("keeps the local change when the server push fails", func(t *testing.T) {
		backend := &fakeBackend{failWrite: true}
		store, _ := newTestStore(t, backend, signedIn(4, "sam"))

		applied, err := store.Add(context.Background(), movie)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if applied != Optimistic {
			t.Errorf("expected optimistic, got %v", applied)
		}
		if !store.IsMember(7) {
			t.Error("expected movie to stay on the snapshot despite the failure")
		}
		if store.SyncError() == nil {
			t.Error("expected the failed push to be recorded")
		}
	})
}

func TestRemove(t *testing.T) {
	movie := models.Movie{ID: 7, Name: "Alien"}

	t.Run("rejects when signed out", func(t *testing.T) {
		store, _ := newTestStore(t, &fakeBackend{}, &fakeIdentity{})

		if _, err := store.Remove(context.Background(), 7); !errors.Is(err, shared.ErrNotAuthenticated) {
			t.Errorf("expected not-authenticated error, got %v", err)
		}
	})

	t.Run("is a no-op for an absent movie", func(t *testing.T) {
		backend := &fakeBackend{}
		store, _ := newTestStore(t, backend, signedIn(4, "sam"))

		applied, err := store.Remove(context.Background(), 99)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if applied != Unchanged {
			t.Errorf("expected unchanged, got %v", applied)
		}
		if backend.requestCount() != 0 {
			t.Error("expected no server push for an absent movie")
		}
	})

	t.Run("keeps the local removal when the server push fails", func(t *testing.T) {
		backend := &fakeBackend{}
		store, _ := newTestStore(t, backend, signedIn(4, "sam"))

		if _, err := store.Add(context.Background(), movie); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		backend.mu.Lock()
		backend.failWrite = true
		backend.mu.Unlock()

		applied, err := store.Remove(context.Background(), 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if applied != Optimistic {
			t.Errorf("expected optimistic, got %v", applied)
		}
		if store.IsMember(7) {
			t.Error("expected movie to stay off the snapshot despite the failure")
		}
		if store.SyncError() == nil {
			t.Error("expected the failed push to be recorded")
		}
	})
}

func TestIsMember(t *testing.T) {
	t.Run("is false when signed out even with a populated snapshot", func(t *testing.T) {
		backend := &fakeBackend{listBody: `{"movies": [{"id": 1, "name": "Dune"}]}`}
		id := signedIn(4, "sam")
		store, _ := newTestStore(t, backend, id)

		if err := store.Load(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !store.IsMember(1) {
			t.Fatal("expected membership while signed in")
		}

		id.user = nil

		if store.IsMember(1) {
			t.Error("expected no membership while signed out")
		}
		if store.Len() != 0 {
			t.Error("expected the snapshot to read as empty while signed out")
		}
	})

	t.Run("ignores a snapshot loaded under a different identity", func(t *testing.T) {
		backend := &fakeBackend{listBody: `{"movies": [{"id": 1, "name": "Dune"}]}`}
		id := signedIn(4, "sam")
		store, _ := newTestStore(t, backend, id)

		if err := store.Load(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		id.user = &models.User{UserID: 5, Username: "alex", Role: "USER"}

		if store.IsMember(1) {
			t.Error("expected a different identity to see an empty snapshot")
		}
	})
}

func TestToggle(t *testing.T) {
	backend := &fakeBackend{}
	store, _ := newTestStore(t, backend, signedIn(4, "sam"))
	movie := models.Movie{ID: 2, Name: "Heat"}

	if applied, _ := store.Toggle(context.Background(), movie); applied != Confirmed {
		t.Errorf("expected first toggle to add, got %v", applied)
	}
	if !store.IsMember(2) {
		t.Error("expected movie to be present after first toggle")
	}

	if applied, _ := store.Toggle(context.Background(), movie); applied != Confirmed {
		t.Errorf("expected second toggle to remove, got %v", applied)
	}
	if store.IsMember(2) {
		t.Error("expected movie to be absent after second toggle")
	}
}

func TestSetLogger(t *testing.T) {
	backend := &fakeBackend{failWrite: true}
	store, _ := newTestStore(t, backend, signedIn(4, "sam"))

	var logs bytes.Buffer
	store.SetLogger(shared.NewLogger(&logs))

	applied, err := store.Add(context.Background(), models.Movie{ID: 7, Name: "Alien"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if applied != Optimistic {
		t.Fatalf("expected optimistic, got %v", applied)
	}

	if !strings.Contains(logs.String(), "server push failed") {
		t.Errorf("expected the failed push to reach the swapped logger, got:\n%s", logs.String())
	}
}

func TestReset(t *testing.T) {
	backend := &fakeBackend{listBody: `{"movies": [{"id": 1, "name": "Dune"}]}`}
	id := signedIn(4, "sam")
	store, _ := newTestStore(t, backend, id)

	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	store.Reset()

	if store.Len() != 0 {
		t.Error("expected an empty snapshot after reset")
	}
	if store.SyncError() != nil {
		t.Error("expected no recorded sync failure after reset")
	}
}

// Exercises a full session: sign in, load, mutate with a flaky server, reload.
func TestLifecycle(t *testing.T) {
	backend := &fakeBackend{listBody: `{"movies": [{"id": 1, "name": "Dune"}]}`}
	id := signedIn(4, "sam")
	store, _ := newTestStore(t, backend, id)
	ctx := context.Background()

	if err := store.Load(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if applied, _ := store.Add(ctx, models.Movie{ID: 2, Name: "Heat"}); applied != Confirmed {
		t.Fatalf("expected confirmed add, got %v", applied)
	}

	backend.mu.Lock()
	backend.failWrite = true
	backend.mu.Unlock()

	if applied, _ := store.Remove(ctx, 1); applied != Optimistic {
		t.Fatalf("expected optimistic remove, got %v", applied)
	}
	if store.IsMember(1) {
		t.Error("expected removal to stand despite the failed push")
	}

	backend.mu.Lock()
	backend.failWrite = false
	backend.listBody = `{"movies": [{"id": 1, "name": "Dune"}, {"id": 2, "name": "Heat"}]}`
	backend.mu.Unlock()

	if err := store.Load(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !store.IsMember(1) || !store.IsMember(2) {
		t.Error("expected reload to adopt the server's view")
	}
	if store.SyncError() != nil {
		t.Error("expected reload to clear the recorded sync failure")
	}

	id.user = nil
	store.Reset()
	if store.IsMember(2) {
		t.Error("expected no membership after sign-out")
	}
}
