package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ahhzhzbbb/projectI-imdb-clone/internal/models"
)

// newTestServer records the method and path of each request and replies with
// the given body.
func newTestServer(t *testing.T, body string, requests *[]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*requests = append(*requests, r.Method+" "+r.URL.RequestURI())
		w.Write([]byte(body))
	}))
}

func TestAuthService(t *testing.T) {
	t.Run("login returns the issued token", func(t *testing.T) {
		var requests []string
		server := newTestServer(t, `{"jwtToken": "abc.def.ghi"}`, &requests)
		defer server.Close()

		svc := NewAuthService(NewClient(server.URL, nil, nil, 0))
		token, err := svc.Login(context.Background(), LoginRequest{Username: "sam", Password: "hunter2"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if token != "abc.def.ghi" {
			t.Errorf("expected token from response, got %q", token)
		}
		if requests[0] != "POST /auth/login" {
			t.Errorf("unexpected request: %s", requests[0])
		}
	})

	t.Run("login fails when the response omits a token", func(t *testing.T) {
		var requests []string
		server := newTestServer(t, `{}`, &requests)
		defer server.Close()

		svc := NewAuthService(NewClient(server.URL, nil, nil, 0))
		if _, err := svc.Login(context.Background(), LoginRequest{Username: "sam", Password: "hunter2"}); err == nil {
			t.Error("expected an error for a tokenless response")
		}
	})

	t.Run("current user strips the role prefix", func(t *testing.T) {
		var requests []string
		server := newTestServer(t, `{"userId": 7, "username": "sam", "roles": ["ROLE_ADMIN"]}`, &requests)
		defer server.Close()

		svc := NewAuthService(NewClient(server.URL, nil, nil, 0))
		user, err := svc.CurrentUser(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if user.Role != "ADMIN" {
			t.Errorf("expected ADMIN role, got %q", user.Role)
		}
		if !user.IsAdmin() {
			t.Error("expected IsAdmin to be true")
		}
	})
}

func TestMovieService(t *testing.T) {
	t.Run("list unwraps the movies envelope", func(t *testing.T) {
		var requests []string
		server := newTestServer(t, `{"movies": [{"id": 1, "name": "Dune"}, {"id": 2, "name": "Severance", "tvSeries": true}]}`, &requests)
		defer server.Close()

		svc := NewMovieService(NewClient(server.URL, nil, nil, 0))
		movies, err := svc.List(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(movies) != 2 {
			t.Fatalf("expected 2 movies, got %d", len(movies))
		}
		if !movies[1].TVSeries {
			t.Error("expected second entry to be a series")
		}
	})

	t.Run("detail unwraps the data envelope", func(t *testing.T) {
		var requests []string
		server := newTestServer(t, `{"success": true, "data": {"id": 5, "name": "Dune", "seasons": []}}`, &requests)
		defer server.Close()

		svc := NewMovieService(NewClient(server.URL, nil, nil, 0))
		detail, err := svc.Detail(context.Background(), 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if detail.Name != "Dune" {
			t.Errorf("unexpected detail: %+v", detail)
		}
		if requests[0] != "GET /movie/5/seasons" {
			t.Errorf("unexpected request: %s", requests[0])
		}
	})

	t.Run("search escapes the query", func(t *testing.T) {
		var requests []string
		server := newTestServer(t, `{"movies": []}`, &requests)
		defer server.Close()

		svc := NewMovieService(NewClient(server.URL, nil, nil, 0))
		if _, err := svc.Search(context.Background(), "blade runner"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if requests[0] != "GET /movies/search?q=blade+runner" {
			t.Errorf("unexpected request: %s", requests[0])
		}
	})

	t.Run("create rejects an invalid request before the network", func(t *testing.T) {
		var requests []string
		server := newTestServer(t, `{}`, &requests)
		defer server.Close()

		svc := NewMovieService(NewClient(server.URL, nil, nil, 0))
		if _, err := svc.Create(context.Background(), models.MovieRequest{}); err == nil {
			t.Error("expected a validation error")
		}

		if len(requests) != 0 {
			t.Errorf("expected no request to be sent, got %v", requests)
		}
	})
}

func TestWishlistService(t *testing.T) {
	t.Run("uses the backend's mixed-case paths", func(t *testing.T) {
		var requests []string
		server := newTestServer(t, `{"movies": []}`, &requests)
		defer server.Close()

		svc := NewWishlistService(NewClient(server.URL, nil, nil, 0))
		ctx := context.Background()

		if _, err := svc.Movies(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := svc.Add(ctx, 3); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := svc.Remove(ctx, 3); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []string{
			"GET /wishList/movies",
			"POST /wishlist/movie/3",
			"DELETE /wishList/movie/3",
		}
		for i, w := range want {
			if requests[i] != w {
				t.Errorf("request %d: expected %q, got %q", i, w, requests[i])
			}
		}
	})

	t.Run("check reads either response shape", func(t *testing.T) {
		var requests []string
		server := newTestServer(t, `{"exists": true}`, &requests)
		defer server.Close()

		svc := NewWishlistService(NewClient(server.URL, nil, nil, 0))
		member, err := svc.Check(context.Background(), 9)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !member {
			t.Error("expected membership to be true")
		}
		if requests[0] != "GET /wishlist/check/9" {
			t.Errorf("unexpected request: %s", requests[0])
		}
	})
}

func TestReviewService(t *testing.T) {
	t.Run("rejects an out of range score", func(t *testing.T) {
		var requests []string
		server := newTestServer(t, `{}`, &requests)
		defer server.Close()

		svc := NewReviewService(NewClient(server.URL, nil, nil, 0))
		if _, err := svc.Create(context.Background(), 1, models.ReviewRequest{Score: 11}); err == nil {
			t.Error("expected a validation error")
		}
		if len(requests) != 0 {
			t.Errorf("expected no request to be sent, got %v", requests)
		}
	})

	t.Run("reads review lists from either envelope", func(t *testing.T) {
		var requests []string
		server := newTestServer(t, `{"data": [{"id": 1, "score": 8}]}`, &requests)
		defer server.Close()

		svc := NewReviewService(NewClient(server.URL, nil, nil, 0))
		reviews, err := svc.OfMovie(context.Background(), 4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(reviews) != 1 || reviews[0].Score != 8 {
			t.Errorf("unexpected reviews: %+v", reviews)
		}
	})
}
