package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ahhzhzbbb/projectI-imdb-clone/internal/shared"
	tu "github.com/ahhzhzbbb/projectI-imdb-clone/internal/testing"
)

type staticCreds string

func (c staticCreds) Credential() string { return string(c) }

func TestClient(t *testing.T) {
	t.Run("attaches bearer credential when one is available", func(t *testing.T) {
		var gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, nil, staticCreds("tok-123"), 0)
		if err := client.get(context.Background(), "/movies", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if gotAuth != "Bearer tok-123" {
			t.Errorf("expected bearer header, got %q", gotAuth)
		}
	})

	t.Run("sends anonymous request when credential is empty", func(t *testing.T) {
		var gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, nil, staticCreds(""), 0)
		if err := client.get(context.Background(), "/movies", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if gotAuth != "" {
			t.Errorf("expected no Authorization header, got %q", gotAuth)
		}
	})

	t.Run("wraps transport failures as network errors", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		client := NewClient(server.URL, nil, nil, 0)
		err := client.get(context.Background(), "/movies", nil)

		if !errors.Is(err, shared.ErrNetwork) {
			t.Errorf("expected network error, got %v", err)
		}
	})

	t.Run("wraps round-trip errors without a server", func(t *testing.T) {
		httpClient := &http.Client{Transport: tu.NewMockRoundTripper(nil, errors.New("dialer down"))}

		client := NewClient("http://example.invalid", httpClient, nil, 0)
		err := client.get(context.Background(), "/movies", nil)

		if !errors.Is(err, shared.ErrNetwork) {
			t.Errorf("expected network error, got %v", err)
		}
	})

	t.Run("fails when the response body cannot be read", func(t *testing.T) {
		resp := &http.Response{StatusCode: http.StatusOK, Body: &tu.FCloser{}}
		httpClient := &http.Client{Transport: tu.NewMockRoundTripper(resp, nil)}

		client := NewClient("http://example.invalid", httpClient, nil, 0)
		err := client.get(context.Background(), "/movies", nil)

		if err == nil || !strings.Contains(err.Error(), "failed to read response") {
			t.Errorf("expected a body read failure, got %v", err)
		}
	})

	t.Run("surfaces failure statuses as HTTPError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message": "bad credentials"}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, nil, nil, 0)
		err := client.get(context.Background(), "/auth/user", nil)

		var httpErr *HTTPError
		if !errors.As(err, &httpErr) {
			t.Fatalf("expected HTTPError, got %v", err)
		}
		if httpErr.Status != http.StatusUnauthorized {
			t.Errorf("expected status 401, got %d", httpErr.Status)
		}
		if httpErr.Message != "bad credentials" {
			t.Errorf("expected server message, got %q", httpErr.Message)
		}
	})

	t.Run("decodes successful responses", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"movies": [{"id": 1, "name": "Dune"}]}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, nil, nil, 0)

		var resp movieListResponse
		if err := client.get(context.Background(), "/movies", &resp); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(resp.Movies) != 1 || resp.Movies[0].Name != "Dune" {
			t.Errorf("unexpected decode result: %+v", resp)
		}
	})

	t.Run("tolerates empty response bodies", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		client := NewClient(server.URL, nil, nil, 0)

		var resp movieListResponse
		if err := client.delete(context.Background(), "/movie/1", &resp); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestDecodeErrorMessage(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"message envelope", `{"message": "not found"}`, "not found"},
		{"error envelope", `{"error": "boom"}`, "boom"},
		{"bare string", `"plain"`, "plain"},
		{"raw body", `<html>502</html>`, "<html>502</html>"},
		{"empty", ``, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := decodeErrorMessage([]byte(tc.body)); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
