// package testing contains shared testing utilities
package testing

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/ahhzhzbbb/projectI-imdb-clone/internal/models"
)

// MemoryCredentialStore is an in-memory stand-in for the SQLite-backed
// credential repository.
type MemoryCredentialStore struct {
	Token string
}

func (m *MemoryCredentialStore) Credential() string { return m.Token }

func (m *MemoryCredentialStore) Save(token string) error {
	m.Token = token
	return nil
}

func (m *MemoryCredentialStore) Clear() error {
	m.Token = ""
	return nil
}

// FailingCredentialStore returns an error on every mutation.
type FailingCredentialStore struct{}

func (f *FailingCredentialStore) Credential() string { return "" }
func (f *FailingCredentialStore) Save(string) error  { return errors.New("save failed") }
func (f *FailingCredentialStore) Clear() error       { return errors.New("clear failed") }

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

// SampleMovies returns a small fixed catalog for tests.
func SampleMovies() []models.Movie {
	return []models.Movie{
		{ID: 1, Name: "Dune", AverageScore: 8.4, ReviewCount: 120},
		{ID: 2, Name: "Heat", AverageScore: 8.8, ReviewCount: 210},
		{ID: 3, Name: "Severance", TVSeries: true, AverageScore: 9.1, ReviewCount: 87},
	}
}

// SampleUser returns a fixed signed-in identity for tests.
func SampleUser() *models.User {
	return &models.User{UserID: 4, Username: "sam", Role: "USER"}
}

// StaticServer serves the same body for every request and cleans itself up
// with the test.
func StaticServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func MustChdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory to %s: %v", dir, err)
	}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
