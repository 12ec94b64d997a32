package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/ahhzhzbbb/projectI-imdb-clone/internal/models"
	"github.com/ahhzhzbbb/projectI-imdb-clone/internal/shared"
	tu "github.com/ahhzhzbbb/projectI-imdb-clone/internal/testing"
)

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}

			runner := NewRunner(RunnerOpts{
				Config: config,
				Logger: logger,
				Output: output,
				Creds:  &tu.MemoryCredentialStore{},
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
			if runner.session == nil {
				t.Error("expected session holder to be built")
			}
			if runner.store == nil {
				t.Error("expected wishlist store to be built")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Config: nil})

			if runner.config == nil {
				t.Error("expected default config to be set")
			}
		})

		t.Run("with nil output uses stdout", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: nil})

			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
		})

		t.Run("applies the configured request timeout", func(t *testing.T) {
			release := make(chan struct{})
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				<-release
			}))
			t.Cleanup(func() {
				close(release)
				server.Close()
			})

			config := shared.DefaultConfig()
			config.API.BaseURL = server.URL
			config.API.TimeoutSeconds = 1

			runner := NewRunner(RunnerOpts{Config: config, Output: &bytes.Buffer{}})

			start := time.Now()
			_, err := runner.movies.List(context.Background())
			if !errors.Is(err, shared.ErrNetwork) {
				t.Fatalf("expected the stalled request to fail, got %v", err)
			}
			if elapsed := time.Since(start); elapsed >= 3*time.Second {
				t.Errorf("expected the timeout to cut the request off, took %v", elapsed)
			}
		})
	})

	t.Run("writeJSON", func(t *testing.T) {
		t.Run("writes compact JSON", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writeJSON(map[string]string{"k": "v"}, false); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if output.String() != "{\"k\":\"v\"}\n" {
				t.Errorf("unexpected output: %q", output.String())
			}
		})

		t.Run("writes pretty JSON", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writeJSON(tu.SampleUser(), true); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !strings.Contains(output.String(), "  \"username\": \"sam\"") {
				t.Errorf("expected indented output, got %q", output.String())
			}
		})

		t.Run("propagates write failures", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

			if err := runner.writeJSON("x", false); err == nil {
				t.Error("expected an error from a failing writer")
			}
		})

		t.Run("propagates a failed trailing newline", func(t *testing.T) {
			writer := tu.NewLimitedWriter(1, 0, io.Discard)
			runner := NewRunner(RunnerOpts{Output: &writer})

			err := runner.writeJSON("x", false)
			if err == nil || !strings.Contains(err.Error(), "newline") {
				t.Errorf("expected the newline write to fail, got %v", err)
			}
		})
	})

	t.Run("writePlain", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})

		if err := runner.writePlain("count: %d\n", 3); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.String() != "count: 3\n" {
			t.Errorf("unexpected output: %q", output.String())
		}
	})

	t.Run("writeMovieTable", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})

		runner.writeMovieTable(tu.SampleMovies())

		text := output.String()
		if !strings.Contains(text, "Dune") || !strings.Contains(text, "Series") {
			t.Errorf("unexpected table output:\n%s", text)
		}
	})

	t.Run("requireAuth", func(t *testing.T) {
		t.Run("fails without a stored credential", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{
				Output: &bytes.Buffer{},
				Creds:  &tu.MemoryCredentialStore{},
			})

			err := runner.requireAuth(context.Background())
			if !errors.Is(err, shared.ErrNotAuthenticated) {
				t.Errorf("expected not-authenticated error, got %v", err)
			}
		})

		t.Run("resolves a stored credential", func(t *testing.T) {
			server := tu.StaticServer(t, http.StatusOK,
				`{"userId": 4, "username": "sam", "roles": ["ROLE_USER"]}`)

			config := shared.DefaultConfig()
			config.API.BaseURL = server.URL

			runner := NewRunner(RunnerOpts{
				Config: config,
				Output: &bytes.Buffer{},
				Creds:  &tu.MemoryCredentialStore{Token: "tok"},
			})

			if err := runner.requireAuth(context.Background()); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if runner.session.Current().Username != "sam" {
				t.Errorf("unexpected identity: %+v", runner.session.Current())
			}
		})
	})
}

// flagCommand runs a throwaway command so flag values parse the same way they
// do in production.
func flagCommand(t *testing.T, name, value string) *cli.Command {
	t.Helper()

	var captured *cli.Command
	cmd := &cli.Command{
		Name:  "test",
		Flags: []cli.Flag{&cli.StringFlag{Name: name}},
		Action: func(ctx context.Context, c *cli.Command) error {
			captured = c
			return nil
		},
	}

	args := []string{"test"}
	if value != "" {
		args = append(args, "--"+name, value)
	}
	if err := cmd.Run(context.Background(), args); err != nil {
		t.Fatalf("failed to run command: %v", err)
	}
	return captured
}

func TestParseIDFlag(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		want    int64
		wantErr bool
	}{
		{"numeric", "42", 42, false},
		{"empty", "", 0, true},
		{"garbage", "abc", 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := flagCommand(t, "id", tc.raw)

			got, err := parseIDFlag(cmd, "id")
			if tc.wantErr {
				if !errors.Is(err, shared.ErrInvalidFlag) {
					t.Errorf("expected invalid-flag error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestSetupConfig(t *testing.T) {
	wd := tu.MustGetwd(t)
	tu.MustChdir(t, t.TempDir())
	t.Cleanup(func() { tu.MustChdir(t, wd) })

	runner := NewRunner(RunnerOpts{Output: &bytes.Buffer{}})
	cmd := flagCommand(t, "config", "config.toml")

	if err := runner.SetupConfig(context.Background(), cmd); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tu.AssertFileExists(t, "config.toml")

	if err := runner.SetupConfig(context.Background(), cmd); !errors.Is(err, shared.ErrInvalidArgument) {
		t.Errorf("expected a second run to refuse overwriting, got %v", err)
	}
}

// exportCommand runs MoviesExport with parsed flags, the way the CLI does.
func exportCommand(t *testing.T, runner *Runner, args ...string) error {
	t.Helper()

	cmd := &cli.Command{
		Name: "export",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "id"},
			&cli.StringFlag{Name: "output"},
			&cli.StringFlag{Name: "format", Value: "csv"},
		},
		Action: runner.MoviesExport,
	}
	return cmd.Run(context.Background(), append([]string{"export"}, args...))
}

func TestMoviesExport(t *testing.T) {
	t.Run("rejects a non-markdown format for a single movie", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{Output: &bytes.Buffer{}})

		err := exportCommand(t, runner, "--id", "5", "--format", "csv")
		if !errors.Is(err, shared.ErrInvalidFlag) {
			t.Errorf("expected invalid-flag error, got %v", err)
		}
	})

	t.Run("rejects markdown for the whole catalog", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{Output: &bytes.Buffer{}})

		err := exportCommand(t, runner, "--format", "markdown")
		if !errors.Is(err, shared.ErrInvalidFlag) {
			t.Errorf("expected invalid-flag error, got %v", err)
		}
	})

	t.Run("writes the catalog as csv", func(t *testing.T) {
		server := tu.StaticServer(t, http.StatusOK, `{"movies": [{"id": 1, "name": "Dune"}]}`)

		config := shared.DefaultConfig()
		config.API.BaseURL = server.URL

		runner := NewRunner(RunnerOpts{Config: config, Output: &bytes.Buffer{}})
		base := filepath.Join(t.TempDir(), "catalog")

		if err := exportCommand(t, runner, "--output", base); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		tu.AssertFileExists(t, base+"_movies.csv")
	})
}

func TestWriteMovies(t *testing.T) {
	output := &bytes.Buffer{}
	runner := NewRunner(RunnerOpts{Output: output})

	cmd := flagCommand(t, "unused", "")
	movies := []models.Movie{{ID: 1, Name: "Dune"}}

	if err := runner.writeMovies(cmd, "Catalog", movies); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := output.String()
	if !strings.Contains(text, "Catalog") || !strings.Contains(text, "1 total") {
		t.Errorf("unexpected output:\n%s", text)
	}
}
