package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/ahhzhzbbb/projectI-imdb-clone/internal/models"
	"github.com/ahhzhzbbb/projectI-imdb-clone/internal/repositories"
	"github.com/ahhzhzbbb/projectI-imdb-clone/internal/services"
	"github.com/ahhzhzbbb/projectI-imdb-clone/internal/session"
	"github.com/ahhzhzbbb/projectI-imdb-clone/internal/shared"
	"github.com/ahhzhzbbb/projectI-imdb-clone/internal/wishlist"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config   *shared.Config
	logger   *log.Logger
	output   io.Writer
	db       *sql.DB
	session  *session.Holder
	store    *wishlist.Store
	settings *repositories.SettingsRepository

	auth      *services.AuthService
	movies    *services.MovieService
	actors    *services.ActorService
	directors *services.DirectorService
	genres    *services.GenreService
	reviews   *services.ReviewService
	ratings   *services.RatingService
	seasons   *services.SeasonService
	episodes  *services.EpisodeService
	wish      *services.WishlistService
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	Logger     *log.Logger
	Output     io.Writer
	DB         *sql.DB
	HTTPClient *http.Client
	Creds      session.CredentialStore
	Settings   *repositories.SettingsRepository
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{
			Timeout: time.Duration(opts.Config.API.TimeoutSeconds) * time.Second,
		}
	}

	client := services.NewClient(opts.Config.API.BaseURL, opts.HTTPClient, opts.Creds, opts.Config.API.RateLimit)

	auth := services.NewAuthService(client)
	holder := session.NewHolder(auth, opts.Creds, opts.Logger)
	wishSvc := services.NewWishlistService(client)

	return &Runner{
		config:    opts.Config,
		logger:    opts.Logger,
		output:    opts.Output,
		db:        opts.DB,
		session:   holder,
		store:     wishlist.NewStore(wishSvc, holder, opts.Logger),
		settings:  opts.Settings,
		auth:      auth,
		movies:    services.NewMovieService(client),
		actors:    services.NewActorService(client),
		directors: services.NewDirectorService(client),
		genres:    services.NewGenreService(client),
		reviews:   services.NewReviewService(client),
		ratings:   services.NewRatingService(client),
		seasons:   services.NewSeasonService(client),
		episodes:  services.NewEpisodeService(client),
		wish:      wishSvc,
	}
}

// SetLogger swaps the runner's logger, used when the TUI takes over the terminal.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, authCommand, moviesCommand, actorsCommand, directorsCommand,
		genresCommand, wishlistCommand, reviewsCommand, ratingsCommand,
		adminCommand, settingsCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}

// requireAuth resolves the stored credential once per invocation and fails
// the command when nobody is signed in.
func (r *Runner) requireAuth(ctx context.Context) error {
	r.session.Initialize(ctx)
	if !r.session.IsAuthenticated() {
		return fmt.Errorf("%w: run 'auth login' first", shared.ErrNotAuthenticated)
	}
	return nil
}

// requireAdmin fails the command when the signed-in user lacks the admin role.
func (r *Runner) requireAdmin(ctx context.Context) error {
	if err := r.requireAuth(ctx); err != nil {
		return err
	}
	if !r.session.Current().IsAdmin() {
		return fmt.Errorf("%w: admin role required", shared.ErrValidation)
	}
	return nil
}

// writeMovieTable prints a movie list in the fixed-width plain format.
func (r *Runner) writeMovieTable(movies []models.Movie) {
	r.writePlain("%-6s %-40s %-8s %s\n", "ID", "NAME", "KIND", "SCORE")
	for _, movie := range movies {
		r.writePlain("%-6d %-40s %-8s %s\n",
			movie.ID,
			shared.Truncate(movie.Name, 40),
			shared.KindString(movie.TVSeries),
			shared.FormatScore(movie.AverageScore, movie.ReviewCount),
		)
	}
}
