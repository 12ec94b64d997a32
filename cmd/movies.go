package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/ahhzhzbbb/projectI-imdb-clone/internal/formatter"
	"github.com/ahhzhzbbb/projectI-imdb-clone/internal/models"
	"github.com/ahhzhzbbb/projectI-imdb-clone/internal/shared"
)

// stringArg reads a parsed positional string argument by name. The cli/v3
// version in use predates the Command.StringArg accessor, so the lookup is
// done against the command's Arguments directly.
func stringArg(cmd *cli.Command, name string) string {
	for _, arg := range cmd.Arguments {
		sa, ok := arg.(*cli.StringArg)
		if !ok || sa.Name != name {
			continue
		}
		if sa.Values != nil && len(*sa.Values) > 0 {
			return (*sa.Values)[0]
		}
		return sa.Value
	}
	return ""
}

// parseIDArg reads a numeric ID argument from the command line.
func parseIDArg(cmd *cli.Command, name string) (int64, error) {
	raw := stringArg(cmd, name)
	if raw == "" {
		return 0, fmt.Errorf("%w: %s", shared.ErrMissingArgument, name)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be numeric", shared.ErrInvalidArgument, name)
	}
	return id, nil
}

// writeMovies prints a movie list as JSON or a plain table.
func (r *Runner) writeMovies(cmd *cli.Command, title string, movies []models.Movie) error {
	if cmd.Bool("json") {
		return r.writeJSON(movies, cmd.Bool("pretty"))
	}

	r.writePlainHeader(title)
	r.writeMovieTable(movies)
	return r.writePlain("\n%d total\n", len(movies))
}

// MoviesList lists the full catalog.
func (r *Runner) MoviesList(ctx context.Context, cmd *cli.Command) error {
	movies, err := r.movies.List(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	return r.writeMovies(cmd, "Catalog", movies)
}

// MoviesSearch searches the catalog by name.
func (r *Runner) MoviesSearch(ctx context.Context, cmd *cli.Command) error {
	query := stringArg(cmd, "query")
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("%w: query", shared.ErrMissingArgument)
	}

	r.logger.Infof("searching movies for %q", query)

	movies, err := r.movies.Search(ctx, query)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	return r.writeMovies(cmd, fmt.Sprintf("Results for %q", query), movies)
}

// MoviesTrending shows the most reviewed movies.
func (r *Runner) MoviesTrending(ctx context.Context, cmd *cli.Command) error {
	movies, err := r.movies.Trending(ctx, int(cmd.Int("limit")))
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	return r.writeMovies(cmd, "Trending", movies)
}

// MoviesByGenre lists movies tagged with a genre.
func (r *Runner) MoviesByGenre(ctx context.Context, cmd *cli.Command) error {
	genreID, err := parseIDArg(cmd, firstArgName(cmd))
	if err != nil {
		return err
	}

	movies, err := r.genres.MoviesOf(ctx, genreID)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	return r.writeMovies(cmd, fmt.Sprintf("Genre %d", genreID), movies)
}

// firstArgName returns the name of the command's single string argument,
// letting MoviesByGenre serve both "movies by-genre" and "genres movies".
func firstArgName(cmd *cli.Command) string {
	for _, arg := range cmd.Arguments {
		if sa, ok := arg.(*cli.StringArg); ok {
			return sa.Name
		}
	}
	return "id"
}

// MoviesShow prints one movie with its relations.
func (r *Runner) MoviesShow(ctx context.Context, cmd *cli.Command) error {
	movieID, err := parseIDArg(cmd, "id")
	if err != nil {
		return err
	}

	detail, err := r.movies.Detail(ctx, movieID)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(detail, cmd.Bool("pretty"))
	}

	r.writePlainHeader(detail.Name)
	r.writePlain("%s • %s\n", shared.KindString(detail.TVSeries),
		shared.FormatScore(detail.AverageScore, detail.ReviewCount))
	if detail.Director != nil {
		r.writePlain("Directed by %s\n", detail.Director.Name)
	}
	if len(detail.Genres) > 0 {
		names := make([]string, len(detail.Genres))
		for i, genre := range detail.Genres {
			names[i] = genre.DisplayName()
		}
		r.writePlain("Genres: %s\n", strings.Join(names, ", "))
	}
	if detail.Description != "" {
		r.writePlain("\n%s\n", detail.Description)
	}
	if len(detail.Actors) > 0 {
		r.writePlain("\nCast:\n")
		for _, actor := range detail.Actors {
			r.writePlain("  • %s\n", actor.Name)
		}
	}
	for _, season := range detail.Seasons {
		r.writePlain("\nSeason %d (%d episodes)\n", season.Number, len(season.Episodes))
		for _, episode := range season.Episodes {
			r.writePlain("  %2d. %s %s\n", episode.EpisodeNumber, episode.Title,
				shared.FormatScore(episode.AverageScore, episode.RatingCount))
		}
	}
	return nil
}

// MoviesExport writes catalog data to a file in the requested format.
func (r *Runner) MoviesExport(ctx context.Context, cmd *cli.Command) error {
	format := cmd.String("format")
	output := cmd.String("output")

	if rawID := cmd.String("id"); rawID != "" {
		if cmd.IsSet("format") && format != "markdown" {
			return fmt.Errorf("%w: a single movie exports as markdown only", shared.ErrInvalidFlag)
		}

		movieID, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: id must be numeric", shared.ErrInvalidArgument)
		}

		detail, err := r.movies.Detail(ctx, movieID)
		if err != nil {
			return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
		}

		result, err := formatter.WriteMarkdownExport(detail, output)
		if err != nil {
			return err
		}
		return r.writePlain("✓ Exported to %s\n", result.Directory)
	}

	switch format {
	case "csv", "text":
	case "markdown":
		return fmt.Errorf("%w: markdown export needs --id", shared.ErrInvalidFlag)
	default:
		return fmt.Errorf("%w: unsupported format %q", shared.ErrInvalidFlag, format)
	}

	movies, err := r.movies.List(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if format == "csv" {
		result, err := formatter.WriteCSVExport(movies, output)
		if err != nil {
			return err
		}
		return r.writePlain("✓ Exported to %s\n", result.MoviesFile)
	}

	path, err := formatter.WriteTextExport("Catalog", movies, output)
	if err != nil {
		return err
	}
	return r.writePlain("✓ Exported to %s\n", path)
}

// ActorsList lists all actors.
func (r *Runner) ActorsList(ctx context.Context, cmd *cli.Command) error {
	actors, err := r.actors.List(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(actors, cmd.Bool("pretty"))
	}

	r.writePlainHeader("Actors")
	for _, actor := range actors {
		r.writePlain("%-6d %s\n", actor.ID, actor.Name)
	}
	return nil
}

// ActorsShow prints one actor.
func (r *Runner) ActorsShow(ctx context.Context, cmd *cli.Command) error {
	actorID, err := parseIDArg(cmd, "id")
	if err != nil {
		return err
	}

	actor, err := r.actors.Get(ctx, actorID)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(actor, cmd.Bool("pretty"))
	}

	r.writePlainHeader(actor.Name)
	if actor.Introduction != "" {
		r.writePlain("%s\n", actor.Introduction)
	}
	return nil
}

// ActorsMovies lists the movies an actor appears in.
func (r *Runner) ActorsMovies(ctx context.Context, cmd *cli.Command) error {
	actorID, err := parseIDArg(cmd, "id")
	if err != nil {
		return err
	}

	movies, err := r.actors.MoviesOf(ctx, actorID)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	return r.writeMovies(cmd, fmt.Sprintf("Filmography of actor %d", actorID), movies)
}

// DirectorsList lists all directors.
func (r *Runner) DirectorsList(ctx context.Context, cmd *cli.Command) error {
	directors, err := r.directors.List(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(directors, cmd.Bool("pretty"))
	}

	r.writePlainHeader("Directors")
	for _, director := range directors {
		r.writePlain("%-6d %s\n", director.ID, director.Name)
	}
	return nil
}

// DirectorsShow prints one director.
func (r *Runner) DirectorsShow(ctx context.Context, cmd *cli.Command) error {
	directorID, err := parseIDArg(cmd, "id")
	if err != nil {
		return err
	}

	director, err := r.directors.Get(ctx, directorID)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(director, cmd.Bool("pretty"))
	}

	r.writePlainHeader(director.Name)
	if director.Introduction != "" {
		r.writePlain("%s\n", director.Introduction)
	}
	return nil
}

// GenresList lists all genres.
func (r *Runner) GenresList(ctx context.Context, cmd *cli.Command) error {
	genres, err := r.genres.List(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(genres, cmd.Bool("pretty"))
	}

	r.writePlainHeader("Genres")
	for _, genre := range genres {
		r.writePlain("%-6d %s\n", genre.ID, genre.DisplayName())
	}
	return nil
}
