// Admin command tree for catalog management, mirroring the backend's
// role-gated endpoints. Every action resolves the session and checks the
// admin role before issuing the request.
package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/ahhzhzbbb/projectI-imdb-clone/internal/models"
	"github.com/ahhzhzbbb/projectI-imdb-clone/internal/shared"
)

func adminCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "admin",
		Usage: "Catalog management (admin role required)",
		Commands: []*cli.Command{
			{
				Name:  "movie",
				Usage: "Manage movies",
				Commands: []*cli.Command{
					{
						Name:   "add",
						Usage:  "Create a movie or series",
						Flags:  movieFlags(),
						Action: r.AdminMovieAdd,
					},
					{
						Name:  "update",
						Usage: "Update a movie",
						Flags: append(movieFlags(), &cli.StringFlag{
							Name:     "id",
							Usage:    "Movie to update",
							Required: true,
						}),
						Action: r.AdminMovieUpdate,
					},
					{
						Name:  "delete",
						Usage: "Delete a movie",
						Arguments: []cli.Argument{
							&cli.StringArg{Name: "id", Max: 1},
						},
						Action: r.AdminMovieDelete,
					},
					{
						Name:   "link-actor",
						Usage:  "Add an actor to a movie's cast",
						Flags:  linkFlags("actor-id"),
						Action: r.AdminMovieLinkActor,
					},
					{
						Name:   "unlink-actor",
						Usage:  "Remove an actor from a movie's cast",
						Flags:  linkFlags("actor-id"),
						Action: r.AdminMovieUnlinkActor,
					},
					{
						Name:   "link-genre",
						Usage:  "Tag a movie with a genre",
						Flags:  linkFlags("genre-id"),
						Action: r.AdminMovieLinkGenre,
					},
					{
						Name:   "unlink-genre",
						Usage:  "Untag a genre from a movie",
						Flags:  linkFlags("genre-id"),
						Action: r.AdminMovieUnlinkGenre,
					},
				},
			},
			{
				Name:  "actor",
				Usage: "Manage actors",
				Commands: []*cli.Command{
					{
						Name:   "add",
						Usage:  "Create an actor",
						Flags:  personFlags(),
						Action: r.AdminActorAdd,
					},
					{
						Name:  "update",
						Usage: "Update an actor",
						Flags: append(personFlags(), &cli.StringFlag{
							Name:     "id",
							Usage:    "Actor to update",
							Required: true,
						}),
						Action: r.AdminActorUpdate,
					},
					{
						Name:  "delete",
						Usage: "Delete an actor",
						Arguments: []cli.Argument{
							&cli.StringArg{Name: "id", Max: 1},
						},
						Action: r.AdminActorDelete,
					},
				},
			},
			{
				Name:  "director",
				Usage: "Manage directors",
				Commands: []*cli.Command{
					{
						Name:   "add",
						Usage:  "Create a director",
						Flags:  personFlags(),
						Action: r.AdminDirectorAdd,
					},
					{
						Name:  "update",
						Usage: "Update a director",
						Flags: append(personFlags(), &cli.StringFlag{
							Name:     "id",
							Usage:    "Director to update",
							Required: true,
						}),
						Action: r.AdminDirectorUpdate,
					},
					{
						Name:  "delete",
						Usage: "Delete a director",
						Arguments: []cli.Argument{
							&cli.StringArg{Name: "id", Max: 1},
						},
						Action: r.AdminDirectorDelete,
					},
				},
			},
			{
				Name:  "genre",
				Usage: "Manage genres",
				Commands: []*cli.Command{
					{
						Name:  "add",
						Usage: "Create a genre",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:     "name",
								Usage:    "Genre name",
								Required: true,
							},
							&cli.StringFlag{
								Name:  "description",
								Usage: "Genre description",
							},
						},
						Action: r.AdminGenreAdd,
					},
					{
						Name:  "delete",
						Usage: "Delete a genre",
						Arguments: []cli.Argument{
							&cli.StringArg{Name: "id", Max: 1},
						},
						Action: r.AdminGenreDelete,
					},
				},
			},
			{
				Name:  "season",
				Usage: "Manage seasons of a series",
				Commands: []*cli.Command{
					{
						Name:  "add",
						Usage: "Append a season to a series",
						Arguments: []cli.Argument{
							&cli.StringArg{Name: "movie-id", Max: 1},
						},
						Action: r.AdminSeasonAdd,
					},
					{
						Name:  "remove",
						Usage: "Remove the last season of a series",
						Arguments: []cli.Argument{
							&cli.StringArg{Name: "movie-id", Max: 1},
						},
						Action: r.AdminSeasonRemove,
					},
				},
			},
			{
				Name:  "episode",
				Usage: "Manage episodes within a season",
				Commands: []*cli.Command{
					{
						Name:  "add",
						Usage: "Add an episode to a season",
						Flags: append(episodeFlags(), &cli.StringFlag{
							Name:     "season-id",
							Usage:    "Season to add the episode to",
							Required: true,
						}),
						Action: r.AdminEpisodeAdd,
					},
					{
						Name:  "update",
						Usage: "Update an episode",
						Flags: append(episodeFlags(), &cli.StringFlag{
							Name:     "id",
							Usage:    "Episode to update",
							Required: true,
						}),
						Action: r.AdminEpisodeUpdate,
					},
					{
						Name:  "delete",
						Usage: "Delete an episode",
						Arguments: []cli.Argument{
							&cli.StringArg{Name: "id", Max: 1},
						},
						Action: r.AdminEpisodeDelete,
					},
				},
			},
		},
	}
}

func movieFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "name",
			Usage:    "Movie name",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "description",
			Usage: "Synopsis",
		},
		&cli.StringFlag{
			Name:  "image-url",
			Usage: "Poster URL",
		},
		&cli.StringFlag{
			Name:  "trailer-url",
			Usage: "Trailer URL",
		},
		&cli.BoolFlag{
			Name:  "series",
			Usage: "Mark as a TV series",
		},
	}
}

func personFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "name",
			Usage:    "Full name",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "introduction",
			Usage: "Short biography",
		},
		&cli.StringFlag{
			Name:  "image-url",
			Usage: "Portrait URL",
		},
	}
}

func episodeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "title",
			Usage:    "Episode title",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "summary",
			Usage: "Episode summary",
		},
		&cli.IntFlag{
			Name:  "number",
			Usage: "Episode number",
		},
	}
}

func linkFlags(other string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "movie-id",
			Usage:    "Movie to link",
			Required: true,
		},
		&cli.StringFlag{
			Name:     other,
			Usage:    "Entity to link",
			Required: true,
		},
	}
}

func movieRequestFromFlags(cmd *cli.Command) models.MovieRequest {
	return models.MovieRequest{
		MovieName:   cmd.String("name"),
		Description: cmd.String("description"),
		ImageURL:    cmd.String("image-url"),
		TrailerURL:  cmd.String("trailer-url"),
		TVSeries:    cmd.Bool("series"),
	}
}

func personRequestFromFlags(cmd *cli.Command) models.PersonRequest {
	return models.PersonRequest{
		Name:         cmd.String("name"),
		Introduction: cmd.String("introduction"),
		ImageURL:     cmd.String("image-url"),
	}
}

func episodeRequestFromFlags(cmd *cli.Command) models.EpisodeRequest {
	return models.EpisodeRequest{
		EpisodeNumber: int(cmd.Int("number")),
		Title:         cmd.String("title"),
		Summary:       cmd.String("summary"),
	}
}

// AdminMovieAdd creates a movie or series.
func (r *Runner) AdminMovieAdd(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAdmin(ctx); err != nil {
		return err
	}

	movie, err := r.movies.Create(ctx, movieRequestFromFlags(cmd))
	if err != nil {
		return err
	}
	return r.writePlain("✓ Created %s (id %d)\n", movie.Name, movie.ID)
}

// AdminMovieUpdate updates a movie.
func (r *Runner) AdminMovieUpdate(ctx context.Context, cmd *cli.Command) error {
	movieID, err := parseIDFlag(cmd, "id")
	if err != nil {
		return err
	}
	if err := r.requireAdmin(ctx); err != nil {
		return err
	}

	movie, err := r.movies.Update(ctx, movieID, movieRequestFromFlags(cmd))
	if err != nil {
		return err
	}
	return r.writePlain("✓ Updated %s (id %d)\n", movie.Name, movie.ID)
}

// AdminMovieDelete deletes a movie.
func (r *Runner) AdminMovieDelete(ctx context.Context, cmd *cli.Command) error {
	movieID, err := parseIDArg(cmd, "id")
	if err != nil {
		return err
	}
	if err := r.requireAdmin(ctx); err != nil {
		return err
	}

	if err := r.movies.Delete(ctx, movieID); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	return r.writePlain("✓ Deleted movie %d\n", movieID)
}

func (r *Runner) adminLink(ctx context.Context, cmd *cli.Command, other string) (int64, int64, error) {
	movieID, err := parseIDFlag(cmd, "movie-id")
	if err != nil {
		return 0, 0, err
	}
	otherID, err := parseIDFlag(cmd, other)
	if err != nil {
		return 0, 0, err
	}
	return movieID, otherID, r.requireAdmin(ctx)
}

// AdminMovieLinkActor adds an actor to a movie's cast.
func (r *Runner) AdminMovieLinkActor(ctx context.Context, cmd *cli.Command) error {
	movieID, actorID, err := r.adminLink(ctx, cmd, "actor-id")
	if err != nil {
		return err
	}

	if err := r.actors.AddToMovie(ctx, movieID, actorID); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	return r.writePlain("✓ Added actor %d to movie %d\n", actorID, movieID)
}

// AdminMovieUnlinkActor removes an actor from a movie's cast.
func (r *Runner) AdminMovieUnlinkActor(ctx context.Context, cmd *cli.Command) error {
	movieID, actorID, err := r.adminLink(ctx, cmd, "actor-id")
	if err != nil {
		return err
	}

	if err := r.actors.RemoveFromMovie(ctx, movieID, actorID); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	return r.writePlain("✓ Removed actor %d from movie %d\n", actorID, movieID)
}

// AdminMovieLinkGenre tags a movie with a genre.
func (r *Runner) AdminMovieLinkGenre(ctx context.Context, cmd *cli.Command) error {
	movieID, genreID, err := r.adminLink(ctx, cmd, "genre-id")
	if err != nil {
		return err
	}

	if _, err := r.genres.AddToMovie(ctx, movieID, genreID); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	return r.writePlain("✓ Tagged movie %d with genre %d\n", movieID, genreID)
}

// AdminMovieUnlinkGenre untags a genre from a movie.
func (r *Runner) AdminMovieUnlinkGenre(ctx context.Context, cmd *cli.Command) error {
	movieID, genreID, err := r.adminLink(ctx, cmd, "genre-id")
	if err != nil {
		return err
	}

	if err := r.genres.RemoveFromMovie(ctx, movieID, genreID); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	return r.writePlain("✓ Untagged genre %d from movie %d\n", genreID, movieID)
}

// AdminActorAdd creates an actor.
func (r *Runner) AdminActorAdd(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAdmin(ctx); err != nil {
		return err
	}

	actor, err := r.actors.Create(ctx, personRequestFromFlags(cmd))
	if err != nil {
		return err
	}
	return r.writePlain("✓ Created actor %s (id %d)\n", actor.Name, actor.ID)
}

// AdminActorUpdate updates an actor.
func (r *Runner) AdminActorUpdate(ctx context.Context, cmd *cli.Command) error {
	actorID, err := parseIDFlag(cmd, "id")
	if err != nil {
		return err
	}
	if err := r.requireAdmin(ctx); err != nil {
		return err
	}

	actor, err := r.actors.Update(ctx, actorID, personRequestFromFlags(cmd))
	if err != nil {
		return err
	}
	return r.writePlain("✓ Updated actor %s (id %d)\n", actor.Name, actor.ID)
}

// AdminActorDelete deletes an actor.
func (r *Runner) AdminActorDelete(ctx context.Context, cmd *cli.Command) error {
	actorID, err := parseIDArg(cmd, "id")
	if err != nil {
		return err
	}
	if err := r.requireAdmin(ctx); err != nil {
		return err
	}

	if err := r.actors.Delete(ctx, actorID); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	return r.writePlain("✓ Deleted actor %d\n", actorID)
}

// AdminDirectorAdd creates a director.
func (r *Runner) AdminDirectorAdd(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAdmin(ctx); err != nil {
		return err
	}

	director, err := r.directors.Create(ctx, personRequestFromFlags(cmd))
	if err != nil {
		return err
	}
	return r.writePlain("✓ Created director %s (id %d)\n", director.Name, director.ID)
}

// AdminDirectorUpdate updates a director.
func (r *Runner) AdminDirectorUpdate(ctx context.Context, cmd *cli.Command) error {
	directorID, err := parseIDFlag(cmd, "id")
	if err != nil {
		return err
	}
	if err := r.requireAdmin(ctx); err != nil {
		return err
	}

	director, err := r.directors.Update(ctx, directorID, personRequestFromFlags(cmd))
	if err != nil {
		return err
	}
	return r.writePlain("✓ Updated director %s (id %d)\n", director.Name, director.ID)
}

// AdminDirectorDelete deletes a director.
func (r *Runner) AdminDirectorDelete(ctx context.Context, cmd *cli.Command) error {
	directorID, err := parseIDArg(cmd, "id")
	if err != nil {
		return err
	}
	if err := r.requireAdmin(ctx); err != nil {
		return err
	}

	if err := r.directors.Delete(ctx, directorID); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	return r.writePlain("✓ Deleted director %d\n", directorID)
}

// AdminGenreAdd creates a genre.
func (r *Runner) AdminGenreAdd(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAdmin(ctx); err != nil {
		return err
	}

	genre, err := r.genres.Create(ctx, models.GenreRequest{
		Name:        cmd.String("name"),
		Description: cmd.String("description"),
	})
	if err != nil {
		return err
	}
	return r.writePlain("✓ Created genre %s (id %d)\n", genre.DisplayName(), genre.ID)
}

// AdminGenreDelete deletes a genre.
func (r *Runner) AdminGenreDelete(ctx context.Context, cmd *cli.Command) error {
	genreID, err := parseIDArg(cmd, "id")
	if err != nil {
		return err
	}
	if err := r.requireAdmin(ctx); err != nil {
		return err
	}

	if err := r.genres.Delete(ctx, genreID); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	return r.writePlain("✓ Deleted genre %d\n", genreID)
}

// AdminSeasonAdd appends a season to a series.
func (r *Runner) AdminSeasonAdd(ctx context.Context, cmd *cli.Command) error {
	movieID, err := parseIDArg(cmd, "movie-id")
	if err != nil {
		return err
	}
	if err := r.requireAdmin(ctx); err != nil {
		return err
	}

	season, err := r.seasons.Add(ctx, movieID)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	return r.writePlain("✓ Added season %d to series %d\n", season.Number, movieID)
}

// AdminSeasonRemove removes the last season of a series.
func (r *Runner) AdminSeasonRemove(ctx context.Context, cmd *cli.Command) error {
	movieID, err := parseIDArg(cmd, "movie-id")
	if err != nil {
		return err
	}
	if err := r.requireAdmin(ctx); err != nil {
		return err
	}

	if err := r.seasons.RemoveLast(ctx, movieID); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	return r.writePlain("✓ Removed the last season of series %d\n", movieID)
}

// AdminEpisodeAdd adds an episode to a season.
func (r *Runner) AdminEpisodeAdd(ctx context.Context, cmd *cli.Command) error {
	seasonID, err := parseIDFlag(cmd, "season-id")
	if err != nil {
		return err
	}
	if err := r.requireAdmin(ctx); err != nil {
		return err
	}

	episode, err := r.episodes.Create(ctx, seasonID, episodeRequestFromFlags(cmd))
	if err != nil {
		return err
	}
	return r.writePlain("✓ Added episode %s to season %d\n", episode.Title, seasonID)
}

// AdminEpisodeUpdate updates an episode.
func (r *Runner) AdminEpisodeUpdate(ctx context.Context, cmd *cli.Command) error {
	episodeID, err := parseIDFlag(cmd, "id")
	if err != nil {
		return err
	}
	if err := r.requireAdmin(ctx); err != nil {
		return err
	}

	episode, err := r.episodes.Update(ctx, episodeID, episodeRequestFromFlags(cmd))
	if err != nil {
		return err
	}
	return r.writePlain("✓ Updated episode %s (id %d)\n", episode.Title, episode.ID)
}

// AdminEpisodeDelete deletes an episode.
func (r *Runner) AdminEpisodeDelete(ctx context.Context, cmd *cli.Command) error {
	episodeID, err := parseIDArg(cmd, "id")
	if err != nil {
		return err
	}
	if err := r.requireAdmin(ctx); err != nil {
		return err
	}

	if err := r.episodes.Delete(ctx, episodeID); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	return r.writePlain("✓ Deleted episode %d\n", episodeID)
}
