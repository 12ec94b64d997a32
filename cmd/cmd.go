// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func jsonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output raw JSON",
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Pretty-print output",
			Value: true,
		},
	}
}

// setupCommand handles setup operations for configuration and the local database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "config",
				Usage: "Write an example config.toml",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupConfig,
			},
			{
				Name:   "database",
				Usage:  "Initialize the local database and run migrations",
				Action: r.SetupDatabase,
			},
		},
	}
}

// authCommand handles session operations
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage the signed-in session",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Sign in and store the issued credential",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "username",
						Aliases:  []string{"u"},
						Usage:    "Account username",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Usage:    "Account password",
						Required: true,
					},
				},
				Action: r.AuthLogin,
			},
			{
				Name:  "signup",
				Usage: "Register a new account and sign in",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "username",
						Aliases:  []string{"u"},
						Usage:    "Account username",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Usage:    "Account password",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "confirm",
						Usage:    "Password confirmation",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "phone",
						Usage: "Phone number (optional)",
					},
				},
				Action: r.AuthSignup,
			},
			{
				Name:   "logout",
				Usage:  "Drop the stored credential",
				Action: r.AuthLogout,
			},
			{
				Name:   "whoami",
				Usage:  "Show the identity behind the stored credential",
				Flags:  jsonFlags(),
				Action: r.AuthWhoami,
			},
		},
	}
}

// moviesCommand handles catalog browsing
func moviesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "movies",
		Aliases: []string{"m"},
		Usage:   "Browse the movie catalog",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List all movies and series",
				Flags:  jsonFlags(),
				Action: r.MoviesList,
			},
			{
				Name:  "search",
				Usage: "Search movies by name",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "query", Max: 1},
				},
				Flags:  jsonFlags(),
				Action: r.MoviesSearch,
			},
			{
				Name:  "trending",
				Usage: "Show the most reviewed movies",
				Flags: append(jsonFlags(), &cli.IntFlag{
					Name:  "limit",
					Usage: "Maximum number of movies to return",
					Value: 10,
				}),
				Action: r.MoviesTrending,
			},
			{
				Name:  "show",
				Usage: "Show one movie with cast, genres, and seasons",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id", Max: 1},
				},
				Flags:  jsonFlags(),
				Action: r.MoviesShow,
			},
			{
				Name:  "by-genre",
				Usage: "List movies tagged with a genre",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "genre-id", Max: 1},
				},
				Flags:  jsonFlags(),
				Action: r.MoviesByGenre,
			},
			{
				Name:  "export",
				Usage: "Export a movie or the whole catalog to a file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "id",
						Usage: "Movie ID for a markdown export; omit to export the catalog",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file or directory path",
					},
					&cli.StringFlag{
						Name:  "format",
						Usage: "Catalog export format (csv, text); markdown requires --id",
						Value: "csv",
					},
				},
				Action: r.MoviesExport,
			},
		},
	}
}

// actorsCommand handles cast browsing
func actorsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "actors",
		Usage: "Browse actors",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List all actors",
				Flags:  jsonFlags(),
				Action: r.ActorsList,
			},
			{
				Name:  "show",
				Usage: "Show one actor",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id", Max: 1},
				},
				Flags:  jsonFlags(),
				Action: r.ActorsShow,
			},
			{
				Name:  "movies",
				Usage: "List the movies an actor appears in",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id", Max: 1},
				},
				Flags:  jsonFlags(),
				Action: r.ActorsMovies,
			},
		},
	}
}

// directorsCommand handles director browsing
func directorsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "directors",
		Usage: "Browse directors",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List all directors",
				Flags:  jsonFlags(),
				Action: r.DirectorsList,
			},
			{
				Name:  "show",
				Usage: "Show one director",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id", Max: 1},
				},
				Flags:  jsonFlags(),
				Action: r.DirectorsShow,
			},
		},
	}
}

// genresCommand handles genre browsing
func genresCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "genres",
		Usage: "Browse genres",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List all genres",
				Flags:  jsonFlags(),
				Action: r.GenresList,
			},
			{
				Name:  "movies",
				Usage: "List movies tagged with a genre",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id", Max: 1},
				},
				Flags:  jsonFlags(),
				Action: r.MoviesByGenre,
			},
		},
	}
}

// wishlistCommand handles the signed-in user's wishlist
func wishlistCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "wishlist",
		Aliases: []string{"wl"},
		Usage:   "Manage your wishlist",
		Commands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Show your wishlist",
				Flags:  jsonFlags(),
				Action: r.WishlistShow,
			},
			{
				Name:  "add",
				Usage: "Add a movie to your wishlist",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id", Max: 1},
				},
				Action: r.WishlistAdd,
			},
			{
				Name:  "remove",
				Usage: "Remove a movie from your wishlist",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id", Max: 1},
				},
				Action: r.WishlistRemove,
			},
			{
				Name:  "check",
				Usage: "Check whether a movie is on your wishlist",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id", Max: 1},
				},
				Action: r.WishlistCheck,
			},
			{
				Name:  "export",
				Usage: "Export your wishlist to CSV or text",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path",
					},
					&cli.StringFlag{
						Name:  "format",
						Usage: "Export format (csv, text)",
						Value: "csv",
					},
				},
				Action: r.WishlistExport,
			},
		},
	}
}

// reviewsCommand handles movie reviews
func reviewsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "reviews",
		Usage: "Read and write movie reviews",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List the reviews of a movie",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "movie-id", Max: 1},
				},
				Flags:  jsonFlags(),
				Action: r.ReviewsList,
			},
			{
				Name:   "mine",
				Usage:  "List your own reviews",
				Flags:  jsonFlags(),
				Action: r.ReviewsMine,
			},
			{
				Name:  "add",
				Usage: "Review a movie",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "movie-id",
						Usage:    "Movie to review",
						Required: true,
					},
					&cli.IntFlag{
						Name:     "score",
						Usage:    "Score from 1 to 10",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "content",
						Usage: "Review text",
					},
					&cli.BoolFlag{
						Name:  "spoiler",
						Usage: "Mark the review as containing spoilers",
					},
				},
				Action: r.ReviewsAdd,
			},
			{
				Name:  "update",
				Usage: "Replace your review of a movie",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "movie-id",
						Usage:    "Movie whose review to replace",
						Required: true,
					},
					&cli.IntFlag{
						Name:     "score",
						Usage:    "Score from 1 to 10",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "content",
						Usage: "Review text",
					},
					&cli.BoolFlag{
						Name:  "spoiler",
						Usage: "Mark the review as containing spoilers",
					},
				},
				Action: r.ReviewsUpdate,
			},
			{
				Name:  "delete",
				Usage: "Delete your review of a movie",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "movie-id", Max: 1},
				},
				Action: r.ReviewsDelete,
			},
		},
	}
}

// ratingsCommand handles episode ratings
func ratingsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "ratings",
		Usage: "Rate series episodes",
		Commands: []*cli.Command{
			{
				Name:   "mine",
				Usage:  "List your episode ratings",
				Flags:  jsonFlags(),
				Action: r.RatingsMine,
			},
			{
				Name:  "rate",
				Usage: "Rate an episode",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "episode-id",
						Usage:    "Episode to rate",
						Required: true,
					},
					&cli.IntFlag{
						Name:     "score",
						Usage:    "Score from 1 to 10",
						Required: true,
					},
				},
				Action: r.RatingsRate,
			},
			{
				Name:  "update",
				Usage: "Replace your rating of an episode",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "episode-id",
						Usage:    "Episode whose rating to replace",
						Required: true,
					},
					&cli.IntFlag{
						Name:     "score",
						Usage:    "Score from 1 to 10",
						Required: true,
					},
				},
				Action: r.RatingsUpdate,
			},
			{
				Name:  "delete",
				Usage: "Delete your rating of an episode",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "episode-id", Max: 1},
				},
				Action: r.RatingsDelete,
			},
		},
	}
}

// settingsCommand handles local display preferences
func settingsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "settings",
		Usage: "Manage local preferences",
		Commands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Show the stored preferences",
				Flags:  jsonFlags(),
				Action: r.SettingsShow,
			},
			{
				Name:  "set",
				Usage: "Update preferences",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "app-name",
						Usage: "Display name",
					},
					&cli.StringFlag{
						Name:  "description",
						Usage: "Display description",
					},
					&cli.StringFlag{
						Name:  "show-spoilers",
						Usage: "Show spoiler reviews (true/false)",
					},
					&cli.StringFlag{
						Name:  "show-trending",
						Usage: "Show the trending section (true/false)",
					},
					&cli.StringFlag{
						Name:  "plain-output",
						Usage: "Prefer plain output over tables (true/false)",
					},
				},
				Action: r.SettingsSet,
			},
			{
				Name:   "reset",
				Usage:  "Restore default preferences",
				Action: r.SettingsReset,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for interactive catalog browsing.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch interactive catalog browser",
		Action:  r.TUI,
	}
}
