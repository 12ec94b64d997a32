package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/ahhzhzbbb/projectI-imdb-clone/internal/formatter"
	"github.com/ahhzhzbbb/projectI-imdb-clone/internal/shared"
	"github.com/ahhzhzbbb/projectI-imdb-clone/internal/wishlist"
)

// loadWishlist signs the session in from the stored credential and fills the
// store from the server.
func (r *Runner) loadWishlist(ctx context.Context) error {
	if err := r.requireAuth(ctx); err != nil {
		return err
	}
	return r.store.Load(ctx)
}

// WishlistShow prints the signed-in user's wishlist.
func (r *Runner) WishlistShow(ctx context.Context, cmd *cli.Command) error {
	if err := r.loadWishlist(ctx); err != nil {
		return err
	}

	movies := r.store.Movies()
	if cmd.Bool("json") {
		return r.writeJSON(movies, cmd.Bool("pretty"))
	}

	r.writePlainHeader(fmt.Sprintf("Wishlist of %s", r.session.Current().Username))
	if len(movies) == 0 {
		return r.writePlain("(empty)\n")
	}
	r.writeMovieTable(movies)
	return r.writePlain("\n%d total\n", len(movies))
}

// WishlistAdd puts a movie on the wishlist. The local change stands even when
// the server cannot be reached.
func (r *Runner) WishlistAdd(ctx context.Context, cmd *cli.Command) error {
	movieID, err := parseIDArg(cmd, "id")
	if err != nil {
		return err
	}
	if err := r.loadWishlist(ctx); err != nil {
		return err
	}

	detail, err := r.movies.Detail(ctx, movieID)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	applied, err := r.store.Add(ctx, detail.Movie)
	if err != nil {
		return err
	}

	switch applied {
	case wishlist.Unchanged:
		return r.writePlain("Already on your wishlist: %s\n", detail.Name)
	case wishlist.Optimistic:
		return r.writePlain("✓ Added %s (server unreachable, change kept locally)\n", detail.Name)
	default:
		return r.writePlain("✓ Added %s\n", detail.Name)
	}
}

// WishlistRemove takes a movie off the wishlist.
func (r *Runner) WishlistRemove(ctx context.Context, cmd *cli.Command) error {
	movieID, err := parseIDArg(cmd, "id")
	if err != nil {
		return err
	}
	if err := r.loadWishlist(ctx); err != nil {
		return err
	}

	applied, err := r.store.Remove(ctx, movieID)
	if err != nil {
		return err
	}

	switch applied {
	case wishlist.Unchanged:
		return r.writePlain("Not on your wishlist: %d\n", movieID)
	case wishlist.Optimistic:
		return r.writePlain("✓ Removed %d (server unreachable, change kept locally)\n", movieID)
	default:
		return r.writePlain("✓ Removed %d\n", movieID)
	}
}

// WishlistCheck asks the server whether a movie is wishlisted.
func (r *Runner) WishlistCheck(ctx context.Context, cmd *cli.Command) error {
	movieID, err := parseIDArg(cmd, "id")
	if err != nil {
		return err
	}
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	member, err := r.wish.Check(ctx, movieID)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if member {
		return r.writePlain("✓ Movie %d is on your wishlist\n", movieID)
	}
	return r.writePlain("✗ Movie %d is not on your wishlist\n", movieID)
}

// WishlistExport writes the wishlist to a CSV or text file.
func (r *Runner) WishlistExport(ctx context.Context, cmd *cli.Command) error {
	if err := r.loadWishlist(ctx); err != nil {
		return err
	}

	movies := r.store.Movies()
	output := cmd.String("output")

	switch format := cmd.String("format"); format {
	case "csv":
		if output == "" {
			output = "wishlist"
		}
		result, err := formatter.WriteCSVExport(movies, output)
		if err != nil {
			return err
		}
		return r.writePlain("✓ Exported %d movies to %s\n", len(movies), result.MoviesFile)
	case "text":
		if output == "" {
			output = "wishlist.txt"
		}
		path, err := formatter.WriteTextExport("Wishlist", movies, output)
		if err != nil {
			return err
		}
		return r.writePlain("✓ Exported %d movies to %s\n", len(movies), path)
	default:
		return fmt.Errorf("%w: unsupported format %q", shared.ErrInvalidFlag, format)
	}
}
