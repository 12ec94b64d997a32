package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/ahhzhzbbb/projectI-imdb-clone/internal/models"
	"github.com/ahhzhzbbb/projectI-imdb-clone/internal/shared"
)

// parseIDFlag reads a numeric ID flag.
func parseIDFlag(cmd *cli.Command, name string) (int64, error) {
	raw := cmd.String(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be numeric", shared.ErrInvalidFlag, name)
	}
	return id, nil
}

func (r *Runner) writeReviews(cmd *cli.Command, title string, reviews []models.Review) error {
	if cmd.Bool("json") {
		return r.writeJSON(reviews, cmd.Bool("pretty"))
	}

	showSpoilers := true
	if r.settings != nil {
		if prefs, err := r.settings.Load(); err == nil {
			showSpoilers = prefs.ShowSpoilers
		}
	}

	r.writePlainHeader(title)
	for _, review := range reviews {
		author := review.Username
		if author == "" {
			author = fmt.Sprintf("user %d", review.UserID)
		}
		r.writePlain("%d/10 by %s\n", review.Score, author)
		if review.IsSpoiler && !showSpoilers {
			r.writePlain("  (spoiler hidden, enable show-spoilers to read)\n")
		} else if review.Content != "" {
			r.writePlain("  %s\n", review.Content)
		}
	}
	return r.writePlain("\n%d total\n", len(reviews))
}

// ReviewsList prints the reviews of a movie.
func (r *Runner) ReviewsList(ctx context.Context, cmd *cli.Command) error {
	movieID, err := parseIDArg(cmd, "movie-id")
	if err != nil {
		return err
	}

	reviews, err := r.reviews.OfMovie(ctx, movieID)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	return r.writeReviews(cmd, fmt.Sprintf("Reviews of movie %d", movieID), reviews)
}

// ReviewsMine prints the signed-in user's reviews.
func (r *Runner) ReviewsMine(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	reviews, err := r.reviews.Mine(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	return r.writeReviews(cmd, fmt.Sprintf("Reviews by %s", r.session.Current().Username), reviews)
}

func reviewRequestFromFlags(cmd *cli.Command) models.ReviewRequest {
	return models.ReviewRequest{
		Score:     int(cmd.Int("score")),
		Content:   cmd.String("content"),
		IsSpoiler: cmd.Bool("spoiler"),
	}
}

// ReviewsAdd posts a review of a movie.
func (r *Runner) ReviewsAdd(ctx context.Context, cmd *cli.Command) error {
	movieID, err := parseIDFlag(cmd, "movie-id")
	if err != nil {
		return err
	}
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	req := reviewRequestFromFlags(cmd)
	req.MovieID = movieID

	review, err := r.reviews.Create(ctx, movieID, req)
	if err != nil {
		return err
	}
	return r.writePlain("✓ Reviewed movie %d: %d/10\n", movieID, review.Score)
}

// ReviewsUpdate replaces the user's review of a movie.
func (r *Runner) ReviewsUpdate(ctx context.Context, cmd *cli.Command) error {
	movieID, err := parseIDFlag(cmd, "movie-id")
	if err != nil {
		return err
	}
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	req := reviewRequestFromFlags(cmd)
	req.MovieID = movieID

	review, err := r.reviews.Update(ctx, movieID, req)
	if err != nil {
		return err
	}
	return r.writePlain("✓ Updated review of movie %d: %d/10\n", movieID, review.Score)
}

// ReviewsDelete removes the user's review of a movie.
func (r *Runner) ReviewsDelete(ctx context.Context, cmd *cli.Command) error {
	movieID, err := parseIDArg(cmd, "movie-id")
	if err != nil {
		return err
	}
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	if err := r.reviews.Delete(ctx, movieID); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	return r.writePlain("✓ Deleted review of movie %d\n", movieID)
}

// RatingsMine prints the signed-in user's episode ratings.
func (r *Runner) RatingsMine(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	ratings, err := r.ratings.Mine(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(ratings, cmd.Bool("pretty"))
	}

	r.writePlainHeader(fmt.Sprintf("Ratings by %s", r.session.Current().Username))
	for _, rating := range ratings {
		r.writePlain("episode %-6d %d/10\n", rating.EpisodeID, rating.Score)
	}
	return r.writePlain("\n%d total\n", len(ratings))
}

// RatingsRate rates an episode.
func (r *Runner) RatingsRate(ctx context.Context, cmd *cli.Command) error {
	episodeID, err := parseIDFlag(cmd, "episode-id")
	if err != nil {
		return err
	}
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	rating, err := r.ratings.Rate(ctx, episodeID, models.RatingRequest{Score: int(cmd.Int("score"))})
	if err != nil {
		return err
	}
	return r.writePlain("✓ Rated episode %d: %d/10\n", episodeID, rating.Score)
}

// RatingsUpdate replaces the user's rating of an episode.
func (r *Runner) RatingsUpdate(ctx context.Context, cmd *cli.Command) error {
	episodeID, err := parseIDFlag(cmd, "episode-id")
	if err != nil {
		return err
	}
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	rating, err := r.ratings.Update(ctx, episodeID, models.RatingRequest{Score: int(cmd.Int("score"))})
	if err != nil {
		return err
	}
	return r.writePlain("✓ Updated rating of episode %d: %d/10\n", episodeID, rating.Score)
}

// RatingsDelete removes the user's rating of an episode.
func (r *Runner) RatingsDelete(ctx context.Context, cmd *cli.Command) error {
	episodeID, err := parseIDArg(cmd, "episode-id")
	if err != nil {
		return err
	}
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	if err := r.ratings.Delete(ctx, episodeID); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	return r.writePlain("✓ Deleted rating of episode %d\n", episodeID)
}
