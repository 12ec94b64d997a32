// Review and episode-rating endpoints
package services

import (
	"context"
	"fmt"

	"github.com/ahhzhzbbb/projectI-imdb-clone/internal/models"
)

// ReviewService wraps the backend's movie review endpoints.
//
// A user holds at most one review per movie, so create/update/delete key on
// the movie rather than a review ID.
type ReviewService struct {
	client *Client
}

// NewReviewService creates a ReviewService backed by the given client.
func NewReviewService(client *Client) *ReviewService {
	return &ReviewService{client: client}
}

// reviewListResponse tolerates both envelopes the backend uses for review
// lists: {"reviews": [...]} and {"data": [...]}.
type reviewListResponse struct {
	Reviews []models.Review `json:"reviews"`
	Data    []models.Review `json:"data"`
}

func (r reviewListResponse) items() []models.Review {
	if r.Reviews != nil {
		return r.Reviews
	}
	return r.Data
}

// OfMovie retrieves all reviews of a movie.
func (s *ReviewService) OfMovie(ctx context.Context, movieID int64) ([]models.Review, error) {
	var resp reviewListResponse
	if err := s.client.get(ctx, fmt.Sprintf("/movie/%d/reviews", movieID), &resp); err != nil {
		return nil, err
	}
	return resp.items(), nil
}

// Mine retrieves all reviews written by the current user.
func (s *ReviewService) Mine(ctx context.Context) ([]models.Review, error) {
	var resp reviewListResponse
	if err := s.client.get(ctx, "/reviews/user", &resp); err != nil {
		return nil, err
	}
	return resp.items(), nil
}

// Create posts the current user's review of a movie.
func (s *ReviewService) Create(ctx context.Context, movieID int64, req models.ReviewRequest) (*models.Review, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var review models.Review
	if err := s.client.post(ctx, fmt.Sprintf("/movie/%d/review", movieID), req, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

// Update replaces the current user's review of a movie.
func (s *ReviewService) Update(ctx context.Context, movieID int64, req models.ReviewRequest) (*models.Review, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var review models.Review
	if err := s.client.put(ctx, fmt.Sprintf("/movie/%d/review", movieID), req, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

// Delete removes the current user's review of a movie.
func (s *ReviewService) Delete(ctx context.Context, movieID int64) error {
	return s.client.delete(ctx, fmt.Sprintf("/movie/%d/review", movieID), nil)
}

// RatingService wraps the backend's episode rating endpoints.
type RatingService struct {
	client *Client
}

// NewRatingService creates a RatingService backed by the given client.
func NewRatingService(client *Client) *RatingService {
	return &RatingService{client: client}
}

// Rate posts the current user's score for an episode.
func (s *RatingService) Rate(ctx context.Context, episodeID int64, req models.RatingRequest) (*models.Rating, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var rating models.Rating
	if err := s.client.post(ctx, fmt.Sprintf("/episode/%d/rating", episodeID), req, &rating); err != nil {
		return nil, err
	}
	return &rating, nil
}

// Update replaces the current user's score for an episode.
func (s *RatingService) Update(ctx context.Context, episodeID int64, req models.RatingRequest) (*models.Rating, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var rating models.Rating
	if err := s.client.put(ctx, fmt.Sprintf("/episode/%d/rating", episodeID), req, &rating); err != nil {
		return nil, err
	}
	return &rating, nil
}

// Delete removes the current user's score for an episode.
func (s *RatingService) Delete(ctx context.Context, episodeID int64) error {
	return s.client.delete(ctx, fmt.Sprintf("/episode/%d/rating", episodeID), nil)
}

// ForEpisode retrieves the current user's score for an episode.
func (s *RatingService) ForEpisode(ctx context.Context, episodeID int64) (*models.Rating, error) {
	var rating models.Rating
	if err := s.client.get(ctx, fmt.Sprintf("/episode/%d/rating", episodeID), &rating); err != nil {
		return nil, err
	}
	return &rating, nil
}

// Mine retrieves all of the current user's episode ratings.
func (s *RatingService) Mine(ctx context.Context) ([]models.Rating, error) {
	var ratings []models.Rating
	if err := s.client.get(ctx, "/ratings/user", &ratings); err != nil {
		return nil, err
	}
	return ratings, nil
}
