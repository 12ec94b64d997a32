// Season and episode management endpoints
package services

import (
	"context"
	"fmt"

	"github.com/ahhzhzbbb/projectI-imdb-clone/internal/models"
)

// SeasonService wraps season management for series.
type SeasonService struct {
	client *Client
}

// NewSeasonService creates a SeasonService backed by the given client.
func NewSeasonService(client *Client) *SeasonService {
	return &SeasonService{client: client}
}

// Add appends a new season to a series. The backend numbers seasons
// sequentially on its own.
func (s *SeasonService) Add(ctx context.Context, movieID int64) (*models.Season, error) {
	var season models.Season
	if err := s.client.post(ctx, fmt.Sprintf("/season/%d", movieID), nil, &season); err != nil {
		return nil, err
	}
	return &season, nil
}

// RemoveLast deletes the highest-numbered season of a series.
func (s *SeasonService) RemoveLast(ctx context.Context, movieID int64) error {
	return s.client.delete(ctx, fmt.Sprintf("/season/%d", movieID), nil)
}

// Episodes retrieves the episodes of a season.
func (s *SeasonService) Episodes(ctx context.Context, seasonID int64) ([]models.Episode, error) {
	var episodes []models.Episode
	if err := s.client.get(ctx, fmt.Sprintf("/season/%d/episodes", seasonID), &episodes); err != nil {
		return nil, err
	}
	return episodes, nil
}

// EpisodeService wraps episode management within a season.
type EpisodeService struct {
	client *Client
}

// NewEpisodeService creates an EpisodeService backed by the given client.
func NewEpisodeService(client *Client) *EpisodeService {
	return &EpisodeService{client: client}
}

// Create adds an episode to a season.
func (s *EpisodeService) Create(ctx context.Context, seasonID int64, req models.EpisodeRequest) (*models.Episode, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var episode models.Episode
	if err := s.client.post(ctx, fmt.Sprintf("/seasons/%d/episode", seasonID), req, &episode); err != nil {
		return nil, err
	}
	return &episode, nil
}

// Update replaces an episode's metadata.
func (s *EpisodeService) Update(ctx context.Context, episodeID int64, req models.EpisodeRequest) (*models.Episode, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var episode models.Episode
	if err := s.client.put(ctx, fmt.Sprintf("/episode/%d", episodeID), req, &episode); err != nil {
		return nil, err
	}
	return &episode, nil
}

// Delete removes an episode.
func (s *EpisodeService) Delete(ctx context.Context, episodeID int64) error {
	return s.client.delete(ctx, fmt.Sprintf("/episode/%d", episodeID), nil)
}
