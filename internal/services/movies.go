package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ahhzhzbbb/projectI-imdb-clone/internal/models"
)

// MovieService wraps the backend's movie endpoints.
type MovieService struct {
	client *Client
}

// NewMovieService creates a MovieService backed by the given client.
func NewMovieService(client *Client) *MovieService {
	return &MovieService{client: client}
}

// movieListResponse mirrors the backend's {"movies": [...]} envelope.
type movieListResponse struct {
	Movies []models.Movie `json:"movies"`
}

// movieDetailResponse mirrors the backend's detail envelope.
type movieDetailResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Data    models.MovieDetail `json:"data"`
}

// List retrieves all movies.
func (s *MovieService) List(ctx context.Context) ([]models.Movie, error) {
	var resp movieListResponse
	if err := s.client.get(ctx, "/movies", &resp); err != nil {
		return nil, err
	}
	return resp.Movies, nil
}

// Detail retrieves a movie with its director, genres, actors, and the full
// season/episode tree.
func (s *MovieService) Detail(ctx context.Context, movieID int64) (*models.MovieDetail, error) {
	var resp movieDetailResponse
	if err := s.client.get(ctx, fmt.Sprintf("/movie/%d/seasons", movieID), &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Search finds movies matching the query by name.
func (s *MovieService) Search(ctx context.Context, query string) ([]models.Movie, error) {
	var resp movieListResponse
	path := "/movies/search?q=" + url.QueryEscape(query)
	if err := s.client.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Movies, nil
}

// Trending retrieves the most popular movies, capped at limit.
func (s *MovieService) Trending(ctx context.Context, limit int) ([]models.Movie, error) {
	if limit <= 0 {
		limit = 10
	}

	var resp movieListResponse
	if err := s.client.get(ctx, fmt.Sprintf("/movies/trending?limit=%d", limit), &resp); err != nil {
		return nil, err
	}
	return resp.Movies, nil
}

// ByGenre retrieves movies tagged with the given genre.
func (s *MovieService) ByGenre(ctx context.Context, genreID int64) ([]models.Movie, error) {
	var resp movieListResponse
	if err := s.client.get(ctx, fmt.Sprintf("/movies/genre?genreId=%d", genreID), &resp); err != nil {
		return nil, err
	}
	return resp.Movies, nil
}

// Create adds a new movie (admin only).
func (s *MovieService) Create(ctx context.Context, req models.MovieRequest) (*models.Movie, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var movie models.Movie
	if err := s.client.post(ctx, "/movie", req, &movie); err != nil {
		return nil, err
	}
	return &movie, nil
}

// Update modifies an existing movie (admin only).
func (s *MovieService) Update(ctx context.Context, movieID int64, req models.MovieRequest) (*models.Movie, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var movie models.Movie
	if err := s.client.put(ctx, fmt.Sprintf("/movie/%d", movieID), req, &movie); err != nil {
		return nil, err
	}
	return &movie, nil
}

// Delete removes a movie (admin only).
func (s *MovieService) Delete(ctx context.Context, movieID int64) error {
	return s.client.delete(ctx, fmt.Sprintf("/movie/%d", movieID), nil)
}
