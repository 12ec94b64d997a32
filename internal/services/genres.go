package services

import (
	"context"
	"fmt"

	"github.com/ahhzhzbbb/projectI-imdb-clone/internal/models"
)

// GenreService wraps the backend's genre endpoints, including the
// movie↔genre junction endpoints.
type GenreService struct {
	client *Client
}

// NewGenreService creates a GenreService backed by the given client.
func NewGenreService(client *Client) *GenreService {
	return &GenreService{client: client}
}

type genreListResponse struct {
	Genres []models.Genre `json:"genres"`
}

// List retrieves all genres.
func (s *GenreService) List(ctx context.Context) ([]models.Genre, error) {
	var resp genreListResponse
	if err := s.client.get(ctx, "/genres", &resp); err != nil {
		return nil, err
	}
	return resp.Genres, nil
}

// Create adds a new genre (admin only).
func (s *GenreService) Create(ctx context.Context, req models.GenreRequest) (*models.Genre, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var genre models.Genre
	if err := s.client.post(ctx, "/genre", req, &genre); err != nil {
		return nil, err
	}
	return &genre, nil
}

// Delete removes a genre (admin only).
func (s *GenreService) Delete(ctx context.Context, genreID int64) error {
	return s.client.delete(ctx, fmt.Sprintf("/genre/%d", genreID), nil)
}

// MoviesOf retrieves all movies tagged with the genre.
func (s *GenreService) MoviesOf(ctx context.Context, genreID int64) ([]models.Movie, error) {
	var resp movieListResponse
	if err := s.client.get(ctx, fmt.Sprintf("/genre/%d/movies", genreID), &resp); err != nil {
		return nil, err
	}
	return resp.Movies, nil
}

// GenresOf retrieves the genres of a movie.
func (s *GenreService) GenresOf(ctx context.Context, movieID int64) ([]models.Genre, error) {
	var genres []models.Genre
	if err := s.client.get(ctx, fmt.Sprintf("/movie/%d/genres", movieID), &genres); err != nil {
		return nil, err
	}
	return genres, nil
}

// AddToMovie tags a movie with a genre (admin only).
func (s *GenreService) AddToMovie(ctx context.Context, movieID, genreID int64) (*models.MovieGenreLink, error) {
	var link models.MovieGenreLink
	if err := s.client.post(ctx, fmt.Sprintf("/movie/%d/genre/%d", movieID, genreID), nil, &link); err != nil {
		return nil, err
	}
	return &link, nil
}

// RemoveFromMovie removes a genre tag from a movie (admin only).
func (s *GenreService) RemoveFromMovie(ctx context.Context, movieID, genreID int64) error {
	return s.client.delete(ctx, fmt.Sprintf("/movie/%d/genre/%d", movieID, genreID), nil)
}
