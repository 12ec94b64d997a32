// Actor and director endpoints, including movie↔actor link management
package services

import (
	"context"
	"fmt"

	"github.com/ahhzhzbbb/projectI-imdb-clone/internal/models"
)

// ActorService wraps the backend's actor endpoints.
type ActorService struct {
	client *Client
}

// NewActorService creates an ActorService backed by the given client.
func NewActorService(client *Client) *ActorService {
	return &ActorService{client: client}
}

type actorListResponse struct {
	Actors []models.Actor `json:"actors"`
}

// List retrieves all actors.
func (s *ActorService) List(ctx context.Context) ([]models.Actor, error) {
	var resp actorListResponse
	if err := s.client.get(ctx, "/actors", &resp); err != nil {
		return nil, err
	}
	return resp.Actors, nil
}

// Get retrieves a single actor by ID.
func (s *ActorService) Get(ctx context.Context, actorID int64) (*models.Actor, error) {
	var actor models.Actor
	if err := s.client.get(ctx, fmt.Sprintf("/actor/%d", actorID), &actor); err != nil {
		return nil, err
	}
	return &actor, nil
}

// Create adds a new actor (admin only).
func (s *ActorService) Create(ctx context.Context, req models.PersonRequest) (*models.Actor, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var actor models.Actor
	if err := s.client.post(ctx, "/actor", req, &actor); err != nil {
		return nil, err
	}
	return &actor, nil
}

// Update modifies an existing actor (admin only).
func (s *ActorService) Update(ctx context.Context, actorID int64, req models.PersonRequest) (*models.Actor, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var actor models.Actor
	if err := s.client.put(ctx, fmt.Sprintf("/actor/%d", actorID), req, &actor); err != nil {
		return nil, err
	}
	return &actor, nil
}

// Delete removes an actor (admin only).
func (s *ActorService) Delete(ctx context.Context, actorID int64) error {
	return s.client.delete(ctx, fmt.Sprintf("/actor/%d", actorID), nil)
}

// MoviesOf retrieves all movies the actor appears in.
func (s *ActorService) MoviesOf(ctx context.Context, actorID int64) ([]models.Movie, error) {
	var resp movieListResponse
	if err := s.client.get(ctx, fmt.Sprintf("/actor/%d/movies", actorID), &resp); err != nil {
		return nil, err
	}
	return resp.Movies, nil
}

// CastOf retrieves the cast of a movie.
func (s *ActorService) CastOf(ctx context.Context, movieID int64) ([]models.Actor, error) {
	var actors []models.Actor
	if err := s.client.get(ctx, fmt.Sprintf("/movie/%d/actors", movieID), &actors); err != nil {
		return nil, err
	}
	return actors, nil
}

// AddToMovie links an actor to a movie (admin only).
func (s *ActorService) AddToMovie(ctx context.Context, movieID, actorID int64) error {
	return s.client.post(ctx, fmt.Sprintf("/movie/%d/actor/%d", movieID, actorID), nil, nil)
}

// RemoveFromMovie unlinks an actor from a movie (admin only).
func (s *ActorService) RemoveFromMovie(ctx context.Context, movieID, actorID int64) error {
	return s.client.delete(ctx, fmt.Sprintf("/movie/%d/actor/%d", movieID, actorID), nil)
}

// DirectorService wraps the backend's director endpoints.
type DirectorService struct {
	client *Client
}

// NewDirectorService creates a DirectorService backed by the given client.
func NewDirectorService(client *Client) *DirectorService {
	return &DirectorService{client: client}
}

type directorListResponse struct {
	Directors []models.Director `json:"directors"`
}

// List retrieves all directors.
func (s *DirectorService) List(ctx context.Context) ([]models.Director, error) {
	var resp directorListResponse
	if err := s.client.get(ctx, "/directors", &resp); err != nil {
		return nil, err
	}
	return resp.Directors, nil
}

// Get retrieves a single director by ID.
func (s *DirectorService) Get(ctx context.Context, directorID int64) (*models.Director, error) {
	var director models.Director
	if err := s.client.get(ctx, fmt.Sprintf("/director/%d", directorID), &director); err != nil {
		return nil, err
	}
	return &director, nil
}

// Create adds a new director (admin only).
func (s *DirectorService) Create(ctx context.Context, req models.PersonRequest) (*models.Director, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var director models.Director
	if err := s.client.post(ctx, "/director", req, &director); err != nil {
		return nil, err
	}
	return &director, nil
}

// Update modifies an existing director (admin only).
func (s *DirectorService) Update(ctx context.Context, directorID int64, req models.PersonRequest) (*models.Director, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var director models.Director
	if err := s.client.put(ctx, fmt.Sprintf("/director/%d", directorID), req, &director); err != nil {
		return nil, err
	}
	return &director, nil
}

// Delete removes a director (admin only).
func (s *DirectorService) Delete(ctx context.Context, directorID int64) error {
	return s.client.delete(ctx, fmt.Sprintf("/director/%d", directorID), nil)
}
