// package models defines the data model for the movie catalog client
package models

import (
	"fmt"
	"strings"
	"time"
)

// Movie represents a movie or TV series summary as returned by list endpoints.
type Movie struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	ImageURL     string  `json:"imageUrl,omitempty"`
	TrailerURL   string  `json:"trailerUrl,omitempty"`
	TVSeries     bool    `json:"tvSeries"`
	AverageScore float64 `json:"averageScore"`
	ReviewCount  int     `json:"reviewCount"`
}

// MovieDetail extends Movie with its related entities, as returned by the
// movie detail endpoint.
type MovieDetail struct {
	Movie
	Director *Director `json:"director,omitempty"`
	Genres   []Genre   `json:"genres"`
	Actors   []Actor   `json:"actors"`
	Seasons  []Season  `json:"seasons"`
}

// Actor represents a cast member.
type Actor struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Introduction string `json:"introduction,omitempty"`
	ImageURL     string `json:"imageUrl,omitempty"`
}

// Director represents a movie director.
type Director struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Introduction string `json:"introduction,omitempty"`
	ImageURL     string `json:"imageUrl,omitempty"`
}

// Genre represents a movie genre.
//
// The backend is inconsistent about the name field ("genreName" on some
// endpoints, "name" on others); DisplayName papers over that.
type Genre struct {
	ID          int64  `json:"id"`
	GenreName   string `json:"genreName,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// DisplayName returns whichever name field the backend populated.
func (g Genre) DisplayName() string {
	if g.GenreName != "" {
		return g.GenreName
	}
	return g.Name
}

// Season represents one season of a TV series.
type Season struct {
	ID       int64     `json:"id"`
	Number   int       `json:"number"`
	Episodes []Episode `json:"episodes"`
}

// Episode represents one episode within a season.
type Episode struct {
	ID            int64   `json:"id"`
	EpisodeNumber int     `json:"episodeNumber"`
	Title         string  `json:"title"`
	Summary       string  `json:"summary,omitempty"`
	PosterURL     string  `json:"posterURL,omitempty"`
	TrailerURL    string  `json:"trailerURL,omitempty"`
	AverageScore  float64 `json:"averageScore"`
	RatingCount   int     `json:"ratingCount"`
}

// Review represents a user review of a movie.
type Review struct {
	ID        int64  `json:"id"`
	Score     int    `json:"score"`
	Content   string `json:"content,omitempty"`
	IsSpoiler bool   `json:"isSpoiler"`
	CreatedAt string `json:"createdAt,omitempty"`
	MovieID   int64  `json:"movieId"`
	UserID    int64  `json:"userId"`
	Username  string `json:"username,omitempty"`
}

// Rating represents a user's score for a single episode.
type Rating struct {
	ID        int64 `json:"id"`
	Score     int   `json:"score"`
	EpisodeID int64 `json:"episodeId"`
	UserID    int64 `json:"userId"`
}

// User represents the authenticated identity returned by the who-am-I endpoint.
type User struct {
	UserID      int64  `json:"userId"`
	Username    string `json:"username"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Role        string `json:"role"`
}

// IsAdmin reports whether the user carries the admin role.
func (u User) IsAdmin() bool {
	return u.Role == "ADMIN"
}

// ParseRole strips the backend's "ROLE_" prefix, e.g. "ROLE_ADMIN" -> "ADMIN".
// Defaults to USER when no roles were returned.
func ParseRole(roles []string) string {
	if len(roles) == 0 {
		return "USER"
	}
	return strings.TrimPrefix(roles[0], "ROLE_")
}

// WishlistEntry represents the server-side wishlist record linking a user to a movie.
type WishlistEntry struct {
	ID      int64     `json:"id"`
	UserID  int64     `json:"userId"`
	MovieID int64     `json:"movieId"`
	AddedAt time.Time `json:"addedAt"`
}

// MovieRequest is the payload for creating or updating a movie.
type MovieRequest struct {
	MovieName   string `json:"movieName"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	TrailerURL  string `json:"trailerUrl,omitempty"`
	TVSeries    bool   `json:"tvSeries"`
}

// Validate checks the request before it reaches the network layer.
func (r MovieRequest) Validate() error {
	if strings.TrimSpace(r.MovieName) == "" {
		return fmt.Errorf("movie name is required")
	}
	return nil
}

// PersonRequest is the payload for creating or updating an actor or director.
type PersonRequest struct {
	Name         string `json:"name"`
	Introduction string `json:"introduction,omitempty"`
	ImageURL     string `json:"imageUrl,omitempty"`
}

// Validate checks the request before it reaches the network layer.
func (r PersonRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

// GenreRequest is the payload for creating a genre.
type GenreRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Validate checks the request before it reaches the network layer.
func (r GenreRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("genre name is required")
	}
	return nil
}

// ReviewRequest is the payload for creating or updating a review.
type ReviewRequest struct {
	Score     int    `json:"score"`
	Content   string `json:"content,omitempty"`
	IsSpoiler bool   `json:"isSpoiler"`
	MovieID   int64  `json:"movieId"`
}

// Validate checks the request before it reaches the network layer.
func (r ReviewRequest) Validate() error {
	if r.Score < 1 || r.Score > 10 {
		return fmt.Errorf("score must be between 1 and 10")
	}
	return nil
}

// RatingRequest is the payload for rating an episode.
type RatingRequest struct {
	Score     int   `json:"score"`
	EpisodeID int64 `json:"episodeId,omitempty"`
}

// Validate checks the request before it reaches the network layer.
func (r RatingRequest) Validate() error {
	if r.Score < 1 || r.Score > 10 {
		return fmt.Errorf("score must be between 1 and 10")
	}
	return nil
}

// EpisodeRequest is the payload for creating or updating an episode.
type EpisodeRequest struct {
	EpisodeNumber int    `json:"episodeNumber,omitempty"`
	Title         string `json:"title"`
	Summary       string `json:"summary,omitempty"`
	PosterURL     string `json:"posterURL,omitempty"`
	TrailerURL    string `json:"trailerURL,omitempty"`
}

// Validate checks the request before it reaches the network layer.
func (r EpisodeRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("episode title is required")
	}
	return nil
}

// MovieGenreLink represents the movie↔genre junction record.
type MovieGenreLink struct {
	ID        int64  `json:"id"`
	MovieID   int64  `json:"movieId"`
	GenreID   int64  `json:"genreId"`
	MovieName string `json:"movieName,omitempty"`
	GenreName string `json:"genreName,omitempty"`
}
