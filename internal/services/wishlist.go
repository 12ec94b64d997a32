// Wishlist endpoints
package services

import (
	"context"
	"fmt"

	"github.com/ahhzhzbbb/projectI-imdb-clone/internal/models"
)

// WishlistService wraps the backend's per-user wishlist endpoints. The paths
// mix "wishList" and "wishlist" casing; that follows the server's routes, not
// a typo here.
type WishlistService struct {
	client *Client
}

// NewWishlistService creates a WishlistService backed by the given client.
func NewWishlistService(client *Client) *WishlistService {
	return &WishlistService{client: client}
}

// wishlistResponse matches {"movies": [...]} from GET /wishList/movies.
type wishlistResponse struct {
	Movies []models.Movie `json:"movies"`
}

// Movies retrieves the full wishlist of the current user.
func (s *WishlistService) Movies(ctx context.Context) ([]models.Movie, error) {
	var resp wishlistResponse
	if err := s.client.get(ctx, "/wishList/movies", &resp); err != nil {
		return nil, err
	}
	return resp.Movies, nil
}

// Add puts a movie on the current user's wishlist.
func (s *WishlistService) Add(ctx context.Context, movieID int64) error {
	return s.client.post(ctx, fmt.Sprintf("/wishlist/movie/%d", movieID), nil, nil)
}

// Remove takes a movie off the current user's wishlist.
func (s *WishlistService) Remove(ctx context.Context, movieID int64) error {
	return s.client.delete(ctx, fmt.Sprintf("/wishList/movie/%d", movieID), nil)
}

// checkResponse tolerates both shapes the check endpoint has used.
type checkResponse struct {
	InWishlist bool `json:"inWishlist"`
	Exists     bool `json:"exists"`
}

// Check asks the server whether a movie is on the current user's wishlist.
func (s *WishlistService) Check(ctx context.Context, movieID int64) (bool, error) {
	var resp checkResponse
	if err := s.client.get(ctx, fmt.Sprintf("/wishlist/check/%d", movieID), &resp); err != nil {
		return false, err
	}
	return resp.InWishlist || resp.Exists, nil
}
