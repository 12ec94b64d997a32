package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"github.com/ahhzhzbbb/projectI-imdb-clone/internal/models"
	"github.com/ahhzhzbbb/projectI-imdb-clone/internal/shared"
)

var _ list.Item = movieItem{}

// movieItem wraps [models.Movie] to implement [list.Item]. onWishlist drives
// the badge in the title.
type movieItem struct {
	movie      models.Movie
	onWishlist bool
}

func (i movieItem) FilterValue() string { return i.movie.Name }

func (i movieItem) Title() string {
	if i.onWishlist {
		return "♥ " + i.movie.Name
	}
	return i.movie.Name
}

func (i movieItem) Description() string {
	desc := fmt.Sprintf("%s • %s", shared.KindString(i.movie.TVSeries),
		shared.FormatScore(i.movie.AverageScore, i.movie.ReviewCount))
	if i.movie.Description != "" {
		desc = fmt.Sprintf("%s • %s", desc, shared.Truncate(i.movie.Description, 60))
	}
	return desc
}
