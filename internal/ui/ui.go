package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ahhzhzbbb/projectI-imdb-clone/internal/models"
	"github.com/ahhzhzbbb/projectI-imdb-clone/internal/services"
	"github.com/ahhzhzbbb/projectI-imdb-clone/internal/shared"
	"github.com/ahhzhzbbb/projectI-imdb-clone/internal/wishlist"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	MovieListView ViewState = iota
	MovieDetailView
	WishlistView
)

// Model represents the TUI application state.
type Model struct {
	ctx    context.Context
	view   ViewState
	movies *services.MovieService
	store  *wishlist.Store
	width  int
	height int

	movieList    list.Model
	catalog      []models.Movie
	wishlistList list.Model
	detail       *models.MovieDetail
	notice       string
	err          error
	help         help.Model
	keys         keyMap
}

type moviesFetchedMsg struct {
	movies []models.Movie
	err    error
}

type detailFetchedMsg struct {
	detail *models.MovieDetail
	err    error
}

type wishlistLoadedMsg struct {
	err error
}

type wishlistToggledMsg struct {
	movie   models.Movie
	applied wishlist.Applied
	err     error
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, movies *services.MovieService, store *wishlist.Store) *Model {
	return &Model{
		ctx:    ctx,
		view:   MovieListView,
		movies: movies,
		store:  store,
		help:   help.New(),
		keys:   newKeyMap(),
	}
}

// Init fetches the catalog and the signed-in user's wishlist.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.fetchMovies(), m.loadWishlist())
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.movieList.Width() == 0 {
			m.movieList.SetSize(msg.Width-4, msg.Height-8)
		}
		if m.wishlistList.Width() == 0 {
			m.wishlistList.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case MovieListView:
			return m.handleMovieListKeys(msg)
		case MovieDetailView:
			return m.handleDetailKeys(msg)
		case WishlistView:
			return m.handleWishlistKeys(msg)
		}

	case moviesFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.catalog = msg.movies
		m.movieList = list.New(m.movieItems(), list.NewDefaultDelegate(), 0, 0)
		m.movieList.Title = "Catalog"
		m.movieList.SetSize(m.width-4, m.height-8)
		return m, nil

	case detailFetchedMsg:
		if msg.err != nil {
			m.notice = fmt.Sprintf("failed to load details: %v", msg.err)
			return m, nil
		}
		m.detail = msg.detail
		m.view = MovieDetailView
		return m, nil

	case wishlistLoadedMsg:
		// Signed-out sessions browse without a wishlist; other failures
		// surface as a notice but browsing continues.
		if msg.err != nil && !isSignedOut(msg.err) {
			m.notice = fmt.Sprintf("wishlist unavailable: %v", msg.err)
		}
		m.refreshLists()
		return m, nil

	case wishlistToggledMsg:
		if msg.err != nil {
			if isSignedOut(msg.err) {
				m.notice = "sign in to use the wishlist"
			} else {
				m.notice = fmt.Sprintf("wishlist toggle failed: %v", msg.err)
			}
			return m, nil
		}
		if msg.applied == wishlist.Optimistic {
			m.notice = fmt.Sprintf("%q changed locally, server unreachable", msg.movie.Name)
		} else {
			m.notice = ""
		}
		m.refreshLists()
		return m, nil
	}

	return m.updateLists(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	var body string
	switch m.view {
	case MovieListView:
		body = m.renderMovieList()
	case MovieDetailView:
		body = m.renderDetail()
	case WishlistView:
		body = m.renderWishlist()
	}

	if m.notice != "" {
		body = fmt.Sprintf("%s\n%s", body, styles.warn.Render(m.notice))
	}
	return body
}

func (m *Model) handleMovieListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "enter":
		if movie, ok := m.selectedMovie(&m.movieList); ok {
			return m, m.fetchDetail(movie.ID)
		}
	case "w":
		if movie, ok := m.selectedMovie(&m.movieList); ok {
			return m, m.toggleWishlist(movie)
		}
	case "v":
		m.rebuildWishlistList()
		m.view = WishlistView
		return m, nil
	}

	var cmd tea.Cmd
	m.movieList, cmd = m.movieList.Update(msg)
	return m, cmd
}

func (m *Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = MovieListView
		m.detail = nil
		return m, nil
	case "w":
		if m.detail != nil {
			return m, m.toggleWishlist(m.detail.Movie)
		}
	}
	return m, nil
}

func (m *Model) handleWishlistKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = MovieListView
		return m, nil
	case "w":
		if movie, ok := m.selectedMovie(&m.wishlistList); ok {
			return m, m.toggleWishlist(movie)
		}
	}

	var cmd tea.Cmd
	m.wishlistList, cmd = m.wishlistList.Update(msg)
	return m, cmd
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case MovieListView:
		m.movieList, cmd = m.movieList.Update(msg)
	case WishlistView:
		m.wishlistList, cmd = m.wishlistList.Update(msg)
	}
	return m, cmd
}

func (m *Model) selectedMovie(l *list.Model) (models.Movie, bool) {
	if item, ok := l.SelectedItem().(movieItem); ok {
		return item.movie, true
	}
	return models.Movie{}, false
}

func (m *Model) movieItems() []list.Item {
	items := make([]list.Item, len(m.catalog))
	for i, movie := range m.catalog {
		items[i] = movieItem{movie: movie, onWishlist: m.store.IsMember(movie.ID)}
	}
	return items
}

// refreshLists recomputes wishlist badges after the store changed.
func (m *Model) refreshLists() {
	if len(m.catalog) > 0 {
		m.movieList.SetItems(m.movieItems())
	}
	if m.view == WishlistView {
		m.rebuildWishlistList()
	}
}

func (m *Model) rebuildWishlistList() {
	movies := m.store.Movies()
	items := make([]list.Item, len(movies))
	for i, movie := range movies {
		items[i] = movieItem{movie: movie, onWishlist: true}
	}
	m.wishlistList = list.New(items, list.NewDefaultDelegate(), m.width-4, m.height-8)
	m.wishlistList.Title = "Wishlist"
}

func (m *Model) fetchMovies() tea.Cmd {
	return func() tea.Msg {
		movies, err := m.movies.List(m.ctx)
		return moviesFetchedMsg{movies: movies, err: err}
	}
}

func (m *Model) fetchDetail(movieID int64) tea.Cmd {
	return func() tea.Msg {
		detail, err := m.movies.Detail(m.ctx, movieID)
		return detailFetchedMsg{detail: detail, err: err}
	}
}

func (m *Model) loadWishlist() tea.Cmd {
	return func() tea.Msg {
		return wishlistLoadedMsg{err: m.store.Load(m.ctx)}
	}
}

func (m *Model) toggleWishlist(movie models.Movie) tea.Cmd {
	return func() tea.Msg {
		applied, err := m.store.Toggle(m.ctx, movie)
		return wishlistToggledMsg{movie: movie, applied: applied, err: err}
	}
}

func (m *Model) renderMovieList() string {
	helpKeys := []key.Binding{m.keys.enter, m.keys.toggle, m.keys.wishlist, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.movieList.View(), helpView)
}

func (m *Model) renderDetail() string {
	if m.detail == nil {
		return styles.err.Render("No details available\n\nPress esc to go back")
	}

	title := styles.title.Render(m.detail.Name)
	if m.store.IsMember(m.detail.ID) {
		title = styles.title.Render("♥ " + m.detail.Name)
	}

	info := fmt.Sprintf("%s • %s\n", shared.KindString(m.detail.TVSeries),
		shared.FormatScore(m.detail.AverageScore, m.detail.ReviewCount))
	if m.detail.Director != nil {
		info += fmt.Sprintf("Directed by %s\n", m.detail.Director.Name)
	}
	if len(m.detail.Genres) > 0 {
		info += "Genres:"
		for _, genre := range m.detail.Genres {
			info += " " + genre.DisplayName()
		}
		info += "\n"
	}
	if m.detail.Description != "" {
		info += "\n" + m.detail.Description + "\n"
	}
	if len(m.detail.Actors) > 0 {
		info += "\nCast:\n"
		for _, actor := range m.detail.Actors {
			info += fmt.Sprintf("  • %s\n", actor.Name)
		}
	}
	if m.detail.TVSeries {
		for _, season := range m.detail.Seasons {
			info += fmt.Sprintf("\nSeason %d: %d episodes", season.Number, len(season.Episodes))
		}
		info += "\n"
	}

	helpKeys := []key.Binding{m.keys.toggle, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n%s", title, info, helpView)
}

func (m *Model) renderWishlist() string {
	helpKeys := []key.Binding{m.keys.toggle, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.wishlistList.View(), helpView)
}

func isSignedOut(err error) bool {
	return errors.Is(err, shared.ErrNotAuthenticated)
}
