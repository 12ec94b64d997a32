// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow for browsing the catalog:
//  1. [MovieListView] : Browse the catalog, with wishlist badges
//  2. [MovieDetailView] : Inspect one movie's cast, genres, and seasons
//  3. [WishlistView] : Review the signed-in user's wishlist
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern, receiving messages via tea.Msg.
// Wishlist toggles go through the optimistic store, so the badge flips immediately and a failed
// server push is surfaced as a footer notice instead of blocking navigation.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, w, v, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
