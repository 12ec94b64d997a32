package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/ahhzhzbbb/projectI-imdb-clone/internal/shared"
	"github.com/ahhzhzbbb/projectI-imdb-clone/internal/ui"
)

// TUI launches the interactive catalog browser.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	// Resolve the stored credential before the TUI takes over the terminal;
	// a signed-out session still browses, just without a wishlist.
	r.session.Initialize(ctx)

	// Redirect logs to file to avoid interfering with TUI rendering. The
	// store and holder log too, a failed wishlist push mid-session must not
	// land on the terminal.
	fileLogger, err := shared.NewFileLogger("./tmp/imdb-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)
	r.session.SetLogger(fileLogger)
	r.store.SetLogger(fileLogger)

	model := ui.NewModel(ctx, r.movies, r.store)
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
