package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/ahhzhzbbb/projectI-imdb-clone/internal/shared"
)

// SettingsShow prints the stored preferences.
func (r *Runner) SettingsShow(ctx context.Context, cmd *cli.Command) error {
	prefs, err := r.settings.Load()
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(prefs, cmd.Bool("pretty"))
	}

	r.writePlainHeader("Preferences")
	r.writePlain("App name:      %s\n", prefs.AppName)
	r.writePlain("Description:   %s\n", prefs.Description)
	r.writePlain("Show spoilers: %t\n", prefs.ShowSpoilers)
	r.writePlain("Show trending: %t\n", prefs.ShowTrending)
	r.writePlain("Plain output:  %t\n", prefs.PlainOutput)
	return nil
}

// SettingsSet updates the stored preferences. Only flags that were provided
// change; the save overwrites the whole blob.
func (r *Runner) SettingsSet(ctx context.Context, cmd *cli.Command) error {
	prefs, err := r.settings.Load()
	if err != nil {
		return err
	}

	if v := cmd.String("app-name"); v != "" {
		prefs.AppName = v
	}
	if v := cmd.String("description"); v != "" {
		prefs.Description = v
	}

	for _, toggle := range []struct {
		flag  string
		field *bool
	}{
		{"show-spoilers", &prefs.ShowSpoilers},
		{"show-trending", &prefs.ShowTrending},
		{"plain-output", &prefs.PlainOutput},
	} {
		raw := cmd.String(toggle.flag)
		if raw == "" {
			continue
		}
		value, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false", shared.ErrInvalidFlag, toggle.flag)
		}
		*toggle.field = value
	}

	if err := r.settings.Save(prefs); err != nil {
		return err
	}
	return r.writePlain("✓ Preferences saved\n")
}

// SettingsReset restores default preferences.
func (r *Runner) SettingsReset(ctx context.Context, cmd *cli.Command) error {
	if err := r.settings.Reset(); err != nil {
		return err
	}
	return r.writePlain("✓ Preferences reset to defaults\n")
}
