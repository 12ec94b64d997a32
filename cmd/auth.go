package main

import (
	"context"

	"github.com/urfave/cli/v3"
)

// AuthLogin signs in and persists the issued credential.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	username := cmd.String("username")
	password := cmd.String("password")

	r.logger.Infof("signing in as %v", username)

	user, err := r.session.Login(ctx, username, password)
	if err != nil {
		return err
	}

	r.writePlain("✓ Signed in as %s", user.Username)
	if user.IsAdmin() {
		r.writePlain(" (admin)")
	}
	return r.writePlain("\n")
}

// AuthSignup registers a new account and signs it in.
func (r *Runner) AuthSignup(ctx context.Context, cmd *cli.Command) error {
	user, err := r.session.Signup(ctx,
		cmd.String("username"),
		cmd.String("password"),
		cmd.String("confirm"),
		cmd.String("phone"),
	)
	if err != nil {
		return err
	}

	return r.writePlain("✓ Account created, signed in as %s\n", user.Username)
}

// AuthLogout drops the stored credential. Purely local; it never fails.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	r.session.Logout()
	r.store.Reset()
	return r.writePlain("✓ Signed out\n")
}

// AuthWhoami resolves and prints the identity behind the stored credential.
func (r *Runner) AuthWhoami(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	user := r.session.Current()
	if cmd.Bool("json") {
		return r.writeJSON(user, cmd.Bool("pretty"))
	}

	r.writePlain("Username: %s\n", user.Username)
	r.writePlain("Role: %s\n", user.Role)
	if user.PhoneNumber != "" {
		r.writePlain("Phone: %s\n", user.PhoneNumber)
	}
	return nil
}
