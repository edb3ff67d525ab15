package cli

import (
	"context"
	"fmt"

	"github.com/benhsieh-dev/Youtube/internal/client/models"
)

func formatUser(u *models.User) string {
	if u.Email == "" {
		return fmt.Sprintf("#%d %s", u.ID, u.Username)
	}
	return fmt.Sprintf("#%d %s <%s>", u.ID, u.Username, u.Email)
}

func (a *App) printProfile(p *models.Profile) {
	fmt.Fprintf(a.out, "Username:     %s\n", p.Username)
	if p.DisplayName != "" {
		fmt.Fprintf(a.out, "Display name: %s\n", p.DisplayName)
	}
	if p.Email != "" {
		fmt.Fprintf(a.out, "Email:        %s\n", p.Email)
	}
	if p.ProfileImageURL != "" {
		fmt.Fprintf(a.out, "Image:        %s\n", p.ProfileImageURL)
	}
	if p.CreatedAt != "" {
		fmt.Fprintf(a.out, "Member since: %s\n", p.CreatedAt)
	}
}

// Check reports whether a username is still free.
func (a *App) Check(ctx context.Context, args []string) error {
	if len(args) != 1 {
		a.println("Usage: check <username>")
		return errUsage
	}

	res, err := a.gateway.Identity.CheckUsername(ctx, args[0])
	if err != nil {
		a.reportBackend(ctx, "check username", err)
		return err
	}
	if res.Available {
		a.println(fmt.Sprintf("%q is available.", args[0]))
	} else {
		a.println(fmt.Sprintf("%q is taken.", args[0]))
	}
	return nil
}

// Profile shows the signed-in user's own profile.
func (a *App) Profile(ctx context.Context) error {
	u, token, err := a.requireSession()
	if err != nil {
		return err
	}

	p, err := a.gateway.Identity.GetCurrentProfile(ctx, u.ID, token)
	if err != nil {
		a.reportBackend(ctx, "get current profile", err)
		return err
	}
	a.printProfile(p)
	return nil
}

// User shows anyone's public profile.
func (a *App) User(ctx context.Context, args []string) error {
	if len(args) != 1 {
		a.println("Usage: user <username>")
		return errUsage
	}

	p, err := a.gateway.Identity.GetProfile(ctx, args[0])
	if err != nil {
		a.reportBackend(ctx, "get profile", err)
		return err
	}
	a.printProfile(p)
	return nil
}

// Update edits the signed-in user's display name and image. An empty answer
// keeps the current value.
func (a *App) Update(ctx context.Context) error {
	u, token, err := a.requireSession()
	if err != nil {
		return err
	}

	name, err := a.prompt("Display name (empty to keep)")
	if err != nil {
		return err
	}
	image, err := a.prompt("Profile image URL (empty to keep)")
	if err != nil {
		return err
	}

	var update models.ProfileUpdate
	if name != "" {
		update.DisplayName = &name
	}
	if image != "" {
		update.ProfileImageURL = &image
	}
	if update.Empty() {
		a.println("Nothing to update.")
		return nil
	}

	p, err := a.gateway.Identity.UpdateProfile(ctx, u.ID, update, token)
	if err != nil {
		a.reportBackend(ctx, "update profile", err)
		return err
	}
	a.println("Profile updated.")
	a.printProfile(p)
	return nil
}
