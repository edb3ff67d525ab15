package cli

import (
	"context"
	"errors"

	"github.com/benhsieh-dev/Youtube/internal/client/models"
	"github.com/benhsieh-dev/Youtube/internal/client/validation"
)

// Demo account filled in by "login demo".
const (
	demoUsername = "demo"
	demoPassword = "demo123"
)

// Register prompts for username, email and password, checks them locally and
// creates the account. It does not sign the user in.
func (a *App) Register(ctx context.Context) error {
	username, err := a.prompt("Enter username")
	if err != nil {
		return err
	}
	email, err := a.prompt("Enter email")
	if err != nil {
		return err
	}
	password, err := a.promptSecret()
	if err != nil {
		return err
	}

	req := models.RegisterRequest{Username: username, Email: email, Password: password}
	if err := validation.Validate(req); err != nil {
		a.printValidation(err)
		return err
	}

	reg, err := a.sessions.Register(ctx, req)
	if err != nil {
		a.println("Registration failed. Please try again.")
		return err
	}

	a.println("Account created for " + reg.Username + ". Please log in.")
	return nil
}

// Login signs in with the given username (or prompts for it). "login demo"
// uses the demo account without prompting.
func (a *App) Login(ctx context.Context, args []string) error {
	var req models.LoginRequest
	switch {
	case len(args) > 0 && args[0] == demoUsername:
		req = models.LoginRequest{Username: demoUsername, Password: demoPassword}
	default:
		username := ""
		if len(args) > 0 {
			username = args[0]
		} else {
			var err error
			if username, err = a.prompt("Enter username"); err != nil {
				return err
			}
		}
		password, err := a.promptSecret()
		if err != nil {
			return err
		}
		req = models.LoginRequest{Username: username, Password: password}
	}

	if err := validation.Validate(req); err != nil {
		a.printValidation(err)
		return err
	}

	u, err := a.sessions.Login(ctx, req)
	if err != nil {
		a.println("Invalid credentials. Please try again.")
		return err
	}

	a.println("Welcome, " + u.Username + "!")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.sessions.Logout(ctx)
	a.println("Logged out.")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	u := a.sessions.CurrentUser()
	if u == nil {
		a.println("Not logged in.")
		return nil
	}
	a.println(formatUser(u))
	return nil
}

func (a *App) printValidation(err error) {
	var ve *validation.ValidationError
	if errors.As(err, &ve) {
		a.println(ve.Message)
		return
	}
	a.println("Invalid input.")
}
