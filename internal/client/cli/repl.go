package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL dispatches to. App implements
// it; tests use a recording stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context, args []string) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Check(ctx context.Context, args []string) error
	Profile(ctx context.Context) error
	User(ctx context.Context, args []string) error
	Update(ctx context.Context) error
	Videos(ctx context.Context) error
	Video(ctx context.Context, args []string) error
	Upload(ctx context.Context, args []string) error
}

const (
	helpAnonymous = "Available commands: register, login [demo], check <username>, user <username>, videos, video <id>, help, exit"
	helpSignedIn  = "Available commands: whoami, profile, update, upload <path>, user <username>, check <username>, videos, video <id>, logout, help, exit"
)

// runREPL reads commands from in until EOF, "exit" or "quit", or until ctx
// is done. The prompt embeds statusFn(). Handler errors are not fatal:
// handlers report to the user and log on their own.
func runREPL(ctx context.Context, a execIface, statusFn func() string, in *bufio.Reader, out io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(out, "vidtube %s> ", statusFn())

		line, err := readLine(in)
		if err != nil {
			fmt.Fprintln(out)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(out, helpSignedIn)
			} else {
				fmt.Fprintln(out, helpAnonymous)
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx, args)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "check":
			_ = a.Check(ctx, args)

		case "profile":
			_ = a.Profile(ctx)

		case "user":
			_ = a.User(ctx, args)

		case "update":
			_ = a.Update(ctx)

		case "videos":
			_ = a.Videos(ctx)

		case "video":
			_ = a.Video(ctx, args)

		case "upload":
			_ = a.Upload(ctx, args)

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}
	}
}
