package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/benhsieh-dev/Youtube/internal/client/auth"
	"github.com/benhsieh-dev/Youtube/internal/client/client"
	"github.com/benhsieh-dev/Youtube/internal/client/models"
	"github.com/benhsieh-dev/Youtube/internal/client/session"
	"github.com/benhsieh-dev/Youtube/internal/logging"
)

var (
	errNotLoggedIn    = errors.New("not logged in")
	errSessionExpired = errors.New("session expired")
	errUsage          = errors.New("usage")
)

type App struct {
	sessions *session.Manager
	gateway  *client.Gateway
	logger   logging.Logger

	reader *bufio.Reader
	out    io.Writer
	// secretFromTerminal selects no-echo password input. It is false when
	// input is piped.
	secretFromTerminal bool
	now                func() time.Time

	mu     sync.Mutex
	status string
}

// NewApp builds the REPL over in and out. When in is a terminal, passwords
// are read without echo.
func NewApp(sessions *session.Manager, gateway *client.Gateway, logger logging.Logger, in io.Reader, out io.Writer) *App {
	a := &App{
		sessions: sessions,
		gateway:  gateway,
		logger:   logger.With("component", "cli"),
		reader:   bufio.NewReader(in),
		out:      out,
		now:      time.Now,
	}
	if f, ok := in.(*os.File); ok {
		a.secretFromTerminal = isTerminal(int(f.Fd()))
	}
	return a
}

// Run keeps the prompt in sync with the session and blocks in the REPL.
func (a *App) Run(ctx context.Context) {
	sub := a.sessions.Subscribe(a.setStatus)
	defer sub.Unsubscribe()

	fmt.Fprintln(a.out, "Welcome to VidTube (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}

func (a *App) setStatus(u *models.User) {
	s := "(anonymous)"
	if u != nil {
		s = fmt.Sprintf("(%s)", u.Username)
	}
	a.mu.Lock()
	a.status = s
	a.mu.Unlock()
}

func (a *App) getStatus() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.status
}

func (a *App) isLoggedIn() bool {
	return a.sessions.IsAuthenticated()
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) prompt(text string) (string, error) {
	return GetSimpleText(a.reader, text, a.out)
}

func (a *App) promptSecret() (string, error) {
	if a.secretFromTerminal {
		return GetPassword(a.out)
	}
	return a.prompt("Enter password")
}

// requireSession returns the signed-in user and its credential. It tells the
// user what to do when there is no usable session.
func (a *App) requireSession() (*models.User, string, error) {
	u := a.sessions.CurrentUser()
	if u == nil {
		a.println("Please log in first.")
		return nil, "", errNotLoggedIn
	}
	token := a.sessions.Credential()
	if auth.Expired(token, a.now()) {
		a.println("Session expired, please log in again.")
		return nil, "", errSessionExpired
	}
	return u, token, nil
}

// reportBackend prints a user-safe line for err and logs the detail.
func (a *App) reportBackend(ctx context.Context, op string, err error) {
	a.logger.Warn(ctx, op+" failed", "error", err)
	switch {
	case errors.Is(err, client.ErrUnavailable):
		a.println("Server unavailable. Please try again later.")
	case errors.Is(err, client.ErrUnauthorized):
		a.println("Not authorized. Your session may have expired, please log in again.")
	default:
		var be *client.BackendError
		if errors.As(err, &be) && be.Status == 404 {
			a.println("Not found.")
			return
		}
		a.println("Request failed. Please try again.")
	}
}
