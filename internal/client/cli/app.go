package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/edyapups/Beneburg-Archived/internal/client/client"
	"github.com/edyapups/Beneburg-Archived/internal/client/config"
	"github.com/edyapups/Beneburg-Archived/internal/client/credentials"
	"github.com/edyapups/Beneburg-Archived/internal/client/repositories/metadata"
	"github.com/edyapups/Beneburg-Archived/internal/logging"
)

type App struct {
	api    client.Client
	tokens credentials.Store
	state  metadata.Repository
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer
	closer io.Closer
}

// NewApp opens the local database, picks the token store and builds the API
// client against cfg.BaseURL(). Logs go to stderr.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, err := logging.NewTextLogger(os.Stderr, c.LogLevel)
	if err != nil {
		return nil, err
	}
	log := logger.With("session_id", uuid.NewString())

	db, err := client.InitDatabase(ctx, c.DBPath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DBPath, "error", err)
		return nil, err
	}

	repo := metadata.NewSQLiteRepository(db)
	store := tokenStore(c.Token, repo)
	if c.Token != "" {
		log.Info(ctx, "token taken from configuration, not persisted")
	}

	api := client.NewHTTPClient(c.BaseURL(), store)
	log.Info(ctx, "client ready", "base_url", c.BaseURL(), "db", c.DBPath)

	app := newApp(api, store, log, os.Stdin, os.Stdout)
	app.state = repo
	app.closer = db
	return app, nil
}

// tokenStore returns a fixed store for a configured token and the
// persistent one otherwise.
func tokenStore(token string, repo metadata.Repository) credentials.Store {
	if token != "" {
		return credentials.Static(token)
	}
	return credentials.NewMetadataStore(repo)
}

func newApp(api client.Client, tokens credentials.Store, log logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		api:    api,
		tokens: tokens,
		log:    log,
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Run blocks in the REPL and releases the local database afterwards.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()
	return a.runREPL(ctx)
}

func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

// report turns a command error into a log record and a short user hint.
func (a *App) report(ctx context.Context, cmd string, err error) {
	if err == nil {
		return
	}
	a.log.Error(ctx, "command failed", "cmd", cmd, "error", err)

	switch {
	case errors.Is(err, client.ErrUnauthorized):
		fmt.Fprintln(a.out, "Not authorized. Set a token with: token set")
	case errors.Is(err, client.ErrNotFound):
		fmt.Fprintln(a.out, "Not found.")
	case errors.Is(err, credentials.ErrReadOnly):
		fmt.Fprintln(a.out, "Token comes from -t or USERDIR_TOKEN and cannot be changed here.")
	case errors.Is(err, client.ErrNetwork):
		fmt.Fprintln(a.out, "Backend unreachable.")
	default:
		fmt.Fprintln(a.out, "Error:", err)
	}
}
