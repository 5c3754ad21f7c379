// Package cli implements the interactive terminal front end of the
// TruthGuard client: a REPL dispatching to the session, verification, feed
// and chat services.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/truthguard/truthguard/internal/client/api"
	"github.com/truthguard/truthguard/internal/client/config"
	sessionrepo "github.com/truthguard/truthguard/internal/client/repositories/session"
	"github.com/truthguard/truthguard/internal/client/services"
	"github.com/truthguard/truthguard/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config   *config.Config
	client   api.Client
	session  *services.SessionManager
	verifier *services.VerificationController
	feeds    *services.FeedService
	chat     *services.ChatService
	log      logging.Logger
	reader   *bufio.Reader
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := sessionrepo.InitDatabase(ctx, cfg.StorePath)
	if err != nil {
		log.Error(ctx, "error initializing session store", "error", err)
		return nil, err
	}

	apiClient := api.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout)
	repo := sessionrepo.NewSQLiteRepository(db)

	sm := services.NewSessionManager(apiClient, repo, log)
	app := &App{
		config:   cfg,
		client:   apiClient,
		session:  sm,
		verifier: services.NewVerificationController(apiClient, sm, log),
		feeds:    services.NewFeedService(apiClient, log),
		chat:     services.NewChatService(apiClient, log),
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
	}

	// Navigation back to the entry point when the credential is rejected
	// mid-session; the session manager has already cleared local state.
	sm.OnInvalidated(func() {
		printlnFn("Your session has expired. Please log in again.")
	})

	return app, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.client.Close()

	// The prompt must not render an authenticated surface before the
	// persisted session has been probed.
	if err := a.session.Bootstrap(ctx); err != nil {
		a.log.Error(ctx, "bootstrap failed", "error", err)
	}
	if user := a.session.Session().User; user != nil {
		printlnFn(fmt.Sprintf("Welcome back, %s!", user.Name))
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session.Session().IsAuthenticated
}

// status renders the prompt segment describing the current session.
func (a *App) status() string {
	sess := a.session.Session()
	if sess.IsAuthenticated && sess.User != nil {
		return sess.User.Email
	}
	return "guest"
}
