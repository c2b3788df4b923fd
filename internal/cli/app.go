package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/dietdash/internal/accounts"
	"github.com/dmitrijs2005/dietdash/internal/auth"
	"github.com/dmitrijs2005/dietdash/internal/chat"
	"github.com/dmitrijs2005/dietdash/internal/config"
	"github.com/dmitrijs2005/dietdash/internal/cryptox"
	"github.com/dmitrijs2005/dietdash/internal/dashboard"
	"github.com/dmitrijs2005/dietdash/internal/dashboard/remote"
	"github.com/dmitrijs2005/dietdash/internal/logging"
	"github.com/dmitrijs2005/dietdash/internal/profile"
	"github.com/dmitrijs2005/dietdash/internal/session"
	"github.com/dmitrijs2005/dietdash/internal/storage"
)

type authService interface {
	Register(ctx context.Context, email, password, confirm string) error
	Login(ctx context.Context, sess *session.Session, email, password string) error
	Logout(ctx context.Context, sess *session.Session) error
}

type profileGate interface {
	Submit(ctx context.Context, sess *session.Session, info accounts.PersonalInfo) error
}

type App struct {
	session   *session.Session
	auth      authService
	profile   profileGate
	documents dashboard.Reader
	chat      *chat.Conversation
	logger    logging.Logger
	timeout   time.Duration

	reader *bufio.Reader
	out    io.Writer
	closer func(context.Context) error
}

// NewApp opens the configured store and builds the services on top of it.
// When cfg.APIEndpoint is set, dashboard documents come from the remote API
// instead of the store.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	backend, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	hasher := cryptox.NewPasswordHasher(cfg.BcryptCost)
	authSvc, err := auth.NewService(backend.Accounts, hasher, logger, cfg.StoreTimeout)
	if err != nil {
		_ = backend.Close(ctx)
		return nil, err
	}

	documents := backend.Documents
	if cfg.APIEndpoint != "" {
		client, err := remote.NewClient(cfg.APIEndpoint, cfg.StoreTimeout)
		if err != nil {
			_ = backend.Close(ctx)
			return nil, err
		}
		logger.Info(ctx, "dashboard documents served by remote API", "endpoint", cfg.APIEndpoint)
		documents = client
	}

	a := newApp(authSvc, profile.NewGate(backend.Accounts, logger, cfg.StoreTimeout), documents, logger, cfg.StoreTimeout, os.Stdin, os.Stdout)
	a.closer = backend.Close
	return a, nil
}

func newApp(as authService, gate profileGate, docs dashboard.Reader, logger logging.Logger, timeout time.Duration, in io.Reader, out io.Writer) *App {
	sess := session.New()
	return &App{
		session:   sess,
		auth:      as,
		profile:   gate,
		documents: docs,
		chat:      chat.NewConversation(),
		logger:    logger.With("module", "cli", "session", sess.ID()),
		timeout:   timeout,
		reader:    bufio.NewReader(in),
		out:       out,
	}
}

// Run prints the banner and blocks in the command loop until the user exits
// or input ends. The store is closed on return.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if a.closer != nil {
			if err := a.closer(context.Background()); err != nil {
				a.logger.Warn(ctx, "closing store", "error", err)
			}
		}
	}()

	fmt.Fprintln(a.out, "AI Health Assistant - diet and meal dashboard (type 'help' for commands)")
	a.render(ctx, a.session.Screen())
	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) state() session.State {
	return a.session.State()
}

func (a *App) status() string {
	u := a.session.User()
	if u == nil {
		return "(guest)"
	}
	return fmt.Sprintf("(%s | %s)", u.Email, a.session.Screen())
}

func (a *App) readerCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, a.timeout)
}
