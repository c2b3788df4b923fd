// Package profile implements the mandatory profile-completion step that
// follows the first sign-in.
package profile

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dmitrijs2005/dietdash/internal/accounts"
	"github.com/dmitrijs2005/dietdash/internal/apperr"
	"github.com/dmitrijs2005/dietdash/internal/logging"
	"github.com/dmitrijs2005/dietdash/internal/session"
)

// Messages reported to the user.
const (
	MsgCompleted     = "Profile completed successfully!"
	MsgNotSignedIn   = "Please sign in first"
	MsgAlreadyFilled = "Profile is already complete"
)

type Gate struct {
	accounts accounts.Repository
	logger   logging.Logger
	timeout  time.Duration
}

func NewGate(repo accounts.Repository, logger logging.Logger, timeout time.Duration) *Gate {
	return &Gate{accounts: repo, logger: logger.With("module", "profile"), timeout: timeout}
}

// Submit validates info, stores it together with profile_completed=true and
// moves sess to AuthenticatedComplete at Home. On any error the session is
// left untouched so the form is shown again.
func (g *Gate) Submit(ctx context.Context, sess *session.Session, info accounts.PersonalInfo) error {
	if sess == nil || !sess.Authenticated() {
		return apperr.Validation(MsgNotSignedIn)
	}
	if sess.State() != session.AuthenticatedIncomplete {
		return apperr.Validation(MsgAlreadyFilled)
	}

	info.Name = strings.TrimSpace(info.Name)
	if err := info.Validate(); err != nil {
		return apperr.Validation(err.Error())
	}

	sctx := ctx
	if g.timeout > 0 {
		var cancel context.CancelFunc
		sctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	email := sess.User().Email
	if err := g.accounts.CompleteProfile(sctx, email, info); err != nil {
		if errors.Is(err, accounts.ErrNotFound) {
			g.logger.Warn(ctx, "account vanished before profile update", "session", sess.ID())
		} else {
			g.logger.Error(ctx, "profile update failed", "error", err)
		}
		return apperr.Storage("complete profile", err)
	}

	if err := sess.CompleteProfile(); err != nil {
		return err
	}
	g.logger.Info(ctx, "profile completed", "session", sess.ID(), "account_id", sess.User().ID)
	return nil
}
