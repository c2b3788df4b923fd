// Package auth implements registration, login and logout on top of an
// account store, updating the caller's Session.
package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dmitrijs2005/dietdash/internal/accounts"
	"github.com/dmitrijs2005/dietdash/internal/apperr"
	"github.com/dmitrijs2005/dietdash/internal/credentials"
	"github.com/dmitrijs2005/dietdash/internal/cryptox"
	"github.com/dmitrijs2005/dietdash/internal/logging"
	"github.com/dmitrijs2005/dietdash/internal/session"
)

// Messages reported to the user.
const (
	MsgAllFieldsRequired   = "All fields are required"
	MsgInvalidEmail        = "Invalid email format"
	MsgPasswordsMismatch   = "Passwords do not match"
	MsgPasswordTooLong     = "Password must be at most 72 bytes long"
	MsgUserExists          = "User already exists"
	MsgCredentialsRequired = "Email and password are required"
	MsgInvalidCredentials  = "invalid credentials"
	MsgNoSession           = "No active session"
)

// Hasher is the password hashing contract; *cryptox.PasswordHasher
// satisfies it.
type Hasher interface {
	Hash(password []byte) (string, error)
	Verify(password []byte, hash string) bool
}

type Service struct {
	accounts accounts.Repository
	hasher   Hasher
	logger   logging.Logger
	timeout  time.Duration
	now      func() time.Time

	// dummyHash is compared against when the email is unknown so that both
	// failure paths cost one bcrypt comparison.
	dummyHash string
}

// NewService builds the auth service. timeout bounds every store call;
// zero means no extra bound beyond the caller's context.
func NewService(repo accounts.Repository, hasher Hasher, logger logging.Logger, timeout time.Duration) (*Service, error) {
	dummy, err := hasher.Hash([]byte("dummy-password-for-timing"))
	if err != nil {
		return nil, err
	}
	return &Service{
		accounts:  repo,
		hasher:    hasher,
		logger:    logger.With("module", "auth"),
		timeout:   timeout,
		now:       time.Now,
		dummyHash: dummy,
	}, nil
}

func (s *Service) storeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

// Register validates the sign-up form and creates an account with
// profile_completed=false. The store's unique index is authoritative for
// duplicates: a lost race still surfaces as a conflict.
func (s *Service) Register(ctx context.Context, email, password, confirm string) error {
	if email == "" || password == "" || confirm == "" {
		return apperr.Validation(MsgAllFieldsRequired)
	}
	if !credentials.IsValidEmail(email) {
		return apperr.Validation(MsgInvalidEmail)
	}
	if password != confirm {
		return apperr.Validation(MsgPasswordsMismatch)
	}
	if ok, reason := credentials.IsStrongPassword(password); !ok {
		return apperr.Validation(reason)
	}

	sctx, cancel := s.storeCtx(ctx)
	defer cancel()

	_, err := s.accounts.FindByEmail(sctx, email)
	switch {
	case err == nil:
		return apperr.Conflict(MsgUserExists, accounts.ErrAlreadyExists)
	case !errors.Is(err, accounts.ErrNotFound):
		s.logger.Error(ctx, "account lookup failed", "error", err)
		return apperr.Storage("find account", err)
	}

	hash, err := s.hasher.Hash([]byte(password))
	if err != nil {
		if errors.Is(err, cryptox.ErrPasswordTooLong) {
			return apperr.Validation(MsgPasswordTooLong)
		}
		s.logger.Error(ctx, "password hashing failed", "error", err)
		return apperr.Storage("hash password", err)
	}

	account := &accounts.Account{
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.accounts.Create(sctx, account); err != nil {
		if errors.Is(err, accounts.ErrAlreadyExists) {
			return apperr.Conflict(MsgUserExists, err)
		}
		s.logger.Error(ctx, "account insert failed", "error", err)
		return apperr.Storage("insert account", err)
	}

	s.logger.Info(ctx, "account registered", "account_id", account.ID)
	return nil
}

// Login verifies the credentials and signs sess in. Unknown emails and wrong
// passwords produce the same error.
func (s *Service) Login(ctx context.Context, sess *session.Session, email, password string) error {
	if sess == nil {
		return apperr.Validation(MsgNoSession)
	}
	if email == "" || password == "" {
		return apperr.Validation(MsgCredentialsRequired)
	}

	sctx, cancel := s.storeCtx(ctx)
	defer cancel()

	account, err := s.accounts.FindByEmail(sctx, email)
	if err != nil {
		if errors.Is(err, accounts.ErrNotFound) {
			s.hasher.Verify([]byte(password), s.dummyHash)
			s.logger.Info(ctx, "login rejected", "session", sess.ID())
			return apperr.Auth(MsgInvalidCredentials)
		}
		s.logger.Error(ctx, "account lookup failed", "error", err)
		return apperr.Storage("find account", err)
	}

	if !s.hasher.Verify([]byte(password), account.PasswordHash) {
		s.logger.Info(ctx, "login rejected", "session", sess.ID())
		return apperr.Auth(MsgInvalidCredentials)
	}

	sess.Authenticate(session.User{
		ID:               account.ID,
		Email:            account.Email,
		ProfileCompleted: account.ProfileCompleted,
	})
	s.logger.Info(ctx, "login succeeded", "session", sess.ID(), "account_id", account.ID, "state", sess.State().String())
	return nil
}

// Logout clears sess. It only touches client-side state, so the one failure
// it can report (no session) is logged as a warning.
func (s *Service) Logout(ctx context.Context, sess *session.Session) error {
	if sess == nil {
		s.logger.Warn(ctx, "logout without a session")
		return apperr.Validation(MsgNoSession)
	}
	if sess.Authenticated() {
		s.logger.Info(ctx, "logged out", "session", sess.ID())
	}
	sess.Clear()
	return nil
}

// NormalizeEmail trims surrounding whitespace. Case is preserved because
// the stored documents key on the address as typed.
func NormalizeEmail(email string) string {
	return strings.TrimSpace(email)
}
