package profile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/dietdash/internal/accounts"
	"github.com/dmitrijs2005/dietdash/internal/apperr"
	"github.com/dmitrijs2005/dietdash/internal/logging"
	"github.com/dmitrijs2005/dietdash/internal/session"
	"github.com/dmitrijs2005/dietdash/internal/storage/memory"
)

func validInfo() accounts.PersonalInfo {
	return accounts.PersonalInfo{
		Name:              "  Grace Hopper ",
		Age:               45,
		Gender:            accounts.GenderFemale,
		HeightCM:          160,
		WeightKG:          55,
		BodyFatPercentage: 22.5,
	}
}

func signedIn(t *testing.T, repo *memory.Store, email string) *session.Session {
	t.Helper()
	a := &accounts.Account{Email: email, PasswordHash: "h"}
	require.NoError(t, repo.Create(context.Background(), a))
	s := session.New()
	s.Authenticate(session.User{ID: a.ID, Email: a.Email, ProfileCompleted: a.ProfileCompleted})
	return s
}

type failingRepo struct {
	accounts.Repository
	err error
}

func (f failingRepo) CompleteProfile(context.Context, string, accounts.PersonalInfo) error {
	return f.err
}

func TestSubmit_Success(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	sess := signedIn(t, repo, "g@h.com")
	g := NewGate(repo, logging.Nop(), time.Second)

	require.NoError(t, g.Submit(ctx, sess, validInfo()))

	assert.Equal(t, session.AuthenticatedComplete, sess.State())
	assert.Equal(t, session.ScreenHome, sess.Screen())

	stored, err := repo.FindByEmail(ctx, "g@h.com")
	require.NoError(t, err)
	assert.True(t, stored.ProfileCompleted)
	require.NotNil(t, stored.PersonalInfo)
	assert.Equal(t, "Grace Hopper", stored.PersonalInfo.Name)
	assert.InDelta(t, 22.5, stored.PersonalInfo.BodyFatPercentage, 1e-9)
}

func TestSubmit_ValidationLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	sess := signedIn(t, repo, "g@h.com")
	g := NewGate(repo, logging.Nop(), 0)

	info := validInfo()
	info.Age = 0
	err := g.Submit(ctx, sess, info)
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	assert.Equal(t, "Age must be at least 1", err.Error())

	assert.Equal(t, session.AuthenticatedIncomplete, sess.State())
	assert.Equal(t, session.ScreenProfileForm, sess.Navigate(session.ScreenDietPlans))

	stored, _ := repo.FindByEmail(ctx, "g@h.com")
	assert.False(t, stored.ProfileCompleted)
}

func TestSubmit_StorageFailure(t *testing.T) {
	for _, cause := range []error{errors.New("write concern"), accounts.ErrNotFound} {
		repo := memory.New()
		sess := signedIn(t, repo, "g@h.com")
		g := NewGate(failingRepo{Repository: repo, err: cause}, logging.Nop(), time.Second)

		err := g.Submit(context.Background(), sess, validInfo())
		require.Error(t, err)
		assert.Equal(t, apperr.KindStorage, apperr.KindOf(err))
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, session.AuthenticatedIncomplete, sess.State())
	}
}

func TestSubmit_WrongState(t *testing.T) {
	repo := memory.New()
	g := NewGate(repo, logging.Nop(), 0)

	err := g.Submit(context.Background(), session.New(), validInfo())
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	assert.Equal(t, MsgNotSignedIn, err.Error())

	err = g.Submit(context.Background(), nil, validInfo())
	assert.Equal(t, MsgNotSignedIn, err.Error())

	sess := session.New()
	sess.Authenticate(session.User{ID: "1", Email: "x@y.com", ProfileCompleted: true})
	err = g.Submit(context.Background(), sess, validInfo())
	assert.Equal(t, MsgAlreadyFilled, err.Error())
}
