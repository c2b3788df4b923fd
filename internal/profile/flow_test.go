package profile_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/dietdash/internal/accounts"
	"github.com/dmitrijs2005/dietdash/internal/auth"
	"github.com/dmitrijs2005/dietdash/internal/cryptox"
	"github.com/dmitrijs2005/dietdash/internal/logging"
	"github.com/dmitrijs2005/dietdash/internal/profile"
	"github.com/dmitrijs2005/dietdash/internal/session"
	"github.com/dmitrijs2005/dietdash/internal/storage/memory"
)

func TestRegisterLoginCompleteLogout(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	svc, err := auth.NewService(repo, cryptox.NewPasswordHasher(bcrypt.MinCost), logging.Nop(), time.Second)
	require.NoError(t, err)
	gate := profile.NewGate(repo, logging.Nop(), time.Second)

	require.NoError(t, svc.Register(ctx, "new@x.io", "Passw0rdX", "Passw0rdX"))

	sess := session.New()
	require.NoError(t, svc.Login(ctx, sess, "new@x.io", "Passw0rdX"))
	require.Equal(t, session.AuthenticatedIncomplete, sess.State())
	assert.Equal(t, session.ScreenProfileForm, sess.Navigate(session.ScreenMealLogs))

	require.NoError(t, gate.Submit(ctx, sess, accounts.PersonalInfo{
		Name: "New User", Age: 28, Gender: accounts.GenderMale, HeightCM: 181, WeightKG: 77, BodyFatPercentage: 15,
	}))
	assert.Equal(t, session.AuthenticatedComplete, sess.State())
	assert.Equal(t, session.ScreenHome, sess.Screen())
	assert.Equal(t, session.ScreenMealLogs, sess.Navigate(session.ScreenMealLogs))

	require.NoError(t, svc.Logout(ctx, sess))
	assert.Equal(t, session.Unauthenticated, sess.State())

	// A fresh sign-in lands on Home directly.
	again := session.New()
	require.NoError(t, svc.Login(ctx, again, "new@x.io", "Passw0rdX"))
	assert.Equal(t, session.AuthenticatedComplete, again.State())
	assert.Equal(t, session.ScreenHome, again.Screen())
}
