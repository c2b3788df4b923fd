package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/dietdash/internal/auth"
	"github.com/dmitrijs2005/dietdash/internal/cryptox"
)

// getSimpleText and getPassword are indirections swapped out in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register asks for email, password and confirmation and creates the
// account. It does not sign the user in.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Password")
	if err != nil {
		return err
	}
	defer cryptox.WipeByteArray(password)

	confirm, err := getPassword(a.out, "Confirm Password")
	if err != nil {
		return err
	}
	defer cryptox.WipeByteArray(confirm)

	if err := a.auth.Register(ctx, auth.NormalizeEmail(email), string(password), string(confirm)); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Registration successful! Please log in.")
	return nil
}

// Login signs the session in and shows the screen it resolves to: the
// profile form for new accounts, Home otherwise.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Password")
	if err != nil {
		return err
	}
	defer cryptox.WipeByteArray(password)

	if err := a.auth.Login(ctx, a.session, auth.NormalizeEmail(email), string(password)); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", a.session.User().Email)
	a.render(ctx, a.session.Screen())
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx, a.session); err != nil {
		return err
	}
	a.chat.Reset()
	fmt.Fprintln(a.out, "Logged out successfully")
	return nil
}
