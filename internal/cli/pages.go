package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/dietdash/internal/apperr"
	"github.com/dmitrijs2005/dietdash/internal/dashboard"
	"github.com/dmitrijs2005/dietdash/internal/session"
)

// Show navigates to screen and prints whatever the session resolves to.
func (a *App) Show(ctx context.Context, screen session.Screen) error {
	return a.display(ctx, a.session.Navigate(screen))
}

// render is display for callers that have no one to return the error to.
func (a *App) render(ctx context.Context, screen session.Screen) {
	report(a.display(ctx, screen))
}

func (a *App) display(ctx context.Context, screen session.Screen) error {
	switch screen {
	case session.ScreenWelcome:
		fmt.Fprintln(a.out, "Please login or create an account to continue (type 'help').")
		return nil
	case session.ScreenProfileForm:
		return a.CompleteProfile(ctx)
	}

	userID := a.session.User().ID
	rctx, cancel := a.readerCtx(ctx)
	defer cancel()

	var err error
	switch screen {
	case session.ScreenHome:
		var p *dashboard.Profile
		if p, err = a.documents.Profile(rctx, userID); err == nil {
			if p.Email == "" {
				p.Email = a.session.User().Email
			}
			dashboard.RenderProfile(a.out, p)
		}
	case session.ScreenDietPlans:
		var d *dashboard.DietPlan
		if d, err = a.documents.DietPlan(rctx, userID); err == nil {
			dashboard.RenderDietPlan(a.out, d)
		}
	case session.ScreenMealLogs:
		var l *dashboard.MealLog
		if l, err = a.documents.MealLog(rctx, userID); err == nil {
			dashboard.RenderMealLog(a.out, l)
		}
	}
	return a.pageError(ctx, screen, err)
}

func (a *App) pageError(ctx context.Context, screen session.Screen, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, dashboard.ErrNotFound) {
		switch screen {
		case session.ScreenDietPlans:
			fmt.Fprintln(a.out, dashboard.MsgNoDietPlan)
		case session.ScreenMealLogs:
			fmt.Fprintln(a.out, dashboard.MsgNoMeals)
		default:
			fmt.Fprintln(a.out, dashboard.MsgUserNotFound)
		}
		return nil
	}
	a.logger.Error(ctx, "loading page failed", "screen", string(screen), "error", err)
	if errors.Is(err, dashboard.ErrMalformed) {
		return apperr.Validation(fmt.Sprintf("The %s document could not be displayed", screen))
	}
	return apperr.Storage("load "+string(screen), err)
}

// Chat sends message to the assistant and prints the reply.
func (a *App) Chat(_ context.Context, message string) error {
	reply, err := a.chat.Send(message)
	if err != nil {
		return apperr.Validation("Usage: chat <message>")
	}
	fmt.Fprintf(a.out, "assistant: %s\n", reply.Content)
	return nil
}

// History prints the conversation of this session, oldest first.
func (a *App) History(_ context.Context) error {
	messages := a.chat.History()
	if len(messages) == 0 {
		fmt.Fprintln(a.out, "No messages yet.")
		return nil
	}
	for _, m := range messages {
		fmt.Fprintf(a.out, "%s: %s\n", m.Role, m.Content)
	}
	return nil
}
