package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/dietdash/internal/apperr"
	"github.com/dmitrijs2005/dietdash/internal/session"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. *App satisfies
// it; tests provide a stub.
type execIface interface {
	state() session.State
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	CompleteProfile(ctx context.Context) error
	Show(ctx context.Context, screen session.Screen) error
	Chat(ctx context.Context, message string) error
	History(ctx context.Context) error
}

const (
	helpGuest      = "Available commands: register, login, help, exit"
	helpIncomplete = "Available commands: profile, logout, help, exit"
	helpComplete   = "Available commands: home, diets, meals, chat <message>, history, logout, help, exit"
)

// runREPL reads one command per line and dispatches it to a. Commands that
// do not apply to the current session state are refused with a hint. The
// loop ends on EOF, on "exit"/"quit", or when ctx is done.
//
//	Signed out:           register, login
//	Profile incomplete:   profile, logout (any page resolves to the form)
//	Profile complete:     home, diets, meals, chat <message>, history, logout
//	Always:               help, exit | quit
//
// Handler errors are printed as their user-facing message and never stop
// the loop.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("dietdash %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := strings.ToLower(parts[0])
		rest := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), parts[0]))
		state := a.state()

		switch {
		case cmd == "help":
			switch state {
			case session.Unauthenticated:
				printlnFn(helpGuest)
			case session.AuthenticatedIncomplete:
				printlnFn(helpIncomplete)
			default:
				printlnFn(helpComplete)
			}

		case cmd == "exit" || cmd == "quit":
			printlnFn("Bye!")
			return

		case cmd == "register" || cmd == "login":
			if state != session.Unauthenticated {
				printlnFn("Already signed in; logout first")
				continue
			}
			if cmd == "register" {
				report(a.Register(ctx))
			} else {
				report(a.Login(ctx))
			}

		case state == session.Unauthenticated:
			if isKnown(cmd) {
				printlnFn("Please sign in first (type 'help')")
			} else {
				printlnFn("Unknown command:", cmd)
			}

		case cmd == "logout":
			report(a.Logout(ctx))

		case cmd == "profile":
			if state != session.AuthenticatedIncomplete {
				printlnFn("Profile is already complete")
				continue
			}
			report(a.CompleteProfile(ctx))

		case cmd == "home":
			report(a.Show(ctx, session.ScreenHome))

		case cmd == "diets":
			report(a.Show(ctx, session.ScreenDietPlans))

		case cmd == "meals":
			report(a.Show(ctx, session.ScreenMealLogs))

		case cmd == "chat":
			if state != session.AuthenticatedComplete {
				report(a.Show(ctx, session.ScreenHome))
				continue
			}
			if rest == "" {
				printlnFn("Usage: chat <message>")
				continue
			}
			report(a.Chat(ctx, rest))

		case cmd == "history":
			if state != session.AuthenticatedComplete {
				report(a.Show(ctx, session.ScreenHome))
				continue
			}
			report(a.History(ctx))

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func isKnown(cmd string) bool {
	switch cmd {
	case "logout", "profile", "home", "diets", "meals", "chat", "history":
		return true
	}
	return false
}

// report prints err the way the user should see it.
func report(err error) {
	if err == nil {
		return
	}
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		printlnFn(appErr.Message)
		return
	}
	printlnFn("Error:", err)
}
