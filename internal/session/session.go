// Package session holds the per-connection authentication and navigation
// state of the dashboard.
//
// A Session is created when a user connection starts (one per CLI run) and is
// passed explicitly to every handler. It never stores the credential hash,
// only a reference to the signed-in account.
//
// States and transitions:
//
//	Unauthenticated --Authenticate--> AuthenticatedIncomplete | AuthenticatedComplete
//	AuthenticatedIncomplete --CompleteProfile--> AuthenticatedComplete (screen Home)
//	AuthenticatedComplete --Navigate(screen)--> AuthenticatedComplete
//	Authenticated* --Clear--> Unauthenticated
//
// While the profile is incomplete every navigation resolves to ProfileForm.
package session

import (
	"errors"

	"github.com/google/uuid"
)

// State is the coarse authentication state of a session.
type State int

const (
	Unauthenticated State = iota
	AuthenticatedIncomplete
	AuthenticatedComplete
)

func (s State) String() string {
	switch s {
	case AuthenticatedIncomplete:
		return "authenticated-incomplete"
	case AuthenticatedComplete:
		return "authenticated-complete"
	default:
		return "unauthenticated"
	}
}

// Screen selects what the interaction layer renders.
type Screen string

const (
	ScreenHome        Screen = "Home"
	ScreenDietPlans   Screen = "Diet plans"
	ScreenMealLogs    Screen = "Meal logs"
	ScreenProfileForm Screen = "Complete your profile"
	ScreenWelcome     Screen = "Welcome"
)

// ErrInvalidTransition is returned when an operation is not allowed in the
// session's current state.
var ErrInvalidTransition = errors.New("invalid session transition")

// User is the session's reference to the signed-in account.
type User struct {
	ID               string
	Email            string
	ProfileCompleted bool
}

type Session struct {
	id     string
	user   *User
	screen Screen
}

// New returns an unauthenticated session at the Home screen.
func New() *Session {
	return &Session{id: uuid.NewString(), screen: ScreenHome}
}

func (s *Session) ID() string {
	return s.id
}

// User returns a copy of the signed-in account reference, or nil.
func (s *Session) User() *User {
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Session) State() State {
	switch {
	case s.user == nil:
		return Unauthenticated
	case !s.user.ProfileCompleted:
		return AuthenticatedIncomplete
	default:
		return AuthenticatedComplete
	}
}

func (s *Session) Authenticated() bool {
	return s.user != nil
}

// Screen returns the screen that should be rendered now. This is the
// selected screen only in AuthenticatedComplete.
func (s *Session) Screen() Screen {
	switch s.State() {
	case Unauthenticated:
		return ScreenWelcome
	case AuthenticatedIncomplete:
		return ScreenProfileForm
	default:
		return s.screen
	}
}

// Authenticate signs u in and resets navigation to Home.
func (s *Session) Authenticate(u User) {
	s.user = &u
	s.screen = ScreenHome
}

// CompleteProfile flips the cached profile flag and lands on Home.
func (s *Session) CompleteProfile() error {
	if s.State() != AuthenticatedIncomplete {
		return ErrInvalidTransition
	}
	s.user.ProfileCompleted = true
	s.screen = ScreenHome
	return nil
}

// Navigate selects screen and returns the screen actually shown. Requests
// made before the profile is complete are redirected and leave the
// selection untouched.
func (s *Session) Navigate(screen Screen) Screen {
	if s.State() != AuthenticatedComplete {
		return s.Screen()
	}
	switch screen {
	case ScreenHome, ScreenDietPlans, ScreenMealLogs:
		s.screen = screen
	}
	return s.screen
}

// Clear signs the user out. Clearing an unauthenticated session is a no-op.
func (s *Session) Clear() {
	s.user = nil
	s.screen = ScreenHome
}
