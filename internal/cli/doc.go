// Package cli is the interactive dietdash terminal client.
//
// NewApp wires configuration, the selected store, the auth service, the
// profile gate and the document reader; App.Run then reads commands until
// the user exits. Every command operates on the App's single Session, so
// the screen printed after each command is whatever the session resolves:
// the welcome text when signed out, the profile form while the profile is
// incomplete, and the requested dashboard page otherwise.
package cli
