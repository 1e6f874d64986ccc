package cli

import (
	"context"

	"github.com/aturkov/jobpilot/internal/models"
)

// Decision is the render policy for a protected view.
type Decision int

const (
	// ShowLoading: the session answer is still pending, show a placeholder.
	ShowLoading Decision = iota
	// RedirectLogin: no authenticated user, send the user to the login entry.
	RedirectLogin
	// Render: an authenticated user is present, run the view.
	Render
)

// Gate decides what a protected view may do, purely from session state.
// Content renders iff loading is finished and a user is present.
func Gate(loading bool, user *models.User) Decision {
	if loading {
		return ShowLoading
	}
	if user == nil {
		return RedirectLogin
	}
	return Render
}

// protected applies the gate before running view. The anonymous branch
// redirects into the login prompt; the view itself never runs without a user.
func (a *App) protected(ctx context.Context, view func(ctx context.Context)) {
	switch Gate(a.sess.Loading(), a.sess.User()) {
	case ShowLoading:
		printlnFn("Still checking your session, try again in a moment...")
	case RedirectLogin:
		printlnFn("Please log in first.")
		a.Login(ctx)
	case Render:
		view(ctx)
	}
}
