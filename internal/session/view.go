package session

import "errors"

var ErrUnknownView = errors.New("unknown view")

// View is the finite-state selector for the visible screen.
type View string

const (
	ViewHome    View = "home"
	ViewEarn    View = "earn"
	ViewHistory View = "history"
	ViewProfile View = "profile"
)

func ParseView(raw string) (View, error) {
	switch View(raw) {
	case ViewHome, ViewEarn, ViewHistory, ViewProfile:
		return View(raw), nil
	}
	return "", ErrUnknownView
}

// NavVisible reports whether the bottom navigation is shown for this view.
// The profile screen hides it and exposes a dedicated back transition.
func (v View) NavVisible() bool {
	return v != ViewProfile
}
