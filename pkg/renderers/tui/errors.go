package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNilForm is returned when Run is given no form.
	ErrNilForm = errors.New("tui: form is nil")
)
