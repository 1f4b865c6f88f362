package app

import "errors"

// Dispatch errors returned by [App.Run] before any backend call is made.
var (
	ErrNoCommand       = errors.New("no command given")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMissingArgument = errors.New("missing argument")
)
