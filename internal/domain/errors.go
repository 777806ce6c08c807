package domain

import "errors"

var (
	ErrUnknownAction = errors.New("unknown fix action")
	ErrMissingFrom   = errors.New("rename action requires a source path")
	ErrMissingTo     = errors.New("fix action requires a destination path")
)
