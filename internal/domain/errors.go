package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrNotFound       = errors.New("not found")
	ErrAlreadyExists  = errors.New("already exists")
	ErrInvalidRecipe  = errors.New("invalid recipe")
	ErrPageOutOfRange = errors.New("page out of range")
	ErrNoSelection    = errors.New("no recipe selected")
	ErrUnknownEvent   = errors.New("unknown event")
	ErrVoiceDisabled  = errors.New("voice input disabled")
)
