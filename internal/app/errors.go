package service

import "errors"

var (
	// ErrSessionNotFound is returned when no session matches the request.
	ErrSessionNotFound = errors.New("session not found")

	// ErrUnknownPlayer is returned for a name that is neither identity.
	ErrUnknownPlayer = errors.New("unknown player")

	// ErrCharacterNotFound is returned for a character absent from the log.
	ErrCharacterNotFound = errors.New("character not found")
)
