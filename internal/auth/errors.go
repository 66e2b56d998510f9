package auth

import "errors"

var (
	ErrMissingAPIKey = errors.New("no API key provided")
	ErrInvalidAPIKey = errors.New("invalid API key")
)
