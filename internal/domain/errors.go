package domain

import "errors"

var (
	// ErrInvalidURL is returned when the page URL cannot be parsed
	ErrInvalidURL = errors.New("invalid URL format")
	// ErrInvalidDomain is returned when the host is not a valid registrable domain
	ErrInvalidDomain = errors.New("invalid domain format")
)
