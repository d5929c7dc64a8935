package playlist

import (
	"errors"
	"fmt"
)

// ErrInvalidURL is wrapped when the input is not an http(s) URL
var ErrInvalidURL = errors.New("invalid playlist URL")

// ResolutionError is any failure while fetching a playlist: a malformed URL,
// a network error or an unsupported source
type ResolutionError struct {
	URL string
	Err error
}

// Error implements the error interface
func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolve %q: %v", e.URL, e.Err)
}

// Unwrap returns the underlying cause
func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// IsResolutionError reports whether err is or wraps a ResolutionError
func IsResolutionError(err error) bool {
	var re *ResolutionError
	return errors.As(err, &re)
}
