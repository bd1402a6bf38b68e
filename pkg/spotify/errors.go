package spotify

import (
	"fmt"
	"net/http"
)

// Error represents an error response from the Spotify Web API.
type Error struct {
	Status  int    // HTTP status code
	Message string // Error message from Spotify
}

// Error returns the error message.
func (e *Error) Error() string {
	return fmt.Sprintf("spotify: error %d: %s", e.Status, e.Message)
}

// Is matches other *Error values by status code, so errors.Is works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Status == t.Status
}

// Temporary reports whether the request may succeed if retried later.
// Rate limiting (429) and server errors (5xx) are temporary; everything
// else is not.
func (e *Error) Temporary() bool {
	return e.Status == http.StatusTooManyRequests || e.Status >= 500
}
