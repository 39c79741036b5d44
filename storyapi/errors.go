package storyapi

import (
	"fmt"
	"net/http"

	interrors "github.com/SChristophS/StoryMagic/internal/errors"
)

// APIError is a non-2xx response from the StoryMaker API. It unwraps to
// ErrUnauthorized for 401 responses so an expired token can be detected
// anywhere in the chain.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("story api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("story api: status %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return interrors.ErrUnauthorized
	case http.StatusNotFound:
		return interrors.ErrNotFound
	}
	return interrors.ErrStatus
}
