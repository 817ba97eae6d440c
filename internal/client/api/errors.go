package api

import (
	"fmt"
	"net/http"

	"github.com/avolkovs/storekeeper/internal/common"
)

// Error is a backend-rejected request: any HTTP response with status >= 400.
// Message holds the backend's message field when the body carried one, or the
// generic status text otherwise.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

// Unwrap maps well-known statuses to the shared sentinel errors, so callers
// can write errors.Is(err, common.ErrUnauthorized) without importing api.
func (e *Error) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return common.ErrUnauthorized
	case http.StatusForbidden:
		return common.ErrForbidden
	case http.StatusNotFound:
		return common.ErrNotFound
	}
	return nil
}
