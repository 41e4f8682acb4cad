package adminapi

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound is surfaced through APIError.Unwrap so callers can match a
// remote 404 with errors.Is regardless of which endpoint produced it.
var ErrNotFound = errors.New("resource not found")

// APIError is a non-2xx response from the admin API.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("admin api: status %d", e.Status)
	}
	return fmt.Sprintf("admin api: status %d: %s", e.Status, e.Body)
}

func (e *APIError) Unwrap() error {
	if e.Status == http.StatusNotFound {
		return ErrNotFound
	}
	return nil
}

// AsAPIError unwraps err into an APIError when the admin API responded at
// all; transport failures return false.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsStatus reports whether err is an admin API response with the given
// status code.
func IsStatus(err error, status int) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Status == status
}
