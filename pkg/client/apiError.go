package client

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError is a non-200 response from the dashboard API.
type APIError struct {
	StatusCode int
	Errors     []string
}

func (h APIError) Error() string {
	if len(h.Errors) == 0 {
		return fmt.Sprintf("dashboard api status %d", h.StatusCode)
	}
	return strings.Join(h.Errors, "; ")
}

func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsBadRequest reports whether the query was rejected, e.g. for an unknown
// stat or a non-numeric line.
func IsBadRequest(err error) bool {
	return hasStatus(err, http.StatusBadRequest)
}

func hasStatus(err error, status int) bool {
	var apiErr APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}
