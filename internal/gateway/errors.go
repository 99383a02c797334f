package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// APIError is any non-2xx outcome of a gateway call. Message carries
// the server's "message" field when present, the raw body otherwise.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("api: status %d: %s", e.StatusCode, e.Message)
}

// newAPIError drains the response body looking for the {"message": ...}
// error shape the API uses.
func newAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<10))
	if err != nil || len(body) == 0 {
		return apiErr
	}

	var payload struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil && payload.Message != "" {
		apiErr.Message = payload.Message
	} else {
		apiErr.Message = string(body)
	}
	return apiErr
}

// IsStatus reports whether err is an *APIError with the given status.
func IsStatus(err error, statusCode int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == statusCode
}

// IsUnauthorized reports a 401 outcome (bad or missing credentials).
func IsUnauthorized(err error) bool {
	return IsStatus(err, http.StatusUnauthorized)
}

// IsNotFound reports a 404 outcome.
func IsNotFound(err error) bool {
	return IsStatus(err, http.StatusNotFound)
}

// IsBadRequest reports a 400 outcome (validation or conflict).
func IsBadRequest(err error) bool {
	return IsStatus(err, http.StatusBadRequest)
}
