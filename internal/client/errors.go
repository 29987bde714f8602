package client

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/macrotrack/macrotrack-console/internal/model"
)

// StatusError is returned when the backend answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Detail     string // from the {"detail": ...} body, if any
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request failed with status code %d", e.StatusCode)
}

func newStatusError(status int, body []byte) *StatusError {
	e := &StatusError{StatusCode: status, Body: body}

	var apiErr model.APIError
	if err := json.Unmarshal(body, &apiErr); err == nil {
		e.Detail = apiErr.Detail
	}
	return e
}

// Detail returns the backend's error detail carried by err, if any.
func Detail(err error) (string, bool) {
	var se *StatusError
	if errors.As(err, &se) && se.Detail != "" {
		return se.Detail, true
	}
	return "", false
}
