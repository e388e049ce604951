package provider

import (
	"errors"
	"fmt"
)

var ErrMalformedResponse = errors.New("malformed provider response")

// StatusError is returned when the provider answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("provider returned status %d: %s", e.StatusCode, e.Body)
}
