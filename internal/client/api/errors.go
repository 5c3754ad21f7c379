package api

import (
	"errors"
	"fmt"
)

// RequestError is a normalized service rejection: any 4xx/5xx that is not a
// global authorization failure. Detail carries the service-provided message
// when the body had one.
type RequestError struct {
	Status int
	Detail string
}

func (e *RequestError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("request failed (%d): %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("request failed (%d)", e.Status)
}

// Detail extracts the service-provided rejection message from err, or ""
// when none is available (network failures, timeouts, malformed bodies).
func Detail(err error) string {
	var re *RequestError
	if errors.As(err, &re) {
		return re.Detail
	}
	return ""
}
