package objerr

import (
	"errors"
	"fmt"
)

// TooManyRequestsError indicates the service is rate limiting us and the operation should be retried with back-off by
// the caller.
type TooManyRequestsError struct {
	// Code is the service API error code which triggered the throttle classification.
	Code string
}

// Error implements the 'error' interface.
func (e *TooManyRequestsError) Error() string {
	return fmt.Sprintf("request rate limited by the service (%s), retry with back-off", e.Code)
}

// IsTooManyRequestsError returns a boolean indicating whether the given error is a 'TooManyRequestsError'.
func IsTooManyRequestsError(err error) bool {
	var tooManyRequests *TooManyRequestsError
	return errors.As(err, &tooManyRequests)
}
