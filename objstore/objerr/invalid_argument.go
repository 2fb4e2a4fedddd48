package objerr

import (
	"errors"
	"fmt"
)

// InvalidArgumentError indicates the service rejected one of the supplied request parameters; retrying will not help,
// the request itself must change.
type InvalidArgumentError struct {
	// Code is the service API error code describing the rejected parameter.
	Code string

	// Message is the human readable description returned by the service.
	Message string
}

// Error implements the 'error' interface.
func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid request rejected by the service (%s): %s", e.Code, e.Message)
}

// IsInvalidArgumentError returns a boolean indicating whether the given error is an 'InvalidArgumentError'.
func IsInvalidArgumentError(err error) bool {
	var invalidArgument *InvalidArgumentError
	return errors.As(err, &invalidArgument)
}
