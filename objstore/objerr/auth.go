package objerr

import "errors"

var (
	// ErrUnauthenticated is returned if we've sent a request to the service and received a response indicating that
	// we're unauthenticated i.e. the provided credentials are invalid or have expired.
	ErrUnauthenticated = errors.New("failed to authenticate, please check that valid credentials have been provided")

	// ErrUnauthorized is returned if we've successfully authenticated against the service, however, we've attempted an
	// operation where we don't have the valid permissions. This is typically a result of a missing IAM action on the
	// execution role.
	ErrUnauthorized = errors.New("authenticated user does not have the permission to access this resource")
)
