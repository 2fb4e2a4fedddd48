package objerr

import "errors"

// ErrEndpointResolutionFailed is returned if we've failed to resolve the storage endpoint for some reason.
var ErrEndpointResolutionFailed = errors.New("endpoint domain name resolution failed, " +
	"check that the endpoint/region are correct and that you have a stable network connection")
