package cfn

// HandlerErrorCode classifies a failed handler invocation, the service uses it to decide whether the operation can be
// retried and what to surface to the caller.
type HandlerErrorCode string

const (
	// ErrCodeAlreadyExists indicates a create was attempted for a resource which already exists.
	ErrCodeAlreadyExists HandlerErrorCode = "AlreadyExists"

	// ErrCodeInvalidRequest indicates the desired state is invalid, retrying cannot succeed without a change to the
	// request itself.
	ErrCodeInvalidRequest HandlerErrorCode = "InvalidRequest"

	// ErrCodeNotFound indicates the resource does not exist.
	ErrCodeNotFound HandlerErrorCode = "NotFound"

	// ErrCodeAccessDenied indicates the vended credentials are not authorized to perform the operation.
	ErrCodeAccessDenied HandlerErrorCode = "AccessDenied"

	// ErrCodeInvalidCredentials indicates the vended credentials were rejected outright.
	ErrCodeInvalidCredentials HandlerErrorCode = "InvalidCredentials"

	// ErrCodeNotUpdatable indicates an update attempted to change a create-only or read-only property.
	ErrCodeNotUpdatable HandlerErrorCode = "NotUpdatable"

	// ErrCodeResourceConflict indicates the operation conflicted with another mutation of the same resource.
	ErrCodeResourceConflict HandlerErrorCode = "ResourceConflict"

	// ErrCodeThrottling indicates the downstream service is rate limiting us, the operation may be retried with
	// back-off.
	ErrCodeThrottling HandlerErrorCode = "Throttling"

	// ErrCodeServiceLimitExceeded indicates a downstream service quota was hit.
	ErrCodeServiceLimitExceeded HandlerErrorCode = "ServiceLimitExceeded"

	// ErrCodeNotStabilized indicates the resource did not reach the expected state in time.
	ErrCodeNotStabilized HandlerErrorCode = "NotStabilized"

	// ErrCodeGeneralServiceException indicates a downstream service failure which does not fit a more specific code.
	ErrCodeGeneralServiceException HandlerErrorCode = "GeneralServiceException"

	// ErrCodeServiceInternalError indicates a transient downstream service fault.
	ErrCodeServiceInternalError HandlerErrorCode = "ServiceInternalError"

	// ErrCodeNetworkFailure indicates the downstream service could not be reached.
	ErrCodeNetworkFailure HandlerErrorCode = "NetworkFailure"

	// ErrCodeInternalFailure indicates a fault within the handler itself.
	ErrCodeInternalFailure HandlerErrorCode = "InternalFailure"
)
