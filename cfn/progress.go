package cfn

// OperationStatus is the state of a handler invocation as reported back to the service.
type OperationStatus string

const (
	// StatusPending indicates the operation has not started yet.
	StatusPending OperationStatus = "PENDING"

	// StatusInProgress indicates the operation is not finished, the service should re-invoke the handler with the
	// returned callback context after the returned delay.
	StatusInProgress OperationStatus = "IN_PROGRESS"

	// StatusSuccess indicates the operation completed successfully.
	StatusSuccess OperationStatus = "SUCCESS"

	// StatusFailed indicates the operation failed terminally.
	StatusFailed OperationStatus = "FAILED"
)

// ProgressEvent is the result of a single handler invocation, it is returned to the service verbatim.
type ProgressEvent struct {
	Status               OperationStatus  `json:"status"`
	ErrorCode            HandlerErrorCode `json:"errorCode,omitempty"`
	Message              string           `json:"message,omitempty"`
	CallbackContext      map[string]any   `json:"callbackContext,omitempty"`
	CallbackDelaySeconds int64            `json:"callbackDelaySeconds,omitempty"`
	ResourceModel        any              `json:"resourceModel,omitempty"`

	// ResourceModels is a pointer so that an empty listing page ('[]') is distinguishable from an operation which
	// returns no listing at all (omitted).
	ResourceModels *[]any `json:"resourceModels,omitempty"`

	NextToken string `json:"nextToken,omitempty"`
}

// NewSuccessEvent returns a terminal success event carrying the given resource model.
func NewSuccessEvent(model any) ProgressEvent {
	return ProgressEvent{Status: StatusSuccess, ResourceModel: model}
}

// NewInProgressEvent returns a non-terminal event instructing the service to re-invoke the handler with the given
// callback context after the given delay.
func NewInProgressEvent(model any, callbackContext map[string]any, delaySeconds int64) ProgressEvent {
	return ProgressEvent{
		Status:               StatusInProgress,
		CallbackContext:      callbackContext,
		CallbackDelaySeconds: delaySeconds,
		ResourceModel:        model,
	}
}

// NewFailedEvent returns a terminal failure event with the given error code/message.
func NewFailedEvent(errorCode HandlerErrorCode, message string) ProgressEvent {
	return ProgressEvent{Status: StatusFailed, ErrorCode: errorCode, Message: message}
}

// NewListEvent returns a terminal success event carrying a single page of resource models, the next token is empty
// when this is the final page.
func NewListEvent(models []any, nextToken string) ProgressEvent {
	if models == nil {
		models = make([]any, 0)
	}

	return ProgressEvent{Status: StatusSuccess, ResourceModels: &models, NextToken: nextToken}
}
