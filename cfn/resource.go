// Package cfn implements the runtime contract between the CloudFormation registry and the lifecycle handlers of a
// resource type: envelope decoding, credential selection, dispatch and progress reporting.
package cfn

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
)

// HandlerFunc is a single lifecycle handler.
//
// NOTE: Failures are reported in-band via a failed progress event, a handler which needs to surface an error converts
// it into an error code first.
type HandlerFunc func(ctx context.Context, request *Request) ProgressEvent

// Resource dispatches invocation envelopes to the lifecycle handlers registered for a resource type.
type Resource struct {
	typeName string
	handlers map[Action]HandlerFunc
	logger   *slog.Logger
}

// ResourceOptions encapsulates the options available when creating a new Resource.
type ResourceOptions struct {
	// TypeName is the registered type name, events carrying a different type name are rejected.
	//
	// NOTE: Required
	TypeName string

	// Create/Read/Update/Delete/List are the lifecycle handlers, events for actions without a registered handler are
	// rejected.
	Create HandlerFunc
	Read   HandlerFunc
	Update HandlerFunc
	Delete HandlerFunc
	List   HandlerFunc

	// Logger is the passed logger which implements a custom Log method
	Logger *slog.Logger
}

// defaults fills any missing attributes to a sane default.
func (r *ResourceOptions) defaults() {
	if r.Logger == nil {
		r.Logger = slog.Default()
	}
}

// NewResource returns a resource which dispatches events to the given lifecycle handlers.
func NewResource(options ResourceOptions) *Resource {
	// Fill out any missing fields with the sane defaults
	options.defaults()

	handlers := make(map[Action]HandlerFunc)

	for action, handler := range map[Action]HandlerFunc{
		ActionCreate: options.Create,
		ActionRead:   options.Read,
		ActionUpdate: options.Update,
		ActionDelete: options.Delete,
		ActionList:   options.List,
	} {
		if handler != nil {
			handlers[action] = handler
		}
	}

	return &Resource{
		typeName: options.TypeName,
		handlers: handlers,
		logger:   options.Logger,
	}
}

// HandleEvent runs the handler registered for the events action.
//
// NOTE: The returned error is always <nil>, failures travel in-band in the progress event; the signature is the one
// the Lambda runtime expects of a typed handler function.
func (r *Resource) HandleEvent(ctx context.Context, event Event) (progress ProgressEvent, err error) {
	logger := r.logger.With(
		"action", event.Action,
		"resourceType", event.ResourceType,
		"logicalResourceId", event.RequestData.LogicalResourceID,
	)

	// A panicking handler must not take the runtime down with it, the service expects a terminal progress event
	defer func() {
		cause := recover()
		if cause == nil {
			return
		}

		logger.Error("handler panicked", "cause", cause, "stack", string(debug.Stack()))

		progress, err = NewFailedEvent(ErrCodeInternalFailure, fmt.Sprintf("handler panicked: %v", cause)), nil
	}()

	if r.typeName != "" && event.ResourceType != "" && event.ResourceType != r.typeName {
		failure := fmt.Sprintf("unexpected resource type '%s'", event.ResourceType)

		return NewFailedEvent(ErrCodeInvalidRequest, failure), nil
	}

	handler, ok := r.handlers[event.Action]
	if !ok {
		failure := fmt.Sprintf("no handler registered for action '%s'", event.Action)

		return NewFailedEvent(ErrCodeInvalidRequest, failure), nil
	}

	// Properties/credentials are deliberately never logged
	logger.Info("handling event", "callback", event.CallbackContext != nil)

	progress = handler(ctx, NewRequest(&event))

	if progress.Status == StatusFailed {
		logger.Error("handler failed", "errorCode", progress.ErrorCode, "message", progress.Message)
	} else {
		logger.Info("handled event", "status", progress.Status)
	}

	return progress, nil
}
