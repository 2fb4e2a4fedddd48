// Package resource implements the 'AwsCommunity::S3::Object' resource type: the typed model, its validation rules and
// the lifecycle handlers which manage the backing object in S3.
package resource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aws/smithy-go"

	"github.com/aws-cloudformation/awscommunity-s3-object/cfn"
	"github.com/aws-cloudformation/awscommunity-s3-object/objstore/objcli"
	"github.com/aws-cloudformation/awscommunity-s3-object/objstore/objerr"
	"github.com/aws-cloudformation/awscommunity-s3-object/ptr"
)

const (
	// callbackStatusKey is the callback context key which marks an in-flight stabilization check.
	callbackStatusKey = "status"

	// stabilizationDelaySeconds is how long the service waits before re-invoking the handler to verify the outcome of
	// a mutation.
	stabilizationDelaySeconds = 5
)

// ClientFactory constructs the storage client used to service a single invocation; the credentials/region are scoped
// to the invocation so a client can not be shared between them.
type ClientFactory func(ctx context.Context, request *cfn.Request) (objcli.Client, error)

// Handlers implements the lifecycle operations for the resource type.
type Handlers struct {
	newClient ClientFactory
	logger    *slog.Logger
}

// HandlersOptions encapsulates the options available when creating the resource handlers.
type HandlersOptions struct {
	// NewClient constructs the storage client for a single invocation.
	//
	// NOTE: This option is required and must be non-nil.
	NewClient ClientFactory

	// Logger is the passed logger, defaults to the default logger.
	Logger *slog.Logger
}

// defaults fills any missing attributes to a sane default.
func (h *HandlersOptions) defaults() {
	if h.Logger == nil {
		h.Logger = slog.Default()
	}
}

// NewHandlers returns handlers which manage objects via storage clients from the given factory.
func NewHandlers(options HandlersOptions) *Handlers {
	// Fill out any missing fields with the sane defaults
	options.defaults()

	return &Handlers{
		newClient: options.NewClient,
		logger:    options.Logger,
	}
}

// Resource returns the dispatcher which routes invocation envelopes for the resource type to these handlers.
func (h *Handlers) Resource() *cfn.Resource {
	return cfn.NewResource(cfn.ResourceOptions{
		TypeName: TypeName,
		Create:   h.Create,
		Read:     h.Read,
		Update:   h.Update,
		Delete:   h.Delete,
		List:     h.List,
		Logger:   h.logger,
	})
}

// Create uploads the object, failing if one already exists at the target location.
func (h *Handlers) Create(ctx context.Context, request *cfn.Request) cfn.ProgressEvent {
	model, err := bindModel(request)
	if err != nil {
		return invalidEvent(err)
	}

	client, err := h.newClient(ctx, request)
	if err != nil {
		return h.failedEvent(err)
	}
	defer h.closeClient(client)

	if inCallback(request) {
		return h.stabilize(ctx, client, model, false)
	}

	exists, err := h.objectExists(ctx, client, model.BucketName, model.ObjectKey)
	if err != nil {
		return h.failedEvent(err)
	}

	if exists {
		failure := fmt.Sprintf("Error: object '%s' already exists in bucket '%s'", model.ObjectKey, model.BucketName)

		return cfn.NewFailedEvent(cfn.ErrCodeAlreadyExists, failure)
	}

	if err := h.putObject(ctx, client, model, request.StackTags); err != nil {
		return h.failedEvent(err)
	}

	model.ObjectArn = Arn(model.BucketName, model.ObjectKey)

	return stabilizeEvent(model)
}

// Update replaces the contents/tags of the object, moving it when the target location changed.
func (h *Handlers) Update(ctx context.Context, request *cfn.Request) cfn.ProgressEvent {
	model, err := bindModel(request)
	if err != nil {
		return invalidEvent(err)
	}

	client, err := h.newClient(ctx, request)
	if err != nil {
		return h.failedEvent(err)
	}
	defer h.closeClient(client)

	if inCallback(request) {
		return h.stabilize(ctx, client, model, false)
	}

	// The previous state says where the object currently lives, updating a resource which no longer exists must
	// surface 'NotFound' rather than quietly recreating it
	previous := model

	if request.HasPrevious() {
		previous = new(Model)

		if err := request.BindPrevious(previous); err != nil {
			return invalidEvent(err)
		}
	}

	prevBucket, prevKey, err := previous.Location()
	if err != nil {
		return invalidEvent(err)
	}

	exists, err := h.objectExists(ctx, client, prevBucket, prevKey)
	if err != nil {
		return h.failedEvent(err)
	}

	if !exists {
		return notFoundEvent(prevBucket, prevKey)
	}

	if err := h.putObject(ctx, client, model, request.StackTags); err != nil {
		return h.failedEvent(err)
	}

	// Best effort cleanup when the update moved the object, a failure here leaves the old object behind but must not
	// fail the update
	if prevBucket != model.BucketName || prevKey != model.ObjectKey {
		err = client.DeleteObject(ctx, objcli.DeleteObjectOptions{Bucket: prevBucket, Key: prevKey})
		if err != nil {
			h.logger.Warn("failed to delete object at previous location", "bucket", prevBucket, "key", prevKey,
				"error", err)
		}
	}

	model.ObjectArn = Arn(model.BucketName, model.ObjectKey)

	return stabilizeEvent(model)
}

// Read returns the full state of the object including its contents and tags.
func (h *Handlers) Read(ctx context.Context, request *cfn.Request) cfn.ProgressEvent {
	bucket, key, event := bindLocation(request)
	if event != nil {
		return *event
	}

	client, err := h.newClient(ctx, request)
	if err != nil {
		return h.failedEvent(err)
	}
	defer h.closeClient(client)

	model, err := h.readModel(ctx, client, bucket, key)
	if err != nil {
		return h.failedEvent(err)
	}

	return cfn.NewSuccessEvent(model)
}

// Delete removes the object, failing if it does not exist.
func (h *Handlers) Delete(ctx context.Context, request *cfn.Request) cfn.ProgressEvent {
	bucket, key, event := bindLocation(request)
	if event != nil {
		return *event
	}

	client, err := h.newClient(ctx, request)
	if err != nil {
		return h.failedEvent(err)
	}
	defer h.closeClient(client)

	if inCallback(request) {
		return h.stabilize(ctx, client, &Model{BucketName: bucket, ObjectKey: key}, true)
	}

	// The delete contract requires deleting a non-existent object to fail, S3 itself treats it as a no-op
	exists, err := h.objectExists(ctx, client, bucket, key)
	if err != nil {
		return h.failedEvent(err)
	}

	if !exists {
		return notFoundEvent(bucket, key)
	}

	err = client.DeleteObject(ctx, objcli.DeleteObjectOptions{Bucket: bucket, Key: key})
	if err != nil {
		return h.failedEvent(err)
	}

	return cfn.NewSuccessEvent(nil)
}

// List returns one page of the objects in the requested bucket as skeleton models.
func (h *Handlers) List(ctx context.Context, request *cfn.Request) cfn.ProgressEvent {
	var model Model
	if err := request.Bind(&model); err != nil {
		return invalidEvent(err)
	}

	if model.BucketName == "" {
		return invalidEvent(errors.New("'BucketName' is a required property"))
	}

	client, err := h.newClient(ctx, request)
	if err != nil {
		return h.failedEvent(err)
	}
	defer h.closeClient(client)

	page, err := client.ListObjects(ctx, objcli.ListObjectsOptions{
		Bucket:            model.BucketName,
		ContinuationToken: request.NextToken,
	})
	if err != nil {
		return h.failedEvent(err)
	}

	models := make([]any, 0, len(page.Objects))

	for _, object := range page.Objects {
		models = append(models, &Model{
			BucketName: model.BucketName,
			ObjectKey:  object.Key,
			ObjectArn:  Arn(model.BucketName, object.Key),
		})
	}

	return cfn.NewListEvent(models, page.NextContinuationToken)
}

// stabilize is the verification pass run after a mutation, re-reading the object to confirm the service reflects the
// requested state before reporting a terminal status.
func (h *Handlers) stabilize(ctx context.Context, client objcli.Client, model *Model, deleting bool) cfn.ProgressEvent {
	read, err := h.readModel(ctx, client, model.BucketName, model.ObjectKey)

	switch {
	case err == nil && deleting:
		// Still visible, check again on the next callback
		return stabilizeEvent(model)
	case err == nil:
		return cfn.NewSuccessEvent(read)
	case objerr.IsNotFoundError(err) && deleting:
		return cfn.NewSuccessEvent(nil)
	case objerr.IsNotFoundError(err):
		return notFoundEvent(model.BucketName, model.ObjectKey)
	default:
		// Treated as transient and retried on the next callback, the service bounds the overall stabilization time
		h.logger.Warn("stabilization check failed", "bucket", model.BucketName, "key", model.ObjectKey, "error", err)

		return stabilizeEvent(model)
	}
}

// readModel fetches the current state of the object at the given location.
func (h *Handlers) readModel(ctx context.Context, client objcli.Client, bucket, key string) (*Model, error) {
	object, err := client.GetObject(ctx, objcli.GetObjectOptions{Bucket: bucket, Key: key})
	if err != nil {
		// Purposefully not wrapped
		return nil, err
	}
	defer object.Body.Close()

	contents, err := io.ReadAll(object.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read object contents: %w", err)
	}

	tags, err := client.GetObjectTags(ctx, objcli.GetObjectTagsOptions{Bucket: bucket, Key: key})
	if err != nil {
		return nil, err
	}

	model := &Model{
		BucketName:     bucket,
		ObjectKey:      key,
		ObjectContents: ptr.To(string(contents)),
		Tags:           modelTags(tags),
		ObjectArn:      Arn(bucket, key),
	}

	return model, nil
}

// putObject uploads the desired contents/tags to the target location.
func (h *Handlers) putObject(
	ctx context.Context,
	client objcli.Client,
	model *Model,
	stackTags map[string]string,
) error {
	opts := objcli.PutObjectOptions{
		Bucket: model.BucketName,
		Key:    model.ObjectKey,
		Body:   strings.NewReader(ptr.From(model.ObjectContents)),
		Tags:   MergeTags(stackTags, model.Tags),
	}

	// Purposefully not wrapped
	return client.PutObject(ctx, opts)
}

// objectExists returns a boolean indicating whether an object exists at the given location.
func (h *Handlers) objectExists(ctx context.Context, client objcli.Client, bucket, key string) (bool, error) {
	_, err := client.GetObjectAttrs(ctx, objcli.GetObjectAttrsOptions{Bucket: bucket, Key: key})

	switch {
	case err == nil:
		return true, nil
	case objerr.IsNotFoundError(err):
		return false, nil
	default:
		// Purposefully not wrapped
		return false, err
	}
}

// closeClient releases the invocation scoped client, close failures are logged and otherwise ignored.
func (h *Handlers) closeClient(client objcli.Client) {
	if err := client.Close(); err != nil {
		h.logger.Warn("failed to close storage client", "error", err)
	}
}

// bindModel binds, then validates the desired resource state carried by the request.
func bindModel(request *cfn.Request) (*Model, error) {
	var model Model

	if err := request.Bind(&model); err != nil {
		// Purposefully not wrapped
		return nil, err
	}

	if err := model.Validate(); err != nil {
		// Purposefully not wrapped
		return nil, err
	}

	return &model, nil
}

// bindLocation resolves the bucket/key pair identifying the target object, read/delete requests are not required to
// carry the full desired state.
func bindLocation(request *cfn.Request) (string, string, *cfn.ProgressEvent) {
	var model Model

	err := request.Bind(&model)
	if err != nil {
		event := invalidEvent(err)
		return "", "", &event
	}

	bucket, key, err := model.Location()
	if err != nil {
		event := invalidEvent(err)
		return "", "", &event
	}

	return bucket, key, nil
}

// inCallback returns a boolean indicating whether this invocation is a stabilization re-invoke rather than a fresh
// operation.
func inCallback(request *cfn.Request) bool {
	status, ok := request.CallbackContext[callbackStatusKey].(string)

	return ok && status == string(cfn.StatusInProgress)
}

// stabilizeEvent returns the in progress event which schedules a stabilization check for the given model.
func stabilizeEvent(model *Model) cfn.ProgressEvent {
	callbackContext := map[string]any{callbackStatusKey: string(cfn.StatusInProgress)}

	return cfn.NewInProgressEvent(model, callbackContext, stabilizationDelaySeconds)
}

// failedEvent returns the terminal failure event for the given error, mapped to the closest handler error code.
func (h *Handlers) failedEvent(err error) cfn.ProgressEvent {
	return cfn.NewFailedEvent(errorCode(err), fmt.Sprintf("Error: %s", err))
}

// invalidEvent returns the terminal failure event for defects in the request itself.
func invalidEvent(err error) cfn.ProgressEvent {
	return cfn.NewFailedEvent(cfn.ErrCodeInvalidRequest, fmt.Sprintf("Error: %s", err))
}

// notFoundEvent returns the terminal failure event for operations against an object which does not exist.
func notFoundEvent(bucket, key string) cfn.ProgressEvent {
	failure := fmt.Sprintf("Error: object '%s' not found in bucket '%s'", key, bucket)

	return cfn.NewFailedEvent(cfn.ErrCodeNotFound, failure)
}

// errorCode maps a storage error to the handler error code reported to the service.
func errorCode(err error) cfn.HandlerErrorCode {
	switch {
	case objerr.IsNotFoundError(err):
		return cfn.ErrCodeNotFound
	case errors.Is(err, objerr.ErrUnauthenticated):
		return cfn.ErrCodeInvalidCredentials
	case errors.Is(err, objerr.ErrUnauthorized):
		return cfn.ErrCodeAccessDenied
	case objerr.IsTooManyRequestsError(err):
		return cfn.ErrCodeThrottling
	case objerr.IsInvalidArgumentError(err):
		return cfn.ErrCodeInvalidRequest
	case errors.Is(err, objerr.ErrEndpointResolutionFailed):
		return cfn.ErrCodeNetworkFailure
	}

	// Unmapped service rejections are general service errors, anything non-API is a local failure
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return cfn.ErrCodeGeneralServiceException
	}

	return cfn.ErrCodeInternalFailure
}
