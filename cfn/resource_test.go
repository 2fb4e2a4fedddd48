package cfn

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewResource(t *testing.T) {
	resource := NewResource(ResourceOptions{
		TypeName: "AwsCommunity::S3::Object",
		Create:   func(_ context.Context, _ *Request) ProgressEvent { return NewSuccessEvent(nil) },
		Logger:   discardLogger(),
	})

	require.Equal(t, "AwsCommunity::S3::Object", resource.typeName)
	require.Contains(t, resource.handlers, ActionCreate)
	require.NotContains(t, resource.handlers, ActionDelete)
}

func TestResourceHandleEvent(t *testing.T) {
	var handled *Request

	resource := NewResource(ResourceOptions{
		TypeName: "AwsCommunity::S3::Object",
		Create: func(_ context.Context, request *Request) ProgressEvent {
			handled = request

			return NewSuccessEvent(map[string]any{"ObjectKey": "key"})
		},
		Logger: discardLogger(),
	})

	event := Event{
		Action:       ActionCreate,
		AWSAccountID: "123456789012",
		Region:       "us-east-1",
		ResourceType: "AwsCommunity::S3::Object",
		RequestData: RequestData{
			LogicalResourceID: "MyObject",
			CallerCredentials: &Credentials{AccessKeyID: "caller"},
		},
	}

	progress, err := resource.HandleEvent(context.Background(), event)
	require.NoError(t, err)
	require.Equal(t, StatusSuccess, progress.Status)

	require.NotNil(t, handled)
	require.Equal(t, ActionCreate, handled.Action)
	require.Equal(t, "MyObject", handled.LogicalResourceID)
	require.Equal(t, &Credentials{AccessKeyID: "caller"}, handled.Credentials)
}

func TestResourceHandleEventUnregisteredAction(t *testing.T) {
	resource := NewResource(ResourceOptions{
		TypeName: "AwsCommunity::S3::Object",
		Create:   func(_ context.Context, _ *Request) ProgressEvent { return NewSuccessEvent(nil) },
		Logger:   discardLogger(),
	})

	progress, err := resource.HandleEvent(context.Background(), Event{Action: ActionDelete})
	require.NoError(t, err)
	require.Equal(t, StatusFailed, progress.Status)
	require.Equal(t, ErrCodeInvalidRequest, progress.ErrorCode)
}

func TestResourceHandleEventUnexpectedResourceType(t *testing.T) {
	resource := NewResource(ResourceOptions{
		TypeName: "AwsCommunity::S3::Object",
		Create:   func(_ context.Context, _ *Request) ProgressEvent { return NewSuccessEvent(nil) },
		Logger:   discardLogger(),
	})

	event := Event{
		Action:       ActionCreate,
		ResourceType: "AwsCommunity::S3::Bucket",
	}

	progress, err := resource.HandleEvent(context.Background(), event)
	require.NoError(t, err)
	require.Equal(t, StatusFailed, progress.Status)
	require.Equal(t, ErrCodeInvalidRequest, progress.ErrorCode)
	require.Contains(t, progress.Message, "AwsCommunity::S3::Bucket")
}

func TestResourceHandleEventPanic(t *testing.T) {
	resource := NewResource(ResourceOptions{
		TypeName: "AwsCommunity::S3::Object",
		Create:   func(_ context.Context, _ *Request) ProgressEvent { panic("boom") },
		Logger:   discardLogger(),
	})

	progress, err := resource.HandleEvent(context.Background(), Event{Action: ActionCreate})
	require.NoError(t, err)
	require.Equal(t, StatusFailed, progress.Status)
	require.Equal(t, ErrCodeInternalFailure, progress.ErrorCode)
	require.Contains(t, progress.Message, "boom")
}
