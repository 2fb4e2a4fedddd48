package objaws

import (
	"net"
	"testing"

	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aws-cloudformation/awscommunity-s3-object/objstore/objerr"
	"github.com/aws-cloudformation/awscommunity-s3-object/objstore/objval"
	"github.com/aws-cloudformation/awscommunity-s3-object/ptr"
)

func TestHandleError(t *testing.T) {
	var (
		notFound        *objerr.NotFoundError
		tooManyRequests *objerr.TooManyRequestsError
		invalidArgument *objerr.InvalidArgumentError
	)

	err := handleError(ptr.To("bucket1"), ptr.To("key1"), nil)
	require.NoError(t, err)

	// Not handled specifically but should not be <nil>
	err = handleError(ptr.To("bucket1"), ptr.To("key1"), &s3types.NoSuchUpload{})
	require.Error(t, err)

	err = handleError(ptr.To("bucket1"), ptr.To("key1"), &smithy.GenericAPIError{Code: "InvalidAccessKeyId"})
	require.ErrorIs(t, err, objerr.ErrUnauthenticated)

	err = handleError(ptr.To("bucket1"), ptr.To("key1"), &smithy.GenericAPIError{Code: "SignatureDoesNotMatch"})
	require.ErrorIs(t, err, objerr.ErrUnauthenticated)

	err = handleError(ptr.To("bucket1"), ptr.To("key1"), &smithy.GenericAPIError{Code: "ExpiredToken"})
	require.ErrorIs(t, err, objerr.ErrUnauthenticated)

	err = handleError(ptr.To("bucket1"), ptr.To("key1"), &smithy.GenericAPIError{Code: "AccessDenied"})
	require.ErrorIs(t, err, objerr.ErrUnauthorized)

	err = handleError(ptr.To("bucket1"), ptr.To("key1"), &s3types.NoSuchKey{})
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "key", notFound.Type)
	require.Equal(t, "key1", notFound.Name)

	err = handleError(ptr.To("bucket1"), nil, &s3types.NoSuchKey{})
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "key", notFound.Type)
	require.Equal(t, "<empty key name>", notFound.Name)

	err = handleError(ptr.To("bucket1"), ptr.To("key1"), &s3types.NotFound{})
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "key", notFound.Type)
	require.Equal(t, "key1", notFound.Name)

	err = handleError(ptr.To("bucket1"), ptr.To("key1"), &s3types.NoSuchBucket{})
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "bucket", notFound.Type)
	require.Equal(t, "bucket1", notFound.Name)

	err = handleError(nil, ptr.To("key1"), &s3types.NoSuchBucket{})
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "bucket", notFound.Type)
	require.Equal(t, "<empty bucket name>", notFound.Name)

	err = handleError(ptr.To("bucket1"), ptr.To("key1"), &smithy.GenericAPIError{Code: "SlowDown"})
	require.ErrorAs(t, err, &tooManyRequests)
	require.Equal(t, "SlowDown", tooManyRequests.Code)

	err = handleError(ptr.To("bucket1"), ptr.To("key1"), &smithy.GenericAPIError{Code: "RequestLimitExceeded"})
	require.ErrorAs(t, err, &tooManyRequests)
	require.Equal(t, "RequestLimitExceeded", tooManyRequests.Code)

	err = handleError(
		ptr.To("bucket1"),
		ptr.To("key1"),
		&smithy.GenericAPIError{Code: "InvalidTagKey.Malformed", Message: "malformed tag key"},
	)
	require.ErrorAs(t, err, &invalidArgument)
	require.Equal(t, "InvalidTagKey.Malformed", invalidArgument.Code)
	require.Equal(t, "malformed tag key", invalidArgument.Message)

	err = handleError(ptr.To("bucket1"), ptr.To("key1"), &smithy.GenericAPIError{Code: "ValidationError"})
	require.ErrorAs(t, err, &invalidArgument)
	require.Equal(t, "ValidationError", invalidArgument.Code)

	err = handleError(nil, nil, &net.DNSError{IsNotFound: true})
	require.ErrorIs(t, err, objerr.ErrEndpointResolutionFailed)
}

func TestIsKeyNotFound(t *testing.T) {
	require.False(t, isKeyNotFound(assert.AnError))
	require.True(t, isKeyNotFound(&s3types.NoSuchKey{}))
	require.True(t, isKeyNotFound(&smithy.GenericAPIError{Code: "NotFound"}))
}

func TestEncodeTagging(t *testing.T) {
	type test struct {
		name     string
		tags     []objval.Tag
		expected string
	}

	tests := []*test{
		{
			name: "Empty",
		},
		{
			name:     "Single",
			tags:     []objval.Tag{{Key: "key1", Value: "value1"}},
			expected: "key1=value1",
		},
		{
			name:     "OrderPreserved",
			tags:     []objval.Tag{{Key: "zebra", Value: "1"}, {Key: "alpha", Value: "2"}},
			expected: "zebra=1&alpha=2",
		},
		{
			name:     "Escaped",
			tags:     []objval.Tag{{Key: "key 1", Value: "value&1"}, {Key: "key=2", Value: "value 2"}},
			expected: "key+1=value%261&key%3D2=value+2",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, encodeTagging(test.tags))
		})
	}
}
