package objerr

import (
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	type test struct {
		name   string
		input  error
		output error
	}

	tests := []*test{
		{
			name:   "ErrEndpointResolutionFailed",
			input:  &net.DNSError{IsNotFound: true},
			output: ErrEndpointResolutionFailed,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.ErrorIs(t, HandleError(test.input), test.output)
			require.ErrorIs(t, TryHandleError(test.input), test.output)
		})
	}
}

func TestHandleErrorUnknown(t *testing.T) {
	require.ErrorIs(t, HandleError(assert.AnError), assert.AnError)
}

func TestTryHandleErrorUnknown(t *testing.T) {
	require.Nil(t, TryHandleError(assert.AnError))
}

func TestIsNotFoundError(t *testing.T) {
	require.False(t, IsNotFoundError(assert.AnError))
	require.True(t, IsNotFoundError(&NotFoundError{Type: "object", Name: "key1"}))
	require.True(t, IsNotFoundError(fmt.Errorf("wrapped: %w", &NotFoundError{Type: "bucket", Name: "bucket1"})))
}

func TestIsTooManyRequestsError(t *testing.T) {
	require.False(t, IsTooManyRequestsError(assert.AnError))
	require.True(t, IsTooManyRequestsError(&TooManyRequestsError{Code: "SlowDown"}))
	require.True(t, IsTooManyRequestsError(fmt.Errorf("wrapped: %w", &TooManyRequestsError{Code: "Throttling"})))
}

func TestIsInvalidArgumentError(t *testing.T) {
	require.False(t, IsInvalidArgumentError(assert.AnError))
	require.True(t, IsInvalidArgumentError(&InvalidArgumentError{Code: "InvalidParameterValue"}))
}
