package resource

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArn(t *testing.T) {
	require.Equal(t, "arn:aws:s3:::bucket/key", Arn("bucket", "key"))
	require.Equal(t, "arn:aws:s3:::bucket/path/to/key", Arn("bucket", "path/to/key"))
}

func TestParseArn(t *testing.T) {
	type test struct {
		name   string
		arn    string
		bucket string
		key    string
	}

	tests := []*test{
		{
			name:   "Simple",
			arn:    "arn:aws:s3:::bucket/key",
			bucket: "bucket",
			key:    "key",
		},
		{
			name:   "NestedKey",
			arn:    "arn:aws:s3:::bucket/path/to/key",
			bucket: "bucket",
			key:    "path/to/key",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			bucket, key, err := ParseArn(test.arn)
			require.NoError(t, err)
			require.Equal(t, test.bucket, bucket)
			require.Equal(t, test.key, key)
		})
	}
}

func TestParseArnInvalid(t *testing.T) {
	type test struct {
		name string
		arn  string
	}

	tests := []*test{
		{
			name: "Empty",
		},
		{
			name: "NotAnArn",
			arn:  "bucket/key",
		},
		{
			name: "WrongService",
			arn:  "arn:aws:ec2:::bucket/key",
		},
		{
			name: "MissingKey",
			arn:  "arn:aws:s3:::bucket",
		},
		{
			name: "EmptyBucket",
			arn:  "arn:aws:s3:::/key",
		},
		{
			name: "EmptyKey",
			arn:  "arn:aws:s3:::bucket/",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, _, err := ParseArn(test.arn)
			require.Error(t, err)
		})
	}
}

func TestParseArnRoundTrip(t *testing.T) {
	bucket, key, err := ParseArn(Arn("bucket", "path/to/key"))
	require.NoError(t, err)
	require.Equal(t, "bucket", bucket)
	require.Equal(t, "path/to/key", key)
}
