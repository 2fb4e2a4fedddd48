package resource

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aws-cloudformation/awscommunity-s3-object/ptr"
	"github.com/aws-cloudformation/awscommunity-s3-object/testutil"
)

func TestModelValidate(t *testing.T) {
	type test struct {
		name  string
		model *Model
		valid bool
	}

	tests := []*test{
		{
			name:  "Valid",
			model: &Model{BucketName: "bucket", ObjectKey: "key", ObjectContents: ptr.To("value")},
			valid: true,
		},
		{
			name:  "ValidEmptyContents",
			model: &Model{BucketName: "bucket", ObjectKey: "key", ObjectContents: ptr.To("")},
			valid: true,
		},
		{
			name: "ValidNestedKeyWithTags",
			model: &Model{
				BucketName:     "bucket",
				ObjectKey:      "path/to/key-1.txt",
				ObjectContents: ptr.To("value"),
				Tags:           []Tag{{Key: "team", Value: "storage"}},
			},
			valid: true,
		},
		{
			name:  "MissingBucketName",
			model: &Model{ObjectKey: "key", ObjectContents: ptr.To("value")},
		},
		{
			name:  "MissingObjectKey",
			model: &Model{BucketName: "bucket", ObjectContents: ptr.To("value")},
		},
		{
			name:  "MissingObjectContents",
			model: &Model{BucketName: "bucket", ObjectKey: "key"},
		},
		{
			name:  "KeyWithLeadingSlash",
			model: &Model{BucketName: "bucket", ObjectKey: "/key", ObjectContents: ptr.To("value")},
		},
		{
			name:  "KeyWithTrailingSlash",
			model: &Model{BucketName: "bucket", ObjectKey: "key/", ObjectContents: ptr.To("value")},
		},
		{
			name:  "KeyWithSpaces",
			model: &Model{BucketName: "bucket", ObjectKey: "key with spaces", ObjectContents: ptr.To("value")},
		},
		{
			name: "EmptyTagKey",
			model: &Model{
				BucketName:     "bucket",
				ObjectKey:      "key",
				ObjectContents: ptr.To("value"),
				Tags:           []Tag{{Value: "storage"}},
			},
		},
		{
			name: "EmptyTagValue",
			model: &Model{
				BucketName:     "bucket",
				ObjectKey:      "key",
				ObjectContents: ptr.To("value"),
				Tags:           []Tag{{Key: "team"}},
			},
		},
		{
			name: "DuplicateTagKeys",
			model: &Model{
				BucketName:     "bucket",
				ObjectKey:      "key",
				ObjectContents: ptr.To("value"),
				Tags:           []Tag{{Key: "team", Value: "storage"}, {Key: "team", Value: "payments"}},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.model.Validate()

			if test.valid {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestModelLocation(t *testing.T) {
	type test struct {
		name   string
		model  *Model
		bucket string
		key    string
	}

	tests := []*test{
		{
			name:   "FromProperties",
			model:  &Model{BucketName: "bucket", ObjectKey: "key"},
			bucket: "bucket",
			key:    "key",
		},
		{
			name:   "FromArn",
			model:  &Model{ObjectArn: "arn:aws:s3:::bucket/path/to/key"},
			bucket: "bucket",
			key:    "path/to/key",
		},
		{
			name:   "PropertiesPreferredOverArn",
			model:  &Model{BucketName: "bucket", ObjectKey: "key", ObjectArn: "arn:aws:s3:::other/key"},
			bucket: "bucket",
			key:    "key",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			bucket, key, err := test.model.Location()
			require.NoError(t, err)
			require.Equal(t, test.bucket, bucket)
			require.Equal(t, test.key, key)
		})
	}
}

func TestModelLocationUnidentified(t *testing.T) {
	type test struct {
		name  string
		model *Model
	}

	tests := []*test{
		{
			name:  "Empty",
			model: &Model{},
		},
		{
			name:  "KeyWithoutBucket",
			model: &Model{ObjectKey: "key"},
		},
		{
			name:  "BucketWithoutKey",
			model: &Model{BucketName: "bucket"},
		},
		{
			name:  "MalformedArn",
			model: &Model{ObjectArn: "arn:aws:s3:::bucket"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, _, err := test.model.Location()
			require.Error(t, err)
		})
	}
}

func TestModelJSON(t *testing.T) {
	model := &Model{
		BucketName:     "bucket",
		ObjectKey:      "key",
		ObjectContents: ptr.To(""),
		Tags:           []Tag{{Key: "team", Value: "storage"}},
		ObjectArn:      "arn:aws:s3:::bucket/key",
	}

	expected := `{
		"BucketName": "bucket",
		"ObjectKey": "key",
		"ObjectContents": "",
		"Tags": [{"Key": "team", "Value": "storage"}],
		"ObjectArn": "arn:aws:s3:::bucket/key"
	}`

	require.JSONEq(t, expected, string(testutil.MarshalJSON(t, model)))
}

func TestModelJSONOmitsAbsentProperties(t *testing.T) {
	model := &Model{BucketName: "bucket", ObjectKey: "key", ObjectArn: Arn("bucket", "key")}

	expected := `{"BucketName": "bucket", "ObjectKey": "key", "ObjectArn": "arn:aws:s3:::bucket/key"}`

	require.JSONEq(t, expected, string(testutil.MarshalJSON(t, model)))
}
