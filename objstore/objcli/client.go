// Package objcli exposes a unified 'Client' interface for accessing/managing objects stored in S3 compatible object
// storage.
package objcli

import (
	"context"
	"io"

	"github.com/aws-cloudformation/awscommunity-s3-object/objstore/objval"
)

//go:generate mockery --name Client --case underscore --inpackage

// GetObjectOptions encapsulates the options available when using the 'GetObject' function.
type GetObjectOptions struct {
	// Bucket is the bucket being operated on.
	Bucket string

	// Key is the key (path) of the object being operated on.
	Key string
}

// GetObjectAttrsOptions encapsulates the options available when using the 'GetObjectAttrs' function.
type GetObjectAttrsOptions struct {
	// Bucket is the bucket being operated on.
	Bucket string

	// Key is the key (path) of the object being operated on.
	Key string
}

// GetObjectTagsOptions encapsulates the options available when using the 'GetObjectTags' function.
type GetObjectTagsOptions struct {
	// Bucket is the bucket being operated on.
	Bucket string

	// Key is the key (path) of the object being operated on.
	Key string
}

// PutObjectOptions encapsulates the options available when using the 'PutObject' function.
type PutObjectOptions struct {
	// Bucket is the bucket being operated on.
	Bucket string

	// Key is the key (path) of the object being operated on.
	Key string

	// Body is the data that will be uploaded.
	//
	// NOTE: Required to be a 'ReadSeeker' to support checksum calculation/validation.
	Body io.ReadSeeker

	// Tags are attached to the object in the order given, replacing any existing tag set.
	Tags []objval.Tag
}

// DeleteObjectOptions encapsulates the options available when using the 'DeleteObject' function.
type DeleteObjectOptions struct {
	// Bucket is the bucket being operated on.
	Bucket string

	// Key is the key (path) of the object being operated on.
	Key string
}

// ListObjectsOptions encapsulates the options available when using the 'ListObjects' function.
type ListObjectsOptions struct {
	// Bucket is the bucket being operated on.
	Bucket string

	// Prefix limits the listing to keys which begin with the given prefix.
	Prefix string

	// MaxKeys caps the number of objects returned in the page, the service default applies when zero.
	MaxKeys int

	// ContinuationToken resumes a listing from the page after the one which produced the token.
	ContinuationToken string
}

// Client is a unified interface for accessing/managing objects stored in S3 compatible object storage.
type Client interface {
	// Provider returns the storage provider this client is interfacing with.
	Provider() objval.Provider

	// GetObject retrieves an object from the store.
	//
	// NOTE: The returned objects body must be closed to avoid resource leaks.
	GetObject(ctx context.Context, opts GetObjectOptions) (*objval.Object, error)

	// GetObjectAttrs returns general metadata about the object with the given key.
	GetObjectAttrs(ctx context.Context, opts GetObjectAttrsOptions) (*objval.ObjectAttrs, error)

	// GetObjectTags returns the tag set attached to the object with the given key, in the order the service stores
	// them.
	GetObjectTags(ctx context.Context, opts GetObjectTagsOptions) ([]objval.Tag, error)

	// PutObject creates or replaces an object in the store with the given key/options.
	PutObject(ctx context.Context, opts PutObjectOptions) error

	// DeleteObject deletes the object with the given key.
	//
	// NOTE: Deleting a key which does not exist is not an error, matching the service behavior.
	DeleteObject(ctx context.Context, opts DeleteObjectOptions) error

	// ListObjects returns a single page of the bucket listing; paging state travels in the continuation token.
	ListObjects(ctx context.Context, opts ListObjectsOptions) (*objval.ObjectPage, error)

	// Close the underlying client/SDK where applicable; use of the client, or the underlying SDK after a call to
	// Close has undefined behavior.
	Close() error
}
