package objval

import (
	"io"
	"time"
)

// ObjectAttrs represents the attributes usually attached to an object in S3.
type ObjectAttrs struct {
	// Key is the identifier for the object; a unique path.
	Key string

	// ETag is the HTTP entity tag for the object.
	//
	// NOTE: Not populated by 'GetObject', only by attribute lookups/listings.
	ETag *string

	// Size is the size or content length of the object in bytes.
	Size *int64

	// LastModified is the time the object was last updated (or created).
	LastModified *time.Time
}

// Object represents an object stored in S3, simply the attributes and its body.
type Object struct {
	ObjectAttrs

	// This body will generally be a HTTP response body; it should be read once, and closed to avoid resource leaks.
	Body io.ReadCloser
}

// ObjectPage represents a single page of a bucket listing.
type ObjectPage struct {
	// Objects are the attributes of the objects in this page, in the order the service returned them.
	Objects []*ObjectAttrs

	// NextContinuationToken is the opaque token which fetches the page after this one, empty once the listing is
	// exhausted.
	NextContinuationToken string
}

// TestBuckets represents a number of buckets, and is only used by the 'TestClient' to store state in memory.
type TestBuckets map[string]TestBucket

// TestBucket represents a bucket and is only used by the 'TestClient' to store objects in memory.
type TestBucket map[string]*TestObject

// TestObject represents an object and is only used by the 'TestClient'.
type TestObject struct {
	ObjectAttrs
	Body []byte
	Tags []Tag
}
