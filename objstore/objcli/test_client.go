package objcli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/aws-cloudformation/awscommunity-s3-object/objstore/objerr"
	"github.com/aws-cloudformation/awscommunity-s3-object/objstore/objval"
	"github.com/aws-cloudformation/awscommunity-s3-object/ptr"
)

// TestClient implementation of the 'Client' interface which stores state in memory, and can be used to avoid having to
// manually mock a client during unit testing.
type TestClient struct {
	t    *testing.T
	lock sync.RWMutex

	// Buckets is the in memory state maintained by the client. Internal state is stored here in the event a test needs
	// to access the internal state directly.
	Buckets objval.TestBuckets

	provider objval.Provider
}

var _ Client = (*TestClient)(nil)

// NewTestClient returns a new test client, which has no buckets/objects.
func NewTestClient(t *testing.T, provider objval.Provider) *TestClient {
	return &TestClient{
		t:        t,
		Buckets:  make(objval.TestBuckets),
		provider: provider,
	}
}

func (t *TestClient) Provider() objval.Provider {
	return t.provider
}

func (t *TestClient) GetObject(_ context.Context, opts GetObjectOptions) (*objval.Object, error) {
	t.lock.RLock()
	defer t.lock.RUnlock()

	object, err := t.getObjectRLocked(opts.Bucket, opts.Key)
	if err != nil {
		return nil, err
	}

	return &objval.Object{
		ObjectAttrs: t.attrsCopy(object),
		Body:        io.NopCloser(bytes.NewReader(object.Body)),
	}, nil
}

func (t *TestClient) GetObjectAttrs(_ context.Context, opts GetObjectAttrsOptions) (*objval.ObjectAttrs, error) {
	t.lock.RLock()
	defer t.lock.RUnlock()

	object, err := t.getObjectRLocked(opts.Bucket, opts.Key)
	if err != nil {
		return nil, err
	}

	attrs := t.attrsCopy(object)

	return &attrs, nil
}

func (t *TestClient) GetObjectTags(_ context.Context, opts GetObjectTagsOptions) ([]objval.Tag, error) {
	t.lock.RLock()
	defer t.lock.RUnlock()

	object, err := t.getObjectRLocked(opts.Bucket, opts.Key)
	if err != nil {
		return nil, err
	}

	return slices.Clone(object.Tags), nil
}

func (t *TestClient) PutObject(_ context.Context, opts PutObjectOptions) error {
	t.lock.Lock()
	defer t.lock.Unlock()

	_, err := opts.Body.Seek(0, io.SeekStart)
	require.NoError(t.t, err)

	body, err := io.ReadAll(opts.Body)
	require.NoError(t.t, err)

	t.putObjectLocked(opts.Bucket, opts.Key, body, slices.Clone(opts.Tags))

	return nil
}

func (t *TestClient) DeleteObject(_ context.Context, opts DeleteObjectOptions) error {
	t.lock.Lock()
	defer t.lock.Unlock()

	bucket, ok := t.Buckets[opts.Bucket]
	if !ok {
		return nil
	}

	delete(bucket, opts.Key)

	return nil
}

func (t *TestClient) ListObjects(_ context.Context, opts ListObjectsOptions) (*objval.ObjectPage, error) {
	t.lock.RLock()
	defer t.lock.RUnlock()

	limit := opts.MaxKeys
	if limit <= 0 {
		limit = 1000
	}

	var keys []string

	for _, key := range maps.Keys(t.Buckets[opts.Bucket]) {
		include := strings.HasPrefix(key, opts.Prefix) &&
			(opts.ContinuationToken == "" || key > opts.ContinuationToken)

		if include {
			keys = append(keys, key)
		}
	}

	slices.Sort(keys)

	page := &objval.ObjectPage{}

	for _, key := range keys {
		if len(page.Objects) == limit {
			page.NextContinuationToken = page.Objects[len(page.Objects)-1].Key
			break
		}

		attrs := t.attrsCopy(t.Buckets[opts.Bucket][key])

		page.Objects = append(page.Objects, &attrs)
	}

	return page, nil
}

func (t *TestClient) Close() error {
	return nil
}

// getObjectRLocked returns the object with the given key, the read lock must be held by the caller.
func (t *TestClient) getObjectRLocked(bucket, key string) (*objval.TestObject, error) {
	object, ok := t.Buckets[bucket][key]
	if !ok {
		return nil, &objerr.NotFoundError{Type: "object", Name: key}
	}

	return object, nil
}

// putObjectLocked creates/replaces the object with the given key, the write lock must be held by the caller.
func (t *TestClient) putObjectLocked(bucket, key string, body []byte, tags []objval.Tag) {
	if _, ok := t.Buckets[bucket]; !ok {
		t.Buckets[bucket] = make(objval.TestBucket)
	}

	t.Buckets[bucket][key] = &objval.TestObject{
		ObjectAttrs: objval.ObjectAttrs{
			Key:          key,
			ETag:         ptr.To(uuid.NewString()),
			Size:         ptr.To(int64(len(body))),
			LastModified: ptr.To(time.Now()),
		},
		Body: body,
		Tags: tags,
	}
}

// attrsCopy returns a copy of the objects attributes, detached from the internal state.
func (t *TestClient) attrsCopy(object *objval.TestObject) objval.ObjectAttrs {
	return objval.ObjectAttrs{
		Key:          object.Key,
		ETag:         object.ETag,
		Size:         object.Size,
		LastModified: object.LastModified,
	}
}
