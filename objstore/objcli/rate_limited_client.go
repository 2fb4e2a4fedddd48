package objcli

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/aws-cloudformation/awscommunity-s3-object/objstore/objval"
)

// RateLimitedClient implements the 'Client' interface, limiting the rate at which requests are dispatched to the
// underlying client.
type RateLimitedClient struct {
	client  Client
	limiter *rate.Limiter
}

var _ Client = (*RateLimitedClient)(nil)

// NewRateLimitedClient returns a rate limited client wrapping the given client.
func NewRateLimitedClient(client Client, limiter *rate.Limiter) *RateLimitedClient {
	return &RateLimitedClient{client: client, limiter: limiter}
}

func (r *RateLimitedClient) Provider() objval.Provider {
	return r.client.Provider()
}

func (r *RateLimitedClient) GetObject(ctx context.Context, opts GetObjectOptions) (*objval.Object, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	return r.client.GetObject(ctx, opts)
}

func (r *RateLimitedClient) GetObjectAttrs(ctx context.Context, opts GetObjectAttrsOptions) (*objval.ObjectAttrs,
	error,
) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	return r.client.GetObjectAttrs(ctx, opts)
}

func (r *RateLimitedClient) GetObjectTags(ctx context.Context, opts GetObjectTagsOptions) ([]objval.Tag, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	return r.client.GetObjectTags(ctx, opts)
}

func (r *RateLimitedClient) PutObject(ctx context.Context, opts PutObjectOptions) error {
	if err := r.limiter.Wait(ctx); err != nil {
		return err
	}

	return r.client.PutObject(ctx, opts)
}

func (r *RateLimitedClient) DeleteObject(ctx context.Context, opts DeleteObjectOptions) error {
	if err := r.limiter.Wait(ctx); err != nil {
		return err
	}

	return r.client.DeleteObject(ctx, opts)
}

func (r *RateLimitedClient) ListObjects(ctx context.Context, opts ListObjectsOptions) (*objval.ObjectPage, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	return r.client.ListObjects(ctx, opts)
}

func (r *RateLimitedClient) Close() error {
	return r.client.Close()
}
