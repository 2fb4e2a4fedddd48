// Package objaws provides an implementation of 'objcli.Client' for use with AWS S3.
package objaws

import (
	"context"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/aws-cloudformation/awscommunity-s3-object/objstore/objcli"
	"github.com/aws-cloudformation/awscommunity-s3-object/objstore/objval"
	"github.com/aws-cloudformation/awscommunity-s3-object/ptr"
)

// Client implements the 'objcli.Client' interface allowing the creation/management of objects stored in AWS S3.
type Client struct {
	serviceAPI serviceAPI
	logger     *slog.Logger
}

var _ objcli.Client = (*Client)(nil)

// ClientOptions encapsulates the options for creating a new AWS Client.
type ClientOptions struct {
	// ServiceAPI is the is the minimal subset of functions that we use from the AWS SDK, this allows for a greatly
	// reduce surface area for mock generation.
	//
	// NOTE: Required
	ServiceAPI serviceAPI

	// Logger is the passed logger which implements a custom Log method
	Logger *slog.Logger
}

// defaults fills any missing attributes to a sane default.
func (c *ClientOptions) defaults() {
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// NewClient returns a new client which uses the given 'serviceAPI', in general this should be the one created using
// the 's3.NewFromConfig' function exposed by the SDK.
func NewClient(options ClientOptions) *Client {
	// Fill out any missing fields with the sane defaults
	options.defaults()

	client := Client{
		serviceAPI: options.ServiceAPI,
		logger:     options.Logger,
	}

	return &client
}

func (c *Client) Provider() objval.Provider {
	return objval.ProviderAWS
}

func (c *Client) GetObject(ctx context.Context, opts objcli.GetObjectOptions) (*objval.Object, error) {
	input := &s3.GetObjectInput{
		Bucket: ptr.To(opts.Bucket),
		Key:    ptr.To(opts.Key),
	}

	resp, err := c.serviceAPI.GetObject(ctx, input)
	if err != nil {
		return nil, handleError(input.Bucket, input.Key, err)
	}

	attrs := objval.ObjectAttrs{
		Key:          opts.Key,
		ETag:         resp.ETag,
		Size:         resp.ContentLength,
		LastModified: resp.LastModified,
	}

	object := &objval.Object{
		ObjectAttrs: attrs,
		Body:        resp.Body,
	}

	return object, nil
}

func (c *Client) GetObjectAttrs(ctx context.Context, opts objcli.GetObjectAttrsOptions) (*objval.ObjectAttrs, error) {
	input := &s3.HeadObjectInput{
		Bucket: ptr.To(opts.Bucket),
		Key:    ptr.To(opts.Key),
	}

	resp, err := c.serviceAPI.HeadObject(ctx, input)
	if err != nil {
		return nil, handleError(input.Bucket, input.Key, err)
	}

	attrs := &objval.ObjectAttrs{
		Key:          opts.Key,
		ETag:         resp.ETag,
		Size:         resp.ContentLength,
		LastModified: resp.LastModified,
	}

	return attrs, nil
}

func (c *Client) GetObjectTags(ctx context.Context, opts objcli.GetObjectTagsOptions) ([]objval.Tag, error) {
	input := &s3.GetObjectTaggingInput{
		Bucket: ptr.To(opts.Bucket),
		Key:    ptr.To(opts.Key),
	}

	resp, err := c.serviceAPI.GetObjectTagging(ctx, input)
	if err != nil {
		return nil, handleError(input.Bucket, input.Key, err)
	}

	tags := make([]objval.Tag, 0, len(resp.TagSet))

	for _, tag := range resp.TagSet {
		tags = append(tags, objval.Tag{Key: ptr.From(tag.Key), Value: ptr.From(tag.Value)})
	}

	return tags, nil
}

func (c *Client) PutObject(ctx context.Context, opts objcli.PutObjectOptions) error {
	input := &s3.PutObjectInput{
		Body:   opts.Body,
		Bucket: ptr.To(opts.Bucket),
		Key:    ptr.To(opts.Key),
	}

	if len(opts.Tags) != 0 {
		input.Tagging = ptr.To(encodeTagging(opts.Tags))
	}

	_, err := c.serviceAPI.PutObject(ctx, input)

	return handleError(input.Bucket, input.Key, err)
}

func (c *Client) DeleteObject(ctx context.Context, opts objcli.DeleteObjectOptions) error {
	input := &s3.DeleteObjectInput{
		Bucket: ptr.To(opts.Bucket),
		Key:    ptr.To(opts.Key),
	}

	_, err := c.serviceAPI.DeleteObject(ctx, input)
	if err == nil {
		return nil
	}

	// The service treats deleting a key which does not exist as a success, mirror that for implementations which
	// surface a not found error instead
	if isKeyNotFound(err) {
		c.logger.Debug("object already deleted", "bucket", opts.Bucket, "key", opts.Key)
		return nil
	}

	return handleError(input.Bucket, input.Key, err)
}

func (c *Client) ListObjects(ctx context.Context, opts objcli.ListObjectsOptions) (*objval.ObjectPage, error) {
	input := &s3.ListObjectsV2Input{
		Bucket: ptr.To(opts.Bucket),
	}

	if opts.Prefix != "" {
		input.Prefix = ptr.To(opts.Prefix)
	}

	if opts.MaxKeys > 0 {
		input.MaxKeys = ptr.To(int32(opts.MaxKeys))
	}

	if opts.ContinuationToken != "" {
		input.ContinuationToken = ptr.To(opts.ContinuationToken)
	}

	resp, err := c.serviceAPI.ListObjectsV2(ctx, input)
	if err != nil {
		return nil, handleError(input.Bucket, nil, err)
	}

	page := &objval.ObjectPage{
		Objects:               make([]*objval.ObjectAttrs, 0, len(resp.Contents)),
		NextContinuationToken: ptr.From(resp.NextContinuationToken),
	}

	for _, object := range resp.Contents {
		page.Objects = append(page.Objects, &objval.ObjectAttrs{
			Key:          ptr.From(object.Key),
			ETag:         object.ETag,
			Size:         object.Size,
			LastModified: object.LastModified,
		})
	}

	return page, nil
}

// Close is a no-op for AWS as this won't result in a memory leak.
func (c *Client) Close() error {
	return nil
}
