// Package awsconf builds AWS SDK configuration/clients from the per-invocation state vended by the service.
package awsconf

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"golang.org/x/time/rate"

	"github.com/aws-cloudformation/awscommunity-s3-object/cfn"
	"github.com/aws-cloudformation/awscommunity-s3-object/objstore/objcli"
	"github.com/aws-cloudformation/awscommunity-s3-object/objstore/objcli/objaws"
	"github.com/aws-cloudformation/awscommunity-s3-object/ptr"
)

// Options encapsulates the options available when building SDK configuration.
type Options struct {
	// Region is the region the operation targets.
	//
	// NOTE: Required
	Region string

	// Credentials vended for the invocation, the SDK default provider chain is used when <nil>.
	Credentials *cfn.Credentials

	// Endpoint overrides the service endpoint, used to point the provider at S3 compatible stand-ins during local
	// testing; path style addressing is enabled alongside since stand-ins rarely support virtual hosting.
	Endpoint string

	// MaxRPS caps the request rate dispatched to the service, unlimited when zero.
	MaxRPS float64

	// Logger is the passed logger which implements a custom Log method
	Logger *slog.Logger
}

// defaults fills any missing attributes to a sane default.
func (o *Options) defaults() {
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
}

// New returns SDK configuration honoring the given options.
func New(ctx context.Context, options Options) (aws.Config, error) {
	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(options.Region)}

	if options.Credentials != nil {
		provider := credentials.NewStaticCredentialsProvider(
			options.Credentials.AccessKeyID,
			options.Credentials.SecretAccessKey,
			options.Credentials.SessionToken,
		)

		loadOpts = append(loadOpts, config.WithCredentialsProvider(provider))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load SDK configuration: %w", err)
	}

	return cfg, nil
}

// NewObjectClient returns an object storage client dispatching requests with the given options.
func NewObjectClient(ctx context.Context, options Options) (objcli.Client, error) {
	// Fill out any missing fields with the sane defaults
	options.defaults()

	cfg, err := New(ctx, options)
	if err != nil {
		return nil, err // Purposefully not wrapped
	}

	serviceAPI := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if options.Endpoint == "" {
			return
		}

		o.BaseEndpoint = ptr.To(options.Endpoint)
		o.UsePathStyle = true
	})

	var client objcli.Client = objaws.NewClient(objaws.ClientOptions{
		ServiceAPI: serviceAPI,
		Logger:     options.Logger,
	})

	if options.MaxRPS > 0 {
		client = objcli.NewRateLimitedClient(client, rate.NewLimiter(rate.Limit(options.MaxRPS), 1))
	}

	return client, nil
}
