// Command handler is the Lambda entrypoint for the 'AwsCommunity::S3::Object' resource type provider.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/aws-cloudformation/awscommunity-s3-object/awsconf"
	"github.com/aws-cloudformation/awscommunity-s3-object/cfn"
	"github.com/aws-cloudformation/awscommunity-s3-object/envvar"
	"github.com/aws-cloudformation/awscommunity-s3-object/objstore/objcli"
	"github.com/aws-cloudformation/awscommunity-s3-object/resource"
)

const (
	// envLogLevel names the optional environment variable which sets the log level, info when unset.
	envLogLevel = "S3_OBJECT_LOG_LEVEL"

	// envMaxRPS names the optional environment variable which caps S3 requests per second, unlimited when unset.
	envMaxRPS = "S3_OBJECT_MAX_RPS"

	// envEndpoint names the optional environment variable which points the handlers at a custom S3 endpoint, used
	// when testing against a local stand-in.
	envEndpoint = "S3_OBJECT_ENDPOINT"
)

func main() {
	level, _ := envvar.GetLogLevel(envLogLevel)

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	handlers := resource.NewHandlers(resource.HandlersOptions{NewClient: newClient, Logger: logger})

	lambda.Start(handlers.Resource().HandleEvent)
}

// newClient constructs the storage client scoped to the region/credentials of a single invocation.
func newClient(ctx context.Context, request *cfn.Request) (objcli.Client, error) {
	maxRPS, _ := envvar.GetFloat64(envMaxRPS)

	return awsconf.NewObjectClient(ctx, awsconf.Options{
		Region:      request.Region,
		Credentials: request.Credentials,
		Endpoint:    os.Getenv(envEndpoint),
		MaxRPS:      maxRPS,
	})
}
