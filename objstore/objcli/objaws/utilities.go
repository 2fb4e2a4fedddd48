package objaws

import (
	"errors"
	"net/url"
	"strings"

	"github.com/aws/smithy-go"

	"github.com/aws-cloudformation/awscommunity-s3-object/objstore/objerr"
	"github.com/aws-cloudformation/awscommunity-s3-object/objstore/objval"
	"github.com/aws-cloudformation/awscommunity-s3-object/ptr"
)

// handleError converts an error relating accessing an object via its key into a user friendly error where possible.
func handleError(bucket, key *string, err error) error {
	var apiErr smithy.APIError
	if err == nil || !errors.As(err, &apiErr) {
		return objerr.HandleError(err)
	}

	switch apiErr.ErrorCode() {
	case "InvalidAccessKeyId", "SignatureDoesNotMatch", "ExpiredToken":
		return objerr.ErrUnauthenticated
	case "AccessDenied":
		return objerr.ErrUnauthorized
	case "NoSuchKey", "NotFound":
		if key == nil {
			key = ptr.To("<empty key name>")
		}

		return &objerr.NotFoundError{Type: "key", Name: *key}
	case "NoSuchBucket":
		if bucket == nil {
			bucket = ptr.To("<empty bucket name>")
		}

		return &objerr.NotFoundError{Type: "bucket", Name: *bucket}
	case "RequestLimitExceeded", "SlowDown", "Throttling", "ThrottlingException":
		return &objerr.TooManyRequestsError{Code: apiErr.ErrorCode()}
	case "InvalidParameter", "InvalidParameterCombination", "InvalidParameterValue", "InvalidTagKey.Malformed",
		"MissingAction", "MissingParameter", "UnknownParameter", "ValidationError", "InvalidArgument":
		return &objerr.InvalidArgumentError{Code: apiErr.ErrorCode(), Message: apiErr.ErrorMessage()}
	}

	if err := objerr.TryHandleError(err); err != nil {
		return err
	}

	// This isn't a status code we plan to handle manually, return the complete error
	return err
}

// isKeyNotFound returns a boolean indicating whether the given error means the requested key does not exist. The
// generic 'NotFound' code is included because 'HeadObject' only returns the status text of the response.
func isKeyNotFound(err error) bool {
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && (apiErr.ErrorCode() == "NoSuchKey" || apiErr.ErrorCode() == "NotFound")
}

// encodeTagging encodes the given tag set in the query string format accepted by the service, preserving the order of
// the given tags.
//
// NOTE: 'url.Values' is not used here because its encoder sorts by key.
func encodeTagging(tags []objval.Tag) string {
	var builder strings.Builder

	for index, tag := range tags {
		if index > 0 {
			builder.WriteByte('&')
		}

		builder.WriteString(url.QueryEscape(tag.Key))
		builder.WriteByte('=')
		builder.WriteString(url.QueryEscape(tag.Value))
	}

	return builder.String()
}
