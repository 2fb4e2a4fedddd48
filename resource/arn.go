package resource

import (
	"fmt"
	"strings"
)

// arnPrefix starts every S3 object ARN, the remainder is '<bucket>/<key>'.
const arnPrefix = "arn:aws:s3:::"

// Arn returns the ARN which uniquely identifies an object within a bucket.
func Arn(bucket, key string) string {
	return arnPrefix + bucket + "/" + key
}

// ParseArn recovers the bucket/key pair from an ARN previously handed out as the primary identifier.
func ParseArn(arn string) (string, string, error) {
	remainder, found := strings.CutPrefix(arn, arnPrefix)
	if !found {
		return "", "", fmt.Errorf("invalid object arn '%s'", arn)
	}

	bucket, key, found := strings.Cut(remainder, "/")
	if !found || bucket == "" || key == "" {
		return "", "", fmt.Errorf("invalid object arn '%s'", arn)
	}

	return bucket, key, nil
}
