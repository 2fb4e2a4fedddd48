package objcli

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/aws-cloudformation/awscommunity-s3-object/objstore/objval"
)

func TestRateLimitedClientProvider(t *testing.T) {
	client := NewRateLimitedClient(NewTestClient(t, objval.ProviderAWS), rate.NewLimiter(rate.Inf, 0))

	require.Equal(t, objval.ProviderAWS, client.Provider())
}

func TestRateLimitedClientLimitsRequests(t *testing.T) {
	client := NewRateLimitedClient(
		NewTestClient(t, objval.ProviderAWS),
		rate.NewLimiter(rate.Every(50*time.Millisecond), 1),
	)

	start := time.Now()

	// The first request consumes the burst, the following two must each wait for the limiter
	for i := 0; i < 3; i++ {
		err := client.PutObject(context.Background(), PutObjectOptions{
			Bucket: "bucket",
			Key:    "key",
			Body:   strings.NewReader("value"),
		})
		require.NoError(t, err)
	}

	require.GreaterOrEqual(t, time.Since(start), 100*time.Millisecond)
}

func TestRateLimitedClientContextCanceled(t *testing.T) {
	client := NewRateLimitedClient(
		NewTestClient(t, objval.ProviderAWS),
		rate.NewLimiter(rate.Every(time.Hour), 1),
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetObject(ctx, GetObjectOptions{Bucket: "bucket", Key: "key"})
	require.Error(t, err)
}

func TestRateLimitedClientDelegates(t *testing.T) {
	client := NewRateLimitedClient(NewTestClient(t, objval.ProviderAWS), rate.NewLimiter(rate.Inf, 0))

	err := client.PutObject(context.Background(), PutObjectOptions{
		Bucket: "bucket",
		Key:    "key",
		Body:   strings.NewReader("value"),
		Tags:   []objval.Tag{{Key: "key1", Value: "value1"}},
	})
	require.NoError(t, err)

	object, err := client.GetObject(context.Background(), GetObjectOptions{Bucket: "bucket", Key: "key"})
	require.NoError(t, err)
	require.Equal(t, "key", object.Key)

	attrs, err := client.GetObjectAttrs(context.Background(), GetObjectAttrsOptions{Bucket: "bucket", Key: "key"})
	require.NoError(t, err)
	require.Equal(t, "key", attrs.Key)

	tags, err := client.GetObjectTags(context.Background(), GetObjectTagsOptions{Bucket: "bucket", Key: "key"})
	require.NoError(t, err)
	require.Equal(t, []objval.Tag{{Key: "key1", Value: "value1"}}, tags)

	page, err := client.ListObjects(context.Background(), ListObjectsOptions{Bucket: "bucket"})
	require.NoError(t, err)
	require.Len(t, page.Objects, 1)

	require.NoError(t, client.DeleteObject(context.Background(), DeleteObjectOptions{Bucket: "bucket", Key: "key"}))
	require.NoError(t, client.Close())
}
