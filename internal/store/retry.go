package store

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
)

const (
	retryBaseDelay  = 50 * time.Millisecond
	retryMaxRetries = 3
)

// withRetry runs a read with exponential backoff, retrying only the errors
// the classifier marks as [Retryable].
func withRetry[T any](ctx context.Context, classifier ErrorClassificator, read func(ctx context.Context) (T, error)) (T, error) {
	backoff := retry.WithMaxRetries(retryMaxRetries, retry.NewExponential(retryBaseDelay))

	return retry.DoValue(ctx, backoff, func(ctx context.Context) (T, error) {
		v, err := read(ctx)
		if err != nil && classifier.Classify(err) == Retryable {
			return v, retry.RetryableError(err)
		}
		return v, err
	})
}
