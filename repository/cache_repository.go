package repository

import "context"

// CacheRepository stores computed results keyed by a digest of the validated
// input. A miss is reported as ok=false with a nil error.
type CacheRepository interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key string, value string) error
}
