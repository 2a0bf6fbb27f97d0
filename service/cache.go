package service

import (
	"context"

	"go.uber.org/zap"

	"insurance-agent/metrics"
	"insurance-agent/repository"
)

// cachedLookup never fails the caller: cache errors are logged and treated as a miss.
func cachedLookup(ctx context.Context, cache repository.CacheRepository, namespace, key string) (string, bool) {
	val, ok, err := cache.Get(ctx, key)
	switch {
	case err != nil:
		zap.S().Named("cache").Warnw("cache lookup failed", "namespace", namespace, "error", err)
		metrics.IncreaseCacheLookupMetric(namespace, metrics.CacheResultError)
		return "", false
	case ok:
		metrics.IncreaseCacheLookupMetric(namespace, metrics.CacheResultHit)
		return val, true
	default:
		metrics.IncreaseCacheLookupMetric(namespace, metrics.CacheResultMiss)
		return "", false
	}
}

func cachedStore(ctx context.Context, cache repository.CacheRepository, namespace, key, value string) {
	if err := cache.Set(ctx, key, value); err != nil {
		zap.S().Named("cache").Warnw("cache store failed", "namespace", namespace, "error", err)
	}
}
