package main

import (
	"context"
	"io"
	"time"

	"go.uber.org/zap"

	"insurance-agent/config"
	"insurance-agent/repository"
	"insurance-agent/service"
)

type services struct {
	value    *service.ValueService
	risk     *service.RiskService
	discount *service.DiscountService
	closer   io.Closer
}

func newCache(ctx context.Context, cfg *config.Config) (repository.CacheRepository, io.Closer, error) {
	switch cfg.Cache.Backend {
	case config.CacheMemory:
		return repository.NewMemoryCache(), nil, nil
	case config.CacheRedis:
		cache := repository.NewRedisCache(repository.RedisOptions{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
			TTL:      cfg.Cache.TTL,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := cache.Ping(pingCtx); err != nil {
			_ = cache.Close()
			return nil, nil, err
		}
		return cache, cache, nil
	default:
		return repository.NewNoopCache(), nil, nil
	}
}

func newServices(ctx context.Context, cfg *config.Config) (*services, error) {
	rules := service.DefaultKeywordRules()
	if cfg.Service.RiskRulesFile != "" {
		loaded, err := service.LoadKeywordRules(cfg.Service.RiskRulesFile)
		if err != nil {
			return nil, err
		}
		rules = loaded
		zap.S().Named("setup").Infow("loaded risk keyword rules", "file", cfg.Service.RiskRulesFile, "rules", len(rules))
	}

	cache, closer, err := newCache(ctx, cfg)
	if err != nil {
		return nil, err
	}
	zap.S().Named("setup").Infow("result cache ready", "backend", cfg.Cache.Backend)

	riskService, err := service.NewRiskService(rules, cache)
	if err != nil {
		if closer != nil {
			_ = closer.Close()
		}
		return nil, err
	}

	return &services{
		value:    service.NewValueService(cache),
		risk:     riskService,
		discount: service.NewDiscountService(),
		closer:   closer,
	}, nil
}

func (s *services) Close() {
	if s.closer == nil {
		return
	}
	if err := s.closer.Close(); err != nil {
		zap.S().Named("setup").Warnw("closing result cache", "error", err)
	}
}
