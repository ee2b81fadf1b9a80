package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/cartcompass/backend/config"
	httpDelivery "github.com/cartcompass/backend/internal/delivery/http"
	"github.com/cartcompass/backend/internal/domain"
	"github.com/cartcompass/backend/internal/infrastructure/cache"
	"github.com/cartcompass/backend/internal/infrastructure/catalog"
	"github.com/cartcompass/backend/internal/infrastructure/refdata"
	"github.com/cartcompass/backend/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting CartCompass Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Catalog mode: %s (seed: %d)", cfg.Catalog.Mode, cfg.Catalog.Seed)
	log.Printf("Cache type: %s (TTL: %s)", cfg.Cache.Type, cfg.Cache.TTL)

	// Reference dataset is built once and passed by handle; nothing reads
	// it through globals.
	dataset := refdata.New(cfg.Catalog.Seed)

	var cacheRepo domain.CacheRepository
	if cfg.Cache.Type == "redis" {
		redisCache, err := cache.NewRedisCache(context.Background(), cfg.Cache.RedisURL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisCache.Close()
		cacheRepo = redisCache
	} else {
		cacheRepo = cache.NewMemoryCache()
	}

	debug := cfg.Server.Environment == "development" || cfg.Matching.EnableDebugLogging

	matcher := usecase.NewMatcher(dataset, usecase.MatcherConfig{
		SizeTolerancePct:   cfg.Matching.SizeTolerancePct,
		EnableDebugLogging: debug,
	})
	quoter := usecase.NewQuoter(matcher)

	registry := catalog.NewRegistry(dataset, quoter, catalog.RegistryConfig{
		Mode:           cfg.Catalog.Mode,
		LiveBaseURLs:   cfg.Catalog.LiveBaseURLs,
		APIKey:         cfg.Catalog.APIKey,
		RequestsPerSec: cfg.Catalog.RequestsPerSec,
		Burst:          cfg.Catalog.Burst,
		Cache:          cacheRepo,
		CacheTTL:       cfg.Cache.TTL,
		EnableDebugLog: debug,
	})
	log.Printf("Catalog providers registered: %v", registry.Chains())

	compareService := usecase.NewCompareService(usecase.CompareConfig{
		StoreTimeout:       cfg.Catalog.StoreTimeout,
		EnableDebugLogging: debug,
	})

	handler := httpDelivery.NewHandler(compareService, registry, dataset, usecase.NewSuggester())
	router := httpDelivery.SetupRouter(cfg, handler)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
