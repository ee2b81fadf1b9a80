package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("port = %s, want 8080", cfg.Server.Port)
	}
	if cfg.Server.Environment != "development" {
		t.Errorf("environment = %s", cfg.Server.Environment)
	}
	if cfg.Catalog.Mode != "simulated" {
		t.Errorf("catalog mode = %s", cfg.Catalog.Mode)
	}
	if cfg.Catalog.Seed != 20260120 {
		t.Errorf("seed = %d", cfg.Catalog.Seed)
	}
	if cfg.Catalog.StoreTimeout != 10*time.Second {
		t.Errorf("store timeout = %s", cfg.Catalog.StoreTimeout)
	}
	if cfg.Cache.Type != "memory" {
		t.Errorf("cache type = %s", cfg.Cache.Type)
	}
	if cfg.Cache.TTL != 15*time.Minute {
		t.Errorf("cache ttl = %s", cfg.Cache.TTL)
	}
	if cfg.Matching.SizeTolerancePct != 0.25 {
		t.Errorf("size tolerance = %v", cfg.Matching.SizeTolerancePct)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CARTCOMPASS_SERVER_PORT", "9090")
	t.Setenv("CARTCOMPASS_CATALOG_MODE", "hybrid")
	t.Setenv("CARTCOMPASS_CACHE_TTL", "5m")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("port = %s, want 9090", cfg.Server.Port)
	}
	if cfg.Catalog.Mode != "hybrid" {
		t.Errorf("catalog mode = %s, want hybrid", cfg.Catalog.Mode)
	}
	if cfg.Cache.TTL != 5*time.Minute {
		t.Errorf("cache ttl = %s, want 5m", cfg.Cache.TTL)
	}
}

func TestLoadRejectsInvalidMode(t *testing.T) {
	t.Setenv("CARTCOMPASS_CATALOG_MODE", "live")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "catalog mode") {
		t.Errorf("err = %v, want catalog mode error", err)
	}
}

func TestLoadRejectsInvalidCacheType(t *testing.T) {
	t.Setenv("CARTCOMPASS_CACHE_TYPE", "memcached")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "cache type") {
		t.Errorf("err = %v, want cache type error", err)
	}
}

func TestLoadRequiresRedisURL(t *testing.T) {
	t.Setenv("CARTCOMPASS_CACHE_TYPE", "redis")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "Redis URL") {
		t.Errorf("err = %v, want Redis URL error", err)
	}

	t.Setenv("CARTCOMPASS_CACHE_REDIS_URL", "redis://localhost:6379/0")
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Cache.RedisURL == "" {
		t.Error("redis url not picked up from environment")
	}
}
