package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/floxenta/floxenta_backend/config"
)

func TestFromCentralConfig_Defaults(t *testing.T) {
	cfg := FromCentralConfig(config.RedisConfig{Addr: "cache:6379", DB: 2})

	if cfg.Addr != "cache:6379" || cfg.DB != 2 {
		t.Errorf("unexpected addr/db: %+v", cfg)
	}
	if cfg.PoolSize != 10 || cfg.MinIdleConns != 2 {
		t.Errorf("expected default pool settings, got %+v", cfg)
	}
	if cfg.DialTimeout() != 5*time.Second {
		t.Errorf("DialTimeout() = %v, want 5s", cfg.DialTimeout())
	}
}

func TestFromCentralConfig_Overrides(t *testing.T) {
	cfg := FromCentralConfig(config.RedisConfig{PoolSize: 50, ReadTimeoutSeconds: 9})

	if cfg.PoolSize != 50 {
		t.Errorf("PoolSize = %d, want 50", cfg.PoolSize)
	}
	if cfg.ReadTimeout() != 9*time.Second {
		t.Errorf("ReadTimeout() = %v, want 9s", cfg.ReadTimeout())
	}
}

func TestNewRedis_EmptyAddr(t *testing.T) {
	_, err := NewRedis(context.Background(), Config{})
	if !errors.Is(err, ErrNoAddr) {
		t.Errorf("expected ErrNoAddr, got %v", err)
	}
}
