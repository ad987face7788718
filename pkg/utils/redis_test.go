package utils

import (
	"testing"
	"time"
)

func TestRedisConfigDefaults(t *testing.T) {
	cfg := RedisConfig{Addr: "localhost:6379"}.withDefaults()
	if cfg.DialTimeout != 3*time.Second {
		t.Fatalf("unexpected dial timeout %v", cfg.DialTimeout)
	}
	if cfg.PoolSize != 10 {
		t.Fatalf("unexpected pool size %d", cfg.PoolSize)
	}
}

func TestRedisConfigOverridesKept(t *testing.T) {
	cfg := RedisConfig{Addr: "localhost:6379", PoolSize: 3, PingTimeout: time.Second}.withDefaults()
	if cfg.PoolSize != 3 {
		t.Fatalf("expected override kept, got %d", cfg.PoolSize)
	}
	if cfg.PingTimeout != time.Second {
		t.Fatalf("expected override kept, got %v", cfg.PingTimeout)
	}
}
