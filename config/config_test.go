package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadEnv_Defaults(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "")
	cfg := LoadEnv()

	if cfg.Database.Driver != "postgres" {
		t.Errorf("expected postgres driver by default, got %q", cfg.Database.Driver)
	}
	if cfg.Ledger.LockTTL != 5*time.Second {
		t.Errorf("expected 5s lock ttl, got %s", cfg.Ledger.LockTTL)
	}
	if len(cfg.Kafka.Brokers) != 0 {
		t.Errorf("empty KAFKA_BROKERS should disable kafka, got %v", cfg.Kafka.Brokers)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadEnv_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/x.db")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("LEDGER_LOCK_TTL_SECONDS", "12")
	t.Setenv("REDIS_DB", "not-a-number")

	cfg := LoadEnv()
	if cfg.Database.Driver != "sqlite" || cfg.Database.SQLitePath != "/tmp/x.db" {
		t.Errorf("unexpected database config: %+v", cfg.Database)
	}
	if len(cfg.Kafka.Brokers) != 2 || cfg.Kafka.Brokers[1] != "k2:9092" {
		t.Errorf("unexpected brokers: %v", cfg.Kafka.Brokers)
	}
	if cfg.Ledger.LockTTL != 12*time.Second {
		t.Errorf("unexpected lock ttl: %s", cfg.Ledger.LockTTL)
	}
	if cfg.Redis.DB != 0 {
		t.Errorf("invalid int should fall back, got %d", cfg.Redis.DB)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"unknown driver", func(c *Config) { c.Database.Driver = "mysql" }, "DB_DRIVER"},
		{"sqlite without path", func(c *Config) { c.Database.Driver = "sqlite"; c.Database.SQLitePath = "" }, "SQLITE_PATH"},
		{"lock without redis", func(c *Config) { c.Ledger.LockEnabled = true; c.Redis.Addr = "" }, "REDIS_ADDR"},
		{"kafka without topic", func(c *Config) { c.Kafka.Brokers = []string{"k:9092"}; c.Kafka.Topic = "" }, "KAFKA_TOPIC"},
		{"no grpc port", func(c *Config) { c.Server.GRPCPort = "" }, "GRPC_PORT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := LoadEnv()
			cfg.Kafka.Brokers = nil
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error mentioning %s, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestAddr(t *testing.T) {
	for in, want := range map[string]string{"8090": ":8090", ":8090": ":8090", "0.0.0.0:8090": "0.0.0.0:8090"} {
		if got := Addr(in); got != want {
			t.Errorf("Addr(%q) = %q, want %q", in, got, want)
		}
	}
}
