package config

import (
	"strings"
	"testing"
	"time"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() error = %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Driver != DriverPostgres {
		t.Errorf("Database.Driver = %q, want %q", cfg.Database.Driver, DriverPostgres)
	}
	if cfg.Cache.Type != CacheNone || cfg.Cache.TTL != 5*time.Minute {
		t.Errorf("Cache = %+v, want none/5m", cfg.Cache)
	}
	if cfg.Ingest.MaxRetries != 5 || cfg.Ingest.InitialInterval != 100*time.Millisecond {
		t.Errorf("Ingest = %+v", cfg.Ingest)
	}
	if cfg.IsProduction() {
		t.Error("IsProduction() = true for default environment")
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_SQLITE_PATH", "/tmp/archive.db")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("CACHE_TYPE", "redis")
	t.Setenv("REDIS_HOST", "cache.internal")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("INGEST_MAX_RETRIES", "2")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() error = %v", err)
	}

	if cfg.Server.Port != "9090" || !cfg.IsProduction() {
		t.Errorf("Server = %+v", cfg.Server)
	}
	if cfg.Database.Driver != DriverSQLite || cfg.Database.SQLitePath != "/tmp/archive.db" {
		t.Errorf("Database = %+v", cfg.Database)
	}
	if !strings.Contains(cfg.GetDatabaseDSN(), "host=db.internal") {
		t.Errorf("GetDatabaseDSN() = %q", cfg.GetDatabaseDSN())
	}
	if cfg.GetRedisAddr() != "cache.internal:6379" {
		t.Errorf("GetRedisAddr() = %q", cfg.GetRedisAddr())
	}
	if cfg.Cache.TTL != 30*time.Second {
		t.Errorf("Cache.TTL = %v", cfg.Cache.TTL)
	}
	if cfg.Ingest.MaxRetries != 2 {
		t.Errorf("Ingest.MaxRetries = %d", cfg.Ingest.MaxRetries)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown driver", env: map[string]string{"DB_DRIVER": "mysql"}},
		{name: "unknown cache", env: map[string]string{"CACHE_TYPE": "memcached"}},
		{name: "non-positive ttl", env: map[string]string{"CACHE_TTL": "0s"}},
		{name: "empty sqlite path", env: map[string]string{"DB_DRIVER": "sqlite", "DB_SQLITE_PATH": ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := FromEnv(); err == nil {
				t.Error("FromEnv() error = nil, want validation error")
			}
		})
	}
}
