package configs

import (
	"testing"
	"time"
)

func TestSqliteDSN(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"littlelemon.db", "littlelemon.db?_foreign_keys=1&_busy_timeout=5000&_txlock=immediate"},
		{"file:x?mode=memory", "file:x?mode=memory&_foreign_keys=1&_busy_timeout=5000&_txlock=immediate"},
		{"file:x?_foreign_keys=0&_txlock=deferred", "file:x?_foreign_keys=0&_txlock=deferred&_busy_timeout=5000"},
	}
	for _, tt := range tests {
		if got := sqliteDSN(tt.in); got != tt.want {
			t.Errorf("sqliteDSN(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("JWT_TTL", "90m")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("PORT", "")

	cfg := LoadConfig()
	if cfg.DBDriver != "postgres" {
		t.Errorf("DBDriver = %q", cfg.DBDriver)
	}
	if cfg.JWTTTL != 90*time.Minute {
		t.Errorf("JWTTTL = %s", cfg.JWTTTL)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://b.example" {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
	if cfg.Port != "8000" {
		t.Errorf("empty PORT should fall back, got %q", cfg.Port)
	}
}

func TestGetDurationFallback(t *testing.T) {
	t.Setenv("JWT_TTL", "soon")
	if d := getDuration("JWT_TTL", time.Hour); d != time.Hour {
		t.Fatalf("getDuration = %s", d)
	}
	t.Setenv("JWT_TTL", "-5m")
	if d := getDuration("JWT_TTL", time.Hour); d != time.Hour {
		t.Fatalf("negative duration accepted: %s", d)
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	if _, err := Open("oracle", "x"); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}
