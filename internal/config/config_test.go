package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ListenAddr != ":8080" {
		t.Errorf("ListenAddr = %q, want %q", cfg.ListenAddr, ":8080")
	}
	if cfg.DBDriver != "sqlite3" {
		t.Errorf("DBDriver = %q, want %q", cfg.DBDriver, "sqlite3")
	}
	if cfg.JWTTTL != 72*time.Hour {
		t.Errorf("JWTTTL = %v, want %v", cfg.JWTTTL, 72*time.Hour)
	}
	if cfg.AttemptRetention != 90*24*time.Hour {
		t.Errorf("AttemptRetention = %v, want %v", cfg.AttemptRetention, 90*24*time.Hour)
	}
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when JWT_SECRET is missing")
	}
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DB_DRIVER", "oracle")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestLoadRejectsBadTTL(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_TTL_HOURS", "soon")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-numeric JWT_TTL_HOURS")
	}
}
