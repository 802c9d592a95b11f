package config

import (
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("HOST", "")
	t.Setenv("JWT_EXPIRES_IN", "")

	cfg := LoadConfig()

	if cfg.AppPort != "3000" {
		t.Errorf("AppPort = %q, want %q", cfg.AppPort, "3000")
	}
	if cfg.Host != "" {
		t.Errorf("Host = %q, want empty", cfg.Host)
	}
	if cfg.JWTExpiration != defaultJWTExpiration {
		t.Errorf("JWTExpiration = %v, want %v", cfg.JWTExpiration, defaultJWTExpiration)
	}
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("JWT_EXPIRES_IN", "1h")

	cfg := LoadConfig()

	if cfg.AppPort != "8080" {
		t.Errorf("AppPort = %q, want %q", cfg.AppPort, "8080")
	}
	if cfg.Host != "127.0.0.1" {
		t.Errorf("Host = %q, want %q", cfg.Host, "127.0.0.1")
	}
	if cfg.JWTSecret != "env-secret" {
		t.Errorf("JWTSecret = %q, want %q", cfg.JWTSecret, "env-secret")
	}
	if cfg.JWTExpiration != time.Hour {
		t.Errorf("JWTExpiration = %v, want %v", cfg.JWTExpiration, time.Hour)
	}
}

func TestParseExpiration(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Duration
	}{
		{name: "empty falls back", raw: "", want: defaultJWTExpiration},
		{name: "valid duration", raw: "30m", want: 30 * time.Minute},
		{name: "invalid falls back", raw: "tomorrow", want: defaultJWTExpiration},
		{name: "negative falls back", raw: "-1h", want: defaultJWTExpiration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseExpiration(tt.raw); got != tt.want {
				t.Errorf("parseExpiration(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}
