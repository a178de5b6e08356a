package config

import (
	"testing"
	"time"

	"github.com/riskibarqy/hltv-api/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("HLTV_BASE_URL", "")
	t.Setenv("HLTV_RSS_URL", "")
	t.Setenv("HLTV_MAX_RETRIES", "")
	t.Setenv("SECRET_KEY", "")
	t.Setenv("APP_LOG_FORMAT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AppEnv != EnvDev {
		t.Fatalf("expected dev env by default, got %q", cfg.AppEnv)
	}
	if cfg.HLTVBaseURL != "https://www.hltv.org" {
		t.Fatalf("unexpected HLTVBaseURL: %q", cfg.HLTVBaseURL)
	}
	if cfg.HLTVRSSURL != "https://www.hltv.org/rss" {
		t.Fatalf("unexpected HLTVRSSURL: %q", cfg.HLTVRSSURL)
	}
	if cfg.HLTVMaxRetries != 0 {
		t.Fatalf("expected no retries by default, got %d", cfg.HLTVMaxRetries)
	}
	if !cfg.UsesDefaultSecret() {
		t.Fatalf("expected default secret key")
	}
	if cfg.LogFormat != logging.FormatConsole {
		t.Fatalf("expected console logs in dev, got %q", cfg.LogFormat)
	}
}

func TestLoad_BaseURLTrailingSlashTrimmed(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("HLTV_BASE_URL", "https://mirror.example.com/")
	t.Setenv("HLTV_TIMEOUT", "4s")
	t.Setenv("SECRET_KEY", "s3cret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HLTVBaseURL != "https://mirror.example.com" {
		t.Fatalf("unexpected HLTVBaseURL: %q", cfg.HLTVBaseURL)
	}
	if cfg.HLTVTimeout != 4*time.Second {
		t.Fatalf("unexpected HLTVTimeout: %s", cfg.HLTVTimeout)
	}
	if cfg.UsesDefaultSecret() {
		t.Fatalf("did not expect default secret")
	}
	if cfg.LogFormat != logging.FormatJSON {
		t.Fatalf("expected json logs in prod, got %q", cfg.LogFormat)
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "relative base url", key: "HLTV_BASE_URL", value: "/hltv"},
		{name: "non http rss url", key: "HLTV_RSS_URL", value: "ftp://hltv.org/rss"},
		{name: "negative retries", key: "HLTV_MAX_RETRIES", value: "-1"},
		{name: "zero timeout", key: "HLTV_TIMEOUT", value: "0s"},
		{name: "bad circuit flag", key: "HLTV_CIRCUIT_ENABLED", value: "maybe"},
		{name: "zero failure count", key: "HLTV_CIRCUIT_FAILURE_COUNT", value: "0"},
		{name: "unknown log format", key: "APP_LOG_FORMAT", value: "xml"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvDev)
			t.Setenv(tc.key, tc.value)

			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", tc.key, tc.value)
			}
		})
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_PyroscopeRequiresServerWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_CORSOriginsSplit(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com , ,https://b.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example.com" {
		t.Fatalf("unexpected CORSAllowedOrigins: %#v", cfg.CORSAllowedOrigins)
	}
}
