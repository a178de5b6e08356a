package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/hltv-api/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// DefaultSecretKey is the placeholder secret shipped with the service.
const DefaultSecretKey = "changeme"

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                     string
	ServiceName                string
	ServiceVersion             string
	HTTPAddr                   string
	ReadTimeout                time.Duration
	WriteTimeout               time.Duration
	CORSAllowedOrigins         []string
	SecretKey                  string
	LogLevel                   logging.Level
	LogFormat                  logging.Format
	HLTVBaseURL                string
	HLTVRSSURL                 string
	HLTVUserAgent              string
	HLTVTimeout                time.Duration
	HLTVMaxRetries             int
	HLTVCircuitEnabled         bool
	HLTVCircuitFailureCount    int
	HLTVCircuitOpenTimeout     time.Duration
	HLTVCircuitHalfOpenMaxReq  int
	UptraceEnabled             bool
	UptraceDSN                 string
	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
	PprofEnabled               bool
	PprofAddr                  string
}

// UsesDefaultSecret reports whether SECRET_KEY was left at its placeholder value.
func (c Config) UsesDefaultSecret() bool {
	return c.SecretKey == DefaultSecretKey
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	httpAddr := strings.TrimSpace(getEnv("APP_HTTP_ADDR", ":8080"))
	if httpAddr == "" {
		return Config{}, fmt.Errorf("APP_HTTP_ADDR cannot be empty")
	}
	readTimeout, err := getEnvAsDuration("APP_READ_TIMEOUT", "10s")
	if err != nil {
		return Config{}, err
	}
	writeTimeout, err := getEnvAsDuration("APP_WRITE_TIMEOUT", "30s")
	if err != nil {
		return Config{}, err
	}

	logFormat := logging.FormatJSON
	if appEnv == EnvDev {
		logFormat = logging.FormatConsole
	}
	if raw := strings.TrimSpace(os.Getenv("APP_LOG_FORMAT")); raw != "" {
		logFormat, err = parseLogFormat(raw)
		if err != nil {
			return Config{}, err
		}
	}

	baseURL, err := getEnvAsURL("HLTV_BASE_URL", "https://www.hltv.org")
	if err != nil {
		return Config{}, err
	}
	rssURL, err := getEnvAsURL("HLTV_RSS_URL", "https://www.hltv.org/rss")
	if err != nil {
		return Config{}, err
	}
	hltvTimeout, err := getEnvAsDuration("HLTV_TIMEOUT", "10s")
	if err != nil {
		return Config{}, err
	}
	hltvMaxRetries, err := getEnvAsInt("HLTV_MAX_RETRIES", 0)
	if err != nil {
		return Config{}, fmt.Errorf("parse HLTV_MAX_RETRIES: %w", err)
	}
	if hltvMaxRetries < 0 {
		return Config{}, fmt.Errorf("HLTV_MAX_RETRIES must be >= 0")
	}
	hltvCircuitEnabled, err := strconv.ParseBool(getEnv("HLTV_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HLTV_CIRCUIT_ENABLED: %w", err)
	}
	hltvCircuitFailureCount, err := getEnvAsInt("HLTV_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse HLTV_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if hltvCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("HLTV_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	hltvCircuitOpenTimeout, err := getEnvAsDuration("HLTV_CIRCUIT_OPEN_TIMEOUT", "30s")
	if err != nil {
		return Config{}, err
	}
	hltvCircuitHalfOpenMaxReq, err := getEnvAsInt("HLTV_CIRCUIT_HALF_OPEN_MAX_REQ", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse HLTV_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if hltvCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("HLTV_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := getEnvAsDuration("PYROSCOPE_UPLOAD_RATE", "15s")
	if err != nil {
		return Config{}, err
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	serviceName := getEnv("APP_SERVICE_NAME", "hltv-api")

	return Config{
		AppEnv:                     appEnv,
		ServiceName:                serviceName,
		ServiceVersion:             getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                   httpAddr,
		ReadTimeout:                readTimeout,
		WriteTimeout:               writeTimeout,
		CORSAllowedOrigins:         splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		SecretKey:                  getEnv("SECRET_KEY", DefaultSecretKey),
		LogLevel:                   parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
		LogFormat:                  logFormat,
		HLTVBaseURL:                baseURL,
		HLTVRSSURL:                 rssURL,
		HLTVUserAgent:              getEnv("HLTV_USER_AGENT", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"),
		HLTVTimeout:                hltvTimeout,
		HLTVMaxRetries:             hltvMaxRetries,
		HLTVCircuitEnabled:         hltvCircuitEnabled,
		HLTVCircuitFailureCount:    hltvCircuitFailureCount,
		HLTVCircuitOpenTimeout:     hltvCircuitOpenTimeout,
		HLTVCircuitHalfOpenMaxReq:  hltvCircuitHalfOpenMaxReq,
		UptraceEnabled:             uptraceEnabled,
		UptraceDSN:                 uptraceDSN,
		PyroscopeEnabled:           pyroscopeEnabled,
		PyroscopeServerAddress:     pyroscopeServerAddress,
		PyroscopeAppName:           getEnv("PYROSCOPE_APP_NAME", serviceName),
		PyroscopeAuthToken:         getEnv("PYROSCOPE_AUTH_TOKEN", ""),
		PyroscopeBasicAuthUser:     getEnv("PYROSCOPE_BASIC_AUTH_USER", ""),
		PyroscopeBasicAuthPassword: getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", ""),
		PyroscopeUploadRate:        pyroscopeUploadRate,
		PprofEnabled:               pprofEnabled,
		PprofAddr:                  pprofAddr,
	}, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func parseLogFormat(v string) (logging.Format, error) {
	switch logging.Format(strings.ToLower(strings.TrimSpace(v))) {
	case logging.FormatJSON:
		return logging.FormatJSON, nil
	case logging.FormatConsole:
		return logging.FormatConsole, nil
	default:
		return "", fmt.Errorf("invalid APP_LOG_FORMAT %q: valid values are %s, %s", v, logging.FormatJSON, logging.FormatConsole)
	}
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	return strconv.Atoi(value)
}

func getEnvAsDuration(key, fallback string) (time.Duration, error) {
	out, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if out <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}

	return out, nil
}

func getEnvAsURL(key, fallback string) (string, error) {
	raw := strings.TrimRight(strings.TrimSpace(getEnv(key, fallback)), "/")
	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", key, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("%s must be an absolute http(s) url, got %q", key, raw)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("%s must include a host, got %q", key, raw)
	}

	return raw, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}
