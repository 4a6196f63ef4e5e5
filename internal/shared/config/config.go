package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	JWT        JWTConfig
	Encryption EncryptionConfig
	TLS        TLSConfig
	Log        LogConfig
	Audit      AuditConfig
	Telemetry  TelemetryConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	AllowedHosts []string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	// PingTimeout bounds the startup connectivity check.
	PingTimeout time.Duration
}

type JWTConfig struct {
	Secret string
}

type EncryptionConfig struct {
	Key string
}

type TLSConfig struct {
	Enabled      bool
	CertPath     string
	KeyPath      string
	RedirectHTTP bool
}

type LogConfig struct {
	JSON  bool
	Debug bool
}

type AuditConfig struct {
	Workers int
}

type TelemetryConfig struct {
	Enabled      bool
	ServiceName  string
	Environment  string
	OTLPEndpoint string
	MetricsPort  string
}

var defaults = map[string]string{
	"PORT":                   "8080",
	"HOST":                   "0.0.0.0",
	"DB_HOST":                "localhost",
	"DB_PORT":                "5432",
	"DB_USER":                "freelancernow",
	"DB_NAME":                "freelancernow",
	"DB_SSLMODE":             "disable",
	"DB_MAX_OPEN_CONNS":      "25",
	"DB_MAX_IDLE_CONNS":      "5",
	"DB_CONN_MAX_LIFETIME":   "5m",
	"DB_PING_TIMEOUT":        "5s",
	"AUDIT_WORKERS":          "4",
	"OTEL_SERVICE_NAME":      "freelancernow-api",
	"OTEL_ENVIRONMENT":       "development",
	"OTEL_EXPORTER_ENDPOINT": "localhost:4317",
	"METRICS_PORT":           "9090",
}

// Load reads configuration from the environment. When CONFIG_FILE points
// to a file (yaml, json, toml or .env) its keys fill in anything the
// environment leaves unset.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if path := v.GetString("CONFIG_FILE"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	dbPort, err := getInt(v, "DB_PORT")
	if err != nil {
		return nil, err
	}
	maxOpen, err := getInt(v, "DB_MAX_OPEN_CONNS")
	if err != nil {
		return nil, err
	}
	maxIdle, err := getInt(v, "DB_MAX_IDLE_CONNS")
	if err != nil {
		return nil, err
	}
	connLifetime, err := getDuration(v, "DB_CONN_MAX_LIFETIME")
	if err != nil {
		return nil, err
	}
	pingTimeout, err := getDuration(v, "DB_PING_TIMEOUT")
	if err != nil {
		return nil, err
	}
	auditWorkers, err := getInt(v, "AUDIT_WORKERS")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetString("PORT"),
			Host:         v.GetString("HOST"),
			AllowedHosts: splitList(v.GetString("ALLOWED_HOSTS")),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     dbPort,
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),

			MaxOpenConns:    maxOpen,
			MaxIdleConns:    maxIdle,
			ConnMaxLifetime: connLifetime,
			PingTimeout:     pingTimeout,
		},
		JWT: JWTConfig{
			Secret: v.GetString("JWT_SECRET"),
		},
		Encryption: EncryptionConfig{
			Key: v.GetString("ENCRYPTION_KEY"),
		},
		TLS: TLSConfig{
			Enabled:      getBool(v, "TLS_ENABLED", false),
			CertPath:     v.GetString("TLS_CERT_PATH"),
			KeyPath:      v.GetString("TLS_KEY_PATH"),
			RedirectHTTP: getBool(v, "TLS_REDIRECT_HTTP", false),
		},
		Log: LogConfig{
			JSON:  getBool(v, "LOG_JSON", false),
			Debug: getBool(v, "LOG_DEBUG", false),
		},
		Audit: AuditConfig{
			Workers: auditWorkers,
		},
		Telemetry: TelemetryConfig{
			Enabled:      getBool(v, "OTEL_ENABLED", false),
			ServiceName:  v.GetString("OTEL_SERVICE_NAME"),
			Environment:  v.GetString("OTEL_ENVIRONMENT"),
			OTLPEndpoint: v.GetString("OTEL_EXPORTER_ENDPOINT"),
			MetricsPort:  v.GetString("METRICS_PORT"),
		},
	}

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.Encryption.Key == "" {
		return nil, fmt.Errorf("ENCRYPTION_KEY is required")
	}
	if len(cfg.Encryption.Key) != 32 {
		return nil, fmt.Errorf("ENCRYPTION_KEY must be exactly 32 bytes")
	}

	if cfg.TLS.Enabled {
		if cfg.TLS.CertPath == "" {
			return nil, fmt.Errorf("TLS_CERT_PATH is required when TLS_ENABLED=true")
		}
		if cfg.TLS.KeyPath == "" {
			return nil, fmt.Errorf("TLS_KEY_PATH is required when TLS_ENABLED=true")
		}
	}

	return cfg, nil
}

func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

func getInt(v *viper.Viper, key string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

// getDuration takes Go duration syntax ("90s", "5m").
func getDuration(v *viper.Viper, key string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

// getBool accepts true/false, 1/0 and yes/no (case-insensitive); anything
// else yields the default.
func getBool(v *viper.Viper, key string, defaultValue bool) bool {
	switch strings.ToLower(v.GetString(key)) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	default:
		return defaultValue
	}
}
