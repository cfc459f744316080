package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/tasknotes-backend/internal/data/db"
	"github.com/yungbote/tasknotes-backend/internal/observability"
	"github.com/yungbote/tasknotes-backend/internal/platform/envutil"
	"github.com/yungbote/tasknotes-backend/internal/realtime/bus"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	configEnv = "TASKNOTES_CONFIG"
)

type Config struct {
	Port        string   `yaml:"port"`
	LogMode     string   `yaml:"log_mode"`
	CORSOrigins []string `yaml:"cors_origins"`

	DBDriver   string            `yaml:"db_driver"`
	Postgres   db.PostgresConfig `yaml:"postgres"`
	SQLitePath string            `yaml:"sqlite_path"`

	Redis   bus.RedisConfig             `yaml:"redis"`
	Otel    observability.OtelConfig    `yaml:"otel"`
	Metrics observability.MetricsConfig `yaml:"metrics"`
}

func defaultConfig() Config {
	return Config{
		Port:     "8080",
		LogMode:  "development",
		DBDriver: DriverPostgres,
		Postgres: db.PostgresConfig{
			Host: "localhost",
			Port: "5432",
			User: "postgres",
			Name: "tasknotes",
		},
		SQLitePath: "tasknotes.db",
		Redis:      bus.RedisConfig{Channel: bus.DefaultChannel},
		Otel: observability.OtelConfig{
			ServiceName: "tasknotes-backend",
			SampleRatio: 0.1,
		},
		Metrics: observability.MetricsConfig{
			Enabled:        true,
			ScrapeInterval: 10 * time.Second,
		},
	}
}

// LoadConfig layers defaults, then the YAML file at path (or $TASKNOTES_CONFIG), then environment variables.
func LoadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	if strings.TrimSpace(path) == "" {
		path = envutil.String(configEnv, "")
	}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Port = envutil.String("PORT", c.Port)
	c.LogMode = envutil.String("LOG_MODE", c.LogMode)
	c.CORSOrigins = envutil.List("CORS_ORIGINS", c.CORSOrigins)

	c.DBDriver = strings.ToLower(envutil.String("DB_DRIVER", c.DBDriver))
	c.Postgres.Host = envutil.String("POSTGRES_HOST", c.Postgres.Host)
	c.Postgres.Port = envutil.String("POSTGRES_PORT", c.Postgres.Port)
	c.Postgres.User = envutil.String("POSTGRES_USER", c.Postgres.User)
	c.Postgres.Password = envutil.String("POSTGRES_PASSWORD", c.Postgres.Password)
	c.Postgres.Name = envutil.String("POSTGRES_NAME", c.Postgres.Name)
	c.Postgres.SSLMode = envutil.String("POSTGRES_SSLMODE", c.Postgres.SSLMode)
	c.SQLitePath = envutil.String("SQLITE_PATH", c.SQLitePath)

	c.Redis.Addr = envutil.String("REDIS_ADDR", c.Redis.Addr)
	c.Redis.Channel = envutil.String("REDIS_CHANNEL", c.Redis.Channel)

	c.Otel.Enabled = envutil.Bool("OTEL_ENABLED", c.Otel.Enabled)
	c.Otel.ServiceName = envutil.String("OTEL_SERVICE_NAME", c.Otel.ServiceName)
	c.Otel.Environment = envutil.String("OTEL_ENVIRONMENT", c.Otel.Environment)
	c.Otel.Endpoint = envutil.String("OTEL_EXPORTER_OTLP_ENDPOINT", c.Otel.Endpoint)
	c.Otel.Headers = envutil.String("OTEL_EXPORTER_OTLP_HEADERS", c.Otel.Headers)
	c.Otel.Insecure = envutil.Bool("OTEL_EXPORTER_OTLP_INSECURE", c.Otel.Insecure)
	c.Otel.SampleRatio = envutil.Float("OTEL_SAMPLER_RATIO", c.Otel.SampleRatio)

	c.Metrics.Enabled = envutil.Bool("METRICS_ENABLED", c.Metrics.Enabled)
}

func (c Config) Validate() error {
	switch c.DBDriver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (want %s or %s)", c.DBDriver, DriverPostgres, DriverSQLite)
	}
	if strings.TrimSpace(c.Port) == "" {
		return fmt.Errorf("port is required")
	}
	return nil
}

func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}
