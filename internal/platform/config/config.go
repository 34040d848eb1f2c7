// Package config loads clearview settings from an optional YAML file and the
// environment. Environment variables always win over the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"clearview/pkg/platform/strings"
)

// Event store backends.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

// Config is the full runtime configuration.
type Config struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// FetchTimeout bounds every collaborator fetch. A history read cut short
	// by it is refused rather than resolved.
	FetchTimeout      time.Duration `yaml:"fetch_timeout"`
	FolderConcurrency int           `yaml:"folder_concurrency"`

	MarkerOpen  string `yaml:"marker_open"`
	MarkerClose string `yaml:"marker_close"`

	EventStore string         `yaml:"event_store"`
	Postgres   PostgresConfig `yaml:"postgres"`
	Redis      RedisConfig    `yaml:"redis"`
	Kafka      KafkaConfig    `yaml:"kafka"`
}

type PostgresConfig struct {
	DSN             string        `yaml:"dsn"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
}

type RedisConfig struct {
	URL          string        `yaml:"url"`
	PoolSize     int           `yaml:"pool_size"`
	MinIdleConns int           `yaml:"min_idle_conns"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// KafkaConfig enables event publishing when Brokers is non-empty.
type KafkaConfig struct {
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
}

// Default returns the built-in settings: in-memory store, text logs at info,
// a five second fetch timeout and the clearing view's markers.
func Default() Config {
	return Config{
		LogLevel:          "info",
		LogFormat:         "text",
		FetchTimeout:      5 * time.Second,
		FolderConcurrency: 8,
		MarkerOpen:        "K",
		MarkerClose:       "K ",
		EventStore:        StoreMemory,
		Postgres: PostgresConfig{
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 30 * time.Minute,
		},
		Redis: RedisConfig{
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		Kafka: KafkaConfig{Topic: "clearing-events"},
	}
}

// Load reads path (when non-empty, or CLEARVIEW_CONFIG otherwise) over the
// defaults, then applies environment overrides and validates the result.
// A missing file named only by CLEARVIEW_CONFIG is an error too.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("CLEARVIEW_CONFIG")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FromEnv is Load without a file.
func FromEnv() (Config, error) {
	cfg := Default()
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func applyEnv(cfg *Config) error {
	envOverride(&cfg.LogLevel, "CLEARVIEW_LOG_LEVEL")
	envOverride(&cfg.LogFormat, "CLEARVIEW_LOG_FORMAT")
	envOverride(&cfg.EventStore, "CLEARVIEW_EVENT_STORE")
	envOverride(&cfg.MarkerOpen, "CLEARVIEW_MARKER_OPEN")
	envOverride(&cfg.MarkerClose, "CLEARVIEW_MARKER_CLOSE")
	envOverride(&cfg.Postgres.DSN, "DATABASE_URL")
	envOverride(&cfg.Redis.URL, "REDIS_URL")
	envOverride(&cfg.Kafka.Topic, "KAFKA_TOPIC")
	if brokers := strings.SplitList(os.Getenv("KAFKA_BROKERS"), ","); brokers != nil {
		cfg.Kafka.Brokers = brokers
	}

	if err := envOverrideDuration(&cfg.FetchTimeout, "CLEARVIEW_FETCH_TIMEOUT"); err != nil {
		return err
	}
	return envOverrideInt(&cfg.FolderConcurrency, "CLEARVIEW_FOLDER_CONCURRENCY")
}

// Validate rejects settings the service cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.FetchTimeout <= 0 {
		errs = append(errs, errors.New("fetch_timeout must be positive"))
	}
	if c.FolderConcurrency <= 0 {
		errs = append(errs, errors.New("folder_concurrency must be positive"))
	}
	if c.MarkerOpen == "" || c.MarkerClose == "" {
		errs = append(errs, errors.New("highlight markers must not be empty"))
	}
	switch c.EventStore {
	case StoreMemory:
	case StorePostgres:
		if c.Postgres.DSN == "" {
			errs = append(errs, errors.New("postgres event store requires DATABASE_URL or postgres.dsn"))
		}
	case StoreRedis:
		if c.Redis.URL == "" {
			errs = append(errs, errors.New("redis event store requires REDIS_URL or redis.url"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown event_store %q", c.EventStore))
	}
	return errors.Join(errs...)
}

func envOverride(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envOverrideInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}

func envOverrideDuration(dst *time.Duration, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = d
	return nil
}
