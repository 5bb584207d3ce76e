package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/randomtoy/natal-go/internal/domain"
)

type Config struct {
	HTTPAddr             string
	LogLevel             slog.Level
	EphemerisBaseURL     string
	EphemerisTimeout     time.Duration
	EphemerisConcurrency int
	EphemerisCacheSize   int
	SQLitePath           string
	SnapshotCron         string
	SnapshotLocation     domain.Location
}

// fileConfig mirrors the optional YAML file at CONFIG_PATH.
type fileConfig struct {
	HTTPAddr  string `yaml:"http_addr"`
	LogLevel  string `yaml:"log_level"`
	Ephemeris struct {
		BaseURL     string `yaml:"base_url"`
		Timeout     string `yaml:"timeout"`
		Concurrency int    `yaml:"concurrency"`
		CacheSize   *int   `yaml:"cache_size"`
	} `yaml:"ephemeris"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Snapshot struct {
		Cron      string   `yaml:"cron"`
		Latitude  *float64 `yaml:"latitude"`
		Longitude *float64 `yaml:"longitude"`
	} `yaml:"snapshot"`
}

const (
	defaultBaseURL     = "https://ssd.jpl.nasa.gov/api/horizons.api"
	defaultTimeout     = 8 * time.Second
	defaultConcurrency = 10
	defaultCacheSize   = 4096
)

// Load reads .env, the optional YAML file named by CONFIG_PATH, and then
// environment overrides. Environment wins over the file.
func Load() (Config, error) {
	_ = godotenv.Load()

	var fc fileConfig
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	c := Config{
		HTTPAddr:             envOr("HTTP_ADDR", or(fc.HTTPAddr, ":8080")),
		EphemerisBaseURL:     envOr("EPHEMERIS_BASE_URL", or(fc.Ephemeris.BaseURL, defaultBaseURL)),
		EphemerisTimeout:     defaultTimeout,
		EphemerisConcurrency: defaultConcurrency,
		EphemerisCacheSize:   defaultCacheSize,
		SQLitePath:           envOr("SQLITE_PATH", fc.Database.SQLitePath),
		SnapshotCron:         envOr("SNAPSHOT_CRON", fc.Snapshot.Cron),
	}

	if v := envOr("EPHEMERIS_TIMEOUT", fc.Ephemeris.Timeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid EPHEMERIS_TIMEOUT %q: %w", v, err)
		}
		c.EphemerisTimeout = d
	}

	if fc.Ephemeris.Concurrency != 0 {
		c.EphemerisConcurrency = fc.Ephemeris.Concurrency
	}
	if err := envInt("EPHEMERIS_CONCURRENCY", &c.EphemerisConcurrency); err != nil {
		return Config{}, err
	}

	if fc.Ephemeris.CacheSize != nil {
		c.EphemerisCacheSize = *fc.Ephemeris.CacheSize
	}
	if err := envInt("EPHEMERIS_CACHE_SIZE", &c.EphemerisCacheSize); err != nil {
		return Config{}, err
	}

	if fc.Snapshot.Latitude != nil {
		c.SnapshotLocation.Latitude = *fc.Snapshot.Latitude
	}
	if fc.Snapshot.Longitude != nil {
		c.SnapshotLocation.Longitude = *fc.Snapshot.Longitude
	}
	if err := envFloat("SNAPSHOT_LATITUDE", &c.SnapshotLocation.Latitude); err != nil {
		return Config{}, err
	}
	if err := envFloat("SNAPSHOT_LONGITUDE", &c.SnapshotLocation.Longitude); err != nil {
		return Config{}, err
	}

	level, err := parseLogLevel(envOr("LOG_LEVEL", or(fc.LogLevel, "info")))
	if err != nil {
		return Config{}, err
	}
	c.LogLevel = level

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks value ranges after all sources are merged.
func (c Config) Validate() error {
	if c.EphemerisBaseURL == "" {
		return errors.New("EPHEMERIS_BASE_URL must not be empty")
	}
	if c.EphemerisTimeout <= 0 {
		return fmt.Errorf("EPHEMERIS_TIMEOUT must be positive, got %s", c.EphemerisTimeout)
	}
	if c.EphemerisConcurrency < 1 {
		return fmt.Errorf("EPHEMERIS_CONCURRENCY must be at least 1, got %d", c.EphemerisConcurrency)
	}
	if c.EphemerisCacheSize < 0 {
		return fmt.Errorf("EPHEMERIS_CACHE_SIZE must not be negative, got %d", c.EphemerisCacheSize)
	}
	if c.SnapshotCron != "" {
		if err := domain.ValidateLocation(c.SnapshotLocation.Latitude, c.SnapshotLocation.Longitude); err != nil {
			return fmt.Errorf("snapshot location: %w", err)
		}
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func or(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}

func envInt(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	*dst = n
	return nil
}

func envFloat(key string, dst *float64) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	*dst = f
	return nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
}
