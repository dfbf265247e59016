package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const DefaultOptimizerURL = "http://localhost:8000/optimize-transport/"

// Config holds runtime settings for the server and CLI.
// Precedence: defaults < YAML file (CONFIG_FILE) < environment (including .env).
type Config struct {
	Port             string        `yaml:"port"`
	OptimizerURL     string        `yaml:"optimizer_url"`
	OptimizerTimeout time.Duration `yaml:"optimizer_timeout"`

	DatabaseURL     string        `yaml:"database_url"`
	CacheSQLitePath string        `yaml:"cache_sqlite_path"`
	RedisURL        string        `yaml:"redis_url"`
	CacheTTL        time.Duration `yaml:"cache_ttl"`

	SubmitRate           float64 `yaml:"submit_rate"`
	SubmitBurst          int     `yaml:"submit_burst"`
	SubmitRejectWhenBusy bool    `yaml:"submit_reject_when_busy"`
	MaxUploadBytes       int64   `yaml:"max_upload_bytes"`
}

func Defaults() Config {
	return Config{
		Port:             "8080",
		OptimizerURL:     DefaultOptimizerURL,
		OptimizerTimeout: 60 * time.Second,
		CacheTTL:         24 * time.Hour,
		SubmitRate:       2,
		SubmitBurst:      4,
		MaxUploadBytes:   32 << 20,
	}
}

// Load reads .env (if present), the optional YAML file named by CONFIG_FILE,
// then applies environment overrides.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg := Defaults()

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, fmt.Errorf("load config: %w", err)
		}
	}

	if err := cfg.mergeEnv(); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %q: %w", path, err)
	}

	if err := yaml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("parse yaml %q: %w", path, err)
	}

	return nil
}

func (c *Config) mergeEnv() error {
	c.Port = Get("PORT", c.Port)
	c.OptimizerURL = Get("OPTIMIZER_URL", c.OptimizerURL)
	c.DatabaseURL = Get("DATABASE_URL", c.DatabaseURL)
	c.CacheSQLitePath = Get("CACHE_SQLITE_PATH", c.CacheSQLitePath)
	c.RedisURL = Get("REDIS_URL", c.RedisURL)

	var err error
	if c.OptimizerTimeout, err = getDuration("OPTIMIZER_TIMEOUT", c.OptimizerTimeout); err != nil {
		return err
	}
	if c.CacheTTL, err = getDuration("CACHE_TTL", c.CacheTTL); err != nil {
		return err
	}
	if c.SubmitRate, err = getFloat("SUBMIT_RATE", c.SubmitRate); err != nil {
		return err
	}
	if c.SubmitBurst, err = getInt("SUBMIT_BURST", c.SubmitBurst); err != nil {
		return err
	}
	if c.SubmitRejectWhenBusy, err = getBool("SUBMIT_REJECT_WHEN_BUSY", c.SubmitRejectWhenBusy); err != nil {
		return err
	}

	maxUpload, err := getInt("MAX_UPLOAD_BYTES", int(c.MaxUploadBytes))
	if err != nil {
		return err
	}
	c.MaxUploadBytes = int64(maxUpload)

	return nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.OptimizerURL) == "" {
		return errors.New("optimizer url is required")
	}
	if c.OptimizerTimeout <= 0 {
		return fmt.Errorf("optimizer timeout must be positive, got %s", c.OptimizerTimeout)
	}
	if c.SubmitRate <= 0 || c.SubmitBurst < 1 {
		return fmt.Errorf("submit rate limit must be positive (rate=%v burst=%d)", c.SubmitRate, c.SubmitBurst)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("max upload bytes must be positive, got %d", c.MaxUploadBytes)
	}
	return nil
}

// Get returns the environment value for key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func getFloat(key string, fallback float64) (float64, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}

func getInt(key string, fallback int) (int, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getBool(key string, fallback bool) (bool, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
