package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/robfig/cron/v3"
)

// DefaultConfigPath is read when FOOD_CONFIG is not set and the file exists
const DefaultConfigPath = "./config.toml"

// Config 应用配置
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Places   PlacesConfig   `toml:"places"`
	Auth     AuthConfig     `toml:"auth"`
	Logging  LoggingConfig  `toml:"logging"`
}

// ServerConfig holds HTTP listener settings
type ServerConfig struct {
	Port        string   `toml:"port"`
	CORSOrigins []string `toml:"cors_origins"`
	RateLimit   float64  `toml:"rate_limit"` // requests per second per client IP, 0 disables
	RateBurst   int      `toml:"rate_burst"`
}

// DatabaseConfig holds the sqlite location
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// PlacesConfig holds Google Maps settings
type PlacesConfig struct {
	APIKey            string  `toml:"api_key"`
	BaseURL           string  `toml:"base_url"`
	Timeout           string  `toml:"timeout"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	CacheTTL          string  `toml:"cache_ttl"`
	PurgeSchedule     string  `toml:"purge_schedule"` // cron spec or descriptor
	DefaultMaxResults int     `toml:"default_max_results"`
}

// AuthConfig holds session token settings
type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
	TokenTTL  string `toml:"token_ttl"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// NewDefaultConfig returns the built-in defaults
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        ":8080",
			CORSOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
			RateLimit:   5,
			RateBurst:   20,
		},
		Database: DatabaseConfig{
			Path: "./data/food.db",
		},
		Places: PlacesConfig{
			BaseURL:           "https://maps.googleapis.com",
			Timeout:           "10s",
			RequestsPerSecond: 5,
			CacheTTL:          "6h",
			PurgeSchedule:     "@every 1h",
			DefaultMaxResults: 12,
		},
		Auth: AuthConfig{
			JWTSecret: "your-secret-key-change-in-production",
			TokenTTL:  "720h",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load 加载配置: defaults -> config file -> environment.
// A .env file in the working directory is loaded into the environment first.
func Load() (*Config, error) {
	_ = godotenv.Load()

	path := os.Getenv("FOOD_CONFIG")
	if path == "" {
		if _, err := os.Stat(DefaultConfigPath); err == nil {
			path = DefaultConfigPath
		}
	}
	return LoadFromFile(path)
}

// LoadFromFile loads defaults, merges the TOML file at path (if any) and applies env overrides
func LoadFromFile(path string) (*Config, error) {
	config := NewDefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err == nil {
			if err := toml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		}
	}

	applyEnvOverrides(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func applyEnvOverrides(config *Config) {
	if port := os.Getenv("PORT"); port != "" {
		if !strings.Contains(port, ":") {
			port = ":" + port
		}
		config.Server.Port = port
	}
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		config.Server.CORSOrigins = splitList(origins)
	}
	if limit := os.Getenv("RATE_LIMIT"); limit != "" {
		if v, err := strconv.ParseFloat(limit, 64); err == nil {
			config.Server.RateLimit = v
		}
	}

	if dbPath := os.Getenv("DB_PATH"); dbPath != "" {
		config.Database.Path = dbPath
	}

	if apiKey := os.Getenv("GOOGLE_MAPS_API_KEY"); apiKey != "" {
		config.Places.APIKey = apiKey
	}
	if baseURL := os.Getenv("PLACES_BASE_URL"); baseURL != "" {
		config.Places.BaseURL = baseURL
	}
	if timeout := os.Getenv("PLACES_TIMEOUT"); timeout != "" {
		config.Places.Timeout = timeout
	}
	if rps := os.Getenv("PLACES_RPS"); rps != "" {
		if v, err := strconv.ParseFloat(rps, 64); err == nil {
			config.Places.RequestsPerSecond = v
		}
	}
	if ttl := os.Getenv("CACHE_TTL"); ttl != "" {
		config.Places.CacheTTL = ttl
	}
	if schedule := os.Getenv("CACHE_PURGE_SCHEDULE"); schedule != "" {
		config.Places.PurgeSchedule = schedule
	}
	if maxResults := os.Getenv("MAX_RESULTS"); maxResults != "" {
		if v, err := strconv.Atoi(maxResults); err == nil {
			config.Places.DefaultMaxResults = v
		}
	}

	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		config.Auth.JWTSecret = secret
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}

// Validate checks values that cannot be clamped later
func (c *Config) Validate() error {
	for name, value := range map[string]string{
		"places.timeout":   c.Places.Timeout,
		"places.cache_ttl": c.Places.CacheTTL,
		"auth.token_ttl":   c.Auth.TokenTTL,
	} {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid duration for %s: %w", name, err)
		}
	}
	if _, err := cron.ParseStandard(c.Places.PurgeSchedule); err != nil {
		return fmt.Errorf("invalid places.purge_schedule: %w", err)
	}
	if c.Places.DefaultMaxResults < 1 || c.Places.DefaultMaxResults > 20 {
		return fmt.Errorf("places.default_max_results must be between 1 and 20, got %d", c.Places.DefaultMaxResults)
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret must not be empty")
	}
	return nil
}

// TimeoutDuration is the outbound request timeout
func (p PlacesConfig) TimeoutDuration() time.Duration {
	return mustDuration(p.Timeout)
}

// CacheTTLDuration is how long a places lookup stays fresh
func (p PlacesConfig) CacheTTLDuration() time.Duration {
	return mustDuration(p.CacheTTL)
}

// TokenTTLDuration is the session token lifetime
func (a AuthConfig) TokenTTLDuration() time.Duration {
	return mustDuration(a.TokenTTL)
}

// mustDuration parses a duration already checked by Validate
func mustDuration(s string) time.Duration {
	d, _ := time.ParseDuration(s)
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
