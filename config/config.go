package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultAPIURL asks OpenWeatherMap for current weather in Celsius
const DefaultAPIURL = "https://api.openweathermap.org/data/2.5/weather?units=metric"

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `toml:"server" yaml:"server" json:"server"`
	Weather   WeatherConfig   `toml:"weather" yaml:"weather" json:"weather"`
	RateLimit RateLimitConfig `toml:"rate_limit" yaml:"rate_limit" json:"rateLimit"`
	Messages  MessagesConfig  `toml:"messages" yaml:"messages" json:"messages"`
	Logging   LoggingConfig   `toml:"logging" yaml:"logging" json:"logging"`
}

// ServerConfig contains HTTP server configuration settings
type ServerConfig struct {
	// Host address to bind to, empty for all interfaces
	Host string `toml:"host" yaml:"host" json:"host"`
	Port int    `toml:"port" yaml:"port" json:"port"`
	// Directory holding the icons and background images
	StaticDir string `toml:"static_dir" yaml:"static_dir" json:"staticDir"`
	// Grace period for in-flight requests on shutdown
	ShutdownTimeoutSeconds int `toml:"shutdown_timeout_seconds" yaml:"shutdown_timeout_seconds" json:"shutdownTimeoutSeconds"`
}

// WeatherConfig contains the upstream API settings
type WeatherConfig struct {
	// Base URL; the city and key are appended as q and appid
	APIURL string `toml:"api_url" yaml:"api_url" json:"apiUrl"`
	// Usually supplied through OPENWEATHERMAP_API_KEY
	APIKey string `toml:"api_key" yaml:"api_key" json:"apiKey"`
	// 0 = no client timeout
	RequestTimeoutSeconds int `toml:"request_timeout_seconds" yaml:"request_timeout_seconds" json:"requestTimeoutSeconds"`
}

// RateLimitConfig controls how fast lookups may hit the upstream API
type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled" yaml:"enabled" json:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second" yaml:"requests_per_second" json:"requestsPerSecond"`
	Burst             int     `toml:"burst" yaml:"burst" json:"burst"`
}

// MessagesConfig holds the localized user-facing texts
type MessagesConfig struct {
	EmptyCity string `toml:"empty_city" yaml:"empty_city" json:"emptyCity"`
	NotFound  string `toml:"not_found" yaml:"not_found" json:"notFound"`
	Network   string `toml:"network" yaml:"network" json:"network"`
}

// LoggingConfig contains application logging configuration
type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level" json:"level"`    // debug, info, warn or error
	Format string `toml:"format" yaml:"format" json:"format"` // json or console
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:                   8080,
			StaticDir:              "web/static",
			ShutdownTimeoutSeconds: 10,
		},
		Weather: WeatherConfig{
			APIURL: DefaultAPIURL,
		},
		// OpenWeatherMap free tier allows 60 calls/minute
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerSecond: 1.0,
			Burst:             5,
		},
		Messages: MessagesConfig{
			EmptyCity: "Por favor ingresa una ciudad antes de buscar.",
			NotFound:  "No existe la ciudad o error en la búsqueda.",
			Network:   "Error de red. Intenta de nuevo.",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads the configuration file at path on top of the defaults, then applies
// .env and environment overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if err := decodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	// A missing .env is normal outside development
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// decodeFile picks the decoder from the file extension
func decodeFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return fmt.Errorf("failed to parse TOML config: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		return fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}
	return nil
}

// applyEnv overrides file values with environment variables
func (c *Config) applyEnv() error {
	if v := os.Getenv("OPENWEATHERMAP_API_KEY"); v != "" {
		c.Weather.APIKey = v
	}
	if v := os.Getenv("WEATHER_API_URL"); v != "" {
		c.Weather.APIURL = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		c.Server.Port = port
	}
	return nil
}

// Validate checks the configuration for values the application cannot run with
func (c *Config) Validate() error {
	if c.Weather.APIKey == "" {
		return errors.New("weather API key is required (set OPENWEATHERMAP_API_KEY or weather.api_key)")
	}

	u, err := url.Parse(c.Weather.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid weather API URL %q", c.Weather.APIURL)
	}

	if c.Weather.RequestTimeoutSeconds < 0 {
		return errors.New("weather.request_timeout_seconds cannot be negative")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return errors.New("rate_limit requires a positive requests_per_second and burst when enabled")
	}
	return nil
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// RequestTimeout returns the upstream client timeout, zero meaning none
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.Weather.RequestTimeoutSeconds) * time.Second
}
