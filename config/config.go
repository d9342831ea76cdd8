package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	ModeStructured = "structured"
	ModeSearch     = "search"
)

// Config is loaded once at startup and treated as read-only afterwards.
type Config struct {
	GoogleAPIKey      string        `envconfig:"GOOGLE_API_KEY"`
	SearchEngineID    string        `envconfig:"GOOGLE_CSE_ID"`
	ImageSearchAPIKey string        `envconfig:"IMAGE_SEARCH_API_KEY"`
	ImageSearchURL    string        `envconfig:"IMAGE_SEARCH_URL"    default:"https://www.googleapis.com/customsearch/v1"`
	Model             string        `envconfig:"GEMINI_MODEL"        default:"gemini-2.0-flash"`
	Mode              string        `envconfig:"SERVICE_MODE"        default:"structured"`
	Port              string        `envconfig:"PORT"                default:"8000"`
	AITimeout         time.Duration `envconfig:"AI_TIMEOUT"          default:"30s"`
	ImageTimeout      time.Duration `envconfig:"IMAGE_TIMEOUT"       default:"10s"`
	EnrichConcurrency int           `envconfig:"ENRICH_CONCURRENCY"  default:"4"`
	FrontendURLs      string        `envconfig:"FRONTEND_URL"`
	GinMode           string        `envconfig:"GIN_MODE"`
	LogLevel          string        `envconfig:"LOG_LEVEL"           default:"info"`
	LogFormat         string        `envconfig:"LOG_FORMAT"          default:"console"`
}

// Load reads an optional .env file and then decodes the environment.
func Load() (*Config, error) {
	// A missing .env is fine; production sets variables directly.
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv decodes the process environment without touching .env files.
func FromEnv() (*Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, fmt.Errorf("parsing environment variables: %w", err)
	}

	if c.ImageSearchAPIKey == "" {
		c.ImageSearchAPIKey = c.GoogleAPIKey
	}
	c.Mode = strings.ToLower(strings.TrimSpace(c.Mode))

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	switch c.Mode {
	case ModeStructured, ModeSearch:
	default:
		return fmt.Errorf("SERVICE_MODE must be %q or %q, got %q", ModeStructured, ModeSearch, c.Mode)
	}
	if c.EnrichConcurrency <= 0 {
		return fmt.Errorf("ENRICH_CONCURRENCY must be positive, got %d", c.EnrichConcurrency)
	}
	if c.AITimeout <= 0 || c.ImageTimeout <= 0 {
		return fmt.Errorf("AI_TIMEOUT and IMAGE_TIMEOUT must be positive")
	}
	if c.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	return nil
}

// AIEnabled reports whether a Gemini key was configured.
func (c *Config) AIEnabled() bool {
	return c.GoogleAPIKey != ""
}

// AllowedOrigins returns the CORS origins: local dev servers plus FRONTEND_URL entries.
func (c *Config) AllowedOrigins() []string {
	origins := []string{"http://localhost:5173", "http://localhost:3000"}
	for _, u := range strings.Split(c.FrontendURLs, ",") {
		u = strings.TrimSpace(u)
		if u != "" {
			origins = append(origins, u)
		}
	}
	return origins
}

// AllowAllOrigins is true when FRONTEND_URL is "*".
func (c *Config) AllowAllOrigins() bool {
	return strings.TrimSpace(c.FrontendURLs) == "*"
}
