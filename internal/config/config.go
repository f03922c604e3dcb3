package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the process configuration, read once at startup
// and never mutated afterwards. The two credentials are both
// optional: an absent DATABASE_URL puts the contact endpoint in
// store-degraded mode, an absent OPENAI_API_KEY puts the chat
// endpoint in chat-degraded mode.
type Config struct {
	Port int `env:"PORT" envDefault:"5000"`

	// Document store. Empty means store-degraded mode.
	DatabaseURL string `env:"DATABASE_URL"`

	// Generative-text provider. Empty key means chat-degraded mode.
	// BaseURL may point at any OpenAI-compatible endpoint.
	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`
	OpenAIModel   string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`

	// CORS origin for the browser frontend.
	FrontendURL string `env:"FRONTEND_URL" envDefault:"*"`

	// Directory the static portfolio site is served from.
	StaticDir string `env:"STATIC_DIR" envDefault:"./site"`
}

// Load reads .env (if present) and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// StoreConfigured reports whether a document-store credential was supplied.
func (c *Config) StoreConfigured() bool { return c.DatabaseURL != "" }

// ChatConfigured reports whether a generative-text credential was supplied.
func (c *Config) ChatConfigured() bool { return c.OpenAIAPIKey != "" }
