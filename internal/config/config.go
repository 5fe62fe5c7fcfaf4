// Package config loads application configuration from file,
// environment, and defaults using Viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/symptom-checker-server/internal/domain"
)

// Manager loads and holds the application configuration.
type Manager struct {
	config *domain.Config
}

// NewManager creates a new configuration manager
func NewManager() (*Manager, error) {
	m := &Manager{}
	if err := m.loadConfig(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return m, nil
}

// loadConfig loads configuration from various sources
func (m *Manager) loadConfig() error {
	// Set configuration file name and paths
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/symptom-checker-server/")

	// Set environment variable prefix and enable automatic env binding
	viper.SetEnvPrefix("SYMPTOM_CHECKER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	m.setDefaults()

	// Read configuration file (optional - will use defaults and env vars if not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using defaults and environment variables
	}

	config := &domain.Config{}
	if err := viper.Unmarshal(config); err != nil {
		return fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := Validate(config); err != nil {
		return err
	}

	m.config = config
	return nil
}

// setDefaults sets default configuration values
func (m *Manager) setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 3001)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.idle_timeout", "120s")
	viper.SetDefault("server.max_body_bytes", 1<<20)

	// Provider defaults
	viper.SetDefault("providers.mode", "local")
	viper.SetDefault("providers.ollama.base_url", "http://127.0.0.1:11434")
	viper.SetDefault("providers.ollama.model", "llama3.1:8b")
	viper.SetDefault("providers.ollama.timeout", "60s")
	viper.SetDefault("providers.openai.api_key", "")
	viper.SetDefault("providers.openai.base_url", "")
	viper.SetDefault("providers.openai.model", "gpt-4.1-mini")
	viper.SetDefault("providers.openai.timeout", "60s")

	// History defaults
	viper.SetDefault("history.backend", "sqlite")
	viper.SetDefault("history.path", "data/history.db")
	viper.SetDefault("history.database_url", "")

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")

	// Rate limit defaults
	viper.SetDefault("rate_limit.requests_per_second", 20)
	viper.SetDefault("rate_limit.burst", 40)
}

// GetConfig returns the complete configuration
func (m *Manager) GetConfig() *domain.Config {
	return m.config
}

var (
	validModes     = map[string]bool{"local": true, "remote": true, "auto": true, "rules": true}
	validBackends  = map[string]bool{"sqlite": true, "postgres": true, "none": true}
	validLogLevels = map[string]bool{"trace": true, "debug": true, "info": true, "warn": true, "error": true}
)

// Validate checks configuration consistency.
func Validate(cfg *domain.Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", cfg.Server.Port)
	}
	if cfg.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server max_body_bytes must be positive")
	}
	if !validModes[cfg.Providers.Mode] {
		return fmt.Errorf("invalid providers mode: %q", cfg.Providers.Mode)
	}
	if !validBackends[cfg.History.Backend] {
		return fmt.Errorf("invalid history backend: %q", cfg.History.Backend)
	}
	if cfg.History.Backend == "postgres" && cfg.History.DatabaseURL == "" {
		return fmt.Errorf("history database_url is required for postgres backend")
	}
	if cfg.History.Backend == "sqlite" && cfg.History.Path == "" {
		return fmt.Errorf("history path is required for sqlite backend")
	}
	if !validLogLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %q", cfg.Logging.Level)
	}
	return nil
}
