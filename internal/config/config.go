// Copyright 2026 The OpenConsole Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all client configuration
type Config struct {
	API           APIConfig
	Storage       StorageConfig
	Observability ObservabilityConfig
	RateLimit     RateLimitConfig
}

// APIConfig holds connection settings for the user-management API
type APIConfig struct {
	// URL is the scheme://host[:port] of the API server, without path.
	URL string `env:"CONSOLE_API_URL" envDefault:"http://localhost:8080"`

	// Version selects the base path prefix, i.e. /api/{version}.
	Version string `env:"CONSOLE_API_VERSION" envDefault:"v1"`

	Timeout time.Duration `env:"CONSOLE_API_TIMEOUT" envDefault:"30s"`
}

// StorageConfig holds the location of persisted client state
type StorageConfig struct {
	// StateDir is where session and tenant snapshots are written.
	// Empty selects a per-user default under os.UserConfigDir.
	StateDir string `env:"CONSOLE_STATE_DIR"`
}

// ObservabilityConfig holds logging and tracing configuration
type ObservabilityConfig struct {
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat      string `env:"LOG_FORMAT" envDefault:"text"`
	OTELEnabled    bool   `env:"OTEL_ENABLED" envDefault:"false"`
	ServiceName    string `env:"OTEL_SERVICE_NAME" envDefault:"openconsole"`
	ServiceVersion string `env:"OTEL_SERVICE_VERSION" envDefault:"0.1.0"`
}

// RateLimitConfig holds the optional outbound request throttle.
// Zero RequestsPerSecond disables throttling.
type RateLimitConfig struct {
	RequestsPerSecond float64 `env:"CONSOLE_RATELIMIT_RPS" envDefault:"0"`
	Burst             int     `env:"CONSOLE_RATELIMIT_BURST" envDefault:"1"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.Storage.StateDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve state directory: %w", err)
		}
		cfg.Storage.StateDir = filepath.Join(base, "openconsole")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.API.URL == "" {
		return fmt.Errorf("CONSOLE_API_URL is required")
	}
	if c.API.Version == "" {
		return fmt.Errorf("CONSOLE_API_VERSION must not be empty")
	}
	return nil
}

// BaseURL returns the versioned API base URL, e.g. "http://host/api/v1".
func (c *APIConfig) BaseURL() string {
	return fmt.Sprintf("%s/api/%s", c.URL, c.Version)
}
