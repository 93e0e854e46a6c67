// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"

	"vehicle-cost/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Assumptions contains default-assumption settings
	Assumptions AssumptionConfig `json:"assumptions"`

	// RefData contains reference data configuration
	RefData RefDataConfig `json:"refdata"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Server contains HTTP server configuration
	Server ServerConfig `json:"server"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// AssumptionConfig contains fallback constants used when reference data
// is missing. These surface in the result's assumptions list.
type AssumptionConfig struct {
	// DefaultMPG is used when a vehicle's fuel economy is unknown
	DefaultMPG float64 `json:"default_mpg"`

	// DefaultMPGe is used when an EV's efficiency is unknown
	DefaultMPGe float64 `json:"default_mpge"`

	// DefaultReliabilityScore is used when reliability data is unknown
	DefaultReliabilityScore float64 `json:"default_reliability_score"`

	// DefaultFuelPrice is the national-average fallback, $/gallon
	DefaultFuelPrice float64 `json:"default_fuel_price"`

	// DefaultElectricityRate is the national-average fallback, $/kWh
	DefaultElectricityRate float64 `json:"default_electricity_rate"`
}

// RefDataConfig contains reference data settings
type RefDataConfig struct {
	// DatabasePath is the path to the SQLite vehicle database.
	// Empty means the built-in static tables are used.
	DatabasePath string `json:"database_path"`

	// MigrateOnStart applies pending migrations on startup
	MigrateOnStart bool `json:"migrate_on_start"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (cli, json, markdown)
	DefaultFormat string `json:"default_format"`

	// ShowBreakdown shows the full annual breakdown
	ShowBreakdown bool `json:"show_breakdown"`

	// ShowAssumptions lists the assumptions behind the estimate
	ShowAssumptions bool `json:"show_assumptions"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr"`

	// ReadTimeoutSeconds bounds request read time
	ReadTimeoutSeconds int `json:"read_timeout_seconds"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Version: "1",
		Assumptions: AssumptionConfig{
			DefaultMPG:              25,
			DefaultMPGe:             100,
			DefaultReliabilityScore: 3.5,
			DefaultFuelPrice:        3.50,
			DefaultElectricityRate:  0.12,
		},
		RefData: RefDataConfig{
			MigrateOnStart: true,
		},
		Output: OutputConfig{
			DefaultFormat:   "cli",
			ShowBreakdown:   true,
			ShowAssumptions: true,
		},
		Server: ServerConfig{
			Addr:               ":8080",
			ReadTimeoutSeconds: 15,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load reads configuration from a JSON file, applying environment
// overrides from a .env file in the same directory when present.
func Load(path string) (*Config, error) {
	// Missing .env is not an error
	_ = godotenv.Load(filepath.Join(filepath.Dir(path), ".env"))

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	applyEnv(cfg)
	return cfg, nil
}

// applyEnv overlays recognized environment variables onto the config
func applyEnv(cfg *Config) {
	if v := os.Getenv("VEHICLE_COST_DB"); v != "" {
		cfg.RefData.DatabasePath = v
	}
	if v := os.Getenv("VEHICLE_COST_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("VEHICLE_COST_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

var (
	mu      sync.RWMutex
	current = Default()
)

// Get returns the current global configuration
func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Set replaces the current global configuration
func Set(cfg *Config) {
	mu.Lock()
	defer mu.Unlock()
	current = cfg
}
