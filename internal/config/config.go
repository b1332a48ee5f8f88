package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/teyvatcalc/internal/game/calc"
	"github.com/udisondev/teyvatcalc/internal/game/enemy"
	"github.com/udisondev/teyvatcalc/internal/game/team"
)

// Calculator holds all configuration for the calculator.
type Calculator struct {
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`

	// ReferenceDataPath overrides the embedded reference tables.
	ReferenceDataPath string `yaml:"reference_data_path" env:"REFERENCE_DATA"`

	// Engine
	DefaultAttackerLevel   int     `yaml:"default_attacker_level" env:"DEFAULT_ATTACKER_LEVEL"`
	DefaultEnemyLevel      int     `yaml:"default_enemy_level" env:"DEFAULT_ENEMY_LEVEL"`
	DefaultEnemyResistance float64 `yaml:"default_enemy_resistance" env:"DEFAULT_ENEMY_RESISTANCE"`
	MaxTeamSize            int     `yaml:"max_team_size" env:"MAX_TEAM_SIZE"`
	MaxScenarios           int     `yaml:"max_scenarios" env:"MAX_SCENARIOS"`

	Synergy team.SynergyWeights `yaml:"synergy"`
	Roles   team.RoleThresholds `yaml:"roles"`

	// Batch
	BatchConcurrency int `yaml:"batch_concurrency" env:"BATCH_CONCURRENCY"`

	// Database
	Database DatabaseConfig `yaml:"database" envPrefix:"DB_"`
}

// DatabaseConfig holds PostgreSQL connection parameters of the build store.
type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled" env:"ENABLED"`
	Host     string `yaml:"host" env:"HOST"`
	Port     int    `yaml:"port" env:"PORT"`
	User     string `yaml:"user" env:"USER"`
	Password string `yaml:"password" env:"PASSWORD"`
	DBName   string `yaml:"dbname" env:"NAME"`
	SSLMode  string `yaml:"sslmode" env:"SSLMODE"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultCalculator returns Calculator config with sensible defaults.
func DefaultCalculator() Calculator {
	opts := calc.DefaultOptions()
	return Calculator{
		LogLevel:               "info",
		DefaultAttackerLevel:   opts.Enemy.AttackerLevel,
		DefaultEnemyLevel:      opts.EnemyLevel,
		DefaultEnemyResistance: opts.Enemy.Resistance,
		MaxTeamSize:            opts.MaxTeamSize,
		MaxScenarios:           opts.MaxScenarios,
		Synergy:                opts.Synergy,
		Roles:                  opts.Roles,
		BatchConcurrency:       4,
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "teyvat",
			Password: "teyvat",
			DBName:   "teyvat",
			SSLMode:  "disable",
		},
	}
}

// LoadCalculator loads calculator config from a YAML file and applies
// TEYVAT_* environment overrides on top.
// If the file doesn't exist, the overrides apply to the defaults.
func LoadCalculator(path string) (Calculator, error) {
	cfg := DefaultCalculator()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the limits the engine relies on.
func (c Calculator) Validate() error {
	if c.MaxTeamSize < 1 {
		return fmt.Errorf("max_team_size must be positive, got %d", c.MaxTeamSize)
	}
	if c.MaxScenarios < 1 {
		return fmt.Errorf("max_scenarios must be positive, got %d", c.MaxScenarios)
	}
	if c.BatchConcurrency < 1 {
		return fmt.Errorf("batch_concurrency must be positive, got %d", c.BatchConcurrency)
	}
	if c.DefaultAttackerLevel < 1 {
		return fmt.Errorf("default_attacker_level must be positive, got %d", c.DefaultAttackerLevel)
	}
	if c.DefaultEnemyLevel < 0 {
		return fmt.Errorf("default_enemy_level must not be negative, got %d", c.DefaultEnemyLevel)
	}
	w := c.Synergy
	if w.ElementPoints < 0 || w.ElementCap < 0 || w.CategoryPoints < 0 || w.CategoryCap < 0 || w.Max <= 0 {
		return fmt.Errorf("synergy weights must not be negative: %+v", w)
	}
	return nil
}

// EngineOptions converts the config into engine options.
func (c Calculator) EngineOptions() calc.Options {
	return calc.Options{
		Enemy: enemy.Defaults{
			AttackerLevel: c.DefaultAttackerLevel,
			Resistance:    c.DefaultEnemyResistance,
		},
		EnemyLevel:   c.DefaultEnemyLevel,
		Synergy:      c.Synergy,
		Roles:        c.Roles,
		MaxTeamSize:  c.MaxTeamSize,
		MaxScenarios: c.MaxScenarios,
	}
}
