package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix prefixes every environment override; DatabaseConfig fields add
// DB_, so TEYVAT_DB_HOST overrides database.host.
const EnvPrefix = "TEYVAT_"

// applyEnv overlays TEYVAT_* variables onto cfg. Unset variables keep the
// value loaded from YAML or the default.
func applyEnv(cfg *Calculator) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("applying %s* overrides: %w", EnvPrefix, err)
	}
	return nil
}
