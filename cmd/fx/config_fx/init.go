package config_fx

import (
	"os"

	"go.uber.org/fx"

	"familybudget/internal/config"
)

// ConfigFileEnv names an explicit config file; empty means ./config.yaml if present.
const ConfigFileEnv = "FB_CONFIG_FILE"

var Module = fx.Provide(provideConfig)

func provideConfig() (*config.Config, error) {
	return config.Load(os.Getenv(ConfigFileEnv))
}
