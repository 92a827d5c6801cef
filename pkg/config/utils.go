package config

import (
	"os"

	"hyprnav/pkg/core"
)

// FindConfig loads the configuration for env.
//
// A missing file yields the defaults and no error. A file that cannot be read
// or parsed also yields the defaults, together with the error so the caller
// can report it; hyprnav keeps working either way.
func FindConfig(env Env, log core.Logger) (*Config, error) {
	path := env.DefaultPath()
	log.Debug("Looking for configuration", "path", path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Debug("No configuration file, using defaults", "path", path)
		return DefaultConfig(env), nil
	}

	config := &Config{}
	if err := config.LoadFromFile(path, log); err != nil {
		return DefaultConfig(env), err
	}
	config.fillDefaults(env)

	log.Debug("Configuration loaded",
		"path", path,
		"hyprland_config", config.HyprlandConfig,
		"modifier", config.Modifier)
	return config, nil
}
