package config

import (
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Env is the slice of the process environment hyprnav reads. Everything
// downstream receives these values explicitly.
type Env struct {
	Home        string `envconfig:"HOME"`
	ConfigHome  string `envconfig:"XDG_CONFIG_HOME"`
	HyprlandSig string `envconfig:"HYPRLAND_INSTANCE_SIGNATURE"`
	ConfigPath  string `envconfig:"HYPRNAV_CONFIG"`
	Debug       bool   `envconfig:"HYPRNAV_DEBUG" default:"false"`
}

// LoadEnv reads Env from the process environment. On error the returned Env
// still holds every variable read before the offending one.
func LoadEnv() (Env, error) {
	var env Env
	err := envconfig.Process("", &env)
	if env.Home == "" {
		env.Home = "."
	}
	if err != nil {
		return env, errors.Wrap(err, "read environment")
	}
	return env, nil
}

func (e Env) configHome() string {
	if e.ConfigHome != "" {
		return e.ConfigHome
	}
	return filepath.Join(e.Home, ".config")
}

func (e Env) expandHome(path string) string {
	if path == "~" {
		return e.Home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(e.Home, path[2:])
	}
	return path
}

// DefaultPath is where the hyprnav config file lives unless HYPRNAV_CONFIG
// points elsewhere.
func (e Env) DefaultPath() string {
	if e.ConfigPath != "" {
		return e.expandHome(e.ConfigPath)
	}
	return filepath.Join(e.configHome(), "hyprnav", "config.toml")
}
