package config

import "path/filepath"

const (
	DefaultHyprctl          = "hyprctl"
	DefaultBinary           = "hyprnav"
	DefaultModifier         = "$mainMod"
	DefaultFallbackModifier = "SUPER"
)

// DefaultConfig returns the configuration used when no file is present.
// The Hyprland config path is derived from env.
func DefaultConfig(env Env) *Config {
	return &Config{
		Hyprctl:          DefaultHyprctl,
		Binary:           DefaultBinary,
		HyprlandConfig:   filepath.Join(env.configHome(), "hypr", "hyprland.conf"),
		Modifier:         DefaultModifier,
		FallbackModifier: DefaultFallbackModifier,
		LogLevel:         "info",
	}
}

// fillDefaults replaces empty fields with their defaults.
func (c *Config) fillDefaults(env Env) {
	def := DefaultConfig(env)
	if c.Hyprctl == "" {
		c.Hyprctl = def.Hyprctl
	}
	if c.Binary == "" {
		c.Binary = def.Binary
	}
	if c.HyprlandConfig == "" {
		c.HyprlandConfig = def.HyprlandConfig
	}
	c.HyprlandConfig = env.expandHome(c.HyprlandConfig)
	if c.Modifier == "" {
		c.Modifier = def.Modifier
	}
	if c.FallbackModifier == "" {
		c.FallbackModifier = def.FallbackModifier
	}
	if c.LogFile != "" {
		c.LogFile = env.expandHome(c.LogFile)
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
}
