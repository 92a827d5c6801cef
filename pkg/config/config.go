package config

import "github.com/rs/zerolog"

// Config holds the hyprnav configuration.
type Config struct {
	// Hyprctl is the hyprctl binary name or path.
	Hyprctl string `toml:"hyprctl"`
	// Binary is what rewritten keybindings execute.
	Binary string `toml:"binary"`
	// HyprlandConfig is the Hyprland config scanned for movefocus bindings.
	HyprlandConfig string `toml:"hyprland_config"`
	// Modifier is the modifier column of the movefocus bindings to rewrite.
	Modifier string `toml:"modifier"`
	// FallbackModifier is used for the default arrow-key bindings.
	FallbackModifier string `toml:"fallback_modifier"`
	// Notify sends a desktop notification after enable/disable.
	Notify   bool   `toml:"notify"`
	LogFile  string `toml:"log_file"`
	LogLevel string `toml:"log_level"`
}

// Level parses LogLevel, defaulting to info.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}
