package app

import (
	"fmt"
	"io"
)

const usage = `hyprnav - directional focus navigation for Hyprland

Usage:
  hyprnav <command>

Commands:
  enable       Apply hyprnav directional bindings
  disable      Restore Hyprland's movefocus bindings
  left         Focus the window to the left
  right        Focus the window to the right
  up           Focus the window above
  down         Focus the window below
  help         Show this help message

Environment:
  HYPRNAV_CONFIG   path to the hyprnav config file
                   (default $XDG_CONFIG_HOME/hyprnav/config.toml)
  HYPRNAV_DEBUG    set to true to log debug output to stderr
`

// Usage prints the help text.
func Usage(w io.Writer) {
	fmt.Fprint(w, usage)
}
