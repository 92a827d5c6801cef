package app

import (
	"strings"

	"hyprnav/internal/nav"
)

// Action is what one invocation does.
type Action int

const (
	Help Action = iota
	Enable
	Disable
	Navigate
)

// Mode is the parsed command line.
type Mode struct {
	Action    Action
	Direction nav.Direction
}

// ParseMode reads the command-line arguments (without the program name).
// Anything but exactly one known word, in any case, is Help.
func ParseMode(args []string) Mode {
	if len(args) != 1 {
		return Mode{Action: Help}
	}

	arg := strings.ToLower(args[0])
	switch arg {
	case "enable":
		return Mode{Action: Enable}
	case "disable":
		return Mode{Action: Disable}
	case "help", "--help", "-h":
		return Mode{Action: Help}
	}

	if dir, ok := nav.ParseDirection(arg); ok && arg == dir.String() {
		return Mode{Action: Navigate, Direction: dir}
	}
	return Mode{Action: Help}
}
