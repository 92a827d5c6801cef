package wm

import "hyprnav/internal/nav"

type WindowManager interface {
	// ActiveWindow returns the focused window; ok is false when nothing has focus
	ActiveWindow() (w nav.Window, ok bool, err error)
	// Clients lists every mapped, visible window
	Clients() ([]nav.Window, error)
	// FocusWindow brings the specified window to front
	FocusWindow(nav.Window) error
	// Keyword sets a runtime config keyword such as bind or unbind
	Keyword(name, value string) error
	// Name returns the WM name for logging/display
	Name() string
}
