package wm

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"

	"hyprnav/internal/nav"
	"hyprnav/pkg/core"
)

// client mirrors the fields hyprnav reads from `hyprctl clients -j`.
type client struct {
	Address   string     `json:"address"`
	Mapped    *bool      `json:"mapped"`
	Hidden    bool       `json:"hidden"`
	At        [2]float64 `json:"at"`
	Size      [2]float64 `json:"size"`
	Workspace struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"workspace"`
	Class string `json:"class"`
	Title string `json:"title"`
}

func (c client) window() nav.Window {
	return nav.Window{
		Address: c.Address,
		Rect: nav.Rect{
			X:      c.At[0],
			Y:      c.At[1],
			Width:  c.Size[0],
			Height: c.Size[1],
		},
		Workspace: c.Workspace.ID,
	}
}

// visible reports whether the client has on-screen geometry. Older hyprctl
// versions omit "mapped"; those clients count as mapped.
func (c client) visible() bool {
	if c.Mapped != nil && !*c.Mapped {
		return false
	}
	return !c.Hidden
}

type Hyprland struct {
	run Runner
	log core.Logger
}

func NewHyprland(run Runner, log core.Logger) *Hyprland {
	return &Hyprland{run: run, log: log}
}

func (h *Hyprland) Name() string {
	return "Hyprland"
}

func (h *Hyprland) ActiveWindow() (nav.Window, bool, error) {
	output, err := h.run.Run("activewindow", "-j")
	if err != nil {
		return nav.Window{}, false, errors.Wrap(err, "query active window")
	}

	output = bytes.TrimSpace(output)
	if len(output) == 0 {
		return nav.Window{}, false, nil
	}

	var c client
	if err := json.Unmarshal(output, &c); err != nil {
		return nav.Window{}, false, errors.Wrap(err, "parse active window")
	}

	// hyprctl prints {} when nothing has focus
	if c.Address == "" {
		return nav.Window{}, false, nil
	}

	h.log.Debug("Active window",
		"address", c.Address,
		"class", c.Class,
		"workspace", c.Workspace.ID)

	return c.window(), true, nil
}

func (h *Hyprland) Clients() ([]nav.Window, error) {
	output, err := h.run.Run("clients", "-j")
	if err != nil {
		return nil, errors.Wrap(err, "query clients")
	}

	output = bytes.TrimSpace(output)
	if len(output) == 0 {
		return nil, nil
	}

	var clients []client
	if err := json.Unmarshal(output, &clients); err != nil {
		return nil, errors.Wrap(err, "parse clients")
	}

	windows := make([]nav.Window, 0, len(clients))
	for _, c := range clients {
		if !c.visible() {
			h.log.Debug("Skipping invisible client", "address", c.Address, "class", c.Class)
			continue
		}
		windows = append(windows, c.window())
	}

	h.log.Debug("Fetched clients", "total", len(clients), "visible", len(windows))
	return windows, nil
}

func (h *Hyprland) FocusWindow(w nav.Window) error {
	h.log.Debug("Focusing window", "address", w.Address)

	if w.Address == "" {
		return errors.New("cannot focus window: no address provided")
	}

	output, err := h.run.Run("dispatch", "focuswindow", "address:"+w.Address)
	if err != nil {
		return errors.Wrap(err, "focus window")
	}
	if reply := strings.TrimSpace(string(output)); reply != "" && reply != "ok" {
		return errors.Errorf("focus window: hyprctl replied %q", reply)
	}
	return nil
}

func (h *Hyprland) Keyword(name, value string) error {
	h.log.Debug("Setting keyword", "keyword", name, "value", value)

	output, err := h.run.Run("keyword", name, value)
	if err != nil {
		return errors.Wrapf(err, "keyword %s %q", name, value)
	}
	if reply := strings.TrimSpace(string(output)); reply != "" && reply != "ok" {
		return errors.Errorf("keyword %s %q: hyprctl replied %q", name, value, reply)
	}
	return nil
}
