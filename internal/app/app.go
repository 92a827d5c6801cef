package app

import (
	"fmt"
	"io"

	"hyprnav/internal/binds"
	"hyprnav/internal/nav"
	"hyprnav/internal/wm"
	"hyprnav/pkg/config"
	"hyprnav/pkg/core"
	"hyprnav/pkg/notify"
)

// Notifier tells the user about binding changes outside the terminal.
type Notifier interface {
	Show(message string, nType notify.NotificationType) error
}

type App struct {
	wm       wm.WindowManager
	config   *config.Config
	log      core.Logger
	out      io.Writer
	notifier Notifier
}

// New wires an App. notifier may be nil.
func New(windowManager wm.WindowManager, cfg *config.Config, log core.Logger, out io.Writer, notifier Notifier) *App {
	return &App{
		wm:       windowManager,
		config:   cfg,
		log:      log,
		out:      out,
		notifier: notifier,
	}
}

// Run performs the action m names.
func (a *App) Run(m Mode) error {
	switch m.Action {
	case Enable:
		return a.Enable()
	case Disable:
		return a.Disable()
	case Navigate:
		a.Navigate(m.Direction)
		return nil
	default:
		Usage(a.out)
		return nil
	}
}

// Navigate focuses the best window in dir from the active one. It reports
// whether a focus command was dispatched; query failures and the absence of
// a target are not errors.
func (a *App) Navigate(dir nav.Direction) bool {
	active, ok, err := a.wm.ActiveWindow()
	if err != nil {
		a.log.Error("Failed to query active window", err)
		return false
	}
	if !ok {
		a.log.Debug("No active window", "direction", dir.String())
		return false
	}

	clients, err := a.wm.Clients()
	if err != nil {
		a.log.Error("Failed to query clients", err)
		clients = nil
	}

	idx, ok := nav.Select(dir, active, clients)
	if !ok {
		a.log.Debug("No window in direction",
			"direction", dir.String(),
			"active", active.Address,
			"candidates", len(clients))
		return false
	}

	target := clients[idx]
	a.log.Debug("Selected target",
		"direction", dir.String(),
		"from", active.Address,
		"to", target.Address)

	if err := a.wm.FocusWindow(target); err != nil {
		a.log.Error("Failed to focus window", err, "address", target.Address)
	}
	return true
}

func (a *App) options() binds.Options {
	return binds.Options{
		Binary:   a.config.Binary,
		Fallback: a.config.FallbackModifier,
	}
}

func (a *App) loadBindings() binds.Bindings {
	b, err := binds.Load(a.config.HyprlandConfig, a.config.Modifier)
	if err != nil {
		a.log.Warn("Could not read Hyprland config, using default bindings",
			"path", a.config.HyprlandConfig,
			"error", err.Error())
	}
	a.log.Debug("Scanned Hyprland config",
		"path", a.config.HyprlandConfig,
		"modifier", a.config.Modifier,
		"found", len(b.Found))
	return b
}

// apply issues cmds in order and returns how many failed. A failed command
// does not stop the rest.
func (a *App) apply(cmds []binds.Command) int {
	failed := 0
	for _, c := range cmds {
		if err := a.wm.Keyword(c.Keyword, c.Value); err != nil {
			a.log.Error("Keybinding command failed", err, "command", c.String())
			failed++
		}
	}
	return failed
}

func (a *App) finish(message string, total, failed int) error {
	nType := notify.Info
	var err error
	if failed > 0 {
		nType = notify.Error
		err = fmt.Errorf("%d of %d keybinding commands failed", failed, total)
		message = fmt.Sprintf("%s (%v)", message, err)
	}

	fmt.Fprintln(a.out, message)
	a.log.Info(message, "commands", total, "failed", failed)

	if a.notifier != nil {
		if nerr := a.notifier.Show(message, nType); nerr != nil {
			a.log.Warn("Notification failed", "error", nerr.Error())
		}
	}
	return err
}

// Enable rebinds the movefocus keys from the Hyprland config to hyprnav.
func (a *App) Enable() error {
	fmt.Fprintln(a.out, "Applying hyprnav directional bindings...")

	b := a.loadBindings()
	cmds := binds.EnablePlan(b, a.options())
	failed := a.apply(cmds)

	message := fmt.Sprintf("hyprnav bindings applied using keys from %s.", a.config.HyprlandConfig)
	if len(b.Found) == 0 {
		message = fmt.Sprintf("No original movefocus bindings found. Applied default %s+arrow hyprnav bindings.",
			a.config.FallbackModifier)
	}
	return a.finish(message, len(cmds), failed)
}

// Disable restores Hyprland's movefocus bindings.
func (a *App) Disable() error {
	fmt.Fprintln(a.out, "Restoring original Hyprland focus bindings...")

	b := a.loadBindings()
	cmds := binds.DisablePlan(b, a.options())
	failed := a.apply(cmds)

	message := fmt.Sprintf("Bindings restored from %s.", a.config.HyprlandConfig)
	if len(b.Found) == 0 {
		message = "No original movefocus bindings found. Applied default movefocus bindings."
	}
	return a.finish(message, len(cmds), failed)
}
