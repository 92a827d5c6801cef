package wm

import (
	"os/exec"

	"github.com/pkg/errors"

	"hyprnav/pkg/core"
)

// Detect returns a Hyprland client when running inside a Hyprland session.
// signature is the value of HYPRLAND_INSTANCE_SIGNATURE; hyprctl is the
// binary name or path to run.
func Detect(signature, hyprctl string, log core.Logger) (WindowManager, error) {
	if signature == "" {
		return nil, errors.New("not a Hyprland session: HYPRLAND_INSTANCE_SIGNATURE is unset")
	}

	path, err := exec.LookPath(hyprctl)
	if err != nil {
		return nil, errors.Wrapf(err, "%s not found in PATH", hyprctl)
	}
	log.Debug("Found hyprctl", "path", path)

	wm := NewHyprland(ExecRunner{Path: path}, log)
	log.Debug("Window manager initialized", "name", wm.Name())
	return wm, nil
}
