package wm

import (
	"bytes"
	"os/exec"

	"github.com/pkg/errors"
)

// Runner executes the hyprctl binary and returns its standard output.
type Runner interface {
	Run(args ...string) ([]byte, error)
}

// ExecRunner runs hyprctl as a child process.
type ExecRunner struct {
	Path string
}

func (r ExecRunner) Run(args ...string) ([]byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.Command(r.Path, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return stdout.Bytes(), errors.Wrapf(err, "%s %v: %s", r.Path, args, bytes.TrimSpace(stderr.Bytes()))
	}
	return bytes.TrimSpace(stdout.Bytes()), nil
}
