//go:build !unix && !windows

package process

import "os/exec"

func backgroundCommand(name string, args []string) *exec.Cmd {
	return exec.Command(name, args...) //nolint:noctx // detached child outlives the caller
}
