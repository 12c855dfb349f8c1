//go:build unix

package process

import (
	"os/exec"
	"syscall"
)

// backgroundCommand places the child in its own process group so that
// terminal signals sent to the scaffolder do not reach it.
func backgroundCommand(name string, args []string) *exec.Cmd {
	cmd := exec.Command(name, args...) //nolint:noctx // detached child outlives the caller
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	return cmd
}
