//go:build windows

package process

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/windows"
)

// backgroundCommand runs name through cmd /C so that .cmd and .bat shims
// (code, cursor) resolve, without allocating a console window.
func backgroundCommand(name string, args []string) *exec.Cmd {
	cmdArgs := append([]string{"/C", name}, args...)
	cmd := exec.Command("cmd", cmdArgs...) //nolint:noctx // detached child outlives the caller
	cmd.SysProcAttr = &syscall.SysProcAttr{
		HideWindow:    true,
		CreationFlags: windows.CREATE_NO_WINDOW,
	}
	return cmd
}
