//go:build windows

package registry

import (
	"os"

	"golang.org/x/sys/windows"
)

// processAlive reports whether pid refers to a live OS process.
func processAlive(pid int) bool {
	h, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, uint32(pid))
	if err != nil {
		return false
	}
	defer windows.CloseHandle(h)

	var code uint32
	if err := windows.GetExitCodeProcess(h, &code); err != nil {
		return false
	}
	return code == uint32(windows.STILL_ACTIVE)
}

// terminateGracefully has no SIGTERM equivalent on Windows; the Process
// Registry falls straight through to killForcefully there.
func terminateGracefully(pid int) error {
	return killForcefully(pid)
}

// killForcefully terminates the process unconditionally.
func killForcefully(pid int) error {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return err
	}
	return proc.Kill()
}
