//go:build unix

package registry

import (
	"golang.org/x/sys/unix"
)

// processAlive reports whether pid refers to a live OS process, using a
// zero-signal per kill(2)'s documented probing idiom.
func processAlive(pid int) bool {
	if pid <= 0 {
		return false
	}
	err := unix.Kill(pid, 0)
	if err == nil {
		return true
	}
	return err == unix.EPERM // exists but we don't own it: still alive
}

// terminateGracefully sends SIGTERM, the first step of the registry's
// graceful-then-forced kill sequence.
func terminateGracefully(pid int) error {
	return unix.Kill(pid, unix.SIGTERM)
}

// killForcefully sends SIGKILL.
func killForcefully(pid int) error {
	return unix.Kill(pid, unix.SIGKILL)
}
