//go:build unix

package lockfile

import (
	"errors"
	"os"
	"syscall"
)

// pidAlive probes the process with signal 0, which checks existence
// without delivering anything. EPERM means the process exists but
// belongs to someone else; that still counts as alive.
func pidAlive(pid int) bool {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	err = proc.Signal(syscall.Signal(0))
	return err == nil || errors.Is(err, syscall.EPERM)
}
