// Package lockfile guards against concurrent runs over the same daily
// directory. Two simultaneous runs would race on export and purge, so
// a run refuses to start while another holds the lock.
package lockfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrHeld is returned when another live process holds the lock.
var ErrHeld = errors.New("lock held by another run")

// Lock is an exclusive lock file carrying the holder's pid.
type Lock struct {
	path string
}

// Acquire creates the lock file for prefix inside dir. A lock left by
// a process that no longer exists is treated as stale and replaced.
func Acquire(dir, prefix string) (*Lock, error) {
	path := filepath.Join(dir, "."+prefix+".lock")

	for attempt := 0; attempt < 2; attempt++ {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
		if err == nil {
			_, werr := fmt.Fprintf(f, "%d\n", os.Getpid())
			cerr := f.Close()
			if werr != nil || cerr != nil {
				_ = os.Remove(path)
				return nil, fmt.Errorf("writing lock file: %w", errors.Join(werr, cerr))
			}
			return &Lock{path: path}, nil
		}
		if !os.IsExist(err) {
			return nil, fmt.Errorf("creating lock file: %w", err)
		}

		if holderAlive(path) {
			return nil, fmt.Errorf("%w (%s)", ErrHeld, path)
		}
		// stale: the holder is gone, take over
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("removing stale lock: %w", err)
		}
	}

	return nil, fmt.Errorf("%w (%s)", ErrHeld, path)
}

// Release removes the lock file.
func (l *Lock) Release() error {
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// holderAlive reports whether the pid recorded in the lock file still
// refers to a running process. An unreadable or malformed lock counts
// as live; better to refuse a run than to break a real lock.
func holderAlive(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return true
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid <= 0 {
		return true
	}

	return pidAlive(pid)
}
