package runner

import (
	"fmt"
	"time"
)

// RunResult is the outcome of one orchestrated run.
type RunResult struct {
	RunID string
	Day   time.Time

	// Exported is the weekly-store path the promoted archive was
	// copied to, empty when nothing qualified.
	Exported string
	// Purged lists the daily archives removed.
	Purged []string
	// Built is the path of today's new archive.
	Built string

	// Errors collects the non-fatal failures of the run, in order.
	Errors []error
}

// ValidationFailure aborts a run before any mutation.
type ValidationFailure struct {
	Errs []error
}

func (e *ValidationFailure) Error() string {
	return fmt.Sprintf("configuration invalid (%d problems)", len(e.Errs))
}

// ExportError records a failed weekly promotion. Non-fatal.
type ExportError struct {
	Path string
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("exporting %s: %v", e.Path, e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }

// PurgeError records one failed archive deletion. Non-fatal; the
// remaining selected archives are still attempted.
type PurgeError struct {
	Path string
	Err  error
}

func (e *PurgeError) Error() string {
	return fmt.Sprintf("purging %s: %v", e.Path, e.Err)
}

func (e *PurgeError) Unwrap() error { return e.Err }
