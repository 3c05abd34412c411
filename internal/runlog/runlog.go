// Package runlog provides the per-run log sinks. Every run writes a
// combined log file and an error-only file, both named like the
// archive ({prefix}.{YYYY-MM-DD}.log / .err). An error file that
// recorded nothing is removed on close, so its presence after a run
// means at least one error occurred.
package runlog

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

// Logger is the sink handed to every component of a run.
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// StdLogger logs to the process stderr. Used outside a run (daemon
// supervision, startup) and as a fallback when a run log cannot open.
type StdLogger struct{}

func (StdLogger) Info(msg string, args ...any)  { log.Printf("INFO: "+msg, args...) }
func (StdLogger) Warn(msg string, args ...any)  { log.Printf("WARN: "+msg, args...) }
func (StdLogger) Error(msg string, args ...any) { log.Printf("ERROR: "+msg, args...) }

// RunLog writes one run's log lines to the combined file and mirrors
// errors into the error file.
type RunLog struct {
	out      *log.Logger
	errOut   *log.Logger
	outFile  *os.File
	errFile  *os.File
	errPath  string
	errCount int
}

// Open creates the two log files for a run dated day.
func Open(dir, prefix string, day time.Time) (*RunLog, error) {
	stamp := day.Format("2006-01-02")
	outPath := filepath.Join(dir, fmt.Sprintf("%s.%s.log", prefix, stamp))
	errPath := filepath.Join(dir, fmt.Sprintf("%s.%s.err", prefix, stamp))

	outFile, err := os.OpenFile(outPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening run log: %w", err)
	}
	errFile, err := os.OpenFile(errPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		outFile.Close()
		return nil, fmt.Errorf("opening error log: %w", err)
	}

	return &RunLog{
		out:     log.New(outFile, "", log.LstdFlags),
		errOut:  log.New(errFile, "", log.LstdFlags),
		outFile: outFile,
		errFile: errFile,
		errPath: errPath,
	}, nil
}

func (r *RunLog) Info(msg string, args ...any) {
	r.out.Printf("INFO: "+msg, args...)
}

func (r *RunLog) Warn(msg string, args ...any) {
	r.out.Printf("WARN: "+msg, args...)
}

// Error records the line in both files.
func (r *RunLog) Error(msg string, args ...any) {
	r.out.Printf("ERROR: "+msg, args...)
	r.errOut.Printf("ERROR: "+msg, args...)
	r.errCount++
}

// ErrCount reports how many error lines this run recorded.
func (r *RunLog) ErrCount() int {
	return r.errCount
}

// Close flushes both files and removes the error file if the run
// recorded no errors.
func (r *RunLog) Close() error {
	outErr := r.outFile.Close()
	errErr := r.errFile.Close()
	if outErr != nil {
		return outErr
	}
	if errErr != nil {
		return errErr
	}

	if r.errCount == 0 {
		if err := os.Remove(r.errPath); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}
