// Package runner sequences one backup run: validate, rotate (export
// then purge, export day only), then build today's archive. Rotation
// failures are recorded and the run continues; validation and build
// failures are fatal. Archiving happens last, so a failed build never
// rolls back rotation work already committed.
package runner

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/rkowalik/snapkeep/internal/archive"
	"github.com/rkowalik/snapkeep/internal/config"
	"github.com/rkowalik/snapkeep/internal/fs"
	"github.com/rkowalik/snapkeep/internal/lockfile"
	"github.com/rkowalik/snapkeep/internal/retention"
	"github.com/rkowalik/snapkeep/internal/runlog"
)

// Runner executes runs against one configuration.
type Runner struct {
	cfg *config.Config
	fs  fs.FS
	now func() time.Time
}

func New(cfg *config.Config, filesystem fs.FS) *Runner {
	if filesystem == nil {
		filesystem = fs.New()
	}
	return &Runner{
		cfg: cfg,
		fs:  filesystem,
		now: time.Now,
	}
}

// WithNow overrides the clock. Retention decisions and archive names
// all derive from this single reading.
func (r *Runner) WithNow(fn func() time.Time) *Runner {
	r.now = fn
	return r
}

// Run performs one full run. The returned RunResult is valid even on
// error; non-fatal failures are inside RunResult.Errors while the
// returned error is the fatal outcome, if any.
func (r *Runner) Run(ctx context.Context) (*RunResult, error) {
	now := r.now()
	res := &RunResult{
		RunID: uuid.NewString(),
		Day:   now,
	}

	rl, err := runlog.Open(r.cfg.LogDir(), r.cfg.FilePrefix, now)
	if err != nil {
		return res, fmt.Errorf("opening run log: %w", err)
	}
	defer rl.Close()

	rl.Info("run %s starting", res.RunID)

	if errs := config.Validate(r.cfg); len(errs) > 0 {
		for _, e := range errs {
			rl.Error("config: %v", e)
		}
		return res, &ValidationFailure{Errs: errs}
	}

	lock, err := lockfile.Acquire(r.cfg.DailyDir, r.cfg.FilePrefix)
	if err != nil {
		rl.Error("lock: %v", err)
		return res, err
	}
	defer lock.Release()

	exportDay, _ := config.ParseDay(r.cfg.ExportDay)
	ext := r.cfg.Compression.Extension()

	if r.cfg.RotationEnabled() && now.Weekday() == exportDay {
		r.rotate(ctx, rl, res, now, ext)
	} else {
		rl.Info("not an export day, skipping rotation")
	}

	builder := archive.NewBuilder(r.cfg.TarBin, r.fs, rl)
	built, err := builder.Build(ctx, archive.BuildSpec{
		Include:     r.cfg.Include,
		Exclude:     r.cfg.Exclude,
		Root:        r.cfg.ArchiveRoot,
		Compression: r.cfg.Compression,
		DestPath:    filepath.Join(r.cfg.DailyDir, archive.Name(r.cfg.FilePrefix, now, ext)),
		Day:         now,
	})
	if err != nil {
		rl.Error("build: %v", err)
		res.Errors = append(res.Errors, err)
		return res, err
	}
	res.Built = built.Path

	rl.Info("run %s done: built=%s exported=%s purged=%d errors=%d",
		res.RunID, res.Built, res.Exported, len(res.Purged), len(res.Errors))

	return res, nil
}

// rotate performs the export-day work: promote one qualifying archive
// to the weekly store, then purge everything past the retention
// window. Each step tolerates failure; errors are recorded and the
// run moves on.
func (r *Runner) rotate(ctx context.Context, rl runlog.Logger, res *RunResult, now time.Time, ext string) {
	archives, err := archive.Scan(r.cfg.DailyDir, r.cfg.FilePrefix, ext)
	if err != nil {
		rl.Error("scanning %s: %v", r.cfg.DailyDir, err)
		res.Errors = append(res.Errors, fmt.Errorf("scanning %s: %w", r.cfg.DailyDir, err))
		return
	}

	if sel := retention.SelectForExport(archives, now, retention.DefaultMinAgeDays); sel != nil {
		dst := filepath.Join(r.cfg.WeeklyDir, sel.Name)
		if err := r.fs.CopyFile(ctx, sel.Path, dst); err != nil {
			ee := &ExportError{Path: sel.Path, Err: err}
			rl.Error("%v", ee)
			res.Errors = append(res.Errors, ee)
		} else {
			res.Exported = dst
			rl.Info("exported %s to weekly store", sel.Name)
		}
	} else {
		rl.Info("no archive eligible for weekly export")
	}

	for _, a := range retention.SelectForPurge(archives, now, r.cfg.RetentionDays) {
		if err := r.fs.Remove(a.Path); err != nil {
			pe := &PurgeError{Path: a.Path, Err: err}
			rl.Error("%v", pe)
			res.Errors = append(res.Errors, pe)
			continue
		}
		res.Purged = append(res.Purged, a.Path)
		rl.Info("purged %s (age %d days)", a.Name, retention.CalendarAge(a.ModTime, now))
	}
}
