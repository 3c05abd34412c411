package archive

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/rkowalik/snapkeep/internal/config"
	"github.com/rkowalik/snapkeep/internal/fs"
	"github.com/rkowalik/snapkeep/internal/runlog"
)

// BuildError reports a failed run of the archiving tool, carrying its
// captured diagnostic output.
type BuildError struct {
	Output string
	Err    error
}

func (e *BuildError) Error() string {
	if e.Output == "" {
		return fmt.Sprintf("archive tool failed: %v", e.Err)
	}
	return fmt.Sprintf("archive tool failed: %v: %s", e.Err, e.Output)
}

func (e *BuildError) Unwrap() error { return e.Err }

// BuildSpec describes one archive to produce.
type BuildSpec struct {
	// Include and Exclude are path patterns without a leading
	// separator, resolved by tar relative to Root.
	Include []string
	Exclude []string
	Root    string

	Compression config.Compression
	DestPath    string
	// Day is the archive's nominal date, embedded in DestPath.
	Day time.Time
}

// Builder produces archives by invoking the system tar tool.
type Builder struct {
	tarBin string
	fs     fs.FS
	log    runlog.Logger
}

func NewBuilder(tarBin string, filesystem fs.FS, log runlog.Logger) *Builder {
	if filesystem == nil {
		filesystem = fs.New()
	}
	return &Builder{
		tarBin: tarBin,
		fs:     filesystem,
		log:    log,
	}
}

// Build writes the archive to a temporary name next to DestPath and
// renames it into place on success, so a failed or interrupted build
// never leaves a partial file at the destination. A non-zero exit
// from the tool returns a BuildError with its stderr attached.
func (b *Builder) Build(ctx context.Context, spec BuildSpec) (Archive, error) {
	tmp := partialPath(spec.DestPath)

	args := []string{"-c"}
	if flag := spec.Compression.TarFlag(); flag != "" {
		args = append(args, flag)
	}
	args = append(args, "-f", tmp, "-C", spec.Root)
	for _, pat := range spec.Exclude {
		args = append(args, "--exclude="+pat)
	}
	args = append(args, "--")
	args = append(args, spec.Include...)

	b.log.Info("archiving %d paths to %s (%s)", len(spec.Include), spec.DestPath, spec.Compression)

	cmd := exec.CommandContext(ctx, b.tarBin, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		_ = b.fs.Remove(tmp)
		return Archive{}, &BuildError{
			Output: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}

	if err := b.fs.Rename(ctx, tmp, spec.DestPath); err != nil {
		_ = b.fs.Remove(tmp)
		return Archive{}, fmt.Errorf("finalizing archive: %w", err)
	}

	info, err := b.fs.Stat(spec.DestPath)
	if err != nil {
		return Archive{}, fmt.Errorf("stat built archive: %w", err)
	}

	b.log.Info("built archive %s (%d bytes)", spec.DestPath, info.Size)

	return Archive{
		Path:    spec.DestPath,
		Name:    filepath.Base(spec.DestPath),
		Date:    spec.Day,
		ModTime: info.MTime,
		Size:    info.Size,
	}, nil
}

// partialPath hides the in-progress file under a dotted name in the
// destination directory, keeping it out of Scan and on the same
// filesystem as the final path so the rename stays atomic.
func partialPath(dest string) string {
	dir, base := filepath.Split(dest)
	return filepath.Join(dir, "."+base+".partial")
}
