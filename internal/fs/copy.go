package fs

import (
	"context"
	"fmt"
	"io"
	"os"
)

// Copying with retry and source-change detection. An archive being
// exported to the weekly store must not change underneath the copy;
// if it does, the copy aborts rather than publishing a torn file.

func copyWithRetry(ctx context.Context, f FS, src, dst string) error {
	orig, err := f.Stat(src)
	if err != nil {
		return err
	}

	return retry(ctx, "copy", func() error {
		now, err := f.Stat(src)
		if err != nil {
			return err
		}

		if sourceChanged(orig, now) {
			return fmt.Errorf("source changed during copy")
		}

		if err := copyOnce(src, dst); err != nil {
			_ = os.Remove(dst)
			return err
		}
		return nil
	})
}

func sourceChanged(orig, now FileInfo) bool {
	if now.Inode != 0 && orig.Inode != 0 && now.Inode != orig.Inode {
		return true
	}
	if now.MTime.After(orig.MTime) {
		return true
	}
	if now.Size != orig.Size {
		return true
	}
	return false
}

func copyOnce(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		_ = out.Close()
	}()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}

	return out.Sync()
}
