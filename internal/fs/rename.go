package fs

import (
	"context"
	"os"
)

// renameWithRetry wraps os.Rename with retry logic. It is what makes
// archive finalization atomic: the builder writes to a temporary name
// and publishes the archive with a single rename.
func renameWithRetry(ctx context.Context, oldPath, newPath string) error {
	return retry(ctx, "rename", func() error {
		return os.Rename(oldPath, newPath)
	})
}
