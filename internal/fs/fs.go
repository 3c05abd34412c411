// Package fs defines the filesystem abstraction used by snapkeep.
// All archive mutation (export copy, purge delete, atomic finalize)
// runs through it so rotation stays testable and resilient to
// transient errors.
package fs

import (
	"context"
	"time"
)

type FileInfo struct {
	Path  string
	Size  int64
	MTime time.Time
	Inode uint64
}

type FS interface {
	Stat(path string) (FileInfo, error)
	CopyFile(ctx context.Context, src, dst string) error
	Rename(ctx context.Context, oldPath, newPath string) error
	Remove(path string) error
	MkdirAll(path string) error
}
