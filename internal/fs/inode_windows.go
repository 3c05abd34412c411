//go:build windows

package fs

import "os"

// Windows does not expose POSIX inodes; mtime and size checks still
// catch a replaced source, so 0 is fine here.

func inodeOf(info os.FileInfo) uint64 {
	_ = info
	return 0
}
