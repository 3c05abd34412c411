//go:build unix

package fs

import (
	"os"
	"syscall"
)

// Inode values are used to detect whether an archive was replaced
// while it was being copied to the weekly store.

func inodeOf(info os.FileInfo) uint64 {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return 0
	}
	return st.Ino
}
