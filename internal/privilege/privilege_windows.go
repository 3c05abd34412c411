//go:build windows

package privilege

// Windows has no effective uid; directory ACLs surface as ordinary
// I/O errors during the run instead.
func isPrivileged() bool {
	return true
}
