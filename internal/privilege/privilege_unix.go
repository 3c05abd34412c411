//go:build unix

package privilege

import "os"

func isPrivileged() bool {
	return os.Geteuid() == 0
}
