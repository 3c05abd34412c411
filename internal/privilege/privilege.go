// Package privilege gates a run on filesystem privilege. The check
// happens once, before anything is locked or touched.
package privilege

import "errors"

// ErrInsufficient means the process lacks the privilege the config
// demands.
var ErrInsufficient = errors.New("insufficient privilege: run as root or set requireRoot: false")

// Check verifies the process privilege. With requireRoot set it
// demands an effective uid of 0 on unix; platforms without uids pass.
func Check(requireRoot bool) error {
	if !requireRoot {
		return nil
	}
	if !isPrivileged() {
		return ErrInsufficient
	}
	return nil
}
