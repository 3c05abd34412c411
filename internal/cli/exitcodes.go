package cli

import (
	"errors"

	"github.com/rkowalik/snapkeep/internal/config"
	"github.com/rkowalik/snapkeep/internal/privilege"
	"github.com/rkowalik/snapkeep/internal/runner"
)

// Exit codes are part of the external contract: schedulers alert
// differently on each, so they must stay stable.
const (
	ExitOK        = 0
	ExitRuntime   = 1 // build failed, lock busy, other runtime faults
	ExitConfig    = 2 // configuration invalid
	ExitExportDay = 3 // export day misconfigured
	ExitPrivilege = 4 // not running with required privilege
)

// ExitCode maps a command error to its exit code. A run that only
// recorded non-fatal errors returns no error and exits 0.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	if errors.Is(err, privilege.ErrInsufficient) {
		return ExitPrivilege
	}

	var vf *runner.ValidationFailure
	if errors.As(err, &vf) {
		if onlyExportDay(vf.Errs) {
			return ExitExportDay
		}
		return ExitConfig
	}

	return ExitRuntime
}

func onlyExportDay(errs []error) bool {
	if len(errs) == 0 {
		return false
	}
	for _, e := range errs {
		var ve config.ValidationError
		if !errors.As(e, &ve) || ve.Field != "exportDay" {
			return false
		}
	}
	return true
}
