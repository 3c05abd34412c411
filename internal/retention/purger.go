package retention

import (
	"time"

	"github.com/rkowalik/snapkeep/internal/archive"
)

// SelectForPurge returns every daily archive whose calendar age
// strictly exceeds retentionDays. The selection is unconditional: an
// archive exported in the same run is still purged from the daily
// store, since export copies rather than moves. A retention window of
// zero or less disables purging entirely.
func SelectForPurge(archives []archive.Archive, now time.Time, retentionDays int) []archive.Archive {
	if retentionDays <= 0 {
		return nil
	}

	var selected []archive.Archive
	for _, a := range archives {
		if CalendarAge(a.ModTime, now) > retentionDays {
			selected = append(selected, a)
		}
	}
	return selected
}
