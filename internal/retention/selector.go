package retention

import (
	"time"

	"github.com/rkowalik/snapkeep/internal/archive"
)

// SelectForExport picks the daily archive eligible for promotion to
// the weekly store: the most recent one whose calendar age strictly
// exceeds minAgeDays. Ties on timestamp fall to the lexicographically
// greatest filename, which is safe because filenames embed the date.
// A nil result means nothing qualifies; that is not an error.
func SelectForExport(archives []archive.Archive, now time.Time, minAgeDays int) *archive.Archive {
	var best *archive.Archive
	for i := range archives {
		a := &archives[i]
		if CalendarAge(a.ModTime, now) <= minAgeDays {
			continue
		}
		if best == nil || newer(a, best) {
			best = a
		}
	}
	return best
}

func newer(a, b *archive.Archive) bool {
	if !a.ModTime.Equal(b.ModTime) {
		return a.ModTime.After(b.ModTime)
	}
	return a.Name > b.Name
}
