// Package retention decides which daily archives get promoted to the
// weekly store and which get purged. Both decisions use calendar age:
// whole days between the archive's date and today, not elapsed hours,
// so a run at 01:00 and a run at 23:00 agree on what is "8 days old".
package retention

import "time"

// DefaultMinAgeDays is the export eligibility floor. With a purge
// window of at least 7 days it guarantees the exported archive is
// never younger than anything the same run purges.
const DefaultMinAgeDays = 6

// CalendarAge returns the whole-day difference between ts and now,
// comparing calendar dates at day boundaries.
func CalendarAge(ts, now time.Time) int {
	y1, m1, d1 := ts.Date()
	y2, m2, d2 := now.Date()
	a := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	b := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
