package archive

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Name builds the canonical archive filename for a prefix, day and
// extension: "{prefix}.{YYYY-MM-DD}.{ext}". The fixed-width date keeps
// lexicographic and chronological order interchangeable.
func Name(prefix string, date time.Time, ext string) string {
	return fmt.Sprintf("%s.%s.%s", prefix, date.Format(dateLayout), ext)
}

// Parse reports whether name is a canonical archive filename for the
// prefix and extension, and returns the embedded day if so.
func Parse(name, prefix, ext string) (time.Time, bool) {
	rest, ok := strings.CutPrefix(name, prefix+".")
	if !ok {
		return time.Time{}, false
	}
	core, ok := strings.CutSuffix(rest, "."+ext)
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout, core)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
