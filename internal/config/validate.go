package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// ValidationError describes one problem with the configuration.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// dayCodes maps the three-letter day codes to weekdays.
var dayCodes = map[string]time.Weekday{
	"Sun": time.Sunday,
	"Mon": time.Monday,
	"Tue": time.Tuesday,
	"Wed": time.Wednesday,
	"Thu": time.Thursday,
	"Fri": time.Friday,
	"Sat": time.Saturday,
}

// ParseDay resolves a three-letter day code to a weekday.
func ParseDay(code string) (time.Weekday, bool) {
	d, ok := dayCodes[code]
	return d, ok
}

// Validate checks the configuration for use by a run. Every check is
// evaluated, never short-circuited, so one pass reports every problem.
// RetentionDays is deliberately not checked: zero or absent means
// rotation is disabled, which is a legitimate configuration.
func Validate(cfg *Config) []error {
	var errs []error

	errs = append(errs, checkDir("dailyDir", cfg.DailyDir)...)
	errs = append(errs, checkDir("weeklyDir", cfg.WeeklyDir)...)

	if cfg.FilePrefix == "" {
		errs = append(errs, ValidationError{"filePrefix", "must not be empty"})
	}

	if cfg.Compression.Extension() == "" {
		errs = append(errs, ValidationError{
			"compression",
			fmt.Sprintf("unrecognized algorithm %q (want bzip2, gzip or none)", cfg.Compression),
		})
	}

	if _, ok := ParseDay(cfg.ExportDay); !ok {
		errs = append(errs, ValidationError{
			"exportDay",
			fmt.Sprintf("unrecognized day code %q (want %s)", cfg.ExportDay, strings.Join(dayCodeList(), " ")),
		})
	}

	if cfg.IncludeFrom == "" {
		errs = append(errs, ValidationError{"includeFrom", "must not be empty"})
	} else if st, err := os.Stat(cfg.IncludeFrom); err != nil || st.IsDir() {
		errs = append(errs, ValidationError{"includeFrom", fmt.Sprintf("%s is not a readable list file", cfg.IncludeFrom)})
	} else if len(cfg.Include) == 0 {
		errs = append(errs, ValidationError{"includeFrom", "list file has no usable entries"})
	}

	return errs
}

func checkDir(field, path string) []error {
	if path == "" {
		return []error{ValidationError{field, "must not be empty"}}
	}
	st, err := os.Stat(path)
	if err != nil {
		return []error{ValidationError{field, fmt.Sprintf("%s does not exist", path)}}
	}
	if !st.IsDir() {
		return []error{ValidationError{field, fmt.Sprintf("%s is not a directory", path)}}
	}
	return nil
}

func dayCodeList() []string {
	return []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
}
