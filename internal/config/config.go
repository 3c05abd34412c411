// Package config holds the snapkeep configuration model and its loader.
package config

// Compression names the algorithm used for the daily archive.
type Compression string

const (
	CompressionBzip2 Compression = "bzip2"
	CompressionGzip  Compression = "gzip"
	CompressionNone  Compression = "none"
)

// Extension returns the archive filename extension for the algorithm.
// Unknown algorithms map to the empty string; the validator rejects
// them before anything gets named.
func (c Compression) Extension() string {
	switch c {
	case CompressionBzip2:
		return "tbz"
	case CompressionGzip:
		return "tgz"
	case CompressionNone:
		return "tar"
	default:
		return ""
	}
}

// TarFlag returns the tar compression flag for the algorithm, or the
// empty string for plain tar.
func (c Compression) TarFlag() string {
	switch c {
	case CompressionBzip2:
		return "-j"
	case CompressionGzip:
		return "-z"
	default:
		return ""
	}
}

type Config struct {
	DailyDir   string `yaml:"dailyDir"`
	WeeklyDir  string `yaml:"weeklyDir"`
	FilePrefix string `yaml:"filePrefix"`

	Compression Compression `yaml:"compression"`
	ExportDay   string      `yaml:"exportDay"` // "Sun".."Sat"

	// RetentionDays is the purge window in calendar days. Zero (or
	// absent) disables both export and purge.
	RetentionDays int `yaml:"retentionDays"`

	IncludeFrom string `yaml:"includeFrom"`
	ExcludeFrom string `yaml:"excludeFrom"`

	// ArchiveRoot is the directory the include/exclude patterns
	// resolve against. Defaults to the filesystem root.
	ArchiveRoot string `yaml:"archiveRoot"`

	TarBin      string `yaml:"tarBin"`
	RequireRoot *bool  `yaml:"requireRoot"`

	Logging  LoggingConfig  `yaml:"logging"`
	Schedule ScheduleConfig `yaml:"schedule"`

	// Loaded from IncludeFrom/ExcludeFrom by Load.
	Include []string `yaml:"-"`
	Exclude []string `yaml:"-"`
}

type LoggingConfig struct {
	// Dir receives the per-run log and error files. Defaults to
	// DailyDir.
	Dir string `yaml:"dir"`
}

type ScheduleConfig struct {
	// Cron is the daemon-mode schedule expression, e.g. "30 2 * * *".
	Cron string `yaml:"cron"`
}

// RotationEnabled reports whether export and purge may run at all.
func (c *Config) RotationEnabled() bool {
	return c.RetentionDays > 0
}

// LogDir returns the effective log directory.
func (c *Config) LogDir() string {
	if c.Logging.Dir != "" {
		return c.Logging.Dir
	}
	return c.DailyDir
}

// RootRequired reports whether the privilege gate is active. It is on
// unless the config turns it off explicitly.
func (c *Config) RootRequired() bool {
	return c.RequireRoot == nil || *c.RequireRoot
}
