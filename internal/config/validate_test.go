package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeList(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func validConfig(t *testing.T) *Config {
	t.Helper()
	dir := t.TempDir()
	daily := filepath.Join(dir, "daily")
	weekly := filepath.Join(dir, "weekly")
	for _, d := range []string{daily, weekly} {
		if err := os.Mkdir(d, 0o755); err != nil {
			t.Fatal(err)
		}
	}
	include := writeList(t, dir, "include.list", "etc\nhome\n")

	return &Config{
		DailyDir:    daily,
		WeeklyDir:   weekly,
		FilePrefix:  "host1",
		Compression: CompressionGzip,
		ExportDay:   "Sun",
		IncludeFrom: include,
		Include:     []string{"etc", "home"},
	}
}

func TestValidateOK(t *testing.T) {
	cfg := validConfig(t)
	if errs := Validate(cfg); len(errs) != 0 {
		t.Errorf("Validate returned %v, want none", errs)
	}
}

func TestValidateReportsEveryProblemInOnePass(t *testing.T) {
	cfg := &Config{
		DailyDir:    "/does/not/exist",
		WeeklyDir:   "/also/missing",
		FilePrefix:  "host1",
		Compression: "zip",
		ExportDay:   "Sunday",
		IncludeFrom: "/missing/include.list",
	}

	errs := Validate(cfg)
	if len(errs) != 5 {
		t.Fatalf("Validate returned %d errors, want 5: %v", len(errs), errs)
	}

	wantFields := []string{"dailyDir", "weeklyDir", "compression", "exportDay", "includeFrom"}
	for _, field := range wantFields {
		found := false
		for _, e := range errs {
			var ve ValidationError
			if errors.As(e, &ve) && ve.Field == field {
				found = true
			}
		}
		if !found {
			t.Errorf("no error reported for %s", field)
		}
	}
}

func TestValidateCompression(t *testing.T) {
	for _, algo := range []Compression{CompressionBzip2, CompressionGzip, CompressionNone} {
		cfg := validConfig(t)
		cfg.Compression = algo
		if errs := Validate(cfg); len(errs) != 0 {
			t.Errorf("Validate(%s) = %v, want none", algo, errs)
		}
	}

	cfg := validConfig(t)
	cfg.Compression = "lzma"
	errs := Validate(cfg)
	if len(errs) != 1 || !strings.Contains(errs[0].Error(), "compression") {
		t.Errorf("Validate with bad compression = %v, want one compression error", errs)
	}
}

func TestValidateExportDay(t *testing.T) {
	for _, day := range []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"} {
		cfg := validConfig(t)
		cfg.ExportDay = day
		if errs := Validate(cfg); len(errs) != 0 {
			t.Errorf("Validate(exportDay=%s) = %v, want none", day, errs)
		}
	}

	cfg := validConfig(t)
	cfg.ExportDay = "sun"
	if errs := Validate(cfg); len(errs) != 1 {
		t.Errorf("Validate with lowercase day = %v, want one error", errs)
	}
}

func TestValidateEmptyIncludeList(t *testing.T) {
	cfg := validConfig(t)
	cfg.IncludeFrom = writeList(t, t.TempDir(), "include.list", "# only comments\n\n")
	cfg.Include = nil

	errs := Validate(cfg)
	if len(errs) != 1 {
		t.Fatalf("Validate = %v, want one error", errs)
	}
	var ve ValidationError
	if !errors.As(errs[0], &ve) || ve.Field != "includeFrom" {
		t.Errorf("error = %v, want includeFrom validation error", errs[0])
	}
}

// RetentionDays is not validated: absence means rotation disabled.
func TestValidateIgnoresRetentionDays(t *testing.T) {
	cfg := validConfig(t)
	cfg.RetentionDays = 0
	if errs := Validate(cfg); len(errs) != 0 {
		t.Errorf("Validate with retentionDays=0 = %v, want none", errs)
	}
	if cfg.RotationEnabled() {
		t.Error("RotationEnabled() with retentionDays=0, want disabled")
	}
}
