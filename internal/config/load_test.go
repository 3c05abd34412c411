package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	include := writeList(t, dir, "include.list", "etc\n/var/lib\n\n# comment\n")
	exclude := writeList(t, dir, "exclude.list", "var/cache\n")

	yaml := `
dailyDir: /backup/daily
weeklyDir: /backup/weekly
filePrefix: host1
compression: bzip2
exportDay: Sun
retentionDays: 14
includeFrom: ` + include + `
excludeFrom: ` + exclude + `
`
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.FilePrefix != "host1" || cfg.RetentionDays != 14 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.Compression != CompressionBzip2 {
		t.Errorf("compression = %s, want bzip2", cfg.Compression)
	}
	if got := cfg.Compression.Extension(); got != "tbz" {
		t.Errorf("extension = %s, want tbz", got)
	}

	// defaults
	if cfg.TarBin != "tar" {
		t.Errorf("tarBin default = %s, want tar", cfg.TarBin)
	}
	if cfg.ArchiveRoot != string(os.PathSeparator) {
		t.Errorf("archiveRoot default = %s, want filesystem root", cfg.ArchiveRoot)
	}
	if !cfg.RootRequired() {
		t.Error("requireRoot should default to true")
	}
	if cfg.LogDir() != "/backup/daily" {
		t.Errorf("log dir default = %s, want dailyDir", cfg.LogDir())
	}

	// path lists loaded, leading separators stripped
	wantInclude := []string{"etc", "var/lib"}
	if len(cfg.Include) != len(wantInclude) {
		t.Fatalf("include = %v, want %v", cfg.Include, wantInclude)
	}
	for i, p := range wantInclude {
		if cfg.Include[i] != p {
			t.Errorf("include[%d] = %s, want %s", i, cfg.Include[i], p)
		}
	}
	if len(cfg.Exclude) != 1 || cfg.Exclude[0] != "var/cache" {
		t.Errorf("exclude = %v, want [var/cache]", cfg.Exclude)
	}
}

func TestLoadExpandsEnvVars(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SNAPKEEP_TEST_PREFIX", "db7")

	yaml := "filePrefix: $(SNAPKEEP_TEST_PREFIX)\n"
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.FilePrefix != "db7" {
		t.Errorf("filePrefix = %s, want db7", cfg.FilePrefix)
	}
}

func TestLoadToleratesMissingIncludeFile(t *testing.T) {
	dir := t.TempDir()
	yaml := "includeFrom: /does/not/exist.list\n"
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	// the validator reports the missing file alongside everything
	// else; Load must not fail early
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load = %v, want success", err)
	}
	if len(cfg.Include) != 0 {
		t.Errorf("include = %v, want empty", cfg.Include)
	}
}
