package archive

import (
	"testing"
	"time"
)

func TestName(t *testing.T) {
	day := time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC)
	got := Name("host1", day, "tgz")
	want := "host1.2024-03-10.tgz"
	if got != want {
		t.Errorf("Name() = %q, want %q", got, want)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		prefix   string
		ext      string
		wantOK   bool
		wantDate string
	}{
		{
			name:     "canonical name",
			filename: "host1.2024-03-10.tgz",
			prefix:   "host1",
			ext:      "tgz",
			wantOK:   true,
			wantDate: "2024-03-10",
		},
		{
			name:     "wrong prefix",
			filename: "other.2024-03-10.tgz",
			prefix:   "host1",
			ext:      "tgz",
			wantOK:   false,
		},
		{
			name:     "wrong extension",
			filename: "host1.2024-03-10.tbz",
			prefix:   "host1",
			ext:      "tgz",
			wantOK:   false,
		},
		{
			name:     "no date",
			filename: "host1.notadate.tgz",
			prefix:   "host1",
			ext:      "tgz",
			wantOK:   false,
		},
		{
			name:     "unrelated file",
			filename: "random.txt",
			prefix:   "host1",
			ext:      "tgz",
			wantOK:   false,
		},
		{
			name:     "prefix containing the date shape",
			filename: "host1.2024-03-10.tgz.bak",
			prefix:   "host1",
			ext:      "tgz",
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, ok := Parse(tt.filename, tt.prefix, tt.ext)
			if ok != tt.wantOK {
				t.Fatalf("Parse(%q) ok = %v, want %v", tt.filename, ok, tt.wantOK)
			}
			if ok && date.Format("2006-01-02") != tt.wantDate {
				t.Errorf("Parse(%q) date = %s, want %s", tt.filename, date.Format("2006-01-02"), tt.wantDate)
			}
		})
	}
}

func TestNameParseRoundTrip(t *testing.T) {
	day := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)
	name := Name("backup", day, "tbz")
	got, ok := Parse(name, "backup", "tbz")
	if !ok {
		t.Fatalf("Parse rejected a name produced by Name: %q", name)
	}
	if !got.Equal(day) {
		t.Errorf("round trip date = %v, want %v", got, day)
	}
}
