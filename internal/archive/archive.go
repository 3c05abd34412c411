// Package archive models daily archive files: naming, discovery and
// creation. An archive is one compressed snapshot named
// {prefix}.{YYYY-MM-DD}.{ext}; anything in the daily directory that
// does not parse under that pattern is invisible to rotation.
package archive

import (
	"os"
	"path/filepath"
	"sort"
	"time"
)

// Archive is one daily snapshot on disk.
type Archive struct {
	Path string
	Name string
	// Date is the day embedded in the filename.
	Date time.Time
	// ModTime is the file mtime, the creation timestamp used for
	// retention decisions.
	ModTime time.Time
	Size    int64
}

// Scan lists the archives in dir that belong to this system, i.e.
// whose names parse under the given prefix and extension. Results are
// sorted by name, which for fixed-width ISO dates is chronological
// order. Foreign files are skipped without error.
func Scan(dir, prefix, ext string) ([]Archive, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var archives []Archive
	for _, ent := range entries {
		if ent.IsDir() {
			continue
		}
		date, ok := Parse(ent.Name(), prefix, ext)
		if !ok {
			continue
		}
		info, err := ent.Info()
		if err != nil {
			// vanished mid-scan; it is no longer ours to manage
			continue
		}
		archives = append(archives, Archive{
			Path:    filepath.Join(dir, ent.Name()),
			Name:    ent.Name(),
			Date:    date,
			ModTime: info.ModTime(),
			Size:    info.Size(),
		})
	}

	sort.Slice(archives, func(i, j int) bool {
		return archives[i].Name < archives[j].Name
	})

	return archives, nil
}
