package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadPathList reads a path-pattern list file: one pattern per line,
// blank lines and '#' comments ignored. Patterns are stored without a
// leading separator so they resolve relative to an arbitrary root.
func LoadPathList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening list file: %w", err)
	}
	defer f.Close()

	var patterns []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, strings.TrimLeft(line, "/"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading list file: %w", err)
	}

	return patterns, nil
}
