package cutoffs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DiscoverFiles lists the files in dir (not its subdirectories) whose names
// match pattern, in name order. Office lock files ("~$...") are skipped.
func DiscoverFiles(dir, pattern string) ([]string, error) {
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("invalid pattern %s: %w", pattern, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, "~$") {
			continue
		}
		if ok, _ := filepath.Match(pattern, name); ok {
			files = append(files, filepath.Join(dir, name))
		}
	}
	return files, nil
}
