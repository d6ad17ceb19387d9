package features

import (
	"os"
	"path/filepath"
)

// IsFeatureFile reports whether name matches the feature file pattern.
// Matching is case-sensitive, like a shell glob.
func IsFeatureFile(name string) bool {
	ok, err := filepath.Match(Pattern, name)
	return err == nil && ok
}

// List returns the names of the regular feature files directly inside dir,
// sorted by name. A missing dir yields an empty list.
func List(dir string) ([]string, error) {
	isDir, err := sourceIsDir(dir)
	if err != nil || !isDir {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if !IsFeatureFile(entry.Name()) {
			continue
		}
		info, err := os.Stat(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		if info.Mode().IsRegular() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}
