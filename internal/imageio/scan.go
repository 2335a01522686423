package imageio

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Scan walks dir and returns every decodable image path, sorted.
// skip, when non-empty, is a directory left out of the walk (the output
// directory usually lives inside the input directory).
func Scan(dir, skip string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skip != "" && path != dir && filepath.Clean(path) == filepath.Clean(skip) {
				return filepath.SkipDir
			}
			return nil
		}
		if Supported(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("imageio: scan %s: %w", dir, err)
	}
	sort.Strings(paths)
	return paths, nil
}
