package scan

import (
	"io/fs"
	"os"
	"path/filepath"
)

// Measure returns the total byte size of the file tree rooted at path.
// Unreadable entries are skipped, so a partially readable tree yields a
// best-effort partial size. Symbolic links are never followed — a link into
// another tree would double-count or escape scope. Measurement is read-only
// and may be repeated freely.
func Measure(path string) int64 {
	info, err := os.Lstat(path)
	if err != nil {
		return 0
	}

	if !info.IsDir() {
		if info.Mode().IsRegular() {
			return info.Size()
		}
		return 0
	}

	var total int64
	_ = filepath.WalkDir(path, func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			// Permission errors and races with concurrent deletion: skip
			// the entry and keep walking.
			if entry != nil && entry.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !entry.Type().IsRegular() {
			return nil
		}
		fi, err := entry.Info()
		if err != nil {
			return nil
		}
		total += fi.Size()
		return nil
	})

	return total
}
