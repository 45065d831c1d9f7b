package scan

import "github.com/shirou/gopsutil/v4/disk"

// DiskSpace holds free and total bytes for the volume containing a path.
type DiskSpace struct {
	Free  uint64
	Total uint64
}

// DiskFree reports free space on the volume containing path. Shown before
// selection and again after a run so the user can see what was reclaimed.
func DiskFree(path string) (DiskSpace, error) {
	usage, err := disk.Usage(path)
	if err != nil {
		return DiskSpace{}, err
	}
	return DiskSpace{Free: usage.Free, Total: usage.Total}, nil
}
