package trash

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"golang.org/x/sys/unix"
)

const emptyTimeout = 30 * time.Second

// Trash moves paths into the user's trash directory instead of erasing
// them, so a cleanup can be undone from Finder until the trash is emptied.
type Trash struct {
	dir string
}

// New returns a Trash rooted at ~/.Trash. The directory must exist and be
// writable — on a stock macOS install Finder guarantees both.
func New() (*Trash, error) {
	return NewAt(filepath.Join(xdg.Home, ".Trash"))
}

// NewAt returns a Trash rooted at an explicit directory.
func NewAt(dir string) (*Trash, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("trash directory unavailable: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("trash path %s is not a directory", dir)
	}
	if err := unix.Access(dir, unix.W_OK); err != nil {
		return nil, fmt.Errorf("trash directory %s is not writable: %w", dir, err)
	}
	return &Trash{dir: dir}, nil
}

// Name identifies the backend in summaries and prompts.
func (t *Trash) Name() string {
	return "trash"
}

// Remove moves path into the trash directory. Name collisions get a
// timestamp suffix the way Finder disambiguates. A path on a different
// volume cannot be renamed into the trash; the EXDEV error is surfaced to
// the caller rather than silently falling back to a copy-and-delete.
func (t *Trash) Remove(path string) error {
	if _, err := os.Lstat(path); err != nil {
		return err
	}

	dst := filepath.Join(t.dir, filepath.Base(path))
	if _, err := os.Lstat(dst); err == nil {
		dst = t.collisionName(filepath.Base(path))
	}

	return os.Rename(path, dst)
}

// collisionName appends a timestamp, then a counter if an item was trashed
// twice in the same second.
func (t *Trash) collisionName(base string) string {
	stamp := time.Now().Format("15.04.05")
	dst := filepath.Join(t.dir, fmt.Sprintf("%s %s", base, stamp))
	for n := 2; ; n++ {
		if _, err := os.Lstat(dst); errors.Is(err, os.ErrNotExist) {
			return dst
		}
		dst = filepath.Join(t.dir, fmt.Sprintf("%s %s-%d", base, stamp, n))
	}
}

// Empty tells Finder to empty the trash. Offered as an optional post-run
// step; never invoked by the deletion executor itself.
func Empty(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, emptyTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "osascript", "-e", `tell application "Finder" to empty trash`)
	if output, err := cmd.CombinedOutput(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("emptying trash timed out after %s", emptyTimeout)
		}
		return fmt.Errorf("emptying trash failed: %s", firstLine(output))
	}
	return nil
}

func firstLine(output []byte) string {
	for i, b := range output {
		if b == '\n' {
			return string(output[:i])
		}
	}
	return string(output)
}
