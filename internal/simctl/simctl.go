package simctl

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// pruneTimeout bounds the simctl invocation; deleting many stale
	// simulator devices can take a while.
	pruneTimeout = 120 * time.Second
)

// Available reports whether the Xcode command line tools are installed.
func Available() bool {
	_, err := exec.LookPath("xcrun")
	return err == nil
}

// PruneUnavailable deletes simulator devices whose runtimes are no longer
// installed ("xcrun simctl delete unavailable"). This is the one cleanup
// that goes through a tool instead of the path catalog — simulator state is
// owned by CoreSimulator and must not be removed by deleting files.
func PruneUnavailable(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pruneTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "xcrun", "simctl", "delete", "unavailable")
	output, err := cmd.CombinedOutput()
	if err != nil {
		return translateError(err, output)
	}
	return nil
}

// translateError wraps an exec failure with the interesting part of the
// tool's output, truncated at a valid UTF-8 boundary.
func translateError(err error, output []byte) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("simctl timed out after %s", pruneTimeout)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		out := strings.TrimSpace(string(output))
		if len(out) > 200 {
			out = out[:200]
			for len(out) > 0 && !utf8.ValidString(out) {
				out = out[:len(out)-1]
			}
			out += "..."
		}
		if out != "" {
			return fmt.Errorf("simctl failed (exit code %d): %s", exitErr.ExitCode(), out)
		}
		return fmt.Errorf("simctl failed (exit code %d)", exitErr.ExitCode())
	}

	return fmt.Errorf("simctl error: %w", err)
}
