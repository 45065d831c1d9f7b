package core

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// MacOSProductVersion returns the numeric release, e.g. "14.5", via sw_vers.
// An empty string means the probe failed; the version is cosmetic and
// callers degrade gracefully.
func MacOSProductVersion() string {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	out, err := exec.CommandContext(ctx, "sw_vers", "-productVersion").Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

// MacOSVersionString returns a human-readable macOS version string.
// Examples: "macOS 14.5 (Sonoma)", "macOS 15.1 (Sequoia)"
func MacOSVersionString() string {
	version := MacOSProductVersion()
	if version == "" {
		return "macOS"
	}

	major, _, _ := strings.Cut(version, ".")
	n, err := strconv.Atoi(major)
	if err != nil {
		return "macOS " + version
	}

	var name string
	switch n {
	case 26:
		name = "Tahoe"
	case 15:
		name = "Sequoia"
	case 14:
		name = "Sonoma"
	case 13:
		name = "Ventura"
	case 12:
		name = "Monterey"
	case 11:
		name = "Big Sur"
	}

	if name == "" {
		return "macOS " + version
	}
	return fmt.Sprintf("macOS %s (%s)", version, name)
}
