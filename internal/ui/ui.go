package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ─── Color tokens ────────────────────────────────────────────────────────────

// Shared palette for all views. Green primary matches the original tool's
// accent; warning/error follow the usual terminal conventions.
var (
	ColorPrimary = lipgloss.Color("42")
	ColorText    = lipgloss.Color("252")
	ColorTextDim = lipgloss.Color("245")
	ColorMuted   = lipgloss.Color("241")
	ColorWarning = lipgloss.Color("214")
	ColorError   = lipgloss.Color("196")
	ColorSuccess = lipgloss.Color("46")
	ColorCaution = lipgloss.Color("226")
)

// ─── Icons ───────────────────────────────────────────────────────────────────

const (
	IconDiamond   = "◆"
	IconChevron   = "›"
	IconCheck     = "✓"
	IconCross     = "✗"
	IconChecked   = "[x]"
	IconUnchecked = "[ ]"
)

// ─── Formatting ──────────────────────────────────────────────────────────────

// sizeUnits are binary-prefixed but displayed with the short labels users
// expect from disk tools.
var sizeUnits = []string{"B", "KB", "MB", "GB", "TB", "PB"}

// FormatSize renders a byte count as a human-readable string, e.g. "1.5 GB".
func FormatSize(bytes int64) string {
	if bytes < 0 {
		bytes = 0
	}
	size := float64(bytes)
	unit := 0
	for size >= 1024 && unit < len(sizeUnits)-1 {
		size /= 1024
		unit++
	}
	if unit == 0 {
		return fmt.Sprintf("%d %s", bytes, sizeUnits[0])
	}
	return fmt.Sprintf("%.1f %s", size, sizeUnits[unit])
}
