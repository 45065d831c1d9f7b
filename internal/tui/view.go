package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/xcsweep/xcsweep/internal/catalog"
	"github.com/xcsweep/xcsweep/internal/clean"
	"github.com/xcsweep/xcsweep/internal/ui"
)

// ─── Safety tier display ─────────────────────────────────────────────────────

// tierDisplay is the per-tier presentation: no subclassing, just a lookup.
type tierDisplay struct {
	dot   string
	label string
	color lipgloss.Color
}

var tierTable = map[catalog.SafetyTier]tierDisplay{
	catalog.SafetySafe:     {dot: "●", label: "safe", color: ui.ColorSuccess},
	catalog.SafetyCaution:  {dot: "●", label: "caution", color: ui.ColorCaution},
	catalog.SafetyAdvanced: {dot: "●", label: "advanced", color: ui.ColorWarning},
}

func tierOf(t catalog.SafetyTier) tierDisplay {
	if d, ok := tierTable[t]; ok {
		return d
	}
	return tierDisplay{dot: "○", label: "unknown", color: ui.ColorMuted}
}

// ─── Styles ──────────────────────────────────────────────────────────────────

var (
	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(ui.ColorPrimary)
	styleDim    = lipgloss.NewStyle().Foreground(ui.ColorTextDim)
	styleMuted  = lipgloss.NewStyle().Foreground(ui.ColorMuted)
	styleText   = lipgloss.NewStyle().Foreground(ui.ColorText)
	styleCursor = lipgloss.NewStyle().Bold(true).Foreground(ui.ColorPrimary)
	styleOK     = lipgloss.NewStyle().Foreground(ui.ColorSuccess)
	styleBad    = lipgloss.NewStyle().Foreground(ui.ColorError)
	styleWarn   = lipgloss.NewStyle().Foreground(ui.ColorWarning)
)

// ─── Top-level view ──────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	w := m.width
	if w < 50 {
		w = 50
	}

	var s strings.Builder
	s.WriteString(m.renderHeader(w))
	s.WriteString("\n")

	switch m.phase {
	case phaseMeasuring:
		s.WriteString(fmt.Sprintf("\n  %s Measuring cache sizes...\n", m.spin.View()))
	case phaseSelecting:
		s.WriteString(m.renderSelect(w))
	case phasePlanning:
		s.WriteString(fmt.Sprintf("\n  %s Building cleanup plan...\n", m.spin.View()))
	case phaseConfirming:
		s.WriteString(m.renderConfirm(w))
	case phaseCleaning:
		s.WriteString(m.renderCleaning(w))
	case phaseDone:
		s.WriteString(m.renderDone(w))
	}

	return s.String()
}

// ─── Header ──────────────────────────────────────────────────────────────────

func (m Model) renderHeader(w int) string {
	title := styleTitle.Render("  " + ui.IconDiamond + " Xcode Cleanup")

	info := "  " + m.osVersion
	if m.haveDisk {
		info += fmt.Sprintf("    free disk space: %s", ui.FormatSize(int64(m.diskBefore.Free)))
	}

	inner := lipgloss.JoinVertical(lipgloss.Left, title, styleDim.Render(info))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorPrimary).
		Width(w - 2).
		Render(inner)
}

// ─── Selection list ──────────────────────────────────────────────────────────

func (m Model) renderSelect(w int) string {
	var s strings.Builder
	s.WriteString(styleText.Render("  Select items to clean:"))
	s.WriteString("\n\n")

	for i, it := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = styleCursor.Render(ui.IconChevron) + " "
		}

		box := ui.IconUnchecked
		if it.checked {
			box = styleOK.Render(ui.IconChecked)
		}

		tier := tierOf(it.category.Safety)
		dot := lipgloss.NewStyle().Foreground(tier.color).Render(tier.dot)

		name := it.category.Name
		if i == m.cursor {
			name = styleCursor.Render(name)
		} else {
			name = styleText.Render(name)
		}

		size := styleMuted.Render("measuring...")
		if it.measured {
			size = styleDim.Render(ui.FormatSize(it.size))
		}

		s.WriteString(fmt.Sprintf("  %s%s %s %-32s %10s\n", cursor, box, dot, name, size))
	}

	s.WriteString("\n")
	s.WriteString("  " + styleMuted.Render(m.items[m.cursor].category.Description) + "\n")
	s.WriteString("\n")
	s.WriteString("  " + styleMuted.Render("↑/↓ move · space toggle · a all · enter continue · q quit") + "\n")
	return s.String()
}

// ─── Confirmation ────────────────────────────────────────────────────────────

func (m Model) renderConfirm(w int) string {
	p := m.cleanupPlan

	var lines []string
	lines = append(lines, styleTitle.Render("Cleanup plan"))
	lines = append(lines, "")
	for _, e := range p.Entries {
		var size int64
		for _, rp := range e.Paths {
			size += rp.Size
		}
		detail := fmt.Sprintf("%d paths, %s", len(e.Paths), ui.FormatSize(size))
		if len(e.Paths) == 0 {
			detail = "nothing to clean"
		}
		lines = append(lines, fmt.Sprintf("%s  %s", styleText.Render(e.Category.Name), styleDim.Render(detail)))
	}
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("Total: %s across %d paths (%s mode)",
		styleTitle.Render(ui.FormatSize(p.TotalBytes())), p.TotalPaths(), m.backend.Name()))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorWarning).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))

	return "\n" + box + "\n\n  " + styleWarn.Render("Proceed? (y/N)") + "\n"
}

// ─── Cleaning progress ───────────────────────────────────────────────────────

func (m Model) renderCleaning(w int) string {
	total := m.cleanupPlan.TotalPaths()
	frac := 1.0
	if total > 0 {
		frac = float64(m.done) / float64(total)
	}

	var s strings.Builder
	s.WriteString("\n  " + m.bar.ViewAs(frac) + "\n\n")
	s.WriteString(fmt.Sprintf("  %s  %d/%d paths · %s freed\n",
		styleText.Render("Cleaning..."), m.done, total, ui.FormatSize(m.freed)))

	if m.lastPath != "" {
		line := "  " + styleMuted.Render(truncatePath(m.lastPath, w-6))
		if m.lastErr != nil {
			line = "  " + styleBad.Render(ui.IconCross+" "+truncatePath(m.lastPath, w-8))
		}
		s.WriteString(line + "\n")
	}
	return s.String()
}

// ─── Summary ─────────────────────────────────────────────────────────────────

func (m Model) renderDone(w int) string {
	r := m.result

	var s strings.Builder
	s.WriteString("\n  " + styleTitle.Render("Cleanup completed") + "\n\n")

	for _, cr := range r.Categories {
		switch {
		case cr.Attempted == 0:
			s.WriteString(fmt.Sprintf("  %s %-32s %s\n",
				styleMuted.Render("-"), cr.Name, styleMuted.Render("nothing to clean")))
		case len(cr.Failures) == 0:
			s.WriteString(fmt.Sprintf("  %s %-32s %s\n",
				styleOK.Render(ui.IconCheck), cr.Name,
				styleDim.Render(fmt.Sprintf("%d paths, %s freed", cr.Succeeded, ui.FormatSize(cr.BytesFreed)))))
		default:
			s.WriteString(fmt.Sprintf("  %s %-32s %s\n",
				styleWarn.Render("!"), cr.Name,
				styleDim.Render(fmt.Sprintf("%d/%d paths, %s freed", cr.Succeeded, cr.Attempted, ui.FormatSize(cr.BytesFreed)))))
			for _, f := range cr.Failures {
				s.WriteString(fmt.Sprintf("      %s %s %s\n",
					styleBad.Render(ui.IconCross),
					styleMuted.Render(truncatePath(f.Path, w-20)),
					styleBad.Render("("+renderFailureHint(f.Reason)+")")))
			}
		}
	}

	s.WriteString("\n")
	s.WriteString(fmt.Sprintf("  Freed %s", styleTitle.Render(ui.FormatSize(r.BytesFreed))))
	if r.Failed > 0 {
		s.WriteString(styleBad.Render(fmt.Sprintf("  (%d paths failed)", r.Failed)))
	}
	s.WriteString("\n")

	if m.haveDiskAfter {
		s.WriteString(styleDim.Render(fmt.Sprintf("  Free disk space now: %s", ui.FormatSize(int64(m.diskAfter.Free)))) + "\n")
	}

	s.WriteString("\n  " + styleMuted.Render("press any key to exit") + "\n")
	return s.String()
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

func truncatePath(path string, max int) string {
	if max < 8 || len(path) <= max {
		return path
	}
	return "..." + path[len(path)-max+3:]
}

// renderFailureHint turns an executor error into a short user-facing note.
// Kept here so result rendering stays in one place.
func renderFailureHint(reason clean.FailureReason) string {
	switch reason {
	case clean.ReasonVanished:
		return "already removed by another process"
	case clean.ReasonAccessDenied:
		return "permission denied"
	case clean.ReasonUnsupported:
		return "cannot move to trash from this volume"
	default:
		return "could not remove"
	}
}
