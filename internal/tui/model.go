package tui

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xcsweep/xcsweep/internal/catalog"
	"github.com/xcsweep/xcsweep/internal/clean"
	"github.com/xcsweep/xcsweep/internal/plan"
	"github.com/xcsweep/xcsweep/internal/scan"
	"github.com/xcsweep/xcsweep/internal/ui"
)

// ─── Phases ──────────────────────────────────────────────────────────────────

type phase int

const (
	phaseMeasuring phase = iota
	phaseSelecting
	phasePlanning
	phaseConfirming
	phaseCleaning
	phaseDone
)

// ─── Messages ────────────────────────────────────────────────────────────────

type sizeMsg struct {
	id   string
	size int64
}

type planReadyMsg struct {
	plan *plan.Plan
	err  error
}

type progressMsg clean.Progress

type cleanDoneMsg struct {
	result *clean.Result
}

type diskMsg struct {
	space scan.DiskSpace
	after bool
	err   error
}

// ─── Model ───────────────────────────────────────────────────────────────────

// item is one selectable category row.
type item struct {
	category catalog.Category
	size     int64
	measured bool
	checked  bool
}

// Model drives the whole interactive flow: measure category sizes, let the
// user pick a subset, confirm, execute with live progress, show the
// summary. The core packages do all the work; the model only sequences
// them and renders state.
type Model struct {
	planner   *plan.Planner
	backend   clean.Backend
	osVersion string

	phase   phase
	items   []item
	cursor  int
	pending int

	cleanupPlan *plan.Plan
	events      chan tea.Msg

	done     int
	freed    int64
	lastPath string
	lastErr  error
	result   *clean.Result

	diskBefore    scan.DiskSpace
	diskAfter     scan.DiskSpace
	haveDisk      bool
	haveDiskAfter bool

	spin   spinner.Model
	bar    progress.Model
	width  int
	height int

	err      error
	aborted  bool
	quitting bool
}

// NewModel creates the cleanup flow model. Categories come pre-checked per
// their DefaultSelected flag.
func NewModel(planner *plan.Planner, backend clean.Backend, osVersion string) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ui.ColorPrimary)

	items := []item{}
	for _, cat := range planner.Catalog().All() {
		items = append(items, item{category: cat, checked: cat.DefaultSelected})
	}

	m := Model{
		planner:   planner,
		backend:   backend,
		osVersion: osVersion,
		items:     items,
		pending:   len(items),
		spin:      sp,
		bar:       progress.New(progress.WithDefaultGradient()),
		width:     80,
		height:    24,
	}

	// An empty catalog (every category excluded by config) produces no
	// size messages, so nothing would ever leave the measuring phase.
	if len(items) == 0 {
		m.aborted = true
		m.quitting = true
	}
	return m
}

// Result returns the cleanup result, nil when the run never executed.
func (m Model) Result() *clean.Result {
	return m.result
}

// Aborted reports whether the user backed out before execution.
func (m Model) Aborted() bool {
	return m.aborted
}

// Err returns a fatal flow error, if any.
func (m Model) Err() error {
	return m.err
}

func (m Model) Init() tea.Cmd {
	if len(m.items) == 0 {
		return tea.Quit
	}
	cmds := []tea.Cmd{m.spin.Tick, measureDisk(m.planner.Home(), false)}
	for _, it := range m.items {
		cmds = append(cmds, measureCategory(m.planner, it.category))
	}
	return tea.Batch(cmds...)
}

// ─── Commands ────────────────────────────────────────────────────────────────

func measureCategory(planner *plan.Planner, cat catalog.Category) tea.Cmd {
	return func() tea.Msg {
		return sizeMsg{id: cat.ID, size: planner.CategorySize(cat)}
	}
}

func measureDisk(home string, after bool) tea.Cmd {
	return func() tea.Msg {
		space, err := scan.DiskFree(home)
		return diskMsg{space: space, after: after, err: err}
	}
}

func buildPlan(planner *plan.Planner, ids []string) tea.Cmd {
	return func() tea.Msg {
		p, err := planner.Plan(ids)
		return planReadyMsg{plan: p, err: err}
	}
}

// startCleanup runs the executor in a goroutine and streams its progress
// events through a channel, one event per received message.
func (m *Model) startCleanup() tea.Cmd {
	events := make(chan tea.Msg, 16)
	m.events = events

	p := m.cleanupPlan
	backend := m.backend
	go func() {
		defer close(events)
		result := clean.Execute(p, backend, func(ev clean.Progress) {
			events <- progressMsg(ev)
		})
		events <- cleanDoneMsg{result: result}
	}()

	return waitForEvent(events)
}

func waitForEvent(events <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-events
		if !ok {
			return nil
		}
		return msg
	}
}

// ─── Update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		barWidth := m.width - 10
		if barWidth > 60 {
			barWidth = 60
		}
		if barWidth > 0 {
			m.bar.Width = barWidth
		}
		return m, nil

	case spinner.TickMsg:
		if m.phase == phaseMeasuring || m.phase == phasePlanning {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case sizeMsg:
		for i := range m.items {
			if m.items[i].category.ID == msg.id {
				m.items[i].size = msg.size
				m.items[i].measured = true
			}
		}
		m.pending--
		if m.pending <= 0 && m.phase == phaseMeasuring {
			m.phase = phaseSelecting
		}
		return m, nil

	case diskMsg:
		if msg.err != nil {
			return m, nil
		}
		if msg.after {
			m.diskAfter = msg.space
			m.haveDiskAfter = true
		} else {
			m.diskBefore = msg.space
			m.haveDisk = true
		}
		return m, nil

	case planReadyMsg:
		if msg.err != nil {
			m.err = msg.err
			m.quitting = true
			return m, tea.Quit
		}
		m.cleanupPlan = msg.plan
		m.phase = phaseConfirming
		return m, nil

	case progressMsg:
		m.done++
		m.freed = msg.Freed
		m.lastPath = msg.Path
		m.lastErr = msg.Err
		return m, waitForEvent(m.events)

	case cleanDoneMsg:
		m.result = msg.result
		m.phase = phaseDone
		return m, measureDisk(m.planner.Home(), true)

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.phase {

	case phaseMeasuring, phasePlanning:
		if msg.String() == "q" || msg.String() == "ctrl+c" || msg.String() == "esc" {
			m.aborted = true
			m.quitting = true
			return m, tea.Quit
		}

	case phaseSelecting:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.aborted = true
			m.quitting = true
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}

		case " ":
			m.items[m.cursor].checked = !m.items[m.cursor].checked

		case "a":
			all := true
			for _, it := range m.items {
				if !it.checked {
					all = false
					break
				}
			}
			for i := range m.items {
				m.items[i].checked = !all
			}

		case "enter":
			ids := m.selectedIDs()
			if len(ids) == 0 {
				// Empty selection is a legal no-op run.
				m.aborted = true
				m.quitting = true
				return m, tea.Quit
			}
			m.phase = phasePlanning
			return m, tea.Batch(m.spin.Tick, buildPlan(m.planner, ids))
		}

	case phaseConfirming:
		switch msg.String() {
		case "y", "Y", "enter":
			m.phase = phaseCleaning
			return m, m.startCleanup()
		case "n", "N", "esc", "q", "ctrl+c":
			m.aborted = true
			m.quitting = true
			return m, tea.Quit
		}

	case phaseCleaning:
		// Once execution starts it runs to completion; no cancellation.

	case phaseDone:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) selectedIDs() []string {
	var ids []string
	for _, it := range m.items {
		if it.checked {
			ids = append(ids, it.category.ID)
		}
	}
	return ids
}

// Run executes the flow full-screen and returns the final model state.
func Run(m Model) (Model, error) {
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return m, err
	}
	out, ok := final.(Model)
	if !ok {
		return m, nil
	}
	return out, out.Err()
}
