package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/xcsweep/xcsweep/internal/catalog"
	"github.com/xcsweep/xcsweep/internal/clean"
	"github.com/xcsweep/xcsweep/internal/config"
	"github.com/xcsweep/xcsweep/internal/core"
	"github.com/xcsweep/xcsweep/internal/plan"
	"github.com/xcsweep/xcsweep/internal/resolve"
	"github.com/xcsweep/xcsweep/internal/simctl"
	"github.com/xcsweep/xcsweep/internal/trash"
	"github.com/xcsweep/xcsweep/internal/tui"
	"github.com/xcsweep/xcsweep/internal/ui"
)

var (
	dryRun          bool
	cleanAll        bool
	assumeYes       bool
	permanent       bool
	pruneSimulators bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Free up disk space",
	Long:  "Measure Xcode cache categories, select a subset, and remove the selected data with confirmation and progress.",
	RunE:  runClean,
}

func init() {
	cleanCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview the cleanup plan without deleting")
	cleanCmd.Flags().BoolVar(&cleanAll, "all", false, "Select every category (skips the selection UI)")
	cleanCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")
	cleanCmd.Flags().BoolVar(&permanent, "permanent", false, "Delete permanently instead of moving to the trash")
	cleanCmd.Flags().BoolVar(&pruneSimulators, "prune-simulators", false, "Also delete unavailable simulator devices via simctl")
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if permanent {
		cfg.Mode = config.ModePermanent
	}

	cat := catalog.Default().Without(cfg.Exclude...)
	planner := plan.NewPlanner(cat, resolve.NewResolver("", cfg.Protected), nil)

	if dryRun {
		return runPreview(planner)
	}

	// The backend is only constructed for a real run: a dry run must work
	// even when the trash directory is missing or unwritable.
	backend, err := pickBackend(cfg.Mode)
	if err != nil {
		return err
	}

	interactive := isatty.IsTerminal(os.Stdout.Fd()) && !cleanAll && !assumeYes
	var result *clean.Result
	if interactive {
		result, err = runInteractive(planner, backend)
	} else {
		result, err = runPlain(planner, backend)
	}
	if err != nil || result == nil {
		return err
	}

	if pruneSimulators {
		runSimulatorPrune()
	}

	if backend.Name() == "trash" && result.BytesFreed > 0 {
		offerEmptyTrash()
	}

	return nil
}

// pickBackend maps the configured mode to a deletion backend.
func pickBackend(mode config.Mode) (clean.Backend, error) {
	switch mode {
	case config.ModePermanent:
		return clean.Permanent{}, nil
	case config.ModeTrash:
		return trash.New()
	default:
		return nil, fmt.Errorf("unrecognized deletion mode %q", mode)
	}
}

// selection returns the ids cleaned in non-interactive runs: everything
// with --all, otherwise the default-selected categories.
func selection(planner *plan.Planner) []string {
	var ids []string
	for _, cat := range planner.Catalog().All() {
		if cleanAll || cat.DefaultSelected {
			ids = append(ids, cat.ID)
		}
	}
	return ids
}

// runPreview prints the plan that a non-interactive run would execute.
func runPreview(planner *plan.Planner) error {
	p, err := planner.Plan(selection(planner))
	if err != nil {
		return err
	}

	fmt.Println("Dry run - nothing will be deleted.")
	fmt.Println()
	printPlan(p)
	return nil
}

// runInteractive drives the full-screen selection/confirmation/progress flow.
func runInteractive(planner *plan.Planner, backend clean.Backend) (*clean.Result, error) {
	m, err := tui.Run(tui.NewModel(planner, backend, core.MacOSVersionString()))
	if err != nil {
		return nil, err
	}
	if m.Aborted() {
		fmt.Println("Cleanup cancelled.")
		return nil, nil
	}
	return m.Result(), nil
}

// runPlain is the line-oriented flow for scripts and non-terminals.
func runPlain(planner *plan.Planner, backend clean.Backend) (*clean.Result, error) {
	ids := selection(planner)
	p, err := planner.Plan(ids)
	if err != nil {
		return nil, err
	}

	printPlan(p)
	if p.IsEmpty() {
		fmt.Println("Nothing to clean.")
		return &clean.Result{}, nil
	}

	if !assumeYes {
		ok, err := promptYesNo(fmt.Sprintf("Delete %s across %d paths (%s mode)?",
			ui.FormatSize(p.TotalBytes()), p.TotalPaths(), backend.Name()))
		if err != nil || !ok {
			fmt.Println("Cleanup cancelled.")
			return nil, err
		}
	}

	result := clean.Execute(p, backend, func(ev clean.Progress) {
		if ev.Err != nil {
			fmt.Printf("  %s %s (%s)\n", ui.IconCross, ev.Path, clean.Classify(ev.Err))
		} else if debug {
			fmt.Printf("  %s %s\n", ui.IconCheck, ev.Path)
		}
	})

	fmt.Println()
	for _, cr := range result.Categories {
		if cr.Attempted == 0 {
			fmt.Printf("  %-32s nothing to clean\n", cr.Name)
			continue
		}
		fmt.Printf("  %-32s %d/%d paths, %s freed\n",
			cr.Name, cr.Succeeded, cr.Attempted, ui.FormatSize(cr.BytesFreed))
	}
	fmt.Printf("\nFreed %s", ui.FormatSize(result.BytesFreed))
	if result.Failed > 0 {
		fmt.Printf(" (%d paths failed)", result.Failed)
	}
	fmt.Println()

	return result, nil
}

func printPlan(p *plan.Plan) {
	for _, e := range p.Entries {
		var size int64
		for _, rp := range e.Paths {
			size += rp.Size
		}
		if len(e.Paths) == 0 {
			fmt.Printf("  %-32s nothing to clean\n", e.Category.Name)
			continue
		}
		fmt.Printf("  %-32s %d paths, %s\n", e.Category.Name, len(e.Paths), ui.FormatSize(size))
	}
	fmt.Printf("\nTotal: %s across %d paths\n", ui.FormatSize(p.TotalBytes()), p.TotalPaths())
}

// runSimulatorPrune deletes simulator devices for runtimes that are no
// longer installed. Best effort; a missing xcrun is reported, not fatal.
func runSimulatorPrune() {
	if !simctl.Available() {
		fmt.Println("Skipping simulator prune: xcrun not found.")
		return
	}
	fmt.Println("Deleting unavailable simulators...")
	if err := simctl.PruneUnavailable(context.Background()); err != nil {
		fmt.Printf("  %s %v\n", ui.IconCross, err)
		return
	}
	fmt.Printf("  %s done\n", ui.IconCheck)
}

// offerEmptyTrash asks whether to empty the Finder trash after a trash-mode
// run. Skipped when there is no terminal to ask on.
func offerEmptyTrash() {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return
	}
	ok, err := promptYesNo("Empty the Trash?")
	if err != nil || !ok {
		return
	}
	if err := trash.Empty(context.Background()); err != nil {
		fmt.Printf("  %s %v\n", ui.IconCross, err)
		return
	}
	fmt.Printf("  %s Trash emptied\n", ui.IconCheck)
}

func promptYesNo(question string) (bool, error) {
	fmt.Printf("%s [y/N]: ", question)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
