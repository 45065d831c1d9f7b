package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/xcsweep/xcsweep/internal/catalog"
	"github.com/xcsweep/xcsweep/internal/config"
	"github.com/xcsweep/xcsweep/internal/core"
	"github.com/xcsweep/xcsweep/internal/plan"
	"github.com/xcsweep/xcsweep/internal/resolve"
	"github.com/xcsweep/xcsweep/internal/scan"
	"github.com/xcsweep/xcsweep/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show cleanup categories and their sizes",
	Long:  "Measure every cleanup category and print a table with descriptions, current sizes, and safety levels.",
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	cat := catalog.Default().Without(cfg.Exclude...)
	planner := plan.NewPlanner(cat, resolve.NewResolver("", cfg.Protected), nil)

	fmt.Println(core.MacOSVersionString())
	if space, err := scan.DiskFree(planner.Home()); err == nil {
		fmt.Printf("Free disk space: %s\n", ui.FormatSize(int64(space.Free)))
	}
	fmt.Println()

	report := planner.Report()

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ui.ColorMuted)).
		Headers("Category", "Description", "Size", "Safety")

	for _, c := range cat.All() {
		size := ui.FormatSize(report[c.ID])
		if report[c.ID] == 0 {
			size = "-"
		}
		tbl.Row(c.Name, c.Description, size, c.Safety.String())
	}

	fmt.Println(tbl.Render())
	return nil
}
