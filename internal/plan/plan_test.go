package plan

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xcsweep/xcsweep/internal/catalog"
	"github.com/xcsweep/xcsweep/internal/resolve"
	"github.com/xcsweep/xcsweep/internal/scan"
)

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))
}

// fixture builds a two-category catalog under a temp home: "alpha" holds
// three files (10/20/30 bytes), "beta" has no existing root.
func fixture(t *testing.T) (*Planner, string) {
	t.Helper()
	home := t.TempDir()

	writeFile(t, filepath.Join(home, "caches", "alpha", "one"), 10)
	writeFile(t, filepath.Join(home, "caches", "alpha", "two"), 20)
	writeFile(t, filepath.Join(home, "caches", "alpha", "three"), 30)

	cat, err := catalog.New([]catalog.Category{
		{
			ID:        "alpha",
			Name:      "Alpha",
			Templates: []catalog.Template{{Home: true, Path: "caches/alpha", Children: "*"}},
		},
		{
			ID:        "beta",
			Name:      "Beta",
			Templates: []catalog.Template{{Home: true, Path: "caches/beta", Children: "*"}},
		},
	})
	require.NoError(t, err)

	return NewPlanner(cat, resolve.NewResolver(home, nil), nil), home
}

func TestReport(t *testing.T) {
	planner, _ := fixture(t)

	report := planner.Report()
	assert.Equal(t, int64(60), report["alpha"])
	assert.Equal(t, int64(0), report["beta"])
	assert.Equal(t, int64(60), report.Total())
}

func TestReportMatchesUnionOfResolvedPaths(t *testing.T) {
	planner, home := fixture(t)

	// Disjoint templates: per-category sums must equal the size of the
	// union of all resolved paths, i.e. nothing is counted twice.
	union := scan.Measure(filepath.Join(home, "caches"))
	assert.Equal(t, union, planner.Report().Total())
}

func TestPlanAttachesSizes(t *testing.T) {
	planner, _ := fixture(t)

	p, err := planner.Plan([]string{"alpha"})
	require.NoError(t, err)
	require.Len(t, p.Entries, 1)
	require.Len(t, p.Entries[0].Paths, 3)

	assert.Equal(t, int64(60), p.TotalBytes())
	assert.Equal(t, 3, p.TotalPaths())
	assert.False(t, p.IsEmpty())
	for _, rp := range p.Entries[0].Paths {
		assert.Positive(t, rp.Size)
		assert.Equal(t, "alpha", rp.CategoryID)
	}
}

func TestPlanKeepsEmptyCategories(t *testing.T) {
	planner, _ := fixture(t)

	p, err := planner.Plan([]string{"alpha", "beta"})
	require.NoError(t, err)
	require.Len(t, p.Entries, 2)

	assert.Equal(t, "beta", p.Entries[1].Category.ID)
	assert.Empty(t, p.Entries[1].Paths)
	assert.Equal(t, int64(60), p.TotalBytes())
}

func TestPlanRejectsUnknownSelection(t *testing.T) {
	planner, _ := fixture(t)

	_, err := planner.Plan([]string{"alpha", "gamma"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidSelection))
	assert.Contains(t, err.Error(), "gamma")
}

func TestEmptySelectionYieldsEmptyPlan(t *testing.T) {
	planner, _ := fixture(t)

	p, err := planner.Plan(nil)
	require.NoError(t, err)
	assert.Empty(t, p.Entries)
	assert.True(t, p.IsEmpty())
	assert.Equal(t, int64(0), p.TotalBytes())
}
