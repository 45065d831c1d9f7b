package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xcsweep/xcsweep/internal/catalog"
	"github.com/xcsweep/xcsweep/internal/plan"
	"github.com/xcsweep/xcsweep/internal/resolve"
)

// A dry run only plans and prints; it must not depend on a deletion
// backend, so previewing works even when no trash directory exists.
func TestPreviewNeedsNoBackend(t *testing.T) {
	planner := plan.NewPlanner(catalog.Default(), resolve.NewResolver(t.TempDir(), nil), nil)
	require.NoError(t, runPreview(planner))
}
