package plan

import (
	"errors"
	"fmt"

	"github.com/xcsweep/xcsweep/internal/catalog"
	"github.com/xcsweep/xcsweep/internal/resolve"
	"github.com/xcsweep/xcsweep/internal/scan"
)

// ErrInvalidSelection is returned when a selection references a category id
// that is not in the catalog. This is an integration error, not an
// environmental one, so it fails the plan outright.
var ErrInvalidSelection = errors.New("selection references unknown category")

// SizeReport maps category id to measured byte size. It is recomputed on
// every run and never cached: background tools may create or remove cache
// files at any time, so staleness between measurement and deletion is
// accepted rather than defended against.
type SizeReport map[string]int64

// Total returns the sum over all categories.
func (r SizeReport) Total() int64 {
	var total int64
	for _, size := range r {
		total += size
	}
	return total
}

// Sizer measures a path's byte size. scan.Measure is the default.
type Sizer func(path string) int64

// Entry pairs a category with its resolved paths for one run.
type Entry struct {
	Category catalog.Category
	Paths    []resolve.ResolvedPath
}

// Plan is the finalized set of categories and resolved paths committed for
// deletion. It is built once per run and consumed exactly once.
type Plan struct {
	Entries []Entry
}

// TotalBytes returns the measured size of everything in the plan.
func (p *Plan) TotalBytes() int64 {
	var total int64
	for _, e := range p.Entries {
		for _, rp := range e.Paths {
			total += rp.Size
		}
	}
	return total
}

// TotalPaths returns the number of paths the plan will touch.
func (p *Plan) TotalPaths() int {
	var n int
	for _, e := range p.Entries {
		n += len(e.Paths)
	}
	return n
}

// IsEmpty reports whether the plan has nothing to delete. A plan can be
// non-empty in categories yet empty in paths when every selected category
// resolved to nothing.
func (p *Plan) IsEmpty() bool {
	return p.TotalPaths() == 0
}

// Planner builds size reports and cleanup plans from the catalog.
type Planner struct {
	catalog  *catalog.Catalog
	resolver *resolve.Resolver
	measure  Sizer
}

// NewPlanner creates a planner. A nil measure falls back to scan.Measure.
func NewPlanner(c *catalog.Catalog, r *resolve.Resolver, measure Sizer) *Planner {
	if measure == nil {
		measure = scan.Measure
	}
	return &Planner{catalog: c, resolver: r, measure: measure}
}

// Catalog returns the catalog the planner operates on.
func (p *Planner) Catalog() *catalog.Catalog {
	return p.catalog
}

// Home returns the home directory templates are expanded against.
func (p *Planner) Home() string {
	return p.resolver.Home()
}

// CategorySize resolves and measures one category. A category that resolves
// to no existing paths reports size 0.
func (p *Planner) CategorySize(cat catalog.Category) int64 {
	var total int64
	for _, rp := range p.resolver.Resolve(cat) {
		total += p.measure(rp.Path)
	}
	return total
}

// Report measures every catalog category for the pre-selection preview.
func (p *Planner) Report() SizeReport {
	report := make(SizeReport)
	for _, cat := range p.catalog.All() {
		report[cat.ID] = p.CategorySize(cat)
	}
	return report
}

// Plan resolves the selected categories into a cleanup plan, attaching a
// size to each path. Sizes are recorded at plan time so freed-space
// accounting survives the trash move. Categories that resolve to zero paths
// stay in the plan with an empty path list — "nothing to clean" is reported,
// not silently dropped.
func (p *Planner) Plan(selectedIDs []string) (*Plan, error) {
	out := &Plan{}

	for _, id := range selectedIDs {
		cat, err := p.catalog.Find(id)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSelection, id)
		}

		paths := p.resolver.Resolve(cat)
		for i := range paths {
			paths[i].Size = p.measure(paths[i].Path)
		}
		out.Entries = append(out.Entries, Entry{Category: cat, Paths: paths})
	}

	return out, nil
}
