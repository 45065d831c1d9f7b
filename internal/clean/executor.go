package clean

import (
	"errors"
	"io/fs"

	"golang.org/x/sys/unix"

	"github.com/xcsweep/xcsweep/internal/logging"
	"github.com/xcsweep/xcsweep/internal/plan"
)

// Progress is emitted after every path attempt. Freed is the cumulative
// byte total for the whole run so far, so a consumer can render a live
// counter without keeping its own tally.
type Progress struct {
	CategoryID string
	Path       string
	Err        error
	Freed      int64
}

// ProgressFunc receives progress events in strict execution order.
type ProgressFunc func(Progress)

// Execute runs the plan against the backend: categories in plan order,
// paths in resolution order, one at a time. A failing path is recorded and
// skipped, never fatal — the run always completes over the whole plan.
// Freed bytes use the sizes recorded at plan time; drift between planning
// and deletion is accepted, not re-measured.
//
// Execute is the single point where filesystem mutation happens. It must
// not be called concurrently with itself on overlapping plans.
func Execute(p *plan.Plan, backend Backend, progress ProgressFunc) *Result {
	log := logging.Component("clean")
	result := &Result{}

	for _, entry := range p.Entries {
		cr := CategoryResult{
			CategoryID: entry.Category.ID,
			Name:       entry.Category.Name,
		}

		for _, rp := range entry.Paths {
			cr.Attempted++
			err := backend.Remove(rp.Path)
			if err != nil {
				reason := Classify(err)
				cr.Failures = append(cr.Failures, Failure{Path: rp.Path, Reason: reason, Err: err})
				result.Failed++
				log.Debug().Str("path", rp.Path).Str("reason", string(reason)).Err(err).Msg("path not removed")
			} else {
				cr.Succeeded++
				cr.BytesFreed += rp.Size
				result.BytesFreed += rp.Size
				log.Debug().Str("path", rp.Path).Int64("size", rp.Size).Msg("removed")
			}

			if progress != nil {
				progress(Progress{
					CategoryID: entry.Category.ID,
					Path:       rp.Path,
					Err:        err,
					Freed:      result.BytesFreed,
				})
			}
		}

		result.Categories = append(result.Categories, cr)
	}

	return result
}

// Classify maps a per-path deletion error onto a failure reason.
func Classify(err error) FailureReason {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ReasonVanished
	case errors.Is(err, fs.ErrPermission):
		return ReasonAccessDenied
	case errors.Is(err, unix.EXDEV):
		return ReasonUnsupported
	default:
		return ReasonFailed
	}
}
