package clean

// FailureReason classifies why a path could not be removed.
type FailureReason string

const (
	// ReasonVanished: the path disappeared between planning and execution.
	ReasonVanished FailureReason = "vanished"
	// ReasonAccessDenied: insufficient permissions.
	ReasonAccessDenied FailureReason = "access-denied"
	// ReasonUnsupported: the backend cannot remove this path, e.g. a
	// trash move across volumes.
	ReasonUnsupported FailureReason = "unsupported"
	// ReasonFailed: any other filesystem error.
	ReasonFailed FailureReason = "failed"
)

// Failure records one path that could not be removed.
type Failure struct {
	Path   string
	Reason FailureReason
	Err    error
}

// CategoryResult is the per-category outcome of a run.
type CategoryResult struct {
	CategoryID string
	Name       string
	Attempted  int
	Succeeded  int
	BytesFreed int64
	Failures   []Failure
}

// Result is the aggregate outcome of one Execute call.
type Result struct {
	Categories []CategoryResult
	BytesFreed int64
	Failed     int
}
