package clean

import "os"

// Backend removes a single path. The trash backend is the default;
// Permanent is opt-in via configuration.
type Backend interface {
	// Name identifies the backend in summaries and prompts.
	Name() string

	// Remove deletes or relocates path. It must fail for a missing path so
	// the executor can report it as vanished.
	Remove(path string) error
}

// Permanent deletes paths outright with no recovery.
type Permanent struct{}

// Name implements Backend.
func (Permanent) Name() string {
	return "permanent"
}

// Remove implements Backend. RemoveAll treats a missing path as success, so
// existence is checked first — a path deleted externally between planning
// and execution must surface as a failure, not a silent no-op.
func (Permanent) Remove(path string) error {
	if _, err := os.Lstat(path); err != nil {
		return err
	}
	return os.RemoveAll(path)
}
