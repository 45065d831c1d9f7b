package resolve

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"

	"github.com/xcsweep/xcsweep/internal/catalog"
	"github.com/xcsweep/xcsweep/internal/logging"
)

// ResolvedPath is a concrete existing filesystem path owned by a category.
// Size is filled in by the planner; the resolver only establishes existence
// and ownership.
type ResolvedPath struct {
	Path       string
	CategoryID string
	Size       int64
}

// Resolver expands category templates into existing concrete paths. The home
// directory is resolved once per run.
type Resolver struct {
	home      string
	protected map[string]bool
	log       zerolog.Logger
}

// NewResolver creates a resolver. An empty home falls back to the invoking
// user's home directory. Protected paths are never resolved, matching the
// whitelist behavior of the clean scanners.
func NewResolver(home string, protected []string) *Resolver {
	if home == "" {
		home = xdg.Home
	}

	prot := make(map[string]bool, len(protected))
	for _, p := range protected {
		prot[filepath.Clean(p)] = true
	}

	return &Resolver{
		home:      home,
		protected: prot,
		log:       logging.Component("resolve"),
	}
}

// Home returns the home directory the resolver expands templates against.
func (r *Resolver) Home() string {
	return r.home
}

// Resolve expands every template of the category into existing concrete
// paths, in template order. Paths that do not exist, are protected, or whose
// real location escapes the template root are silently omitted.
func (r *Resolver) Resolve(cat catalog.Category) []ResolvedPath {
	var out []ResolvedPath

	for _, tpl := range cat.Templates {
		root := tpl.Path
		if tpl.Home {
			root = filepath.Join(r.home, tpl.Path)
		}

		if tpl.Children == "" {
			if rp, ok := r.admit(root, filepath.Dir(root), cat.ID); ok {
				out = append(out, rp)
			}
			continue
		}

		// One level of expansion only: matches are cleaned, never searched
		// for further matches.
		matches, err := filepath.Glob(filepath.Join(root, tpl.Children))
		if err != nil {
			r.log.Debug().Str("template", tpl.Key()).Err(err).Msg("bad children pattern")
			continue
		}
		for _, m := range matches {
			if rp, ok := r.admit(m, root, cat.ID); ok {
				out = append(out, rp)
			}
		}
	}

	return out
}

// admit checks a candidate path for existence, protection, and symlink
// escape from its expected parent. Rejections are silent skips.
func (r *Resolver) admit(path, parent, categoryID string) (ResolvedPath, bool) {
	path = filepath.Clean(path)

	if r.protected[path] {
		r.log.Debug().Str("path", path).Msg("skipping protected path")
		return ResolvedPath{}, false
	}

	if _, err := os.Lstat(path); err != nil {
		return ResolvedPath{}, false
	}

	if escapesParent(path, parent) {
		r.log.Debug().
			Str("path", path).
			Str("parent", parent).
			Msg("skipping path that resolves outside its root")
		return ResolvedPath{}, false
	}

	return ResolvedPath{Path: path, CategoryID: categoryID}, true
}

// escapesParent reports whether the real location of path lies outside the
// real location of parent. A symlinked cache entry pointing at, say, the
// user's project directory must never reach the deletion plan.
func escapesParent(path, parent string) bool {
	realParent, err := filepath.EvalSymlinks(parent)
	if err != nil {
		return true
	}
	realPath, err := filepath.EvalSymlinks(path)
	if err != nil {
		return true
	}

	rel, err := filepath.Rel(realParent, realPath)
	if err != nil {
		return true
	}
	return rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
