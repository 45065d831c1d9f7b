package resolve

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xcsweep/xcsweep/internal/catalog"
)

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))
}

func TestResolveLiteralTemplate(t *testing.T) {
	home := t.TempDir()
	writeFile(t, filepath.Join(home, "Library", "Caches", "tool", "blob"), 10)

	cat := catalog.Category{
		ID:        "tool-cache",
		Templates: []catalog.Template{{Home: true, Path: "Library/Caches/tool"}},
	}

	got := NewResolver(home, nil).Resolve(cat)
	require.Len(t, got, 1)
	assert.Equal(t, filepath.Join(home, "Library", "Caches", "tool"), got[0].Path)
	assert.Equal(t, "tool-cache", got[0].CategoryID)
}

func TestResolveMissingRootIsSilentlyOmitted(t *testing.T) {
	home := t.TempDir()
	cat := catalog.Category{
		ID:        "empty",
		Templates: []catalog.Template{{Home: true, Path: "Library/DoesNotExist"}},
	}

	got := NewResolver(home, nil).Resolve(cat)
	assert.Empty(t, got)
}

func TestResolveChildrenExpandsOneLevel(t *testing.T) {
	home := t.TempDir()
	root := filepath.Join(home, "Library", "Developer", "Xcode", "iOS DeviceSupport")
	writeFile(t, filepath.Join(root, "17.4 (21E219)", "Symbols", "sym"), 1)
	writeFile(t, filepath.Join(root, "16.2 (20C65)", "Symbols", "sym"), 1)

	cat := catalog.Category{
		ID: "device-support",
		Templates: []catalog.Template{
			{Home: true, Path: "Library/Developer/Xcode/iOS DeviceSupport", Children: "*"},
		},
	}

	got := NewResolver(home, nil).Resolve(cat)
	require.Len(t, got, 2)
	for _, rp := range got {
		// Only direct children are resolved, never their contents.
		assert.Equal(t, root, filepath.Dir(rp.Path))
	}
}

func TestResolveChildrenOfMissingRoot(t *testing.T) {
	home := t.TempDir()
	cat := catalog.Category{
		ID:        "gone",
		Templates: []catalog.Template{{Home: true, Path: "Library/Missing", Children: "*"}},
	}

	assert.Empty(t, NewResolver(home, nil).Resolve(cat))
}

func TestResolveChildrenOfUnreadableRoot(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}

	home := t.TempDir()
	root := filepath.Join(home, "Library", "Caches", "locked")
	writeFile(t, filepath.Join(root, "entry", "data"), 10)
	require.NoError(t, os.Chmod(root, 0o000))
	t.Cleanup(func() { _ = os.Chmod(root, 0o755) })

	cat := catalog.Category{
		ID:        "locked",
		Templates: []catalog.Template{{Home: true, Path: "Library/Caches/locked", Children: "*"}},
	}

	// An unreadable root cannot be enumerated; it is omitted, not an error.
	assert.Empty(t, NewResolver(home, nil).Resolve(cat))
}

func TestResolveExcludesSymlinkEscape(t *testing.T) {
	home := t.TempDir()
	outside := t.TempDir()
	writeFile(t, filepath.Join(outside, "precious"), 100)

	root := filepath.Join(home, "Library", "Caches", "build")
	writeFile(t, filepath.Join(root, "inside", "data"), 10)
	require.NoError(t, os.Symlink(outside, filepath.Join(root, "escape")))

	cat := catalog.Category{
		ID:        "build-cache",
		Templates: []catalog.Template{{Home: true, Path: "Library/Caches/build", Children: "*"}},
	}

	got := NewResolver(home, nil).Resolve(cat)
	require.Len(t, got, 1)
	assert.Equal(t, filepath.Join(root, "inside"), got[0].Path)
}

func TestResolveAllowsSymlinkWithinRoot(t *testing.T) {
	home := t.TempDir()
	root := filepath.Join(home, "Library", "Caches", "build")
	writeFile(t, filepath.Join(root, "real", "data"), 10)
	require.NoError(t, os.Symlink(filepath.Join(root, "real"), filepath.Join(root, "alias")))

	cat := catalog.Category{
		ID:        "build-cache",
		Templates: []catalog.Template{{Home: true, Path: "Library/Caches/build", Children: "*"}},
	}

	got := NewResolver(home, nil).Resolve(cat)
	assert.Len(t, got, 2)
}

func TestResolveSkipsProtectedPaths(t *testing.T) {
	home := t.TempDir()
	root := filepath.Join(home, "Library", "Caches", "build")
	writeFile(t, filepath.Join(root, "keep", "data"), 10)
	writeFile(t, filepath.Join(root, "drop", "data"), 10)

	cat := catalog.Category{
		ID:        "build-cache",
		Templates: []catalog.Template{{Home: true, Path: "Library/Caches/build", Children: "*"}},
	}

	r := NewResolver(home, []string{filepath.Join(root, "keep")})
	got := r.Resolve(cat)
	require.Len(t, got, 1)
	assert.Equal(t, filepath.Join(root, "drop"), got[0].Path)
}

func TestResolveOrderFollowsTemplates(t *testing.T) {
	home := t.TempDir()
	writeFile(t, filepath.Join(home, "a", "x"), 1)
	writeFile(t, filepath.Join(home, "b", "x"), 1)

	cat := catalog.Category{
		ID: "multi",
		Templates: []catalog.Template{
			{Home: true, Path: "b"},
			{Home: true, Path: "a"},
		},
	}

	got := NewResolver(home, nil).Resolve(cat)
	require.Len(t, got, 2)
	assert.Equal(t, filepath.Join(home, "b"), got[0].Path)
	assert.Equal(t, filepath.Join(home, "a"), got[1].Path)
}
