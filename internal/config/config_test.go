package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)
	assert.Equal(t, ModeTrash, cfg.Mode)
	assert.Empty(t, cfg.Protected)
	assert.Empty(t, cfg.Exclude)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"mode": "permanent-delete",
		"protected": ["/Users/me/Library/Developer/Xcode/Archives/keep"],
		"exclude": ["xcode-caches"]
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, ModePermanent, cfg.Mode)
	assert.Len(t, cfg.Protected, 1)
	assert.Equal(t, []string{"xcode-caches"}, cfg.Exclude)
}

func TestLoadFromPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"exclude": ["archives"]}`), 0o644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, ModeTrash, cfg.Mode)
	assert.Equal(t, []string{"archives"}, cfg.Exclude)
}

func TestLoadFromRejectsUnknownMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"mode": "shred"}`), 0o644))

	_, err := LoadFrom(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shred")
}

func TestLoadFromRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{mode:`), 0o644))

	_, err := LoadFrom(path)
	require.Error(t, err)
}
