package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	c := Default()
	require.NotEmpty(t, c.All())
}

func TestDefaultCatalogOrderIsStable(t *testing.T) {
	first := Default().All()
	second := Default().All()

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
	}
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	_, err := New([]Category{
		{ID: "dup", Name: "A", Templates: []Template{{Path: "a"}}},
		{ID: "dup", Name: "B", Templates: []Template{{Path: "b"}}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestNewRejectsEmptyID(t *testing.T) {
	_, err := New([]Category{{Name: "nameless"}})
	require.Error(t, err)
}

func TestNewRejectsSharedTemplates(t *testing.T) {
	shared := Template{Home: true, Path: "Library/Caches/same", Children: "*"}
	_, err := New([]Category{
		{ID: "a", Name: "A", Templates: []Template{shared}},
		{ID: "b", Name: "B", Templates: []Template{shared}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "claimed by both")
}

func TestFind(t *testing.T) {
	c := Default()

	cat, err := c.Find("derived-data")
	require.NoError(t, err)
	assert.Equal(t, "Derived Data", cat.Name)

	_, err = c.Find("no-such-category")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestWithout(t *testing.T) {
	c := Default().Without("archives", "not-a-category")

	_, err := c.Find("archives")
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = c.Find("derived-data")
	assert.NoError(t, err)
	assert.Len(t, c.All(), len(Default().All())-1)
}

func TestTemplateKey(t *testing.T) {
	tpl := Template{Home: true, Path: "Library/Developer/Xcode/DerivedData", Children: "*"}
	assert.Equal(t, "~/Library/Developer/Xcode/DerivedData/*", tpl.Key())

	lit := Template{Path: "/var/tmp/builds"}
	assert.Equal(t, "/var/tmp/builds", lit.Key())
}
