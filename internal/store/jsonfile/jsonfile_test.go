package jsonfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doc struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestStore_SaveLoad(t *testing.T) {
	store := New(t.TempDir(), "state")

	require.NoError(t, store.Save(doc{Name: "alpha", Count: 3}))

	var got doc
	ok, err := store.Load(&got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, doc{Name: "alpha", Count: 3}, got)
}

func TestStore_LoadMissingFile(t *testing.T) {
	store := New(t.TempDir(), "absent")

	var got doc
	ok, err := store.Load(&got)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_LoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "state.json"), []byte("{not json"), 0o600))

	store := New(dir, "state")
	var got doc
	ok, err := store.Load(&got)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_SaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "state")
	store := New(dir, "state")

	require.NoError(t, store.Save(doc{Name: "beta"}))

	_, err := os.Stat(filepath.Join(dir, "state.json"))
	assert.NoError(t, err)
}

func TestStore_Delete(t *testing.T) {
	dir := t.TempDir()
	store := New(dir, "state")
	require.NoError(t, store.Save(doc{Name: "gone"}))

	require.NoError(t, store.Delete())

	var got doc
	ok, err := store.Load(&got)
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting again is not an error.
	assert.NoError(t, store.Delete())
}
