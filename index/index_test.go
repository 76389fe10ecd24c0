package index

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Missing(t *testing.T) {
	dir, err := ioutil.TempDir("", "")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	f, err := Load(filepath.Join(dir, "groups.json"))
	require.NoError(t, err, "a missing file should load as an empty mapping")

	_, ok := f.Get("family")
	assert.False(t, ok)
}

func TestLoad_Empty(t *testing.T) {
	tmpFile, err := ioutil.TempFile("", "")
	require.NoError(t, err)
	defer os.Remove(tmpFile.Name())

	f, err := Load(tmpFile.Name())
	require.NoError(t, err, "an empty file should load as an empty mapping")

	_, ok := f.Get("family")
	assert.False(t, ok)
}

func TestFile_RoundTrip(t *testing.T) {
	dir, err := ioutil.TempDir("", "")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "groups.json")
	f, err := Load(path)
	require.NoError(t, err)

	f.Put("family", "g-1")
	f.Put("work", "g-2")
	require.NoError(t, f.Save())

	reloaded, err := Load(path)
	require.NoError(t, err)

	id, ok := reloaded.Get("family")
	assert.True(t, ok)
	assert.Equal(t, "g-1", id)

	reloaded.Remove("family")
	require.NoError(t, reloaded.Save())

	reloaded, err = Load(path)
	require.NoError(t, err)

	_, ok = reloaded.Get("family")
	assert.False(t, ok)
	id, ok = reloaded.Get("work")
	assert.True(t, ok)
	assert.Equal(t, "g-2", id)
}

func TestLoad_Corrupt(t *testing.T) {
	tmpFile, err := ioutil.TempFile("", "")
	require.NoError(t, err)
	defer os.Remove(tmpFile.Name())

	require.NoError(t, ioutil.WriteFile(tmpFile.Name(), []byte("not json"), 0644))

	_, err = Load(tmpFile.Name())
	assert.Error(t, err)
}
