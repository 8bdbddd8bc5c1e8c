package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_PutAndURL(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir, "/audio/")

	data := []byte("fake mp3 content")
	require.NoError(t, store.Put("tts_abc.mp3", data))

	written, err := os.ReadFile(filepath.Join(dir, "tts_abc.mp3"))
	require.NoError(t, err)
	assert.Equal(t, data, written)

	assert.Equal(t, "/audio/tts_abc.mp3", store.URL("tts_abc.mp3"))
}

func TestLocalStore_PutCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "audio")
	store := NewLocalStore(dir, "/audio")

	require.NoError(t, store.Put("tts_abc.mp3", []byte("x")))

	_, err := os.Stat(filepath.Join(dir, "tts_abc.mp3"))
	assert.NoError(t, err)
}

func TestLocalStore_Files(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir, "/audio")

	require.NoError(t, store.Put("a.mp3", []byte("a")))
	require.NoError(t, store.Put("b.mp3", []byte("b")))
	// Subdirectories are not artifacts.
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))

	names, err := store.Files()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a.mp3", "b.mp3"}, names)
}

func TestLocalStore_FilesMissingDirectory(t *testing.T) {
	store := NewLocalStore(filepath.Join(t.TempDir(), "does-not-exist"), "/audio")

	names, err := store.Files()
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestLocalStore_LastModified(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir, "/audio")

	require.NoError(t, store.Put("a.mp3", []byte("a")))

	mtime, err := store.LastModified("a.mp3")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), mtime, time.Minute)

	_, err = store.LastModified("missing.mp3")
	assert.Error(t, err)
}

func TestLocalStore_Delete(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir, "/audio")

	require.NoError(t, store.Put("a.mp3", []byte("a")))
	require.NoError(t, store.Delete("a.mp3"))

	_, err := os.Stat(filepath.Join(dir, "a.mp3"))
	assert.True(t, os.IsNotExist(err))

	// Deleting an artifact that is already gone is a no-op.
	assert.NoError(t, store.Delete("a.mp3"))
}

func TestNewLocalStore_Defaults(t *testing.T) {
	store := NewLocalStore("", "/audio")
	assert.Equal(t, "audio", store.Dir())
}
