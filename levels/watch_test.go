package levels

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsMapFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	path, err := CreateBlank("Watched", 2, 2).Save(filepath.Join(dir, "watched"))
	require.NoError(t, err)

	select {
	case name := <-w.Events:
		assert.Equal(t, path, name)
	case err := <-w.Errors:
		t.Fatalf("unexpected watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for map change event")
	}
}

func TestWatcherWaitsForLastChunk(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	g := CreateBlank("Chunked", 4, 3)
	g.SetTile(Roof, 3, 2, 77)
	var buf bytes.Buffer
	require.NoError(t, g.Encode(&buf))
	data := buf.Bytes()

	path := filepath.Join(dir, "chunked.map")
	f, err := os.Create(path)
	require.NoError(t, err)
	half := len(data) / 2
	_, err = f.Write(data[:half])
	require.NoError(t, err)
	time.Sleep(watchDebounce / 4)
	_, err = f.Write(data[half:])
	require.NoError(t, err)
	require.NoError(t, f.Close())

	select {
	case name := <-w.Events:
		assert.Equal(t, path, name)
		got, err := ReadFile(name)
		require.NoError(t, err, "reported before the file was complete")
		assert.Equal(t, uint16(77), got.Tile(Roof, 3, 2))
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for map change event")
	}

	select {
	case name := <-w.Events:
		t.Fatalf("second event for %s after the writes settled", name)
	case <-time.After(3 * watchDebounce):
	}
}

func TestWatcherAddDir(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)
	defer w.Close()

	other := t.TempDir()
	require.NoError(t, w.Add(other))
	path, err := CreateBlank("Other", 2, 2).Save(filepath.Join(other, "other"))
	require.NoError(t, err)

	select {
	case name := <-w.Events:
		assert.Equal(t, path, name)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event in added directory")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())

	_, ok := <-w.Events
	assert.False(t, ok, "events channel should be closed")
}

func TestNewWatcherMissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
