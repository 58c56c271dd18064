package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func waitUpdate(t *testing.T, w *Watcher) Update {
	t.Helper()
	select {
	case u, ok := <-w.Updates():
		require.True(t, ok, "updates closed")
		return u
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
		return Update{}
	}
}

func TestWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[editor]\ntab_width = 2\n"), 0o644))

	w, err := NewWatcher(path, WithDebounce(20*time.Millisecond), WithLoader(NewLoader(noEnv())))
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("[editor]\ntab_width = 7\n"), 0o644))
	u := waitUpdate(t, w)
	require.NoError(t, u.Err)
	require.Equal(t, 7, u.Config.Editor.TabWidth)
}

func TestWatcherReportsBadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	w, err := NewWatcher(path, WithDebounce(20*time.Millisecond), WithLoader(NewLoader(noEnv())))
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("[editor]\nbogus = 1\n"), 0o644))
	u := waitUpdate(t, w)
	require.ErrorIs(t, u.Err, ErrUnknownKey)
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	w, err := NewWatcher(path, WithDebounce(20*time.Millisecond))
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x"), 0o644))
	select {
	case u := <-w.Updates():
		t.Fatalf("unexpected update %+v", u)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherCloseTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	w, err := NewWatcher(path)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	_, ok := <-w.Updates()
	require.False(t, ok)
}
