package filewatcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherDetectsFileCreate(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w, err := New(ctx, dir, DefaultConfig())
	require.NoError(t, err)
	defer w.Close()

	target := filepath.Join(dir, "mesh.msh")
	require.NoError(t, os.WriteFile(target, []byte("data"), 0o644))

	select {
	case ev := <-w.Events():
		assert.Equal(t, target, ev.Path)
		assert.NotZero(t, ev.Op)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for create event")
	}
}

func TestWatcherIgnoresMatchingPatterns(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := DefaultConfig()
	cfg.IgnorePatterns = []string{"*.tmp"}
	w, err := New(ctx, dir, cfg)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "scratch.tmp"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "real.odf"), []byte("x"), 0o644))

	seenReal := false
	deadline := time.After(2 * time.Second)
	for !seenReal {
		select {
		case ev := <-w.Events():
			if filepath.Base(ev.Path) == "scratch.tmp" {
				t.Fatal("ignored path delivered an event")
			}
			if filepath.Base(ev.Path) == "real.odf" {
				seenReal = true
			}
		case <-deadline:
			t.Fatal("timed out waiting for real.odf event")
		}
	}
}

func TestWatcherAutoWatchesNewSubdirectories(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w, err := New(ctx, dir, DefaultConfig())
	require.NoError(t, err)
	defer w.Close()

	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))

	// Drain until the new directory shows up in stats, meaning it was
	// auto-watched after the create event.
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		select {
		case <-w.Events():
		case <-time.After(50 * time.Millisecond):
		}
		if w.Stats().WatchedDirs >= 2 {
			break
		}
	}
	assert.GreaterOrEqual(t, w.Stats().WatchedDirs, 2)

	nested := filepath.Join(sub, "nested.odf")
	require.NoError(t, os.WriteFile(nested, []byte("x"), 0o644))

	found := false
	deadline = time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		select {
		case ev := <-w.Events():
			if ev.Path == nested {
				found = true
			}
		case <-time.After(50 * time.Millisecond):
		}
		if found {
			break
		}
	}
	assert.True(t, found, "expected event for file created in auto-watched subdirectory")
}

func TestWatcherContextCancelStopsRun(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())

	w, err := New(ctx, dir, DefaultConfig())
	require.NoError(t, err)
	defer w.Close()

	cancel()
	// run() should exit promptly; Close should still be safe to call.
	time.Sleep(50 * time.Millisecond)
	assert.NoError(t, w.Close())
}

func TestIgnorePatternsMatch(t *testing.T) {
	ip := NewIgnorePatterns([]string{"*.tmp", "build/"})
	assert.True(t, ip.Match("scratch.tmp", false))
	assert.True(t, ip.Match("build", true))
	assert.True(t, ip.Match("nested/build", true))
	assert.False(t, ip.Match("mesh.odf", false))
}
