package asset

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	Text string
}

func textLoader(path string) (*widget, []byte, error) {
	raw, err := ReadText(path)
	if err != nil {
		return nil, nil, err
	}
	return &widget{Text: string(raw)}, raw, nil
}

func waitForCache[T any](t *testing.T, lib *Library[T], ref AssetRef[T]) AssetData[T] {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if data, ok := lib.GetIf(ref); ok {
			return data
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("timed out waiting for asset to load")
	return AssetData[T]{}
}

func TestLibraryLoadsAndCachesOnAcquire(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "splash.odf")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	pool := NewLoadPool(2, 16)
	pool.Start()
	defer pool.Stop(time.Second)

	lib := NewLibrary[widget](textLoader, pool)
	lib.Add(path)

	ref := lib.Acquire("splash")
	defer ref.Release()

	_, ok := lib.GetIf(ref)
	assert.False(t, ok, "first GetIf should schedule a load, not find it cached yet")

	data := waitForCache(t, lib, ref)
	assert.Equal(t, "hello", data.Value.Text)
	assert.NotZero(t, data.Digest)

	stats := lib.Stats()
	assert.Equal(t, uint64(1), stats.Loaded)
	assert.Equal(t, 0, stats.Pending)
}

func TestLibraryBroadcastsLoadEventsOnlyThroughTick(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crate.odf")
	require.NoError(t, os.WriteFile(path, []byte("crate data"), 0o644))

	pool := NewLoadPool(2, 16)
	pool.Start()
	defer pool.Stop(time.Second)

	lib := NewLibrary[widget](textLoader, pool)
	lib.Add(path)
	ref := lib.Acquire("crate")
	defer ref.Release()

	var received []LoadEvent[widget]
	lib.ListenForLoads(func(ev LoadEvent[widget]) {
		received = append(received, ev)
	})

	lib.GetIf(ref)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) && lib.Stats().Pending > 0 {
		time.Sleep(5 * time.Millisecond)
	}

	assert.Empty(t, received, "listener must not fire before Tick drains the queue")
	n := lib.Tick()
	assert.Equal(t, 1, n)
	require.Len(t, received, 1)
	assert.Equal(t, "crate", received[0].Name)
	assert.NoError(t, received[0].Err)
}

func TestLibraryRemoveBroadcastsNilData(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "door.odf")
	require.NoError(t, os.WriteFile(path, []byte("door"), 0o644))

	pool := NewLoadPool(1, 8)
	pool.Start()
	defer pool.Stop(time.Second)

	lib := NewLibrary[widget](textLoader, pool)
	lib.Add(path)
	ref := lib.Acquire("door")
	defer ref.Release()
	waitForCache(t, lib, ref)

	var received []LoadEvent[widget]
	lib.ListenForLoads(func(ev LoadEvent[widget]) {
		received = append(received, ev)
	})

	lib.Remove(path)
	lib.Tick()

	sawNil := false
	for _, ev := range received {
		if ev.Name == "door" && ev.Data.Value == nil {
			sawNil = true
		}
	}
	assert.True(t, sawNil, "Remove must broadcast a load event with nil data")

	_, ok := lib.GetIf(ref)
	assert.False(t, ok, "removed asset must not be served from cache")
}

func TestAssetRefCountsAreSharedAndAtomic(t *testing.T) {
	pool := NewLoadPool(1, 4)
	pool.Start()
	defer pool.Stop(time.Second)

	lib := NewLibrary[widget](textLoader, pool)
	a := lib.Acquire("ghost")
	b := lib.Acquire("ghost")
	assert.Equal(t, a.counter, b.counter)
	assert.EqualValues(t, 2, a.useCount())

	clone := a.Clone()
	assert.EqualValues(t, 3, a.useCount())
	clone.Release()
	assert.EqualValues(t, 2, a.useCount())

	a.Release()
	b.Release()
	assert.EqualValues(t, 0, a.useCount())
}

func TestTreeAddRemovePrunesEmptyDirectories(t *testing.T) {
	tree := NewTree()
	tree.Add("props/crates/crate01.odf")
	tree.Add("props/crates/crate02.odf")
	tree.Add("props/doors/door01.odf")

	assert.ElementsMatch(t, []string{"crates", "doors"}, tree.Children("props"))
	assert.ElementsMatch(t, []string{"crate01.odf", "crate02.odf"}, tree.Children("props/crates"))

	tree.Remove("props/crates/crate01.odf")
	assert.ElementsMatch(t, []string{"crate02.odf"}, tree.Children("props/crates"))

	tree.Remove("props/crates/crate02.odf")
	assert.ElementsMatch(t, []string{"doors"}, tree.Children("props"))
}

func TestLoadPoolRunsPanicRecoveredTasks(t *testing.T) {
	pool := NewLoadPool(1, 4)
	pool.Start()
	defer pool.Stop(time.Second)

	done := make(chan struct{})
	require.NoError(t, pool.Enqueue(func() { panic("boom") }))
	require.NoError(t, pool.Enqueue(func() { close(done) }))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("pool stalled after a panicking task")
	}

	stats := pool.Stats()
	assert.EqualValues(t, 1, stats.Panicked)
	assert.GreaterOrEqual(t, stats.Processed, uint64(1))
}
