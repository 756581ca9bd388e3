package objectclass

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldforge/editorcore/internal/asset"
)

func odfLoader(path string) (*Definition, []byte, error) {
	raw, err := asset.ReadText(path)
	if err != nil {
		return nil, nil, err
	}
	return &Definition{Properties: map[string]string{"raw": string(raw)}}, raw, nil
}

func meshLoader(path string) (*Mesh, []byte, error) {
	raw, err := asset.ReadBinary(path)
	if err != nil {
		return nil, nil, err
	}
	return &Mesh{Raw: raw}, raw, nil
}

func newTestLibrary(t *testing.T, dir string) (*Library, *asset.LoadPool) {
	t.Helper()
	pool := asset.NewLoadPool(2, 32)
	pool.Start()

	odfLib := asset.NewLibrary[Definition](odfLoader, pool)
	meshLib := asset.NewLibrary[Mesh](meshLoader, pool)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "crate.odf"), []byte("class crate"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "crate.msh"), []byte{1, 2, 3, 4}, 0o644))

	odfLib.Add(filepath.Join(dir, "crate.odf"))
	meshLib.Add(filepath.Join(dir, "crate.msh"))

	return NewLibrary(odfLib, meshLib), pool
}

func TestAcquireAllocatesSlotAndTriggersAssetLoads(t *testing.T) {
	dir := t.TempDir()
	lib, pool := newTestLibrary(t, dir)
	defer pool.Stop(time.Second)

	h := lib.Acquire("crate")
	require.NotEqual(t, NullHandle, Handle(h))

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		lib.Update()
		cls := lib.Get(h)
		if cls.Def != nil && cls.Mesh != nil {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	cls := lib.Get(h)
	require.NotNil(t, cls.Def)
	require.NotNil(t, cls.Mesh)
	assert.Equal(t, "class crate", cls.Def.Properties["raw"])
}

func TestAcquireEmptyNameReturnsNullHandle(t *testing.T) {
	dir := t.TempDir()
	lib, pool := newTestLibrary(t, dir)
	defer pool.Stop(time.Second)

	assert.Equal(t, NullHandle, Handle(lib.Acquire("")))
	assert.Equal(t, ObjectClass{Name: ""}, lib.Get(uint32(NullHandle)))
}

func TestReleaseToZeroFreesSlotForReuse(t *testing.T) {
	dir := t.TempDir()
	lib, pool := newTestLibrary(t, dir)
	defer pool.Stop(time.Second)

	h1 := lib.Acquire("crate")
	lib.Release(uint32(h1))

	h2 := lib.Acquire("barrel-not-on-disk")
	assert.Equal(t, h1, h2, "freed slot should be reused")
}

func TestRefCountSaturatesAtMax(t *testing.T) {
	dir := t.TempDir()
	pool := asset.NewLoadPool(1, 4)
	pool.Start()
	defer pool.Stop(time.Second)

	odfLib := asset.NewLibrary[Definition](odfLoader, pool)
	meshLib := asset.NewLibrary[Mesh](meshLoader, pool)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "crate.odf"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "crate.msh"), []byte{0}, 0o644))
	odfLib.Add(filepath.Join(dir, "crate.odf"))
	meshLib.Add(filepath.Join(dir, "crate.msh"))

	lib := NewLibrary(odfLib, meshLib, WithMaxRefCount(2))

	h := lib.Acquire("crate")
	h2 := lib.Acquire("crate")
	require.Equal(t, h, h2)

	h3 := lib.Acquire("crate")
	assert.Equal(t, NullHandle, Handle(h3), "acquisition past the ceiling must return the null handle")
}
