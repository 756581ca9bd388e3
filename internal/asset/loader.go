package asset

import (
	"os"

	"github.com/edsrzf/mmap-go"
)

// ReadBinary loads path's full contents via a memory-mapped read, for
// binary formats (.msh, .tga) that don't benefit from line-oriented
// parsing. The mapping is copied into an owned buffer before being
// unmapped, since the bytes must outlive this call.
func ReadBinary(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.Size() == 0 {
		return []byte{}, nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, err
	}
	defer m.Unmap()

	out := make([]byte, len(m))
	copy(out, m)
	return out, nil
}

// ReadText loads path's full contents as a plain read, for formats
// (.odf) that are parsed line-by-line rather than mapped.
func ReadText(path string) ([]byte, error) {
	return os.ReadFile(path)
}
