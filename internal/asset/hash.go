package asset

import "github.com/codahale/blake2/blake2b"

// Digest is a content hash of a loaded asset's raw bytes. Two loads of
// the same name whose Digest matches are the same content — the
// hot-reload path uses this to distinguish a touched-but-unchanged
// file (skip broadcasting a reload) from a genuine content change,
// grounded on dolthub-dolt's use of blake2 for content-addressing its
// chunk store.
type Digest [32]byte

// Sum computes the content digest of raw asset bytes.
func Sum(raw []byte) Digest {
	h, err := blake2b.New256()
	if err != nil {
		panic(err)
	}
	_, _ = h.Write(raw)
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}
