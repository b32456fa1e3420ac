package core

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// ID is a content-derived identifier for cached artifacts.
type ID uint64

// IDFromContent generates a deterministic ID from raw bytes using BLAKE2b
// hashing. Identical content always produces the identical ID, which is
// what makes analysis caching safe across runs.
func IDFromContent(data []byte) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write(data)
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Bytes returns the big-endian byte representation of the ID, suitable
// for use as an ordered storage key.
func (id ID) Bytes() []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(id))
	return buf
}
