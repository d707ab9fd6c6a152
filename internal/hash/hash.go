package hash

import (
	"encoding/binary"
	"hash/crc32"
)

// crc32cTable is pre-computed for the CRC32-Castagnoli polynomial.
// Computing it once avoids repeated MakeTable calls.
var crc32cTable = crc32.MakeTable(crc32.Castagnoli)

// Magnitude computes the CRC32-Castagnoli digest of a quantity magnitude.
// The magnitude is digested in little-endian byte order, so the result is
// identical on every platform. Equal magnitudes always produce equal
// digests. Uses hardware CRC instructions when available (SSE4.2, ARM CRC).
func Magnitude(v uint64) uint32 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return crc32.Checksum(buf[:], crc32cTable)
}
