// Package hash digests quantity magnitudes.
//
// The digest is CRC32-Castagnoli (CRC32C): hardware-accelerated on x86
// (SSE4.2) and ARM (CRC extension), and an industry standard (iSCSI,
// Btrfs, RocksDB, LevelDB). Magnitudes are digested in little-endian byte
// order so the result does not depend on the host platform.
package hash
