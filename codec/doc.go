// Package codec encodes slabs as a stream of (key, value) pairs.
//
// # Wire Format
//
//	[count u64 LE]
//	count × ([key u64 LE][value])
//
// Pairs are written in ascending key order. There is no header, version tag or
// checksum. Values are encoded by a ValueCodec; the built-in codecs use fixed
// width little-endian integers and u64 length prefixes.
//
// # Decoding
//
// The declared count is checked against the remaining input before anything is
// allocated: every pair needs at least 8 + ValueCodec.MinSize bytes, so a count
// that cannot fit fails with ErrTooLarge. Pairs are fed to a slab.Builder. The
// format does not enforce ascending or unique keys; duplicates keep the last
// value and out-of-order keys are accepted.
//
// # Compression
//
// Compress and Decompress wrap an encoded slab in a small frame using LZ4 or
// ZSTD. The frame is independent of the pair stream.
package codec
