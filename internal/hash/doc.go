// Package hash provides the CRC32-Castagnoli checksum stored in encoded tuple
// blocks.
//
//	checksum := hash.CRC32C(payload)
//
// Go's hash/crc32 uses hardware instructions for the Castagnoli polynomial
// when the CPU supports them (SSE4.2 on x86-64, the CRC extension on ARM64).
package hash
