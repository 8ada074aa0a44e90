// Package sha256 computes the SHA-256 message digest defined in FIPS 180-4.
//
// A digest is produced by a strictly forward pipeline:
//
//	Pad      message -> padded buffer (multiple of 64 bytes)
//	Segment  padded buffer -> 512-bit blocks of sixteen big-endian words
//	Expand   block -> 64-word message schedule
//	Compress schedule -> running hash state, one block at a time
//
// The whole message is held in memory; there is no incremental interface.
// All exported functions are safe for concurrent use, the constant tables
// are never written to.
package sha256
