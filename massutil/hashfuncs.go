package massutil

import (
	"hash"

	"golang.org/x/crypto/ripemd160"
	"massnet.org/sha256/sha256"
)

// Calculate the hash of hasher over buf.
func calcHash(buf []byte, hasher hash.Hash) []byte {
	hasher.Write(buf)
	return hasher.Sum(nil)
}

// sum hashes data, panicking on sha256.ErrLengthOverflow, which no slice
// of a 64-bit address space can reach.
func sum(data []byte) sha256.Digest {
	return sha256.MustSum(data)
}

// Hash160 returns ripemd160(sha256(b)).
func Hash160(data []byte) []byte {
	s := sum(data)
	return calcHash(s[:], ripemd160.New())
}

// Hash256 returns sha256(sha256(data))
func Hash256(data []byte) []byte {
	h1 := sum(data)
	h2 := sum(h1[:])
	return h2[:]
}

// Sha256 returns sha256(data)
func Sha256(data []byte) []byte {
	h := sum(data)
	return h[:]
}

// Sha256Hex returns sha256(data) as lowercase hex.
func Sha256Hex(data []byte) string {
	return sum(data).String()
}

// Ripemd160 return ripemd16(data)
func Ripemd160(data []byte) []byte {
	return calcHash(data, ripemd160.New())
}
