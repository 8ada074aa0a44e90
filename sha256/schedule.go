package sha256

import "math/bits"

// Schedule is the 64-word message schedule derived from one block.
type Schedule [roundCount]uint32

func rotr(x uint32, n int) uint32 {
	return bits.RotateLeft32(x, -n)
}

func smallSigma0(x uint32) uint32 {
	return rotr(x, 7) ^ rotr(x, 18) ^ (x >> 3)
}

func smallSigma1(x uint32) uint32 {
	return rotr(x, 17) ^ rotr(x, 19) ^ (x >> 10)
}

// Expand returns the message schedule of the block. The first 16 words are
// the block itself; additions wrap modulo 2^32.
func (b *Block) Expand() Schedule {
	var w Schedule
	copy(w[:], b[:])
	for i := 16; i < roundCount; i++ {
		w[i] = w[i-16] + smallSigma0(w[i-15]) + w[i-7] + smallSigma1(w[i-2])
	}
	return w
}
