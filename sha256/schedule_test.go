package sha256

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotr(t *testing.T) {
	assert.Equal(t, uint32(0x80000000), rotr(1, 1))
	assert.Equal(t, uint32(0x00000001), rotr(0x80000000, 31))
	assert.Equal(t, uint32(0x78123456), rotr(0x12345678, 8))
}

func TestSmallSigma(t *testing.T) {
	assert.Equal(t, uint32(0x000f0000), smallSigma1(0x18))
	assert.Equal(t, uint32(0), smallSigma0(0))
	assert.Equal(t, uint32(0), smallSigma1(0))
	// A single high bit lands on three distinct positions.
	assert.Equal(t, uint32(1<<24|1<<13|1<<28), smallSigma0(1<<31))
}

func TestExpandABC(t *testing.T) {
	b := Block{0x61626380}
	b[15] = 0x18
	w := b.Expand()

	assert.Equal(t, b[:], w[:16])
	assert.Equal(t, uint32(0x61626380), w[16])
	assert.Equal(t, uint32(0x000f0000), w[17])
	assert.Equal(t, uint32(0x12b1edeb), w[63])
}

func TestExpandRecurrence(t *testing.T) {
	var b Block
	for i := range b {
		b[i] = 0x9e3779b9 * uint32(i+1)
	}
	w := b.Expand()
	for i := 16; i < len(w); i++ {
		want := w[i-16] + smallSigma0(w[i-15]) + w[i-7] + smallSigma1(w[i-2])
		assert.Equal(t, want, w[i], "w[%d]", i)
	}
}

func TestExpandPure(t *testing.T) {
	b := Block{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	orig := b
	first := b.Expand()
	assert.Equal(t, orig, b)
	assert.Equal(t, first, b.Expand())
}
