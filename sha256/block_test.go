package sha256

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestSegmentBigEndian(t *testing.T) {
	padded, err := Pad([]byte("abc"))
	assert.Nil(t, err)

	blocks, err := Segment(padded)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(blocks))

	want := Block{0x61626380}
	want[15] = 0x18
	assert.Equal(t, want, blocks[0])
}

func TestSegmentOrder(t *testing.T) {
	padded := make([]byte, 3*BlockSize)
	for i := range padded {
		padded[i] = byte(i / BlockSize)
	}
	blocks, err := Segment(padded)
	assert.Nil(t, err)
	assert.Equal(t, 3, len(blocks))
	for i, b := range blocks {
		v := uint32(i)
		assert.Equal(t, v<<24|v<<16|v<<8|v, b[0])
		assert.Equal(t, v<<24|v<<16|v<<8|v, b[15])
	}
}

func TestSegmentMalformed(t *testing.T) {
	for _, n := range []int{0, 1, 63, 65, 127} {
		_, err := Segment(make([]byte, n))
		assert.Equal(t, ErrMalformedInput, errors.Cause(err), "len=%d", n)
	}
}
