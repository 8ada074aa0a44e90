package sha256

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// Block is one 512-bit unit of the padded message as sixteen words.
type Block [16]uint32

// Segment splits a padded buffer into blocks. Word j of a block is read
// big-endian from bytes 4j..4j+3, so byte 0 is the most significant byte of
// word 0.
func Segment(padded []byte) ([]Block, error) {
	if len(padded) == 0 || len(padded)%BlockSize != 0 {
		return nil, errors.Wrapf(ErrMalformedInput, "got %d bytes", len(padded))
	}

	blocks := make([]Block, len(padded)/BlockSize)
	for i := range blocks {
		chunk := padded[i*BlockSize : (i+1)*BlockSize]
		for j := range blocks[i] {
			blocks[i][j] = binary.BigEndian.Uint32(chunk[j*4:])
		}
	}
	return blocks, nil
}
