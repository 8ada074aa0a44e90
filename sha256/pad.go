package sha256

import (
	"encoding/binary"
	"math"

	"github.com/pkg/errors"
)

// maxMessageLen is the longest message, in bytes, whose bit-length still
// fits in 64 bits.
const maxMessageLen = math.MaxUint64 / 8

// BitLength returns the length in bits of a message of n bytes.
func BitLength(n int) (uint64, error) {
	if n < 0 {
		return 0, errors.Errorf("sha256: negative message length %d", n)
	}
	if uint64(n) > maxMessageLen {
		return 0, errors.Wrapf(ErrLengthOverflow, "message of %d bytes", n)
	}
	return uint64(n) * 8, nil
}

// PaddedLen returns the length of the padded buffer for a message of n
// bytes: the smallest multiple of BlockSize that holds the message, the
// 0x80 marker and the 8-byte length field.
func PaddedLen(n int) int {
	return (n + 1 + lengthSize + BlockSize - 1) / BlockSize * BlockSize
}

// Pad returns msg followed by a single 1 bit, zero bits up to 448 mod 512,
// and the message bit-length as a 64-bit big-endian integer. msg is not
// modified.
func Pad(msg []byte) ([]byte, error) {
	bitLen, err := BitLength(len(msg))
	if err != nil {
		return nil, err
	}
	return pad(msg, bitLen), nil
}

func pad(msg []byte, bitLen uint64) []byte {
	padded := make([]byte, PaddedLen(len(msg)))
	copy(padded, msg)
	padded[len(msg)] = 0x80
	binary.BigEndian.PutUint64(padded[len(padded)-lengthSize:], bitLen)
	return padded
}
