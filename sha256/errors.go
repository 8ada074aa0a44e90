package sha256

import "github.com/pkg/errors"

var (
	// ErrLengthOverflow indicates the message bit-length cannot be
	// represented as an unsigned 64-bit integer.
	ErrLengthOverflow = errors.New("sha256: message bit-length overflows 64 bits")

	// ErrMalformedInput indicates a padded buffer whose length is not a
	// positive multiple of BlockSize.
	ErrMalformedInput = errors.New("sha256: padded buffer is not a multiple of the block size")
)
