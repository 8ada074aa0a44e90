package sha256

import (
	"encoding/hex"
	"fmt"
)

// MaxDigestStringSize is the maximum length of a Digest hex string.
const MaxDigestStringSize = Size * 2

// ErrDigestStrSize describes an error that indicates the caller specified a
// digest string that has too many characters.
var ErrDigestStrSize = fmt.Errorf("max digest string length is %v bytes", MaxDigestStringSize)

// Digest is the 32-byte output of Sum.
type Digest [Size]byte

// String returns the digest as 64 lowercase hexadecimal characters, most
// significant nibble first.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Bytes returns a copy of the digest bytes.
func (d *Digest) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, d[:])
	return b
}

// SetBytes sets the bytes which represent the digest. An error is returned
// if the number of bytes passed in is not Size.
func (d *Digest) SetBytes(b []byte) error {
	if len(b) != Size {
		return fmt.Errorf("invalid digest length of %v, want %v", len(b), Size)
	}
	copy(d[:], b)
	return nil
}

// IsEqual returns true if target is the same as d.
func (d *Digest) IsEqual(target *Digest) bool {
	if d == nil && target == nil {
		return true
	}
	if d == nil || target == nil {
		return false
	}
	return *d == *target
}

// NewDigest returns a new Digest from a byte slice. An error is returned if
// the number of bytes passed in is not Size.
func NewDigest(b []byte) (*Digest, error) {
	var d Digest
	if err := d.SetBytes(b); err != nil {
		return nil, err
	}
	return &d, nil
}

// NewDigestFromStr creates a Digest from a hex string. Missing leading
// characters are treated as zeros.
func NewDigestFromStr(s string) (*Digest, error) {
	d := new(Digest)
	if err := Decode(d, s); err != nil {
		return nil, err
	}
	return d, nil
}

// Decode decodes the hexadecimal string encoding of a Digest to a
// destination.
func Decode(dst *Digest, src string) error {
	if len(src) > MaxDigestStringSize {
		return ErrDigestStrSize
	}

	// Hex decoder expects an even number of characters. When not, pad
	// with a leading zero.
	var srcBytes []byte
	if len(src)%2 == 0 {
		srcBytes = []byte(src)
	} else {
		srcBytes = make([]byte, 1+len(src))
		srcBytes[0] = '0'
		copy(srcBytes[1:], src)
	}

	var result Digest
	if _, err := hex.Decode(result[Size-hex.DecodedLen(len(srcBytes)):], srcBytes); err != nil {
		return err
	}
	*dst = result
	return nil
}

// Ptr returns a pointer to a copy of d.
func (d Digest) Ptr() *Digest {
	return &d
}
