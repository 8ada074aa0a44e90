package sha256

// Sum returns the SHA-256 digest of msg. The only possible error is
// ErrLengthOverflow.
func Sum(msg []byte) (Digest, error) {
	padded, err := Pad(msg)
	if err != nil {
		return Digest{}, err
	}
	blocks, err := Segment(padded)
	if err != nil {
		// Pad always yields whole blocks.
		panic(err)
	}

	s := Init
	for i := range blocks {
		w := blocks[i].Expand()
		s.Compress(&w)
	}
	return s.Digest(), nil
}

// MustSum is like Sum but panics if the message is too long to hash.
func MustSum(msg []byte) Digest {
	d, err := Sum(msg)
	if err != nil {
		panic(err)
	}
	return d
}

// SumString returns the digest of the bytes of s.
func SumString(s string) (Digest, error) {
	return Sum([]byte(s))
}
