package sha256

import "encoding/binary"

// State is the running hash value H, eight words updated once per block.
type State [8]uint32

func bigSigma0(x uint32) uint32 {
	return rotr(x, 2) ^ rotr(x, 13) ^ rotr(x, 22)
}

func bigSigma1(x uint32) uint32 {
	return rotr(x, 6) ^ rotr(x, 11) ^ rotr(x, 25)
}

func ch(e, f, g uint32) uint32 {
	return (e & f) ^ (^e & g)
}

func maj(a, b, c uint32) uint32 {
	return (a & b) ^ (a & c) ^ (b & c)
}

// Compress folds one block's schedule into s. Blocks must be compressed in
// message order.
func (s *State) Compress(w *Schedule) {
	s.compress(&K, w)
}

func (s *State) compress(k *[roundCount]uint32, w *Schedule) {
	a, b, c, d, e, f, g, h := s[0], s[1], s[2], s[3], s[4], s[5], s[6], s[7]

	for i := 0; i < roundCount; i++ {
		t1 := h + bigSigma1(e) + ch(e, f, g) + k[i] + w[i]
		t2 := bigSigma0(a) + maj(a, b, c)
		h = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2
	}

	s[0] += a
	s[1] += b
	s[2] += c
	s[3] += d
	s[4] += e
	s[5] += f
	s[6] += g
	s[7] += h
}

// Digest serializes the state words big-endian.
func (s *State) Digest() Digest {
	var d Digest
	for i, v := range s {
		binary.BigEndian.PutUint32(d[i*4:], v)
	}
	return d
}
