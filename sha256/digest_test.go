package sha256

import (
	"bytes"
	"encoding/hex"
	"testing"
)

// emptyDigest is the digest of the empty message.
var emptyDigest = Digest([Size]byte{ // Make go vet happy.
	0xe3, 0xb0, 0xc4, 0x42, 0x98, 0xfc, 0x1c, 0x14,
	0x9a, 0xfb, 0xf4, 0xc8, 0x99, 0x6f, 0xb9, 0x24,
	0x27, 0xae, 0x41, 0xe4, 0x64, 0x9b, 0x93, 0x4c,
	0xa4, 0x95, 0x99, 0x1b, 0x78, 0x52, 0xb8, 0x55,
})

// TestDigest tests the Digest API.
func TestDigest(t *testing.T) {
	abc, err := NewDigestFromStr(abcDigest)
	if err != nil {
		t.Errorf("NewDigestFromStr: %v", err)
	}

	buf := emptyDigest.Bytes()
	d, err := NewDigest(buf)
	if err != nil {
		t.Errorf("NewDigest: unexpected error %v", err)
	}

	// Ensure contents match.
	if !bytes.Equal(d[:], buf) {
		t.Errorf("NewDigest: digest contents mismatch - got: %v, want: %v",
			d[:], buf)
	}

	// Bytes returns a copy.
	buf[0] ^= 0xff
	if d[0] == buf[0] {
		t.Errorf("Bytes: returned slice aliases the digest")
	}

	if d.IsEqual(abc) {
		t.Errorf("IsEqual: digest contents should not match - got: %v, want: %v",
			d, abc)
	}

	// Set digest from byte slice and ensure contents match.
	if err = d.SetBytes(abc.Bytes()); err != nil {
		t.Errorf("SetBytes: %v", err)
	}
	if !d.IsEqual(abc) {
		t.Errorf("IsEqual: digest contents mismatch - got: %v, want: %v",
			d, abc)
	}

	// Invalid size for SetBytes.
	if err = d.SetBytes([]byte{0x00}); err == nil {
		t.Errorf("SetBytes: failed to received expected err - got: nil")
	}

	// Invalid size for NewDigest.
	if _, err = NewDigest(make([]byte, Size+1)); err == nil {
		t.Errorf("NewDigest: failed to received expected err - got: nil")
	}

	var nilDigest *Digest
	if !nilDigest.IsEqual(nil) {
		t.Errorf("IsEqual: nil digests should match")
	}
	if nilDigest.IsEqual(abc) || abc.IsEqual(nil) {
		t.Errorf("IsEqual: nil and non-nil digests should not match")
	}
}

// TestDigestString tests the stringized output for digests.
func TestDigestString(t *testing.T) {
	wantStr := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if got := emptyDigest.String(); got != wantStr {
		t.Errorf("String: wrong digest string - got %v, want %v", got, wantStr)
	}
	if got := MustSum(nil).String(); got != wantStr {
		t.Errorf("String: Sum(nil) - got %v, want %v", got, wantStr)
	}
}

// TestNewDigestFromStr executes tests against the NewDigestFromStr function.
func TestNewDigestFromStr(t *testing.T) {
	tests := []struct {
		in   string
		want Digest
		err  error
	}{
		{
			"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
			emptyDigest,
			nil,
		},

		// Empty string.
		{
			"",
			Digest{},
			nil,
		},

		// Single digit.
		{
			"1",
			Digest([Size]byte{ // Make go vet happy.
				0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
				0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
				0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
				0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01,
			}),
			nil,
		},

		// Odd length is left-padded with a zero.
		{
			"5b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
			Digest([Size]byte{ // Make go vet happy.
				0x05, 0xb0, 0xc4, 0x42, 0x98, 0xfc, 0x1c, 0x14,
				0x9a, 0xfb, 0xf4, 0xc8, 0x99, 0x6f, 0xb9, 0x24,
				0x27, 0xae, 0x41, 0xe4, 0x64, 0x9b, 0x93, 0x4c,
				0xa4, 0x95, 0x99, 0x1b, 0x78, 0x52, 0xb8, 0x55,
			}),
			nil,
		},

		// String that is too long.
		{
			"01234567890123456789012345678901234567890123456789012345678912345",
			Digest{},
			ErrDigestStrSize,
		},

		// String that contains non-hex chars.
		{
			"abcdefg",
			Digest{},
			hex.InvalidByteError('g'),
		},
	}

	unexpectedErrStr := "NewDigestFromStr #%d failed to detect expected error - got: %v want: %v"
	unexpectedResultStr := "NewDigestFromStr #%d got: %v want: %v"
	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		result, err := NewDigestFromStr(test.in)
		if err != test.err {
			t.Errorf(unexpectedErrStr, i, err, test.err)
			continue
		} else if err != nil {
			continue
		}
		if !test.want.IsEqual(result) {
			t.Errorf(unexpectedResultStr, i, result, &test.want)
			continue
		}
	}
}
