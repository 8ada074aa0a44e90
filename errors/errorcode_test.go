package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeError(t *testing.T) {
	cause := fmt.Errorf("open a.txt: no such file")
	err := New(ErrReadInput, cause)
	assert.Equal(t, "Failed to read input: open a.txt: no such file", err.Error())
	assert.Equal(t, cause, err.Cause())
	assert.Equal(t, ErrReadInput, Code(err))

	assert.Equal(t, "Digest does not match", New(ErrDigestMismatch, nil).Error())
	assert.Equal(t, "Unknown error", New(999, nil).Error())
	assert.Equal(t, "Argument must be a digest of exactly 64 hexadecimal characters: got 10 characters",
		New(ErrInvalidDigest, fmt.Errorf("got 10 characters")).Error())
}

func TestCode(t *testing.T) {
	assert.Equal(t, 0, Code(nil))
	assert.Equal(t, ErrUnknownErr, Code(fmt.Errorf("plain")))
	assert.Equal(t, ErrInvalidDigest, Code(New(ErrInvalidDigest, nil)))
}

func TestErrCodeComplete(t *testing.T) {
	for _, code := range []uint32{
		ErrReadInput, ErrInputTooLarge, ErrNoInput, ErrLengthOverflow, ErrDigestMismatch,
		ErrInvalidParameter, ErrInvalidDigest, ErrInvalidConfig, ErrUnknownErr,
	} {
		assert.NotEmpty(t, ErrCode[code], "code %d", code)
	}
}

func TestCodeWrapped(t *testing.T) {
	err := fmt.Errorf("check: %w", New(ErrDigestMismatch, nil))
	assert.Equal(t, ErrDigestMismatch, Code(err))
}
