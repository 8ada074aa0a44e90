package errors

import stderrors "errors"

// Exit codes of sha256cli. Zero is success.
const (
	// input err
	ErrReadInput     = 11
	ErrInputTooLarge = 12
	ErrNoInput       = 13

	// hash err
	ErrLengthOverflow = 21
	ErrDigestMismatch = 22

	// Invalid Parameter
	ErrInvalidParameter = 31
	ErrInvalidDigest    = 32
	ErrInvalidConfig    = 33

	// other err
	ErrUnknownErr = 41
)

var ErrCode = map[uint32]string{
	ErrReadInput:        "Failed to read input",
	ErrInputTooLarge:    "Input does not fit in available memory",
	ErrNoInput:          "No input given",
	ErrLengthOverflow:   "Message bit-length overflows 64 bits",
	ErrDigestMismatch:   "Digest does not match",
	ErrInvalidParameter: "Invalid parameter",
	ErrInvalidDigest:    "Argument must be a digest of exactly 64 hexadecimal characters",
	ErrInvalidConfig:    "Invalid configuration",
	ErrUnknownErr:       "Unknown error",
}

// CodeError is an error carrying one of the codes above.
type CodeError struct {
	Code uint32
	Err  error
}

// New returns a CodeError for code wrapping err, which may be nil.
func New(code uint32, err error) *CodeError {
	return &CodeError{Code: code, Err: err}
}

func (e *CodeError) Error() string {
	msg, ok := ErrCode[e.Code]
	if !ok {
		msg = ErrCode[ErrUnknownErr]
	}
	if e.Err == nil {
		return msg
	}
	return msg + ": " + e.Err.Error()
}

// Cause returns the wrapped error, following github.com/pkg/errors.
func (e *CodeError) Cause() error {
	return e.Err
}

// Unwrap returns the wrapped error.
func (e *CodeError) Unwrap() error {
	return e.Err
}

// Code returns the exit code carried by err, ErrUnknownErr for other
// non-nil errors and 0 for nil.
func Code(err error) int {
	if err == nil {
		return 0
	}
	var ce *CodeError
	if stderrors.As(err, &ce) {
		return int(ce.Code)
	}
	return ErrUnknownErr
}
