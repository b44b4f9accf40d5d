package gif

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfData reports a read past the end of the byte stream.
	ErrOutOfData = errors.New("gif: out of data")
	// ErrMalformedExtensionTerminator reports a non-zero byte where an
	// extension block terminator was expected.
	ErrMalformedExtensionTerminator = errors.New("gif: malformed extension terminator")
	// ErrInvalidCodeSize reports an LZW minimum code size above MaxMinCodeSize.
	ErrInvalidCodeSize = errors.New("gif: invalid lzw minimum code size")
	// ErrInvalidCode reports a code that cannot be expanded because no
	// previous code exists to derive it from.
	ErrInvalidCode = errors.New("gif: invalid lzw code")
)

// ErrorKind classifies a fatal decode failure.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindOutOfData
	KindMalformedExtensionTerminator
	KindInvalidCodeSize
	KindInvalidCode
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnknown:
		return "Unknown"
	case KindOutOfData:
		return "OutOfData"
	case KindMalformedExtensionTerminator:
		return "MalformedExtensionTerminator"
	case KindInvalidCodeSize:
		return "InvalidCodeSize"
	case KindInvalidCode:
		return "InvalidCode"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// kindOf maps a sentinel to its kind.
func kindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrOutOfData):
		return KindOutOfData
	case errors.Is(err, ErrMalformedExtensionTerminator):
		return KindMalformedExtensionTerminator
	case errors.Is(err, ErrInvalidCodeSize):
		return KindInvalidCodeSize
	case errors.Is(err, ErrInvalidCode):
		return KindInvalidCode
	default:
		return KindUnknown
	}
}

// DecodeError is the single failure a decode call surfaces. Offset is the
// byte stream position at which decoding stopped.
type DecodeError struct {
	Kind   ErrorKind
	Offset uint32
	Err    error
}

func newDecodeError(err error, offset uint32) *DecodeError {
	return &DecodeError{Kind: kindOf(err), Offset: offset, Err: err}
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%v (offset %d)", e.Err, e.Offset)
}

func (e *DecodeError) Unwrap() error { return e.Err }
