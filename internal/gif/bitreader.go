package gif

import (
	"errors"
	"fmt"
)

// BitOrder selects how codes are packed into bytes.
type BitOrder int

const (
	// LSB packs codes starting at the least significant bit, as GIF does.
	LSB BitOrder = iota
	// MSB packs codes starting at the most significant bit, as TIFF and PDF do.
	MSB
)

func (o BitOrder) String() string {
	switch o {
	case LSB:
		return "LSB"
	case MSB:
		return "MSB"
	default:
		return fmt.Sprintf("BitOrder(%d)", int(o))
	}
}

const maxBitsPerRead = 32

var errBitsUnderflow = errors.New("gif: bit reader underflow")

// BitReader serves fixed-width codes from byte chunks handed to it one at a
// time. Bits left over from one chunk are joined with the next, so codes may
// straddle chunk boundaries.
type BitReader struct {
	order   BitOrder
	pending []byte
	acc     uint64
	nBits   uint
}

// NewBitReader constructs an empty reader using the given bit order.
func NewBitReader(order BitOrder) *BitReader {
	return &BitReader{order: order}
}

// SetBytes appends a chunk of raw bytes to the unread input.
func (br *BitReader) SetBytes(chunk []byte) {
	if len(br.pending) == 0 {
		br.pending = chunk
		return
	}
	joined := make([]byte, 0, len(br.pending)+len(chunk))
	joined = append(joined, br.pending...)
	br.pending = append(joined, chunk...)
}

// BitsLeft returns the number of unread bits across all supplied chunks.
func (br *BitReader) BitsLeft() int {
	return int(br.nBits) + 8*len(br.pending)
}

// HasBits reports whether at least n unread bits remain.
func (br *BitReader) HasBits(n uint) bool {
	return br.BitsLeft() >= int(n)
}

// ReadBits extracts the next n bits (at most 32) as an unsigned integer.
func (br *BitReader) ReadBits(n uint) (uint32, error) {
	if n > maxBitsPerRead {
		return 0, fmt.Errorf("gif: cannot read %d bits at once", n)
	}
	if !br.HasBits(n) {
		return 0, errBitsUnderflow
	}
	for br.nBits < n {
		b := br.pending[0]
		br.pending = br.pending[1:]
		if br.order == LSB {
			br.acc |= uint64(b) << br.nBits
		} else {
			br.acc = br.acc<<8 | uint64(b)
		}
		br.nBits += 8
	}
	mask := uint64(1)<<n - 1
	var v uint64
	if br.order == LSB {
		v = br.acc & mask
		br.acc >>= n
	} else {
		v = (br.acc >> (br.nBits - n)) & mask
		br.acc &= uint64(1)<<(br.nBits-n) - 1
	}
	br.nBits -= n
	return uint32(v), nil
}

// Reset discards all buffered bits and pending bytes.
func (br *BitReader) Reset() {
	br.pending = nil
	br.acc = 0
	br.nBits = 0
}
