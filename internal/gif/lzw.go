package gif

import "slices"

// Decompressor expands the variable-width LZW code stream of one image into
// colour table indices. Sub-blocks are fed in order through WriteBlock; a code
// may span two sub-blocks.
//
// The dictionary is an indexed array: entry c expands to the expansion of
// prefix[c] followed by suffix[c]. Entries below the clear code are the
// singletons [c], the clear and end-of-information codes expand to nothing.
type Decompressor struct {
	minCodeSize uint8
	clearCode   uint16
	eoiCode     uint16
	width       uint
	hi          uint16 // highest assigned dictionary index
	prev        uint16
	hasPrev     bool // a code has been emitted since the last reset
	done        bool

	br *BitReader

	prefix [MaxDictionarySize]uint16
	suffix [MaxDictionarySize]uint8
	first  [MaxDictionarySize]uint8
	length [MaxDictionarySize]uint16

	out []uint8
}

// NewDecompressor returns a decompressor for codes packed in the given bit
// order. The dictionary starts in its post-clear state, so streams that omit
// the leading clear code still decode.
func NewDecompressor(minCodeSize uint8, order BitOrder) (*Decompressor, error) {
	if minCodeSize > MaxMinCodeSize {
		return nil, ErrInvalidCodeSize
	}
	d := &Decompressor{
		minCodeSize: minCodeSize,
		clearCode:   1 << minCodeSize,
		eoiCode:     1<<minCodeSize + 1,
		br:          NewBitReader(order),
	}
	for c := uint16(0); c < d.clearCode; c++ {
		d.suffix[c] = uint8(c)
		d.first[c] = uint8(c)
		d.length[c] = 1
	}
	d.reset()
	return d, nil
}

// Decompress decodes a GIF (LSB-first) code stream split into sub-blocks.
func Decompress(minCodeSize uint8, blocks [][]byte) ([]uint8, error) {
	return DecompressOrder(minCodeSize, LSB, blocks)
}

// DecompressOrder is Decompress with an explicit bit order.
func DecompressOrder(minCodeSize uint8, order BitOrder, blocks [][]byte) ([]uint8, error) {
	d, err := NewDecompressor(minCodeSize, order)
	if err != nil {
		return nil, err
	}
	for _, block := range blocks {
		if err := d.WriteBlock(block); err != nil {
			return nil, err
		}
		if d.Done() {
			break
		}
	}
	return d.Indices(), nil
}

// Reserve grows the output buffer to hold at least n more indices.
func (d *Decompressor) Reserve(n int) {
	if n > 0 {
		d.out = slices.Grow(d.out, n)
	}
}

// WriteBlock decodes every complete code available after appending block.
// Once the end-of-information code has been seen further input is ignored.
func (d *Decompressor) WriteBlock(block []byte) error {
	if d.done {
		return nil
	}
	d.br.SetBytes(block)
	for !d.done && d.br.HasBits(d.width) {
		code, err := d.br.ReadBits(d.width)
		if err != nil {
			return err
		}
		if err := d.step(uint16(code)); err != nil {
			return err
		}
	}
	return nil
}

// Done reports whether the end-of-information code has been read.
func (d *Decompressor) Done() bool { return d.done }

// Indices returns the indices produced so far.
func (d *Decompressor) Indices() []uint8 { return d.out }

// Width returns the current code width in bits.
func (d *Decompressor) Width() uint { return d.width }

// DictionarySize returns the number of dictionary entries, including the
// clear and end-of-information codes.
func (d *Decompressor) DictionarySize() int { return int(d.hi) + 1 }

// ClearCode returns 1 << minCodeSize.
func (d *Decompressor) ClearCode() uint16 { return d.clearCode }

// EOICode returns the end-of-information code.
func (d *Decompressor) EOICode() uint16 { return d.eoiCode }

func (d *Decompressor) reset() {
	d.width = uint(d.minCodeSize) + 1
	d.hi = d.eoiCode
	d.hasPrev = false
}

func (d *Decompressor) step(code uint16) error {
	switch {
	case code == d.clearCode:
		d.reset()
		return nil
	case code == d.eoiCode:
		d.done = true
		return nil
	case !d.hasPrev:
		if code > d.hi {
			return ErrInvalidCode
		}
		d.emit(code)
		d.prev = code
		d.hasPrev = true
		return nil
	}

	if code <= d.hi {
		d.emit(code)
		d.add(d.prev, d.first[code])
		d.prev = code
		return nil
	}

	// The code names the entry this step creates: prev's expansion followed
	// by its own first index. A code above hi implies hi < MaxDictionarySize-1,
	// so add always succeeds here.
	y := d.first[d.prev]
	d.emit(d.prev)
	d.out = append(d.out, y)
	d.add(d.prev, y)
	d.prev = d.hi
	return nil
}

func (d *Decompressor) add(prefix uint16, y uint8) {
	if d.hi >= MaxDictionarySize-1 {
		return
	}
	d.hi++
	d.prefix[d.hi] = prefix
	d.suffix[d.hi] = y
	d.first[d.hi] = d.first[prefix]
	d.length[d.hi] = d.length[prefix] + 1
	if d.hi == uint16(1)<<d.width-1 && d.hi < MaxDictionarySize-1 {
		d.width++
	}
}

func (d *Decompressor) emit(code uint16) {
	n := int(d.length[code])
	start := len(d.out)
	d.out = slices.Grow(d.out, n)[:start+n]
	for i := start + n - 1; i >= start; i-- {
		d.out[i] = d.suffix[code]
		code = d.prefix[code]
	}
}
