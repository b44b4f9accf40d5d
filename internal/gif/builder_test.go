package gif

import "encoding/binary"

// gifBuilder assembles GIF byte streams for tests, block by block.
type gifBuilder struct {
	buf []byte
}

func newGIFBuilder(header string) *gifBuilder {
	return &gifBuilder{buf: []byte(header)}
}

func (b *gifBuilder) raw(p ...byte) *gifBuilder {
	b.buf = append(b.buf, p...)
	return b
}

func (b *gifBuilder) u16(v uint16) *gifBuilder {
	b.buf = binary.LittleEndian.AppendUint16(b.buf, v)
	return b
}

func (b *gifBuilder) screen(width, height uint16, packed, background, aspect byte) *gifBuilder {
	return b.u16(width).u16(height).raw(packed, background, aspect)
}

// colors appends n grey entries (i, i, i).
func (b *gifBuilder) colors(n int) *gifBuilder {
	for i := 0; i < n; i++ {
		b.raw(byte(i), byte(i), byte(i))
	}
	return b
}

func (b *gifBuilder) graphicControl(packed byte, delay uint16, transparent byte) *gifBuilder {
	return b.raw(introducerExtension, labelGraphicControl, 0x04, packed).u16(delay).raw(transparent, 0x00)
}

func (b *gifBuilder) comment(text string) *gifBuilder {
	b.raw(introducerExtension, labelComment, byte(len(text)))
	return b.raw([]byte(text)...).raw(0x00)
}

func (b *gifBuilder) plainText(text string) *gifBuilder {
	b.raw(introducerExtension, labelPlainText, byte(len(text)))
	return b.raw([]byte(text)...).raw(0x00)
}

func (b *gifBuilder) application(id string, data []byte) *gifBuilder {
	b.raw(introducerExtension, labelApplication, byte(len(id)))
	b.raw([]byte(id)...)
	b.raw(byte(len(data)))
	return b.raw(data...).raw(0x00)
}

func (b *gifBuilder) descriptor(left, top, width, height uint16, packed byte) *gifBuilder {
	return b.raw(introducerImage).u16(left).u16(top).u16(width).u16(height).raw(packed)
}

// imageData appends the minimum code size, the sub-blocks and the
// zero-length terminator.
func (b *gifBuilder) imageData(minCodeSize byte, blocks ...[]byte) *gifBuilder {
	b.raw(minCodeSize)
	for _, block := range blocks {
		b.raw(byte(len(block)))
		b.raw(block...)
	}
	return b.raw(0x00)
}

func (b *gifBuilder) trailer() *gifBuilder {
	return b.raw(introducerTrailer)
}

func (b *gifBuilder) bytes() []byte {
	return append([]byte(nil), b.buf...)
}

// minimalGIF is a 2x2 image with a two-entry global palette whose code
// stream is clear, 0, 1, 0, 1, eoi.
func minimalGIF() []byte {
	return []byte{
		'G', 'I', 'F', '8', '9', 'a',
		// 2x2 canvas, global colour table with size exponent 0
		0x02, 0x00, 0x02, 0x00, 0x80, 0x00, 0x00,
		// black, white
		0x00, 0x00, 0x00, 0xff, 0xff, 0xff,
		// image at 0,0 sized 2x2, no local colour table
		0x2c, 0x00, 0x00, 0x00, 0x00, 0x02, 0x00, 0x02, 0x00, 0x00,
		// minimum code size, one sub-block, terminator
		0x02, 0x03, 0x44, 0x10, 0x05, 0x00,
		0x3b,
	}
}
