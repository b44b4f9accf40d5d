package gif

// ByteStream is a cursor over an immutable GIF buffer. All multi-byte values
// are little-endian.
type ByteStream struct {
	buf    []byte
	offset uint32
}

// NewByteStream constructs a stream positioned at the start of data.
func NewByteStream(data []byte) *ByteStream {
	return &ByteStream{buf: data}
}

// ReadUint8 returns the next byte.
func (s *ByteStream) ReadUint8() (uint8, error) {
	if !s.InBounds() {
		return 0, ErrOutOfData
	}
	v := s.buf[s.offset]
	s.offset++
	return v, nil
}

// ReadUint16 reads a little-endian 16-bit value.
func (s *ByteStream) ReadUint16() (uint16, error) {
	if s.BytesLeft() < 2 {
		return 0, ErrOutOfData
	}
	v := uint16(s.buf[s.offset]) | uint16(s.buf[s.offset+1])<<8
	s.offset += 2
	return v, nil
}

// ReadBytes returns the next n bytes and advances past them. The returned
// slice aliases the underlying buffer.
func (s *ByteStream) ReadBytes(n int) ([]byte, error) {
	b, err := s.Slice(s.offset, n)
	if err != nil {
		return nil, err
	}
	s.offset += uint32(n)
	return b, nil
}

// Slice returns length bytes starting at offset without moving the cursor.
func (s *ByteStream) Slice(offset uint32, length int) ([]byte, error) {
	if length < 0 || offset > uint32(len(s.buf)) || length > len(s.buf)-int(offset) {
		return nil, ErrOutOfData
	}
	return s.buf[offset : int(offset)+length : int(offset)+length], nil
}

// Offset returns the current byte index.
func (s *ByteStream) Offset() uint32 { return s.offset }

// SetOffset moves the stream to the provided byte offset, clamped to the
// buffer size.
func (s *ByteStream) SetOffset(offset uint32) {
	if offset > uint32(len(s.buf)) {
		offset = uint32(len(s.buf))
	}
	s.offset = offset
}

// Len returns the size of the underlying buffer.
func (s *ByteStream) Len() int { return len(s.buf) }

// BytesLeft returns the number of unread bytes.
func (s *ByteStream) BytesLeft() uint32 {
	if int(s.offset) >= len(s.buf) {
		return 0
	}
	return uint32(len(s.buf)) - s.offset
}

// InBounds reports whether the cursor is within the buffer.
func (s *ByteStream) InBounds() bool {
	return s.offset < uint32(len(s.buf))
}
