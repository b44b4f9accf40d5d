package gif

import "log"

// maxReserve bounds the up-front index buffer so a forged descriptor cannot
// force a huge allocation before any data is read.
const maxReserve = 1 << 22

// Context walks the byte stream once, front to back, and assembles the
// Document. It never looks at raw offsets itself except to record where a
// block started; all reads go through the ByteStream.
type Context struct {
	stream *ByteStream
	doc    *Document
	logger *log.Logger
}

func newContext(data []byte, logger *log.Logger) *Context {
	return &Context{
		stream: NewByteStream(data),
		doc:    NewDocument(),
		logger: logger,
	}
}

// Decode parses the whole stream. On failure the partially built document is
// dropped.
func (c *Context) Decode() (*Document, error) {
	if err := c.parseGlobals(); err != nil {
		return nil, err
	}
	if err := c.parseBlocks(); err != nil {
		return nil, err
	}
	return c.doc, nil
}

// Offset returns the current stream position.
func (c *Context) Offset() uint32 { return c.stream.Offset() }

func (c *Context) parseGlobals() error {
	header, err := c.parseHeader()
	if err != nil {
		return err
	}
	c.doc.Header = header

	screen, err := c.parseLogicalScreen()
	if err != nil {
		return err
	}
	c.doc.LogicalScreen = screen

	table, err := c.parseColorTable(screen.Fields.GlobalColorTableFlag, screen.Fields.GlobalColorTableSize)
	if err != nil {
		return err
	}
	c.doc.GlobalColorTable = table
	return nil
}

func (c *Context) parseHeader() (Header, error) {
	b, err := c.stream.ReadBytes(HeaderSize)
	if err != nil {
		return "", err
	}
	return Header(latin1(b)), nil
}

func (c *Context) parseLogicalScreen() (LogicalScreen, error) {
	var ls LogicalScreen
	var err error
	if ls.Width, err = c.stream.ReadUint16(); err != nil {
		return ls, err
	}
	if ls.Height, err = c.stream.ReadUint16(); err != nil {
		return ls, err
	}
	packed, err := c.stream.ReadUint8()
	if err != nil {
		return ls, err
	}
	ls.Fields = unpackScreenFields(packed)
	if ls.BackgroundIndex, err = c.stream.ReadUint8(); err != nil {
		return ls, err
	}
	if ls.PixelAspectRatio, err = c.stream.ReadUint8(); err != nil {
		return ls, err
	}
	return ls, nil
}

func (c *Context) parseColorTable(present bool, sizeExponent uint8) (ColorTable, error) {
	if !present {
		return nil, nil
	}
	entries := colorTableEntries(sizeExponent)
	raw, err := c.stream.ReadBytes(entries * 3)
	if err != nil {
		return nil, err
	}
	table := make(ColorTable, entries)
	for i := range table {
		table[i] = RGB{R: raw[i*3], G: raw[i*3+1], B: raw[i*3+2]}
	}
	return table, nil
}

func (c *Context) parseBlocks() error {
	for c.stream.InBounds() {
		offset := c.stream.Offset()
		introducer, err := c.stream.ReadUint8()
		if err != nil {
			return err
		}
		switch blockKindOf(introducer) {
		case BlockKindExtension:
			err = c.parseExtension(offset)
		case BlockKindImage:
			err = c.parseImage(offset)
		default:
			// The trailer is skipped like any other byte, without a warning.
			if introducer != introducerTrailer {
				c.warnf("gif: skipping block introducer 0x%02x at offset %d", introducer, offset)
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (c *Context) parseExtension(offset uint32) error {
	label, err := c.stream.ReadUint8()
	if err != nil {
		return err
	}
	kind := extensionKindOf(label)
	doc := c.doc
	switch kind {
	case ExtensionKindPlainText:
		text, err := c.parseText()
		if err != nil {
			return err
		}
		doc.PlainTextBlocks = append(doc.PlainTextBlocks, text)
		doc.record(BlockKindExtension, kind, label, len(doc.PlainTextBlocks)-1, offset)
	case ExtensionKindGraphicControl:
		gc, err := c.parseGraphicControl()
		if err != nil {
			return err
		}
		doc.GraphicControls = append(doc.GraphicControls, gc)
		doc.record(BlockKindExtension, kind, label, len(doc.GraphicControls)-1, offset)
	case ExtensionKindComment:
		text, err := c.parseText()
		if err != nil {
			return err
		}
		doc.Comments = append(doc.Comments, text)
		doc.record(BlockKindExtension, kind, label, len(doc.Comments)-1, offset)
	case ExtensionKindApplication:
		id, err := c.parseApplication()
		if err != nil {
			return err
		}
		doc.ApplicationBlocks = append(doc.ApplicationBlocks, id)
		doc.record(BlockKindExtension, kind, label, len(doc.ApplicationBlocks)-1, offset)
	default:
		// Only the label is consumed; the body, if any, is read as whatever
		// comes next.
		c.warnf("gif: unknown extension label 0x%02x at offset %d", label, offset)
		doc.record(BlockKindExtension, kind, label, -1, offset)
	}

	terminator, err := c.stream.ReadUint8()
	if err != nil {
		return err
	}
	if terminator != 0 {
		return ErrMalformedExtensionTerminator
	}
	return nil
}

// parseText reads a single length-prefixed run of characters. Plain text and
// comment extensions share it.
func (c *Context) parseText() (string, error) {
	size, err := c.stream.ReadUint8()
	if err != nil {
		return "", err
	}
	b, err := c.stream.ReadBytes(int(size))
	if err != nil {
		return "", err
	}
	return latin1(b), nil
}

// parseApplication returns the identifier; the data sub-block is skipped.
func (c *Context) parseApplication() (string, error) {
	id, err := c.parseText()
	if err != nil {
		return "", err
	}
	skip, err := c.stream.ReadUint8()
	if err != nil {
		return "", err
	}
	if _, err := c.stream.ReadBytes(int(skip)); err != nil {
		return "", err
	}
	return id, nil
}

func (c *Context) parseGraphicControl() (GraphicControl, error) {
	var gc GraphicControl
	var err error
	if gc.BlockSize, err = c.stream.ReadUint8(); err != nil {
		return gc, err
	}
	packed, err := c.stream.ReadUint8()
	if err != nil {
		return gc, err
	}
	gc.Fields = unpackGraphicControlFields(packed)
	if gc.DelayTime, err = c.stream.ReadUint16(); err != nil {
		return gc, err
	}
	if gc.TransparentColorIndex, err = c.stream.ReadUint8(); err != nil {
		return gc, err
	}
	return gc, nil
}

func (c *Context) parseImageDescriptor() (ImageDescriptor, error) {
	var desc ImageDescriptor
	var err error
	if desc.Left, err = c.stream.ReadUint16(); err != nil {
		return desc, err
	}
	if desc.Top, err = c.stream.ReadUint16(); err != nil {
		return desc, err
	}
	if desc.Width, err = c.stream.ReadUint16(); err != nil {
		return desc, err
	}
	if desc.Height, err = c.stream.ReadUint16(); err != nil {
		return desc, err
	}
	packed, err := c.stream.ReadUint8()
	if err != nil {
		return desc, err
	}
	desc.Fields = unpackImageFields(packed)
	return desc, nil
}

func (c *Context) parseImage(offset uint32) error {
	desc, err := c.parseImageDescriptor()
	if err != nil {
		return err
	}
	local, err := c.parseColorTable(desc.Fields.LocalColorTableFlag, desc.Fields.LocalColorTableSize)
	if err != nil {
		return err
	}
	img := &Image{Descriptor: desc, LocalColorTable: local}
	if err := c.parseImageData(img); err != nil {
		return err
	}
	c.doc.Images = append(c.doc.Images, img)
	c.doc.record(BlockKindImage, ExtensionKindUnknown, introducerImage, len(c.doc.Images)-1, offset)
	return nil
}

// parseImageData reads the minimum code size and every sub-block up to the
// zero-length terminator, handing each one to the decompressor.
func (c *Context) parseImageData(img *Image) error {
	minCodeSize, err := c.stream.ReadUint8()
	if err != nil {
		return err
	}
	img.MinCodeSize = minCodeSize
	dec, err := NewDecompressor(minCodeSize, LSB)
	if err != nil {
		return err
	}
	dec.Reserve(min(img.PixelCount(), maxReserve))
	for {
		size, err := c.stream.ReadUint8()
		if err != nil {
			return err
		}
		if size == 0 {
			break
		}
		block, err := c.stream.Slice(c.stream.Offset(), int(size))
		if err != nil {
			return err
		}
		c.stream.SetOffset(c.stream.Offset() + uint32(size))
		if err := dec.WriteBlock(block); err != nil {
			return err
		}
	}
	img.Indices = dec.Indices()
	return nil
}

func (c *Context) warnf(format string, args ...any) {
	if c.logger != nil {
		c.logger.Printf(format, args...)
	}
}
