package gif

import (
	"fmt"
	"log"
)

// DecoderOptions configures GIF decoding behavior.
type DecoderOptions struct {
	// SrcData contains the complete GIF file.
	SrcData []byte
	// Logger receives diagnostics about skipped blocks. Nil disables them.
	Logger *log.Logger
}

// Decoder decodes one GIF buffer.
type Decoder struct {
	data   []byte
	logger *log.Logger
}

// NewDecoder creates a new GIF decoder with the provided options. Empty
// source data fails with a *DecodeError of kind KindOutOfData at offset 0.
func NewDecoder(opts DecoderOptions) (*Decoder, error) {
	if len(opts.SrcData) == 0 {
		return nil, newDecodeError(fmt.Errorf("gif: empty source data: %w", ErrOutOfData), 0)
	}
	return &Decoder{data: opts.SrcData, logger: opts.Logger}, nil
}

// Decode parses the whole buffer. Each call starts from scratch with its own
// stream and dictionary state, so repeated calls yield equal documents.
func (d *Decoder) Decode() (*Document, error) {
	ctx := newContext(d.data, d.logger)
	doc, err := ctx.Decode()
	if err != nil {
		return nil, newDecodeError(err, ctx.Offset())
	}
	return doc, nil
}

// DecodeConfig parses the header, logical screen descriptor and global colour
// table only.
func (d *Decoder) DecodeConfig() (*Document, error) {
	ctx := newContext(d.data, d.logger)
	if err := ctx.parseGlobals(); err != nil {
		return nil, newDecodeError(err, ctx.Offset())
	}
	return ctx.doc, nil
}

// Decode is shorthand for NewDecoder followed by Decode, without a logger.
func Decode(data []byte) (*Document, error) {
	d, err := NewDecoder(DecoderOptions{SrcData: data})
	if err != nil {
		return nil, err
	}
	return d.Decode()
}

// DecodeConfig is shorthand for NewDecoder followed by DecodeConfig.
func DecodeConfig(data []byte) (*Document, error) {
	d, err := NewDecoder(DecoderOptions{SrcData: data})
	if err != nil {
		return nil, err
	}
	return d.DecodeConfig()
}
