package gif

import (
	"image"
	"image/color"
	"log"

	"github.com/jdeng/gogif/internal/gif"
)

// Options configures GIF decoding behavior.
type Options struct {
	// SrcData contains the complete GIF file.
	SrcData []byte
	// Logger receives diagnostics about skipped blocks. Nil disables them.
	Logger *log.Logger
}

// Decoder manages the GIF decoding process.
type Decoder struct {
	decoder *gif.Decoder
}

// New creates a new GIF decoder with the provided options.
func New(opts Options) (*Decoder, error) {
	internalDecoder, err := gif.NewDecoder(gif.DecoderOptions{
		SrcData: opts.SrcData,
		Logger:  opts.Logger,
	})
	if err != nil {
		return nil, err
	}
	return &Decoder{decoder: internalDecoder}, nil
}

// Decode parses the whole stream into a Document.
func (d *Decoder) Decode() (*Document, error) {
	doc, err := d.decoder.Decode()
	if err != nil {
		return nil, err
	}
	return &Document{doc: doc}, nil
}

// DecodeConfig parses only the header, logical screen and global colour
// table.
func (d *Decoder) DecodeConfig() (*Document, error) {
	doc, err := d.decoder.DecodeConfig()
	if err != nil {
		return nil, err
	}
	return &Document{doc: doc}, nil
}

// Decode decodes a complete GIF held in memory. Every failure is a
// *DecodeError.
func Decode(data []byte) (*Document, error) {
	doc, err := gif.Decode(data)
	if err != nil {
		return nil, err
	}
	return &Document{doc: doc}, nil
}

// DecodeConfig decodes the global part of a GIF held in memory.
func DecodeConfig(data []byte) (*Document, error) {
	doc, err := gif.DecodeConfig(data)
	if err != nil {
		return nil, err
	}
	return &Document{doc: doc}, nil
}

// Document is a read-only view of a decoded GIF.
type Document struct {
	doc *gif.Document
}

// Header returns the six-character signature and version.
func (d *Document) Header() Header {
	if d == nil || d.doc == nil {
		return ""
	}
	return d.doc.Header
}

// LogicalScreen returns the logical screen descriptor.
func (d *Document) LogicalScreen() LogicalScreen {
	if d == nil || d.doc == nil {
		return LogicalScreen{}
	}
	return d.doc.LogicalScreen
}

// Width returns the canvas width in pixels.
func (d *Document) Width() int {
	return int(d.LogicalScreen().Width)
}

// Height returns the canvas height in pixels.
func (d *Document) Height() int {
	return int(d.LogicalScreen().Height)
}

// GlobalColorTable returns a copy of the global colour table, or nil.
func (d *Document) GlobalColorTable() ColorTable {
	if d == nil || d.doc == nil {
		return nil
	}
	return d.doc.GlobalColorTable.Clone()
}

// Comments returns the comment extensions in file order.
func (d *Document) Comments() []string {
	if d == nil || d.doc == nil {
		return nil
	}
	return cloneSlice(d.doc.Comments)
}

// ApplicationBlocks returns the application identifiers in file order.
func (d *Document) ApplicationBlocks() []string {
	if d == nil || d.doc == nil {
		return nil
	}
	return cloneSlice(d.doc.ApplicationBlocks)
}

// PlainTextBlocks returns the plain text extensions in file order.
func (d *Document) PlainTextBlocks() []string {
	if d == nil || d.doc == nil {
		return nil
	}
	return cloneSlice(d.doc.PlainTextBlocks)
}

// GraphicControls returns the graphic control extensions in file order.
func (d *Document) GraphicControls() []GraphicControl {
	if d == nil || d.doc == nil {
		return nil
	}
	return cloneSlice(d.doc.GraphicControls)
}

// GraphicControlFor returns the graphic control that precedes image i.
func (d *Document) GraphicControlFor(i int) (GraphicControl, bool) {
	if d == nil || d.doc == nil {
		return GraphicControl{}, false
	}
	return d.doc.GraphicControlFor(i)
}

// Blocks returns every parsed extension and image block in file order.
func (d *Document) Blocks() []Block {
	if d == nil || d.doc == nil {
		return nil
	}
	return cloneSlice(d.doc.Blocks)
}

// NumImages returns the number of decoded images.
func (d *Document) NumImages() int {
	if d == nil || d.doc == nil {
		return 0
	}
	return len(d.doc.Images)
}

// Image returns image i, or nil when out of range.
func (d *Document) Image(i int) *Image {
	if d == nil || d.doc == nil || i < 0 || i >= len(d.doc.Images) {
		return nil
	}
	return &Image{img: d.doc.Images[i]}
}

// Images returns all decoded images.
func (d *Document) Images() []*Image {
	n := d.NumImages()
	images := make([]*Image, n)
	for i := range images {
		images[i] = d.Image(i)
	}
	return images
}

// Frame renders image i as a paletted image placed at its descriptor
// position. The palette is the image's active colour table, padded with
// opaque black so every index resolves, and the transparent index of the
// governing graphic control becomes fully transparent.
func (d *Document) Frame(i int, deinterlace bool) *image.Paletted {
	img := d.Image(i)
	if img == nil {
		return nil
	}
	desc := img.Descriptor()
	rect := image.Rect(int(desc.Left), int(desc.Top), int(desc.Left)+int(desc.Width), int(desc.Top)+int(desc.Height))

	var indices []uint8
	if deinterlace {
		indices = img.DeinterlacedIndices()
	} else {
		indices = img.Indices()
	}

	pal := img.Palette(d.doc.GlobalColorTable).Palette()
	maxIndex := 0
	for _, idx := range indices {
		maxIndex = max(maxIndex, int(idx))
	}
	for len(pal) <= maxIndex {
		pal = append(pal, color.Black)
	}
	if gc, ok := d.GraphicControlFor(i); ok && gc.Fields.TransparentColorFlag {
		for len(pal) <= int(gc.TransparentColorIndex) {
			pal = append(pal, color.Black)
		}
		pal[gc.TransparentColorIndex] = color.Transparent
	}

	frame := image.NewPaletted(rect, pal)
	copy(frame.Pix, indices)
	return frame
}

// Image is a read-only view of one decoded frame.
type Image struct {
	img *gif.Image
}

// Descriptor returns the image descriptor.
func (img *Image) Descriptor() ImageDescriptor {
	if img == nil || img.img == nil {
		return ImageDescriptor{}
	}
	return img.img.Descriptor
}

// Width returns the image width in pixels.
func (img *Image) Width() int {
	return int(img.Descriptor().Width)
}

// Height returns the image height in pixels.
func (img *Image) Height() int {
	return int(img.Descriptor().Height)
}

// Interlaced reports whether rows are stored in interlaced order.
func (img *Image) Interlaced() bool {
	return img.Descriptor().Fields.InterlaceFlag
}

// LocalColorTable returns a copy of the local colour table, or nil.
func (img *Image) LocalColorTable() ColorTable {
	if img == nil || img.img == nil {
		return nil
	}
	return img.img.LocalColorTable.Clone()
}

// MinCodeSize returns the LZW minimum code size the image was coded with.
func (img *Image) MinCodeSize() uint8 {
	if img == nil || img.img == nil {
		return 0
	}
	return img.img.MinCodeSize
}

// Indices returns a copy of the index stream in stream order.
func (img *Image) Indices() []uint8 {
	if img == nil || img.img == nil {
		return nil
	}
	return cloneSlice(img.img.Indices)
}

// DeinterlacedIndices returns the index stream in row-major order.
func (img *Image) DeinterlacedIndices() []uint8 {
	if img == nil || img.img == nil {
		return nil
	}
	return img.img.DeinterlacedIndices()
}

// Complete reports whether the index stream covers every pixel.
func (img *Image) Complete() bool {
	if img == nil || img.img == nil {
		return false
	}
	return img.img.Complete()
}

// Palette returns the colour table the indices refer to.
func (img *Image) Palette(global ColorTable) ColorTable {
	if img == nil || img.img == nil {
		return nil
	}
	return img.img.Palette(global)
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append([]T(nil), s...)
}
