package gif

// ImageFields is the image descriptor's packed byte, numbered from the most
// significant bit: bit 0 local colour table flag, bit 1 interlace flag,
// bit 2 sort flag, bits 3-4 reserved, bits 5-7 local table size exponent.
type ImageFields struct {
	LocalColorTableFlag bool
	InterlaceFlag       bool
	SortFlag            bool
	Reserved            uint8
	LocalColorTableSize uint8
}

func unpackImageFields(b byte) ImageFields {
	return ImageFields{
		LocalColorTableFlag: b&0x80 != 0,
		InterlaceFlag:       b&0x40 != 0,
		SortFlag:            b&0x20 != 0,
		Reserved:            b >> 3 & 0x03,
		LocalColorTableSize: b & 0x07,
	}
}

// Pack recomposes the packed byte.
func (f ImageFields) Pack() byte {
	var b byte
	if f.LocalColorTableFlag {
		b |= 0x80
	}
	if f.InterlaceFlag {
		b |= 0x40
	}
	if f.SortFlag {
		b |= 0x20
	}
	b |= (f.Reserved & 0x03) << 3
	return b | f.LocalColorTableSize&0x07
}

// ImageDescriptor places one frame on the logical screen.
type ImageDescriptor struct {
	Left   uint16
	Top    uint16
	Width  uint16
	Height uint16
	Fields ImageFields
}

// Image is one decoded frame: its descriptor, optional local colour table and
// the index stream produced by the LZW decompressor.
type Image struct {
	Descriptor      ImageDescriptor
	LocalColorTable ColorTable
	MinCodeSize     uint8
	Indices         []uint8
}

// PixelCount returns width * height.
func (img *Image) PixelCount() int {
	return int(img.Descriptor.Width) * int(img.Descriptor.Height)
}

// Complete reports whether the index stream covers every pixel exactly.
func (img *Image) Complete() bool {
	return len(img.Indices) == img.PixelCount()
}

// Palette returns the colour table the indices refer to: the local table
// when present, otherwise global.
func (img *Image) Palette(global ColorTable) ColorTable {
	if img.Descriptor.Fields.LocalColorTableFlag {
		return img.LocalColorTable
	}
	return global
}

// Interlaced row passes: start row and step.
var interlacePasses = []struct{ start, step int }{
	{0, 8},
	{4, 8},
	{2, 4},
	{1, 2},
}

// DeinterlacedIndices returns the index stream in row-major order. Images
// without the interlace flag, or whose stream does not cover every pixel,
// are returned as a copy in stream order.
func (img *Image) DeinterlacedIndices() []uint8 {
	out := make([]uint8, len(img.Indices))
	if !img.Descriptor.Fields.InterlaceFlag || !img.Complete() || img.Descriptor.Width == 0 {
		copy(out, img.Indices)
		return out
	}
	width := int(img.Descriptor.Width)
	height := int(img.Descriptor.Height)
	src := 0
	for _, pass := range interlacePasses {
		for y := pass.start; y < height; y += pass.step {
			copy(out[y*width:(y+1)*width], img.Indices[src:src+width])
			src += width
		}
	}
	return out
}
