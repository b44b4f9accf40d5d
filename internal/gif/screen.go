package gif

import "image/color"

// ScreenFields is the logical screen descriptor's packed byte. Bits are
// numbered from the most significant: bit 0 is the global colour table
// flag, bits 1-3 the colour resolution, bit 4 the sort flag and bits 5-7 the
// global colour table size exponent.
type ScreenFields struct {
	GlobalColorTableFlag bool
	ColorResolution      uint8
	SortFlag             bool
	GlobalColorTableSize uint8
}

func unpackScreenFields(b byte) ScreenFields {
	return ScreenFields{
		GlobalColorTableFlag: b&0x80 != 0,
		ColorResolution:      b >> 4 & 0x07,
		SortFlag:             b&0x08 != 0,
		GlobalColorTableSize: b & 0x07,
	}
}

// Pack recomposes the packed byte.
func (f ScreenFields) Pack() byte {
	var b byte
	if f.GlobalColorTableFlag {
		b |= 0x80
	}
	b |= (f.ColorResolution & 0x07) << 4
	if f.SortFlag {
		b |= 0x08
	}
	return b | f.GlobalColorTableSize&0x07
}

// LogicalScreen mirrors the logical screen descriptor.
type LogicalScreen struct {
	Width            uint16
	Height           uint16
	Fields           ScreenFields
	BackgroundIndex  uint8
	PixelAspectRatio uint8
}

// GlobalColorTableEntries returns the number of entries the global colour
// table holds, or zero when none is present.
func (ls LogicalScreen) GlobalColorTableEntries() int {
	if !ls.Fields.GlobalColorTableFlag {
		return 0
	}
	return colorTableEntries(ls.Fields.GlobalColorTableSize)
}

// RGB is one colour table entry.
type RGB struct {
	R, G, B uint8
}

// ColorTable is an ordered list of RGB triples. An absent table is empty.
type ColorTable []RGB

// Palette converts the table to an image/color palette.
func (t ColorTable) Palette() color.Palette {
	if len(t) == 0 {
		return nil
	}
	p := make(color.Palette, len(t))
	for i, c := range t {
		p[i] = color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
	}
	return p
}

// Clone returns an independent copy.
func (t ColorTable) Clone() ColorTable {
	if t == nil {
		return nil
	}
	return append(ColorTable(nil), t...)
}
