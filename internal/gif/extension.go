package gif

import "fmt"

// DisposalMethod tells a renderer what to do with a frame before drawing the
// next one. The decoder only records it.
type DisposalMethod uint8

const (
	DisposalNone DisposalMethod = iota
	DisposalKeep
	DisposalBackground
	DisposalPrevious
)

func (m DisposalMethod) String() string {
	switch m {
	case DisposalNone:
		return "None"
	case DisposalKeep:
		return "Keep"
	case DisposalBackground:
		return "Background"
	case DisposalPrevious:
		return "Previous"
	default:
		return fmt.Sprintf("DisposalMethod(%d)", uint8(m))
	}
}

// GraphicControlFields is the graphic control extension's packed byte,
// numbered from the most significant bit: bits 0-2 reserved, bits 3-5
// disposal method, bit 6 user input flag, bit 7 transparency flag.
type GraphicControlFields struct {
	Reserved             uint8
	DisposalMethod       DisposalMethod
	UserInputFlag        bool
	TransparentColorFlag bool
}

func unpackGraphicControlFields(b byte) GraphicControlFields {
	return GraphicControlFields{
		Reserved:             b >> 5 & 0x07,
		DisposalMethod:       DisposalMethod(b >> 2 & 0x07),
		UserInputFlag:        b&0x02 != 0,
		TransparentColorFlag: b&0x01 != 0,
	}
}

// Pack recomposes the packed byte.
func (f GraphicControlFields) Pack() byte {
	b := (f.Reserved&0x07)<<5 | (uint8(f.DisposalMethod)&0x07)<<2
	if f.UserInputFlag {
		b |= 0x02
	}
	if f.TransparentColorFlag {
		b |= 0x01
	}
	return b
}

// GraphicControl carries timing and transparency hints for the image block
// that follows it.
type GraphicControl struct {
	BlockSize             uint8
	Fields                GraphicControlFields
	DelayTime             uint16 // hundredths of a second
	TransparentColorIndex uint8
}
