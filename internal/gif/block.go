package gif

import "fmt"

// BlockKind classifies a top-level block by its introducer byte.
type BlockKind int

const (
	// BlockKindUnknown covers every introducer that is not recognised,
	// including the trailer. The byte is skipped.
	BlockKindUnknown BlockKind = iota
	BlockKindExtension
	BlockKindImage
)

func blockKindOf(introducer byte) BlockKind {
	switch introducer {
	case introducerExtension:
		return BlockKindExtension
	case introducerImage:
		return BlockKindImage
	default:
		return BlockKindUnknown
	}
}

func (k BlockKind) String() string {
	switch k {
	case BlockKindUnknown:
		return "Unknown"
	case BlockKindExtension:
		return "Extension"
	case BlockKindImage:
		return "Image"
	default:
		return fmt.Sprintf("BlockKind(%d)", int(k))
	}
}

// ExtensionKind classifies an extension block by its label byte.
type ExtensionKind int

const (
	// ExtensionKindUnknown labels are consumed without reading a body.
	ExtensionKindUnknown ExtensionKind = iota
	ExtensionKindPlainText
	ExtensionKindGraphicControl
	ExtensionKindComment
	ExtensionKindApplication
)

func extensionKindOf(label byte) ExtensionKind {
	switch label {
	case labelPlainText:
		return ExtensionKindPlainText
	case labelGraphicControl:
		return ExtensionKindGraphicControl
	case labelComment:
		return ExtensionKindComment
	case labelApplication:
		return ExtensionKindApplication
	default:
		return ExtensionKindUnknown
	}
}

func (k ExtensionKind) String() string {
	switch k {
	case ExtensionKindUnknown:
		return "Unknown"
	case ExtensionKindPlainText:
		return "PlainText"
	case ExtensionKindGraphicControl:
		return "GraphicControl"
	case ExtensionKindComment:
		return "Comment"
	case ExtensionKindApplication:
		return "Application"
	default:
		return fmt.Sprintf("ExtensionKind(%d)", int(k))
	}
}

// Block records where a parsed block landed in the Document. Index points
// into the sequence matching Kind/Extension, or is -1 for extensions whose
// label was not recognised.
type Block struct {
	Kind      BlockKind
	Extension ExtensionKind
	Label     uint8
	Index     int
	Offset    uint32
}
