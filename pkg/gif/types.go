package gif

import "github.com/jdeng/gogif/internal/gif"

type (
	Header               = gif.Header
	LogicalScreen        = gif.LogicalScreen
	ScreenFields         = gif.ScreenFields
	RGB                  = gif.RGB
	ColorTable           = gif.ColorTable
	ImageDescriptor      = gif.ImageDescriptor
	ImageFields          = gif.ImageFields
	GraphicControl       = gif.GraphicControl
	GraphicControlFields = gif.GraphicControlFields
	DisposalMethod       = gif.DisposalMethod
	Block                = gif.Block
	BlockKind            = gif.BlockKind
	ExtensionKind        = gif.ExtensionKind
	DecodeError          = gif.DecodeError
	ErrorKind            = gif.ErrorKind
)

const (
	DisposalNone       = gif.DisposalNone
	DisposalKeep       = gif.DisposalKeep
	DisposalBackground = gif.DisposalBackground
	DisposalPrevious   = gif.DisposalPrevious
)

const (
	BlockKindUnknown   = gif.BlockKindUnknown
	BlockKindExtension = gif.BlockKindExtension
	BlockKindImage     = gif.BlockKindImage
)

const (
	ExtensionKindUnknown        = gif.ExtensionKindUnknown
	ExtensionKindPlainText      = gif.ExtensionKindPlainText
	ExtensionKindGraphicControl = gif.ExtensionKindGraphicControl
	ExtensionKindComment        = gif.ExtensionKindComment
	ExtensionKindApplication    = gif.ExtensionKindApplication
)

const (
	KindUnknown                      = gif.KindUnknown
	KindOutOfData                    = gif.KindOutOfData
	KindMalformedExtensionTerminator = gif.KindMalformedExtensionTerminator
	KindInvalidCodeSize              = gif.KindInvalidCodeSize
	KindInvalidCode                  = gif.KindInvalidCode
)

var (
	ErrOutOfData                    = gif.ErrOutOfData
	ErrMalformedExtensionTerminator = gif.ErrMalformedExtensionTerminator
	ErrInvalidCodeSize              = gif.ErrInvalidCodeSize
	ErrInvalidCode                  = gif.ErrInvalidCode
)
