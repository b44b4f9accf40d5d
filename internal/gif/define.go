package gif

// Block introducers.
const (
	introducerExtension = 0x21
	introducerImage     = 0x2C
	introducerTrailer   = 0x3B
)

// Extension labels.
const (
	labelPlainText      = 0x01
	labelGraphicControl = 0xF9
	labelComment        = 0xFE
	labelApplication    = 0xFF
)

const (
	// HeaderSize is the length of the "GIF87a"/"GIF89a" signature block.
	HeaderSize = 6
	// LogicalScreenSize is the length of the logical screen descriptor.
	LogicalScreenSize = 7
	// ImageDescriptorSize is the length of an image descriptor after its introducer.
	ImageDescriptorSize = 9

	// MaxCodeWidth is the widest LZW code a GIF stream may use.
	MaxCodeWidth = 12
	// MaxDictionarySize is the LZW dictionary ceiling (1 << MaxCodeWidth).
	MaxDictionarySize = 1 << MaxCodeWidth
	// MaxMinCodeSize is the largest LZW minimum code size accepted; palette
	// indices must fit in a byte.
	MaxMinCodeSize = 8
)

// colorTableEntries returns the number of RGB triples a table with the given
// size exponent holds.
func colorTableEntries(sizeExponent uint8) int {
	return 2 << sizeExponent
}
