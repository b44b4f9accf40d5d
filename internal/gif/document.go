package gif

// Document is the fully decoded GIF. The parser appends to it block by block;
// once a decode returns it is not modified again.
type Document struct {
	Header            Header
	LogicalScreen     LogicalScreen
	GlobalColorTable  ColorTable
	Comments          []string
	ApplicationBlocks []string
	GraphicControls   []GraphicControl
	PlainTextBlocks   []string
	Images            []*Image

	// Blocks lists every parsed extension and image block in file order.
	Blocks []Block
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{}
}

// GraphicControlFor returns the graphic control governing image i: the last
// one that appears after image i-1 and before image i.
func (d *Document) GraphicControlFor(i int) (GraphicControl, bool) {
	if i < 0 || i >= len(d.Images) {
		return GraphicControl{}, false
	}
	seen := -1
	control := -1
	for _, blk := range d.Blocks {
		switch {
		case blk.Kind == BlockKindImage:
			seen++
			if seen == i {
				if control < 0 {
					return GraphicControl{}, false
				}
				return d.GraphicControls[control], true
			}
			control = -1
		case blk.Kind == BlockKindExtension && blk.Extension == ExtensionKindGraphicControl:
			control = blk.Index
		}
	}
	return GraphicControl{}, false
}

func (d *Document) record(kind BlockKind, ext ExtensionKind, label uint8, index int, offset uint32) {
	d.Blocks = append(d.Blocks, Block{
		Kind:      kind,
		Extension: ext,
		Label:     label,
		Index:     index,
		Offset:    offset,
	})
}
