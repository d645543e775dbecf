package format

import "github.com/dshills/richtext/internal/engine/textbuf"

// BlockKind identifies the structural role of a block.
type BlockKind uint8

const (
	BlockParagraph BlockKind = iota
	BlockHeading
	BlockBulletList
	BlockNumberedList
	BlockQuote
	BlockCodeBlock
)

var blockNames = map[BlockKind]string{
	BlockParagraph:    "paragraph",
	BlockHeading:      "heading",
	BlockBulletList:   "bullet_list",
	BlockNumberedList: "numbered_list",
	BlockQuote:        "block_quote",
	BlockCodeBlock:    "code_block",
}

func (k BlockKind) String() string {
	if name, ok := blockNames[k]; ok {
		return name
	}
	return "unknown"
}

// BlockKindFromString maps a codec name back to a BlockKind.
func BlockKindFromString(name string) (BlockKind, bool) {
	for k, n := range blockNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// BlockType pairs a block kind with a heading level. Level is zero for
// every kind except headings. The zero value is a paragraph.
type BlockType struct {
	Kind  BlockKind
	Level int
}

func Paragraph() BlockType    { return BlockType{Kind: BlockParagraph} }
func BulletList() BlockType   { return BlockType{Kind: BlockBulletList} }
func NumberedList() BlockType { return BlockType{Kind: BlockNumberedList} }
func BlockQuoteType() BlockType {
	return BlockType{Kind: BlockQuote}
}
func CodeBlock() BlockType { return BlockType{Kind: BlockCodeBlock} }

// Heading returns a heading block with level clamped into [1, 6].
func Heading(level int) BlockType {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return BlockType{Kind: BlockHeading, Level: level}
}

// Block is one entry in the block partition: the type takes effect at
// Start and runs until the next entry's start or the document end.
type Block struct {
	Start textbuf.Offset
	Type  BlockType
}
