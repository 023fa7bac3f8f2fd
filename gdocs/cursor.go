package gdocs

import (
	"unicode/utf16"
)

// Offsets of the elements of a 1x3 table inserted at cursor c, relative to c.
// Inserting a table also inserts a newline before it, so the table itself starts
// at c+1, its row at c+2 and the first cell at c+3. Each empty cell holds a single
// newline paragraph, i.e. cell n's paragraph is at c+4+2n.
const (
	firstCell   = 4
	cellStride  = 2
	tableLength = 9 // newline + table + row + 3 x (cell + newline)
	pageBreak   = 2 // page break + newline
)

// Cursor is the absolute document index (in UTF-16 code units) at which the next
// element is inserted.
type Cursor struct {
	Index int64
}

// Start is the first insertion index in the body of a new document.
func Start() Cursor {
	return Cursor{Index: 1}
}

func (c Cursor) Advance(n int64) Cursor {
	return Cursor{Index: c.Index + n}
}

// length returns the length of the text in the document index space, which counts
// UTF-16 code units.
func length(text string) int64 {
	return int64(len(utf16.Encode([]rune(text))))
}
