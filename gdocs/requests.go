package gdocs

import (
	"google.golang.org/api/docs/v1"

	"github.com/guest-labels/guest-labels/guests"
)

// Requests builds the ordered batch of insert requests that lays out one table per
// recipient, each followed by a page break, starting at the cursor. It returns the
// requests and the cursor following the last page break.
func Requests(recipients []guests.Recipient, cursor Cursor) ([]*docs.Request, Cursor) {
	requests := []*docs.Request{}

	for _, r := range recipients {
		var rq []*docs.Request

		rq, cursor = label(r, cursor)
		requests = append(requests, rq...)
	}

	return requests, cursor
}

func label(r guests.Recipient, cursor Cursor) ([]*docs.Request, Cursor) {
	fields := []string{r.Name, r.Address, r.CityStateZip}
	requests := []*docs.Request{
		insertTable(cursor, 1, int64(len(fields))),
	}

	cell := cursor.Advance(firstCell)
	text := int64(0)
	for _, field := range fields {
		if field != "" {
			requests = append(requests, insertText(cell, field))
		}

		cell = cell.Advance(length(field) + cellStride)
		text += length(field)
	}

	end := cursor.Advance(tableLength + text)
	requests = append(requests, insertPageBreak(end))

	return requests, end.Advance(pageBreak)
}

func insertTable(at Cursor, rows, columns int64) *docs.Request {
	return &docs.Request{
		InsertTable: &docs.InsertTableRequest{
			Rows:     rows,
			Columns:  columns,
			Location: &docs.Location{Index: at.Index},
		},
	}
}

func insertText(at Cursor, text string) *docs.Request {
	return &docs.Request{
		InsertText: &docs.InsertTextRequest{
			Text:     text,
			Location: &docs.Location{Index: at.Index},
		},
	}
}

func insertPageBreak(at Cursor) *docs.Request {
	return &docs.Request{
		InsertPageBreak: &docs.InsertPageBreakRequest{
			Location: &docs.Location{Index: at.Index},
		},
	}
}
