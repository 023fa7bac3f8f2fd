package gdocs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/api/docs/v1"

	"github.com/guest-labels/guest-labels/guests"
)

func TestRequests(t *testing.T) {
	expected := []*docs.Request{
		insertTable(Cursor{1}, 1, 3),
		insertText(Cursor{5}, "Alice"),
		insertText(Cursor{12}, "1 Main St"),
		insertText(Cursor{23}, "Austin, TX, 78701"),
		insertPageBreak(Cursor{41}),
	}

	recipients := []guests.Recipient{
		{Name: "Alice", Address: "1 Main St", CityStateZip: "Austin, TX, 78701"},
	}

	requests, cursor := Requests(recipients, Start())

	if diff := cmp.Diff(expected, requests); diff != "" {
		t.Errorf("Incorrect requests (-expected +got):\n%s", diff)
	}

	if cursor.Index != 43 {
		t.Errorf("Incorrect cursor - expected:%v, got:%v", 43, cursor.Index)
	}
}

func TestRequestsOrder(t *testing.T) {
	recipients := []guests.Recipient{
		{Name: "Alice", Address: "1 Main St", CityStateZip: "Austin, TX, 78701"},
		{Name: "Bob", Address: "3 Elm St", CityStateZip: "El Paso, TX, 79901"},
	}

	requests, _ := Requests(recipients, Start())

	if len(requests) != 10 {
		t.Fatalf("Incorrect number of requests - expected:%v, got:%v", 10, len(requests))
	}

	for i, rq := range requests {
		switch i % 5 {
		case 0:
			if rq.InsertTable == nil {
				t.Errorf("request %v: expected insert table, got %+v", i, rq)
			}

		case 1, 2, 3:
			if rq.InsertText == nil {
				t.Errorf("request %v: expected insert text, got %+v", i, rq)
			}

		case 4:
			if rq.InsertPageBreak == nil {
				t.Errorf("request %v: expected insert page break, got %+v", i, rq)
			}
		}
	}

	if text := requests[6].InsertText.Text; text != "Bob" {
		t.Errorf("Incorrect second label name - expected:%v, got:%v", "Bob", text)
	}
}

func TestRequestsCursorIncrement(t *testing.T) {
	recipients := []guests.Recipient{
		{Name: "Alice", Address: "1 Main St", CityStateZip: "Austin, TX, 78701"},
		{Name: "Bob", Address: "3 Elm St", CityStateZip: "El Paso, TX, 79901"},
		{Name: "José Núñez", Address: "9 Calle Ñ", CityStateZip: "Santa Fe, NM, 87501"},
		{Name: "𝔸lex", Address: "7 Oak Ave", CityStateZip: "Tulsa, OK, 74103"},
	}

	cursor := Start()
	for _, r := range recipients {
		_, next := Requests([]guests.Recipient{r}, cursor)

		increment := 11 + length(r.Name) + length(r.Address) + length(r.CityStateZip)
		if next.Index-cursor.Index != increment {
			t.Errorf("%v: incorrect cursor increment - expected:%v, got:%v", r.Name, increment, next.Index-cursor.Index)
		}

		if next.Index <= cursor.Index {
			t.Errorf("%v: cursor not increasing (%v -> %v)", r.Name, cursor.Index, next.Index)
		}

		cursor = next
	}

	_, all := Requests(recipients, Start())
	if all != cursor {
		t.Errorf("Incorrect cursor for batch - expected:%v, got:%v", cursor, all)
	}
}

func TestRequestsLocationsIncrease(t *testing.T) {
	recipients := []guests.Recipient{
		{Name: "Alice", Address: "1 Main St", CityStateZip: "Austin, TX, 78701"},
		{Name: "Bob", Address: "3 Elm St", CityStateZip: "El Paso, TX, 79901"},
		{Name: "Carol", Address: "5 Pine St", CityStateZip: "Houston, TX, 77002"},
	}

	requests, _ := Requests(recipients, Start())

	last := int64(0)
	for i, rq := range requests {
		var index int64

		switch {
		case rq.InsertTable != nil:
			index = rq.InsertTable.Location.Index
		case rq.InsertText != nil:
			index = rq.InsertText.Location.Index
		case rq.InsertPageBreak != nil:
			index = rq.InsertPageBreak.Location.Index
		}

		if index <= last {
			t.Errorf("request %v: location %v does not follow %v", i, index, last)
		}

		last = index
	}
}

func TestRequestsWithNoRecipients(t *testing.T) {
	requests, cursor := Requests(nil, Start())

	if len(requests) != 0 {
		t.Errorf("Expected no requests, got %v", requests)
	}

	if cursor != Start() {
		t.Errorf("Expected unchanged cursor, got %v", cursor)
	}
}

func TestLength(t *testing.T) {
	tests := map[string]int64{
		"":          0,
		"Alice":     5,
		"José":      4,
		"𝔸lex":      5,
		"Zoë & 😀": 8,
	}

	for text, expected := range tests {
		if l := length(text); l != expected {
			t.Errorf("Incorrect length for %q - expected:%v, got:%v", text, expected, l)
		}
	}
}
