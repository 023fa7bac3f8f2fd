package guests

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/api/sheets/v4"
)

// Recipient is a validated guest name and postal address.
type Recipient struct {
	Name         string
	Address      string
	CityStateZip string
}

// Ranges identifies the three worksheet columns holding the guest names, street
// addresses and city/state/zip lines e.g. 'Guests!B2:B'.
type Ranges struct {
	Names   string
	Streets string
	Cities  string
}

func (r Ranges) list() []string {
	return []string{r.Names, r.Streets, r.Cities}
}

const international = "international"

// IsValid returns true if all the recipient fields are set and the address is not
// an 'international' address.
func IsValid(r Recipient) bool {
	if r.Name == "" || r.Address == "" || r.CityStateZip == "" {
		return false
	}

	return !strings.EqualFold(r.CityStateZip, international)
}

// Fetch retrieves the guest list columns from the spreadsheet with a single batch
// request and combines them into a list of valid recipients.
func Fetch(ctx context.Context, google *sheets.Service, spreadsheet string, ranges Ranges) ([]Recipient, error) {
	columns, err := fetch(ctx, google, spreadsheet, ranges)
	if err != nil {
		return nil, err
	}

	return MakeRecipients(columns[0], columns[1], columns[2]), nil
}

// Get is the logging wrapper around Fetch used by the label commands. A failed
// request is logged and returns an empty list, i.e. 'nothing to print'.
func Get(ctx context.Context, google *sheets.Service, spreadsheet string, ranges Ranges, log *zap.Logger) []Recipient {
	if log == nil {
		log = zap.NewNop()
	}

	log.Debug("fetching guest list",
		zap.String("spreadsheet", spreadsheet),
		zap.Strings("ranges", ranges.list()))

	columns, err := fetch(ctx, google, spreadsheet, ranges)
	if err != nil {
		log.Error("an error occurred", zap.Error(err))
		return []Recipient{}
	}

	if rows(columns[0]) == 0 {
		log.Info("no data found")
		return []Recipient{}
	}

	recipients := MakeRecipients(columns[0], columns[1], columns[2])
	if len(recipients) == 0 {
		log.Info("no valid recipients", zap.Int("rows", rows(columns[0])))
	}

	return recipients
}

func fetch(ctx context.Context, google *sheets.Service, spreadsheet string, ranges Ranges) ([]*sheets.ValueRange, error) {
	response, err := google.Spreadsheets.Values.
		BatchGet(spreadsheet).
		Ranges(ranges.list()...).
		MajorDimension("ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve data from sheet (%w)", err)
	}

	if len(response.ValueRanges) < 3 {
		return nil, fmt.Errorf("expected 3 ranges from sheet, got %v", len(response.ValueRanges))
	}

	return response.ValueRanges[:3], nil
}

// MakeRecipients zips the name, street and city columns row by row. Rows beyond
// the end of the shortest column are ignored and invalid rows are discarded. Cell
// text is used as is.
func MakeRecipients(names, streets, cities *sheets.ValueRange) []Recipient {
	N := min(rows(names), rows(streets), rows(cities))

	recipients := []Recipient{}
	for row := 0; row < N; row++ {
		r := Recipient{
			Name:         cell(names, row),
			Address:      cell(streets, row),
			CityStateZip: cell(cities, row),
		}

		if IsValid(r) {
			recipients = append(recipients, r)
		}
	}

	return recipients
}

func rows(data *sheets.ValueRange) int {
	if data == nil {
		return 0
	}

	return len(data.Values)
}

func cell(data *sheets.ValueRange, row int) string {
	if data == nil || row >= len(data.Values) || len(data.Values[row]) == 0 {
		return ""
	}

	switch v := data.Values[row][0].(type) {
	case nil:
		return ""

	case string:
		return v

	default:
		return fmt.Sprintf("%v", v)
	}
}
