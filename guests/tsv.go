package guests

import (
	"encoding/csv"
	"io"
)

var header = []string{"Name", "Address", "City State Zip"}

// WriteTSV writes the recipient list as a tab separated table with a header row.
func WriteTSV(f io.Writer, recipients []Recipient) error {
	w := csv.NewWriter(f)
	w.Comma = '\t'

	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range recipients {
		if err := w.Write([]string{r.Name, r.Address, r.CityStateZip}); err != nil {
			return err
		}
	}

	w.Flush()

	return w.Error()
}
