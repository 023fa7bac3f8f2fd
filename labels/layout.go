package labels

// Conversion factors to PDF points.
const (
	MM   = 72.0 / 25.4
	INCH = 72.0
)

// Layout describes the label page geometry and typography. All distances are in
// points.
type Layout struct {
	Width    float64
	Height   float64
	Margin   float64 // page margin to the text frame
	Indent   float64 // paragraph left indent, relative to the margin
	Top      float64 // spacer above the first paragraph
	Spacing  float64 // spacer between paragraphs
	FontSize float64
	Leading  float64
	Font     string // TTF font file, defaults to Go Regular
}

// DefaultLayout is an oversize A6 landscape envelope label (188mm x 105mm) with
// the name and address stacked 1/2" below the top margin.
func DefaultLayout() Layout {
	return Layout{
		Width:    188 * MM,
		Height:   105 * MM,
		Margin:   1 * INCH,
		Indent:   25,
		Top:      0.5 * INCH,
		Spacing:  0.05 * INCH,
		FontSize: 17,
		Leading:  12,
	}
}
