package labels

import (
	"github.com/guest-labels/guest-labels/guests"
)

// Flowable is a single element of the label page flow.
type Flowable interface {
	flowable()
}

// Spacer advances the text cursor by Height points.
type Spacer struct {
	Height float64
}

// Paragraph is a single line of text.
type Paragraph struct {
	Text string
}

// PageBreak starts a new label page.
type PageBreak struct {
}

func (s Spacer) flowable()    {}
func (p Paragraph) flowable() {}
func (b PageBreak) flowable() {}

// Story lays out one label per recipient, with a page break before every label
// except the first.
func Story(recipients []guests.Recipient, layout Layout) []Flowable {
	story := []Flowable{}

	for i, r := range recipients {
		if i > 0 {
			story = append(story, PageBreak{})
		}

		story = append(story,
			Spacer{layout.Top},
			Paragraph{r.Name},
			Spacer{layout.Spacing},
			Paragraph{r.Address},
			Spacer{layout.Spacing},
			Paragraph{r.CityStateZip})
	}

	return story
}
