package labels

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/signintech/gopdf"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/guest-labels/guest-labels/guests"
)

const font = "label"

// Generator renders a label story to a PDF document, one page per label.
type Generator struct {
	pdf    *gopdf.GoPdf
	layout Layout
	pages  int
	y      float64
}

func NewGenerator(layout Layout) (*Generator, error) {
	if layout.Width <= 0 || layout.Height <= 0 {
		return nil, fmt.Errorf("invalid page size %vx%v", layout.Width, layout.Height)
	}

	p := &gopdf.GoPdf{}
	p.Start(gopdf.Config{
		PageSize: gopdf.Rect{W: layout.Width, H: layout.Height},
		Unit:     gopdf.UnitPT,
	})

	if layout.Font != "" {
		if err := p.AddTTFFont(font, layout.Font); err != nil {
			return nil, fmt.Errorf("error loading font %v (%w)", layout.Font, err)
		}
	} else if err := p.AddTTFFontData(font, goregular.TTF); err != nil {
		return nil, fmt.Errorf("error loading default font (%w)", err)
	}

	return &Generator{
		pdf:    p,
		layout: layout,
	}, nil
}

// Build appends the story to the document. A page is started for the first
// flowable and for every page break.
func (g *Generator) Build(story []Flowable) error {
	for _, f := range story {
		if g.pages == 0 {
			if err := g.newPage(); err != nil {
				return err
			}
		}

		switch v := f.(type) {
		case PageBreak:
			if err := g.newPage(); err != nil {
				return err
			}

		case Spacer:
			g.y += v.Height

		case Paragraph:
			if err := g.paragraph(v.Text); err != nil {
				return err
			}

		default:
			return fmt.Errorf("unsupported flowable %T", f)
		}
	}

	return nil
}

// Pages returns the number of pages laid out so far.
func (g *Generator) Pages() int {
	return g.pages
}

func (g *Generator) Write(w io.Writer) error {
	return g.pdf.Write(w)
}

func (g *Generator) newPage() error {
	g.pdf.AddPage()
	g.pages++
	g.y = g.layout.Margin

	return g.pdf.SetFont(font, "", g.layout.FontSize)
}

func (g *Generator) paragraph(text string) error {
	g.pdf.SetX(g.layout.Margin + g.layout.Indent)
	g.pdf.SetY(g.y)

	if text != "" {
		if err := g.pdf.Cell(nil, text); err != nil {
			return fmt.Errorf("error drawing '%v' (%w)", text, err)
		}
	}

	g.y += g.layout.Leading

	return nil
}

// Render writes a PDF with one label page per recipient and returns the number of
// pages. Nothing is written for an empty recipient list.
func Render(w io.Writer, recipients []guests.Recipient, layout Layout) (int, error) {
	if len(recipients) == 0 {
		return 0, nil
	}

	g, err := NewGenerator(layout)
	if err != nil {
		return 0, err
	}

	if err := g.Build(Story(recipients, layout)); err != nil {
		return 0, err
	}

	if err := g.Write(w); err != nil {
		return 0, fmt.Errorf("error writing PDF (%w)", err)
	}

	return g.Pages(), nil
}

// RenderFile renders the labels to a temporary file which then replaces the
// output file. The output file is not created for an empty recipient list.
func RenderFile(file string, recipients []guests.Recipient, layout Layout) (int, error) {
	if len(recipients) == 0 {
		return 0, nil
	}

	dir := filepath.Dir(file)
	if err := os.MkdirAll(dir, 0770); err != nil {
		return 0, err
	}

	tmp, err := os.CreateTemp(dir, ".labels-*.pdf")
	if err != nil {
		return 0, err
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	pages, err := Render(tmp, recipients, layout)
	if err != nil {
		return 0, err
	}

	if err := tmp.Close(); err != nil {
		return 0, err
	}

	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return 0, err
	}

	if err := os.Rename(tmp.Name(), file); err != nil {
		return 0, err
	}

	return pages, nil
}
