package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the guest-labels configuration. Any field not set in the configuration
// file keeps its default value.
type Config struct {
	SpreadsheetID string   `yaml:"spreadsheet-id"`
	Ranges        Ranges   `yaml:"ranges"`
	Credentials   string   `yaml:"credentials"`
	Tokens        string   `yaml:"tokens"`
	PDF           PDF      `yaml:"pdf"`
	Document      Document `yaml:"document"`
}

type Ranges struct {
	Names   string `yaml:"names"`
	Streets string `yaml:"streets"`
	Cities  string `yaml:"cities"`
}

// PDF page sizes are in millimetres, everything else is in points.
type PDF struct {
	File     string  `yaml:"file"`
	Font     string  `yaml:"font"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Margin   float64 `yaml:"margin"`
	Indent   float64 `yaml:"indent"`
	Top      float64 `yaml:"top"`
	Spacing  float64 `yaml:"spacing"`
	FontSize float64 `yaml:"font-size"`
	Leading  float64 `yaml:"leading"`
}

type Document struct {
	Title string `yaml:"title"`
	Share string `yaml:"share"`
	Role  string `yaml:"role"`
}

// NewConfig returns a configuration initialised with the default guest list layout
// and an A6 landscape oversize label page.
func NewConfig(tokens, credentials string) *Config {
	return &Config{
		SpreadsheetID: "1dfeeMOBRfDtSgIEF9L8ArMhytRc8kZ_T5iJdXUKHG80",
		Ranges: Ranges{
			Names:   "Guests!B2:B",
			Streets: "Guests!J2:J",
			Cities:  "Guests!K2:K",
		},
		Credentials: credentials,
		Tokens:      tokens,
		PDF: PDF{
			File:     "letters.pdf",
			Width:    188,
			Height:   105,
			Margin:   72,
			Indent:   25,
			Top:      36,
			Spacing:  3.6,
			FontSize: 17,
			Leading:  12,
		},
		Document: Document{
			Title: "Guest Labels",
			Role:  "writer",
		},
	}
}

// Load updates the configuration from a YAML file. A missing file is only an error
// if required is set.
func (c *Config) Load(file string, required bool) error {
	b, err := os.ReadFile(file)
	if errors.Is(err, fs.ErrNotExist) && !required {
		return nil
	} else if err != nil {
		return err
	}

	if err := c.Parse(b); err != nil {
		return fmt.Errorf("%v: %w", file, err)
	}

	return nil
}

// Parse decodes a YAML configuration over the current values and validates the
// result.
func (c *Config) Parse(b []byte) error {
	if len(bytes.TrimSpace(b)) > 0 {
		if err := yaml.Unmarshal(b, c); err != nil {
			return fmt.Errorf("invalid configuration (%w)", err)
		}
	}

	return c.Validate()
}

var area = regexp.MustCompile(`^.+?!.+$`)

func (c *Config) Validate() error {
	if strings.TrimSpace(c.SpreadsheetID) == "" {
		return fmt.Errorf("missing spreadsheet-id")
	}

	for k, v := range map[string]string{"names": c.Ranges.Names, "streets": c.Ranges.Streets, "cities": c.Ranges.Cities} {
		if !area.MatchString(strings.TrimSpace(v)) {
			return fmt.Errorf("invalid %v range '%s' - expected something like 'Guests!B2:B'", k, v)
		}
	}

	if c.PDF.Width <= 0 || c.PDF.Height <= 0 {
		return fmt.Errorf("invalid PDF page size %vx%v", c.PDF.Width, c.PDF.Height)
	}

	if c.PDF.FontSize <= 0 {
		return fmt.Errorf("invalid PDF font size %v", c.PDF.FontSize)
	}

	switch c.Document.Role {
	case "reader", "commenter", "writer":
	default:
		return fmt.Errorf("invalid document role '%v' - expected reader, commenter or writer", c.Document.Role)
	}

	return nil
}
