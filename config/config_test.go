package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	yaml := `
spreadsheet-id: 1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms
ranges:
  names: RSVP!A2:A
pdf:
  file: labels/wedding.pdf
  font-size: 14
document:
  title: Wedding
  share: someone@example.com
`

	expected := NewConfig("/var/labels", "/etc/labels/credentials.json")
	expected.SpreadsheetID = "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"
	expected.Ranges.Names = "RSVP!A2:A"
	expected.PDF.File = "labels/wedding.pdf"
	expected.PDF.FontSize = 14
	expected.Document.Title = "Wedding"
	expected.Document.Share = "someone@example.com"

	c := NewConfig("/var/labels", "/etc/labels/credentials.json")
	if err := c.Parse([]byte(yaml)); err != nil {
		t.Fatalf("Unexpected error parsing configuration (%v)", err)
	}

	if diff := cmp.Diff(expected, c); diff != "" {
		t.Errorf("Incorrect configuration (-expected +got):\n%s", diff)
	}
}

func TestParseEmpty(t *testing.T) {
	c := NewConfig("", "credentials.json")
	if err := c.Parse([]byte("  \n")); err != nil {
		t.Fatalf("Unexpected error parsing empty configuration (%v)", err)
	}

	if diff := cmp.Diff(NewConfig("", "credentials.json"), c); diff != "" {
		t.Errorf("Incorrect configuration (-expected +got):\n%s", diff)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := map[string]string{
		"yaml":        "spreadsheet-id: [",
		"spreadsheet": "spreadsheet-id: ''",
		"range":       "ranges:\n  cities: K2:K",
		"page size":   "pdf:\n  width: 0",
		"font size":   "pdf:\n  font-size: -1",
		"role":        "document:\n  role: owner",
	}

	for k, yaml := range tests {
		c := NewConfig("", "credentials.json")
		if err := c.Parse([]byte(yaml)); err == nil {
			t.Errorf("%v: expected error, got %v", k, err)
		}
	}
}

func TestLoad(t *testing.T) {
	file := filepath.Join(t.TempDir(), "guest-labels.yaml")
	if err := os.WriteFile(file, []byte("document:\n  role: commenter\n"), 0600); err != nil {
		t.Fatalf("%v", err)
	}

	c := NewConfig("", "credentials.json")
	if err := c.Load(file, true); err != nil {
		t.Fatalf("Unexpected error loading configuration (%v)", err)
	}

	if c.Document.Role != "commenter" {
		t.Errorf("Incorrect document role - expected:%v, got:%v", "commenter", c.Document.Role)
	}
}

func TestLoadMissingFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "guest-labels.yaml")

	if err := NewConfig("", "credentials.json").Load(file, false); err != nil {
		t.Errorf("Unexpected error for missing optional configuration (%v)", err)
	}

	if err := NewConfig("", "credentials.json").Load(file, true); err == nil {
		t.Errorf("Expected error for missing required configuration, got %v", err)
	}
}
