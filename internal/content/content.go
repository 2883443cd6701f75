// Package content builds and writes the versioned curriculum document.
package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/f3rmion/chartable/internal/chartable"
	"github.com/f3rmion/chartable/internal/config"
)

// SchemaVersion is the curriculum schema version this tool writes.
const SchemaVersion = 1

// SectionCharTable is the section type for char tables.
const SectionCharTable = "char_table"

// Document is the root of the curriculum JSON. Field order is the key
// order on disk.
type Document struct {
	SchemaVersion int    `json:"schemaVersion"`
	Subject       string `json:"subject"`
	Grade         int    `json:"grade"`
	Term          string `json:"term"`
	Units         []Unit `json:"units"`
}

// Unit groups sections.
type Unit struct {
	UnitID   string    `json:"unitId"`
	Title    string    `json:"title"`
	Sections []Section `json:"sections"`
}

// Section holds the items of one exercise type.
type Section struct {
	SectionID string `json:"sectionId"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Items     []Item `json:"items"`
}

// Item is a char item with its id and provenance.
type Item struct {
	ItemID string   `json:"itemId"`
	Hanzi  string   `json:"hanzi"`
	Pinyin string   `json:"pinyin"`
	Words  []string `json:"words"`
	Source Source   `json:"source"`
}

// Source records where an item was extracted from.
type Source struct {
	Doc  string `json:"doc"`
	Hint string `json:"hint"`
}

// Build wraps items in a one-unit, one-section document.
func Build(items []chartable.CharItem, tableIndex int, sourcePath, unit string, profile config.Profile) *Document {
	sectionID := unit + ".s1"
	hint := fmt.Sprintf("tableIndex=%d", tableIndex)

	out := make([]Item, len(items))
	for i, it := range items {
		words := it.Words
		if words == nil {
			words = []string{}
		}
		out[i] = Item{
			ItemID: fmt.Sprintf("%s.%04d", sectionID, i+1),
			Hanzi:  it.Hanzi,
			Pinyin: it.Pinyin,
			Words:  words,
			Source: Source{Doc: sourcePath, Hint: hint},
		}
	}

	return &Document{
		SchemaVersion: SchemaVersion,
		Subject:       profile.Subject,
		Grade:         profile.Grade,
		Term:          profile.Term,
		Units: []Unit{{
			UnitID: unit,
			Title:  unit,
			Sections: []Section{{
				SectionID: sectionID,
				Type:      SectionCharTable,
				Title:     profile.SectionTitle,
				Items:     out,
			}},
		}},
	}
}

// Marshal encodes doc as 2-space indented JSON with non-ASCII and HTML
// characters left unescaped and a trailing newline.
func Marshal(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	return buf.Bytes(), nil
}

// Write encodes doc and writes it to path. Parent directories must exist.
func Write(path string, doc *Document) error {
	data, err := Marshal(doc)
	if err != nil {
		return &chartable.OutputError{Path: path, Err: err}
	}

	f, err := os.Create(path)
	if err != nil {
		return &chartable.OutputError{Path: path, Err: fmt.Errorf("creating output file: %w", err)}
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return &chartable.OutputError{Path: path, Err: fmt.Errorf("writing output file: %w", err)}
	}

	if err := f.Close(); err != nil {
		return &chartable.OutputError{Path: path, Err: fmt.Errorf("closing output file: %w", err)}
	}

	return nil
}
