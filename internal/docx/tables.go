package docx

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/f3rmion/chartable/internal/chartable"
)

// WordNS is the WordprocessingML main namespace.
const WordNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// element is a minimal XML tree node. Only text inside w:t is kept.
type element struct {
	name     xml.Name
	children []*element
	text     strings.Builder
}

func (e *element) is(local string) bool {
	return e.name.Space == WordNS && e.name.Local == local
}

// ParseTables decodes document XML and returns all w:tbl elements in
// document order. Nested tables follow the table that contains them.
func ParseTables(r io.Reader) ([]chartable.Table, error) {
	root, err := parseTree(r)
	if err != nil {
		return nil, err
	}

	var tables []chartable.Table
	var walk func(e *element)
	walk = func(e *element) {
		if e.is("tbl") {
			tables = append(tables, buildTable(e, len(tables)))
		}
		for _, c := range e.children {
			walk(c)
		}
	}
	for _, c := range root.children {
		walk(c)
	}

	return tables, nil
}

// parseTree builds the element tree with namespace-resolved names.
func parseTree(r io.Reader) (*element, error) {
	dec := xml.NewDecoder(r)

	var root *element
	var stack []*element

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			e := &element{name: t.Name}
			if len(stack) == 0 {
				if root != nil {
					return nil, errors.New("parsing xml: multiple root elements")
				}
				root = e
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, e)
			}
			stack = append(stack, e)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 && stack[len(stack)-1].is("t") {
				stack[len(stack)-1].text.Write(t)
			}
		}
	}

	if root == nil {
		return nil, errors.New("parsing xml: no root element")
	}

	return root, nil
}

// buildTable collects the direct w:tr rows of tbl and their direct w:tc
// cells, dropping cells whose text is empty.
func buildTable(tbl *element, index int) chartable.Table {
	table := chartable.Table{Index: index}

	for _, tr := range tbl.children {
		if !tr.is("tr") {
			continue
		}

		var row chartable.Row
		for _, tc := range tr.children {
			if !tc.is("tc") {
				continue
			}
			if text := cellText(tc); text != "" {
				row = append(row, text)
			}
		}
		table.Rows = append(table.Rows, row)
	}

	return table
}

// cellText concatenates every w:t below the cell and trims the result.
func cellText(tc *element) string {
	var sb strings.Builder
	var walk func(e *element)
	walk = func(e *element) {
		if e.is("t") {
			sb.WriteString(e.text.String())
		}
		for _, c := range e.children {
			walk(c)
		}
	}
	walk(tc)

	return strings.TrimSpace(sb.String())
}
