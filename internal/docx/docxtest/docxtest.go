// Package docxtest builds synthetic .docx files for tests.
package docxtest

import (
	"archive/zip"
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const contentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const rels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

// Table is a table given as rows of cell texts.
type Table [][]string

// DocumentXML renders a document body with a heading paragraph followed by
// the given tables.
func DocumentXML(tables ...Table) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	sb.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	sb.WriteString(`<w:p><w:r><w:t>识字表</w:t></w:r></w:p>`)
	for _, tbl := range tables {
		sb.WriteString(TableXML(tbl))
		sb.WriteString(`<w:p/>`)
	}
	sb.WriteString(`</w:body></w:document>`)
	return sb.String()
}

// TableXML renders one w:tbl. Each cell's text is one run inside one
// paragraph; an empty string renders an empty cell.
func TableXML(tbl Table) string {
	var sb strings.Builder
	sb.WriteString(`<w:tbl><w:tblPr><w:tblW w:w="0" w:type="auto"/></w:tblPr>`)
	for _, row := range tbl {
		sb.WriteString(`<w:tr>`)
		for _, cell := range row {
			sb.WriteString(`<w:tc><w:tcPr><w:tcW w:w="1000" w:type="dxa"/></w:tcPr><w:p>`)
			if cell != "" {
				sb.WriteString(`<w:r><w:t xml:space="preserve">`)
				xml.EscapeText(&sb, []byte(cell))
				sb.WriteString(`</w:t></w:r>`)
			}
			sb.WriteString(`</w:p></w:tc>`)
		}
		sb.WriteString(`</w:tr>`)
	}
	sb.WriteString(`</w:tbl>`)
	return sb.String()
}

// WriteArchive writes a zip archive with the given members into a temp
// directory and returns its path.
func WriteArchive(t *testing.T, members map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "input.docx")
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating archive: %v", err)
	}
	defer file.Close()

	zw := zip.NewWriter(file)
	for name, content := range members {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("creating member %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("writing member %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing archive: %v", err)
	}

	return path
}

// WriteDocx writes a minimal .docx whose body is documentXML.
func WriteDocx(t *testing.T, documentXML string) string {
	t.Helper()

	return WriteArchive(t, map[string]string{
		"[Content_Types].xml": contentTypes,
		"_rels/.rels":         rels,
		"word/document.xml":   documentXML,
	})
}

// WriteTables writes a minimal .docx holding the given tables.
func WriteTables(t *testing.T, tables ...Table) string {
	t.Helper()

	return WriteDocx(t, DocumentXML(tables...))
}
