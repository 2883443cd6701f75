// Package docx reads tables out of .docx (WordprocessingML) documents.
package docx

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/f3rmion/chartable/internal/chartable"
)

// DocumentMember is the archive member holding the document body.
const DocumentMember = "word/document.xml"

// ErrNoDocument is returned when the archive has no document body member.
var ErrNoDocument = errors.New(DocumentMember + " not found in archive")

// ReadDocumentXML opens the .docx at path and returns the raw bytes of its
// document body.
func ReadDocumentXML(path string) ([]byte, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, &chartable.InputError{Path: path, Err: fmt.Errorf("opening zip: %w", err)}
	}
	defer r.Close()

	for _, f := range r.File {
		if f.Name != DocumentMember {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, &chartable.InputError{Path: path, Err: fmt.Errorf("opening %s: %w", DocumentMember, err)}
		}
		defer rc.Close()

		data, err := io.ReadAll(rc)
		if err != nil {
			return nil, &chartable.InputError{Path: path, Err: fmt.Errorf("reading %s: %w", DocumentMember, err)}
		}
		return data, nil
	}

	return nil, &chartable.InputError{Path: path, Err: ErrNoDocument}
}

// ReadTables reads the .docx at path and returns every table of its
// document body in document order.
func ReadTables(path string) ([]chartable.Table, error) {
	data, err := ReadDocumentXML(path)
	if err != nil {
		return nil, err
	}

	tables, err := ParseTables(bytes.NewReader(data))
	if err != nil {
		return nil, &chartable.InputError{Path: path, Err: err}
	}

	return tables, nil
}
