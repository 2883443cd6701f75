package chartable

import "fmt"

// InputError reports an unreadable, non-zip or malformed input document.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("input error: %s: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// ExtractionError reports that no usable char table was found.
type ExtractionError struct {
	Reason string
}

func (e *ExtractionError) Error() string {
	return "extraction error: " + e.Reason
}

// OutputError reports that the output document could not be written.
type OutputError struct {
	Path string
	Err  error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("output error: %s: %v", e.Path, e.Err)
}

func (e *OutputError) Unwrap() error { return e.Err }
