package godxf

import (
	"bufio"
	"fmt"
	"io"
)

// TagSink consumes tags for serialization. Implementations treat any error as
// terminal for the current encode call.
type TagSink interface {
	WriteTag(code int, value string) error
}

// Writer emits tags in canonical two-line form: the group code right-aligned
// to three characters, then the raw value. Call Flush when done.
type Writer struct {
	bw     *bufio.Writer
	failed error
}

// NewWriter wraps an io.Writer as a tag sink.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriter(w)}
}

// WriteTag appends one (code, value) pair to the output.
func (w *Writer) WriteTag(code int, value string) error {
	if w.failed != nil {
		return w.failed
	}
	if _, err := fmt.Fprintf(w.bw, "%3d\n%s\n", code, value); err != nil {
		w.failed = streamError(0, err)
		return w.failed
	}
	return nil
}

// Flush drains buffered output to the underlying writer.
func (w *Writer) Flush() error {
	if w.failed != nil {
		return w.failed
	}
	if err := w.bw.Flush(); err != nil {
		w.failed = streamError(0, err)
		return w.failed
	}
	return nil
}
