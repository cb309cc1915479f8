package godxf

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// TagSource abstracts over polymorphic tag inputs. NextTag returns io.EOF at
// the end of a well-formed stream; any other error is terminal and the source
// must be considered unusable afterwards.
type TagSource interface {
	NextTag() (Tag, error)
	// Unread pushes one tag back; the next NextTag returns it again. At most
	// one tag of lookahead is supported.
	Unread(Tag)
	// Line reports the 1-based line number of the most recently read tag.
	Line() int
}

// Reader turns a line-oriented input into an ordered, lazy sequence of tags.
// Each tag occupies two lines: the integer group code, then the raw value.
// Code-999 comment tags are consumed transparently.
type Reader struct {
	br     *bufio.Reader
	line   int
	pushed *Tag
	failed error // sticky after the first terminal error
}

// NewReader wraps an io.Reader as a tag Source.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// NewBytes wraps a byte slice as a tag Source.
func NewBytes(b []byte) *Reader { return NewReader(bytes.NewReader(b)) }

// NextTag reads one (code, value) pair. Comment tags (999) are skipped.
func (r *Reader) NextTag() (Tag, error) {
	if r.pushed != nil {
		t := *r.pushed
		r.pushed = nil
		return t, nil
	}
	if r.failed != nil {
		return Tag{}, r.failed
	}
	for {
		t, err := r.readPair()
		if err != nil {
			if err != io.EOF {
				r.failed = err
			}
			return Tag{}, err
		}
		if t.Code == CodeComment {
			continue
		}
		return t, nil
	}
}

func (r *Reader) readPair() (Tag, error) {
	codeLine, err := r.readLine()
	if err != nil {
		if err == io.EOF {
			return Tag{}, io.EOF
		}
		return Tag{}, streamError(r.line, err)
	}
	tagLine := r.line
	code, err := strconv.Atoi(strings.TrimSpace(codeLine))
	if err != nil {
		return Tag{}, streamError(tagLine, fmt.Errorf("malformed group code line %q", codeLine))
	}
	value, err := r.readLine()
	if err != nil {
		if err == io.EOF {
			// A code with no value line is a truncated stream, not a clean end.
			return Tag{}, streamError(tagLine, io.ErrUnexpectedEOF)
		}
		return Tag{}, streamError(r.line, err)
	}
	return Tag{Code: code, Value: value, Line: tagLine}, nil
}

// readLine returns the next line with the trailing newline (and any carriage
// return) removed. Returns io.EOF only when no data remains at all.
func (r *Reader) readLine() (string, error) {
	s, err := r.br.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			if s == "" {
				return "", io.EOF
			}
			// final line without newline
		} else {
			return "", err
		}
	}
	r.line++
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	return s, nil
}

// Unread pushes t back onto the stream. Only one tag of pushback is held; a
// second Unread before a NextTag overwrites the first.
func (r *Reader) Unread(t Tag) { r.pushed = &t }

// Line reports the line number of the last tag's group code line.
func (r *Reader) Line() int { return r.line }
