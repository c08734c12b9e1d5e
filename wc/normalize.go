package wc

import (
	"io"
)

// DELIM replaces digits and punctuation in normalized text and marks
// a sentence boundary.  It is never a word byte.
const DELIM = '.'

// ispunct in the C locale: printable ASCII that is neither alphanumeric
// nor space.
func isPunct(c byte) bool {
	return (c >= '!' && c <= '/') || (c >= ':' && c <= '@') || (c >= '[' && c <= '`') || (c >= '{' && c <= '~')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isWord matches the bytes of regexp \w.
func isWord(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || isDigit(c) || c == '_'
}

func NormalizeByte(c byte) byte {
	switch {
	case c == '\n' || c == '\t':
		return ' '
	case isDigit(c) || isPunct(c):
		return DELIM
	case c >= 'A' && c <= 'Z':
		return c + ('a' - 'A')
	}
	return c
}

// Normalize rewrites b in place.
func Normalize(b []byte) []byte {
	for i, c := range b {
		b[i] = NormalizeByte(c)
	}
	return b
}

// Reader normalizes bytes as they are read from the underlying reader.
type Reader struct {
	rdr io.Reader
}

func NewReader(rdr io.Reader) *Reader {
	return &Reader{rdr}
}

func (r *Reader) Read(p []byte) (int, error) {
	n, err := r.rdr.Read(p)
	Normalize(p[:n])
	return n, err
}
