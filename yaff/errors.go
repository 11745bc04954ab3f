package yaff

import (
	"fmt"
	"strings"
)

// ErrorKind discriminates the closed set of parse error categories.
type ErrorKind int

const (
	MalformedLine ErrorKind = iota
	MalformedProperty
	DuplicateProperty
	MalformedLabel
	DuplicateLabel
	InconsistentGlyphWidth
	MalformedGlyphRow
	InvalidCellCharacter
	EmptyFont
)

func (k ErrorKind) String() string {
	switch k {
	case MalformedLine:
		return "malformed line"
	case MalformedProperty:
		return "malformed property"
	case DuplicateProperty:
		return "duplicate property"
	case MalformedLabel:
		return "malformed label"
	case DuplicateLabel:
		return "duplicate label"
	case InconsistentGlyphWidth:
		return "inconsistent glyph width"
	case MalformedGlyphRow:
		return "malformed glyph row"
	case InvalidCellCharacter:
		return "invalid cell character"
	case EmptyFont:
		return "empty font"
	}
	return "unknown error"
}

// ParseError is one problem found in the input. Line is the 1-based source
// line the problem was detected on. OtherLine is set for duplicate errors
// and names the earlier occurrence. Name carries the offending property name
// or label text where one exists.
type ParseError struct {
	Kind      ErrorKind
	Line      int
	OtherLine int
	Name      string
	Detail    string
}

func (e *ParseError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "line %d: %s", e.Line, e.Kind)
	if e.Name != "" {
		fmt.Fprintf(&sb, " %q", e.Name)
	}
	if e.Detail != "" {
		fmt.Fprintf(&sb, ": %s", e.Detail)
	}
	if e.OtherLine != 0 {
		fmt.Fprintf(&sb, " (first seen on line %d)", e.OtherLine)
	}
	return sb.String()
}

// ErrorList is every problem found in one parse, ordered by source line
// number. A failed Parse always returns a non-empty ErrorList and no
// Document.
type ErrorList []*ParseError

func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	var sb strings.Builder
	sb.WriteString(l[0].Error())
	for _, e := range l[1:] {
		sb.WriteString("\n")
		sb.WriteString(e.Error())
	}
	return sb.String()
}
