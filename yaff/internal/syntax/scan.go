// Package syntax implements the first two stages of yaff parsing: splitting
// raw text into classified lines, and grouping those lines into font blocks.
// The types here are raw and positional; decoding into the typed font model
// happens in the parent package.
package syntax

import "strings"

// LineKind tags the syntactic shape of one physical line.
type LineKind int

const (
	Blank LineKind = iota
	Comment
	Property
	Label
	GlyphRow
	Continuation
	Malformed
)

func (k LineKind) String() string {
	switch k {
	case Blank:
		return "blank"
	case Comment:
		return "comment"
	case Property:
		return "property"
	case Label:
		return "label"
	case GlyphRow:
		return "glyph row"
	case Continuation:
		return "continuation"
	default:
		return "malformed"
	}
}

// Line is one classified physical line.
type Line struct {
	Number int // 1-based
	Text   string
	Kind   LineKind

	// Key and Value are set for Property lines: the identifier before the
	// colon and the (trimmed) remainder of the line after it.
	Key   string
	Value string

	// Head is set for Label lines: the label text before the closing colon.
	Head string
}

const commentMarker = '#'

// Scanner classifies input lines one at a time, in a single forward pass.
// It follows the bufio.Scanner calling convention:
//
//	sc := syntax.NewScanner(text)
//	for sc.Scan() {
//		ln := sc.Line()
//		...
//	}
type Scanner struct {
	rest string
	num  int
	cur  Line
	done bool
}

func NewScanner(text string) *Scanner {
	// A byte-order mark may be included at the start of the file.
	text = strings.TrimPrefix(text, "\uFEFF")
	return &Scanner{rest: text}
}

// Scan advances to the next line. It returns false once the input is
// exhausted.
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}
	var text string
	if i := strings.IndexByte(s.rest, '\n'); i >= 0 {
		text, s.rest = s.rest[:i], s.rest[i+1:]
	} else {
		text, s.rest = s.rest, ""
		s.done = true
		if text == "" && s.num > 0 {
			// Trailing newline on the previous line, not an extra
			// blank line.
			return false
		}
		if text == "" && s.num == 0 {
			// Empty input has no lines at all.
			return false
		}
	}
	text = strings.TrimSuffix(text, "\r")
	s.num++
	s.cur = classify(s.num, text)
	return true
}

// Line returns the line most recently produced by Scan.
func (s *Scanner) Line() Line {
	return s.cur
}

func classify(num int, text string) Line {
	ln := Line{Number: num, Text: text}

	trimmed := strings.TrimLeft(text, " \t")
	switch {
	case trimmed == "":
		ln.Kind = Blank
		return ln
	case trimmed[0] == commentMarker:
		ln.Kind = Comment
		return ln
	}

	if text[0] == ' ' || text[0] == '\t' {
		if isGlyphRowShape(trimmed) {
			ln.Kind = GlyphRow
			return ln
		}
		ln.Kind = Continuation
		return ln
	}

	if head, ok := labelHead(text); ok {
		ln.Kind = Label
		ln.Head = head
		return ln
	}
	if key, value, ok := propertyParts(text); ok {
		ln.Kind = Property
		ln.Key = key
		ln.Value = value
		return ln
	}
	ln.Kind = Malformed
	return ln
}

// IsCellChar reports whether b is a legal glyph cell character: the paper
// character '.', the ink character '@', or a hexadecimal color index digit.
func IsCellChar(b byte) bool {
	switch {
	case b == '.' || b == '@':
		return true
	case b >= '0' && b <= '9':
		return true
	case b >= 'A' && b <= 'F':
		return true
	}
	return false
}

// EmptyGlyphMarker is the body of a glyph definition with no bitmap.
const EmptyGlyphMarker = "-"

// isGlyphRowShape reports whether the trimmed body of an indented line looks
// like a glyph row: cell characters possibly separated by spaces, or the
// lone empty-glyph marker. Spacing rules (at most one gap character) are not
// enforced here; the decoder reports those with a proper error.
func isGlyphRowShape(trimmed string) bool {
	if trimmed == EmptyGlyphMarker {
		return true
	}
	seen := false
	for i := 0; i < len(trimmed); i++ {
		switch {
		case IsCellChar(trimmed[i]):
			seen = true
		case trimmed[i] == ' ':
			// interior spacing, checked later
		default:
			return false
		}
	}
	return seen
}

func isIdentByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	case b == '_' || b == '-' || b == '.':
		return true
	}
	return false
}

// propertyParts splits a column-0 line of the shape `identifier ':' rest`.
func propertyParts(text string) (key, value string, ok bool) {
	i := strings.IndexByte(text, ':')
	if i <= 0 {
		return "", "", false
	}
	key = strings.TrimRight(text[:i], " \t")
	if key == "" {
		return "", "", false
	}
	for j := 0; j < len(key); j++ {
		if !isIdentByte(key[j]) {
			return "", "", false
		}
	}
	return key, strings.TrimSpace(text[i+1:]), true
}

// labelHead recognizes a glyph label line: one or more comma-separated label
// tokens followed by a colon and nothing else. A token is a quoted character
// literal ('x'), a quoted tag ("x"), a u+XXXX character notation, or a
// numeric codepoint (decimal, 0x hex, 0o octal). A single bare identifier
// that is not numeric is NOT a label; `name:` at column 0 is always a
// property line, the deprecated plain-label form is unsupported.
func labelHead(text string) (head string, ok bool) {
	rest := text
	quoted := false
	numeric := true
	for {
		tok, tail, q, n := labelToken(rest)
		if tok == "" {
			return "", false
		}
		quoted = quoted || q
		numeric = numeric && n
		rest = strings.TrimLeft(tail, " \t")
		if rest == "" {
			return "", false
		}
		if rest[0] == ',' {
			rest = strings.TrimLeft(rest[1:], " \t")
			continue
		}
		break
	}
	if rest[0] != ':' || strings.TrimSpace(rest[1:]) != "" {
		return "", false
	}
	if !quoted && !numeric {
		// Bare identifiers fall through to property classification.
		return "", false
	}
	end := len(text) - len(rest)
	return strings.TrimRight(text[:end], " \t"), true
}

// labelToken consumes one label token from the front of s. It reports
// whether the token was quote-delimited, and whether it is a recognized
// codepoint or u+ notation.
func labelToken(s string) (tok, tail string, quoted, numeric bool) {
	if s == "" {
		return "", "", false, false
	}
	if s[0] == '\'' || s[0] == '"' {
		q := s[0]
		i := 1
		for i < len(s) {
			j := strings.IndexByte(s[i:], q)
			if j < 0 {
				return "", "", false, false
			}
			i += j + 1
			// Doubled quote characters stay inside the token.
			if i < len(s) && s[i] == q {
				i++
				continue
			}
			return s[:i], s[i:], true, false
		}
		return "", "", false, false
	}
	i := 0
	for i < len(s) && (isIdentByte(s[i]) || s[i] == '+') {
		i++
	}
	if i == 0 {
		return "", "", false, false
	}
	return s[:i], s[i:], false, isCodepointToken(s[:i])
}

// isCodepointToken reports whether tok is numeric codepoint notation:
// decimal digits, 0x/0X hex, 0o/0O octal, or u+/U+ hex.
func isCodepointToken(tok string) bool {
	isDigits := func(s string, hex bool) bool {
		if s == "" {
			return false
		}
		for i := 0; i < len(s); i++ {
			b := s[i]
			switch {
			case b >= '0' && b <= '9':
			case hex && (b >= 'a' && b <= 'f' || b >= 'A' && b <= 'F'):
			default:
				return false
			}
		}
		return true
	}
	switch {
	case strings.HasPrefix(tok, "0x"), strings.HasPrefix(tok, "0X"):
		return isDigits(tok[2:], true)
	case strings.HasPrefix(tok, "0o"), strings.HasPrefix(tok, "0O"):
		return isDigits(tok[2:], false)
	case strings.HasPrefix(tok, "u+"), strings.HasPrefix(tok, "U+"):
		return isDigits(tok[2:], true)
	default:
		return isDigits(tok, false)
	}
}
