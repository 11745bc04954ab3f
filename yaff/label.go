package yaff

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Label identifies a glyph. It is a closed sum: CodepointLabel, CharLabel or
// TagLabel.
type Label interface {
	fmt.Stringer

	// Semantic returns the comparable identity of the label. Codepoint
	// and character-literal labels naming the same character sequence
	// share one identity; this is the key glyph lookup and uniqueness
	// checking use.
	Semantic() SemanticLabel

	isLabel()
}

// SemanticLabel is the normalized, comparable form of a Label: either a tag
// name or a character sequence.
type SemanticLabel struct {
	IsTag bool
	Text  string
}

func (l SemanticLabel) String() string {
	if l.IsTag {
		return "`" + l.Text + "`"
	}
	return l.Text
}

// CodepointLabel is a label written in numeric codepoint notation, one or
// more code points for combining sequences.
type CodepointLabel []rune

func (l CodepointLabel) isLabel() {}

func (l CodepointLabel) String() string {
	parts := make([]string, len(l))
	for i, r := range l {
		parts[i] = fmt.Sprintf("0x%02x", r)
	}
	return strings.Join(parts, ", ")
}

func (l CodepointLabel) Semantic() SemanticLabel {
	return SemanticLabel{Text: string(l)}
}

// CharLabel is a label written as a quoted character literal (or u+XXXX
// notation), one or more characters.
type CharLabel []rune

func (l CharLabel) isLabel() {}

func (l CharLabel) String() string {
	return "'" + strings.ReplaceAll(string(l), "'", "''") + "'"
}

func (l CharLabel) Semantic() SemanticLabel {
	return SemanticLabel{Text: string(l)}
}

// TagLabel is an arbitrary identifier for a glyph with no character
// identity, written double-quoted in source.
type TagLabel string

func (l TagLabel) isLabel() {}

func (l TagLabel) String() string {
	return `"` + strings.ReplaceAll(string(l), `"`, `""`) + `"`
}

func (l TagLabel) Semantic() SemanticLabel {
	return SemanticLabel{IsTag: true, Text: string(l)}
}

// parseLabel decodes the text of a label line (without the closing colon).
// The three sub-grammars are tried in a fixed order to keep the grammar
// unambiguous: character literal first, then codepoint notation, then tag.
func parseLabel(head string) (Label, bool) {
	toks, ok := splitLabelTokens(head)
	if !ok || len(toks) == 0 {
		return nil, false
	}
	if chars, ok := parseCharTokens(toks); ok {
		return CharLabel(chars), true
	}
	if cps, ok := parseCodepointTokens(toks); ok {
		return CodepointLabel(cps), true
	}
	if len(toks) == 1 {
		if tag, ok := unquoteLabel(toks[0], '"'); ok && tag != "" {
			return TagLabel(tag), true
		}
	}
	return nil, false
}

// splitLabelTokens splits a label head on commas outside quoted sections.
func splitLabelTokens(head string) ([]string, bool) {
	var toks []string
	rest := strings.TrimSpace(head)
	for rest != "" {
		var tok string
		if rest[0] == '\'' || rest[0] == '"' {
			end := quotedEnd(rest, rest[0])
			if end < 0 {
				return nil, false
			}
			tok, rest = rest[:end], rest[end:]
		} else if i := strings.IndexByte(rest, ','); i >= 0 {
			tok, rest = rest[:i], rest[i:]
		} else {
			tok, rest = rest, ""
		}
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return nil, false
		}
		toks = append(toks, tok)
		rest = strings.TrimSpace(rest)
		if rest != "" {
			if rest[0] != ',' {
				return nil, false
			}
			rest = strings.TrimSpace(rest[1:])
			if rest == "" {
				return nil, false
			}
		}
	}
	return toks, true
}

// quotedEnd returns the index just past the closing quote of a quoted token
// starting at s[0], honoring escaping-by-doubling, or -1.
func quotedEnd(s string, q byte) int {
	i := 1
	for i < len(s) {
		j := strings.IndexByte(s[i:], q)
		if j < 0 {
			return -1
		}
		i += j + 1
		if i < len(s) && s[i] == q {
			i++
			continue
		}
		return i
	}
	return -1
}

// unquoteLabel strips surrounding q quotes and collapses doubled ones.
func unquoteLabel(s string, q byte) (string, bool) {
	if len(s) < 2 || s[0] != q || s[len(s)-1] != q {
		return "", false
	}
	if quotedEnd(s, q) != len(s) {
		return "", false
	}
	body := s[1 : len(s)-1]
	return strings.ReplaceAll(body, string([]byte{q, q}), string(q)), true
}

func parseCharTokens(toks []string) ([]rune, bool) {
	var chars []rune
	for _, tok := range toks {
		switch {
		case strings.HasPrefix(tok, "u+"), strings.HasPrefix(tok, "U+"):
			v, err := strconv.ParseUint(tok[2:], 16, 32)
			if err != nil || !utf8.ValidRune(rune(v)) {
				return nil, false
			}
			chars = append(chars, rune(v))
		case len(tok) > 0 && tok[0] == '\'':
			body, ok := unquoteLabel(tok, '\'')
			if !ok {
				return nil, false
			}
			chars = append(chars, []rune(body)...)
		default:
			return nil, false
		}
	}
	if len(chars) == 0 {
		return nil, false
	}
	return chars, true
}

func parseCodepointTokens(toks []string) ([]rune, bool) {
	cps := make([]rune, 0, len(toks))
	for _, tok := range toks {
		base := 10
		digits := tok
		switch {
		case strings.HasPrefix(tok, "0x"), strings.HasPrefix(tok, "0X"):
			base, digits = 16, tok[2:]
		case strings.HasPrefix(tok, "0o"), strings.HasPrefix(tok, "0O"):
			base, digits = 8, tok[2:]
		}
		v, err := strconv.ParseUint(digits, base, 32)
		if err != nil || !utf8.ValidRune(rune(v)) {
			return nil, false
		}
		cps = append(cps, rune(v))
	}
	return cps, true
}
