package syntax

import "strings"

// Raw, undecoded building blocks produced by the grouper. Values are kept as
// written (labels still quoted, rows still spaced); the decoder owns the
// sub-grammars.

// PropertyBlock is one property assignment with its continuation lines
// already folded in (newline-joined).
type PropertyBlock struct {
	Key   string
	Value string
	Line  int
}

// LabelRef is one label line heading a glyph block.
type LabelRef struct {
	Head string
	Line int
}

// RowRef is one raw glyph grid row, indentation stripped.
type RowRef struct {
	Text string
	Line int
}

// CommentRef is a comment line, kept for diagnostics and future
// format-preserving output.
type CommentRef struct {
	Text string
	Line int
}

// GlyphBlock is one glyph definition: a run of labels followed by a grid (or
// the empty-glyph marker) and optional indented glyph properties.
type GlyphBlock struct {
	Labels []LabelRef
	Rows   []RowRef
	Empty  bool // body was the empty-glyph marker
	Props  []PropertyBlock
	Line   int
}

// FontBlock is one font: properties, glyphs and comments in source order.
type FontBlock struct {
	Props    []PropertyBlock
	Glyphs   []GlyphBlock
	Comments []CommentRef
	Line     int
}

// FaultKind enumerates structural problems found during grouping.
type FaultKind int

const (
	FaultMalformedLine FaultKind = iota
	FaultPlainLabel    // deprecated unquoted label followed by a grid
	FaultOrphanRow     // grid row with no preceding label
	FaultStrayIndent   // indented line with nothing to continue
	FaultRowWidth      // row cell count differs from the first row
	FaultRowAfterEmpty // grid row after the empty-glyph marker
	FaultNakedLabel    // label run with no grid or empty-glyph marker
)

// Fault is one structural error. Want/Got are only meaningful for
// FaultRowWidth.
type Fault struct {
	Kind FaultKind
	Line int
	Want int
	Got  int
}

// DefaultFontSeparator is the minimum run of consecutive blank lines that
// separates two fonts within one document. A single blank line only
// separates glyphs.
const DefaultFontSeparator = 2

// Group assembles the classified line sequence into font blocks. Structural
// faults are accumulated; grouping continues past recoverable ones, and an
// unrecoverable fault (a grid row with no label to attach to) skips the
// remainder of the current font block only.
func Group(sc *Scanner, fontSeparator int) ([]FontBlock, []Fault) {
	if fontSeparator < 1 {
		fontSeparator = DefaultFontSeparator
	}

	g := &grouper{sep: fontSeparator}
	for sc.Scan() {
		g.line(sc.Line())
	}
	g.closeFont()
	return g.fonts, g.faults
}

type grouper struct {
	sep    int
	fonts  []FontBlock
	faults []Fault

	font   *FontBlock
	glyph  *GlyphBlock
	prop   *PropertyBlock // continuation target, font- or glyph-level
	blanks int
	skip   bool // fault recovery: ignore lines until the next font boundary
}

func (g *grouper) fault(kind FaultKind, line int) {
	g.faults = append(g.faults, Fault{Kind: kind, Line: line})
}

// content is called before handling any non-blank line. It applies the
// font-boundary rule and makes sure a current font exists.
func (g *grouper) content(line int) {
	if g.blanks >= g.sep && g.font != nil {
		g.closeFont()
	}
	g.blanks = 0
	if g.font == nil {
		g.fonts = append(g.fonts, FontBlock{Line: line})
		g.font = &g.fonts[len(g.fonts)-1]
		g.skip = false
	}
}

func (g *grouper) closeGlyph() {
	if g.glyph == nil {
		return
	}
	if len(g.glyph.Rows) == 0 && !g.glyph.Empty {
		g.fault(FaultNakedLabel, g.glyph.Line)
		g.glyph = nil
		return
	}
	g.font.Glyphs = append(g.font.Glyphs, *g.glyph)
	g.glyph = nil
}

func (g *grouper) closeFont() {
	if g.font == nil {
		return
	}
	g.closeGlyph()
	g.font = nil
	g.prop = nil
	g.skip = false
}

func (g *grouper) line(ln Line) {
	if ln.Kind == Blank {
		g.blanks++
		if g.font != nil {
			g.closeGlyph()
			g.prop = nil
		}
		return
	}
	if g.skip && g.blanks < g.sep {
		g.blanks = 0
		return
	}

	switch ln.Kind {
	case Comment:
		g.content(ln.Number)
		g.font.Comments = append(g.font.Comments, CommentRef{Text: ln.Text, Line: ln.Number})

	case Property:
		g.content(ln.Number)
		g.closeGlyph()
		g.font.Props = append(g.font.Props, PropertyBlock{Key: ln.Key, Value: ln.Value, Line: ln.Number})
		g.prop = &g.font.Props[len(g.font.Props)-1]

	case Label:
		g.content(ln.Number)
		g.prop = nil
		if g.glyph != nil && (len(g.glyph.Rows) > 0 || g.glyph.Empty || len(g.glyph.Props) > 0) {
			// A label directly after a finished grid starts the
			// next glyph even without a separating blank line.
			g.closeGlyph()
		}
		if g.glyph == nil {
			g.glyph = &GlyphBlock{Line: ln.Number}
		}
		g.glyph.Labels = append(g.glyph.Labels, LabelRef{Head: ln.Head, Line: ln.Number})

	case GlyphRow:
		g.content(ln.Number)
		g.row(ln)

	case Continuation:
		g.content(ln.Number)
		g.continuation(ln)

	default: // Malformed
		g.content(ln.Number)
		g.prop = nil
		g.fault(FaultMalformedLine, ln.Number)
	}
}

func (g *grouper) row(ln Line) {
	text := strings.TrimLeft(ln.Text, " \t")
	text = strings.TrimRight(text, " \t")

	if g.glyph == nil || len(g.glyph.Props) > 0 {
		if g.prop != nil {
			// An indented grid following `name:` is the deprecated
			// plain-label form; it is rejected rather than read as
			// either a label or a property value.
			if g.prop.Value == "" {
				g.fault(FaultPlainLabel, g.prop.Line)
				g.dropProp()
				g.prop = nil
				g.skip = true
				return
			}
			// A valued property is never a label, so a following
			// indented line joins the value even when it happens to
			// look like a grid row, unless it opens with a cell or
			// colon.
			if text[0] != ':' && text[0] != '.' && text[0] != '@' {
				g.prop.Value += "\n" + text
				return
			}
			g.fault(FaultOrphanRow, ln.Number)
			g.prop = nil
			g.skip = true
			return
		}
		// A grid with no preceding label makes the rest of this font
		// block meaningless.
		g.fault(FaultOrphanRow, ln.Number)
		g.skip = true
		return
	}

	g.prop = nil
	if text == EmptyGlyphMarker {
		if len(g.glyph.Rows) > 0 || g.glyph.Empty {
			g.fault(FaultRowAfterEmpty, ln.Number)
			return
		}
		g.glyph.Empty = true
		return
	}
	if g.glyph.Empty {
		g.fault(FaultRowAfterEmpty, ln.Number)
		return
	}
	g.appendRow(text, ln.Number)
}

// appendRow adds one raw grid row to the current glyph, checking the width
// invariant against the first row.
func (g *grouper) appendRow(text string, line int) {
	g.prop = nil
	if len(g.glyph.Rows) > 0 {
		want := cellCount(g.glyph.Rows[0].Text)
		if got := cellCount(text); got != want {
			g.faults = append(g.faults, Fault{Kind: FaultRowWidth, Line: line, Want: want, Got: got})
		}
	}
	g.glyph.Rows = append(g.glyph.Rows, RowRef{Text: text, Line: line})
}

func (g *grouper) continuation(ln Line) {
	trimmed := strings.TrimSpace(ln.Text)

	if g.glyph != nil {
		if len(g.glyph.Rows) > 0 || g.glyph.Empty {
			// Indented `key: value` after a glyph's grid is a
			// glyph-level property override.
			if key, value, ok := propertyParts(trimmed); ok {
				g.glyph.Props = append(g.glyph.Props, PropertyBlock{Key: key, Value: value, Line: ln.Number})
				g.prop = &g.glyph.Props[len(g.glyph.Props)-1]
				return
			}
			if g.prop != nil {
				if g.prop.Value == "" {
					g.prop.Value = trimmed
				} else {
					g.prop.Value += "\n" + trimmed
				}
				return
			}
			if g.glyph.Empty {
				g.fault(FaultRowAfterEmpty, ln.Number)
				return
			}
		}
		// Inside a glyph body every other indented line is a grid
		// row; the decoder reports its illegal characters.
		g.appendRow(trimmed, ln.Number)
		return
	}

	if g.prop != nil {
		if g.prop.Value == "" {
			g.prop.Value = trimmed
		} else {
			g.prop.Value += "\n" + trimmed
		}
		return
	}

	g.fault(FaultStrayIndent, ln.Number)
}

// dropProp removes the most recent font-level property; used when the
// property turned out to be a rejected plain label.
func (g *grouper) dropProp() {
	if n := len(g.font.Props); n > 0 && g.prop == &g.font.Props[n-1] {
		g.font.Props = g.font.Props[:n-1]
	}
}

// cellCount is the column count of a raw row: cell characters only, spacing
// ignored. Spacing legality is the decoder's concern.
func cellCount(text string) int {
	n := 0
	for i := 0; i < len(text); i++ {
		if text[i] != ' ' && text[i] != '\t' {
			n++
		}
	}
	return n
}
