package yaff

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bitmap-font/studio/yaff/internal/syntax"
)

type decoder struct {
	errs ErrorList
}

func (d *decoder) add(e *ParseError) {
	d.errs = append(d.errs, e)
}

func faultError(f syntax.Fault) *ParseError {
	switch f.Kind {
	case syntax.FaultPlainLabel:
		return &ParseError{Kind: MalformedLabel, Line: f.Line,
			Detail: "the deprecated unquoted label form is not supported"}
	case syntax.FaultOrphanRow:
		return &ParseError{Kind: MalformedLine, Line: f.Line,
			Detail: "glyph row without a preceding label"}
	case syntax.FaultStrayIndent:
		return &ParseError{Kind: MalformedLine, Line: f.Line,
			Detail: "continuation line without a preceding property"}
	case syntax.FaultRowWidth:
		return &ParseError{Kind: InconsistentGlyphWidth, Line: f.Line,
			Detail: fmt.Sprintf("row has %d cells, the first row has %d", f.Got, f.Want)}
	case syntax.FaultRowAfterEmpty:
		return &ParseError{Kind: MalformedGlyphRow, Line: f.Line,
			Detail: "glyph row after the empty-glyph marker"}
	case syntax.FaultNakedLabel:
		return &ParseError{Kind: MalformedLabel, Line: f.Line,
			Detail: "label without a glyph body"}
	default:
		return &ParseError{Kind: MalformedLine, Line: f.Line}
	}
}

func decodeDocument(blocks []syntax.FontBlock, faults []syntax.Fault) (*Document, ErrorList) {
	d := &decoder{}
	for _, f := range faults {
		d.add(faultError(f))
	}

	doc := &Document{Fonts: make([]Font, 0, len(blocks))}
	for _, b := range blocks {
		doc.Fonts = append(doc.Fonts, d.font(b))
	}
	if len(blocks) == 0 {
		d.add(&ParseError{Kind: EmptyFont, Line: 1, Detail: "document contains no fonts"})
	}

	if len(d.errs) > 0 {
		sort.SliceStable(d.errs, func(i, j int) bool {
			return d.errs[i].Line < d.errs[j].Line
		})
		return nil, d.errs
	}
	return doc, nil
}

func (d *decoder) font(b syntax.FontBlock) Font {
	f := Font{
		Props:   make(map[string]Property, len(b.Props)),
		Line:    b.Line,
		byLabel: make(map[SemanticLabel]int),
	}
	d.props(f.Props, b.Props)
	for _, c := range b.Comments {
		f.Comments = append(f.Comments, Comment{Text: commentText(c.Text), Line: c.Line})
	}

	seen := make(map[SemanticLabel]int)
	for gi := range b.Glyphs {
		gb := b.Glyphs[gi]
		g := Glyph{Line: gb.Line}
		for _, lr := range gb.Labels {
			label, ok := parseLabel(lr.Head)
			if !ok {
				d.add(&ParseError{Kind: MalformedLabel, Line: lr.Line, Name: lr.Head})
				continue
			}
			g.Labels = append(g.Labels, label)
			key := label.Semantic()
			if first, dup := seen[key]; dup {
				d.add(&ParseError{Kind: DuplicateLabel, Line: lr.Line,
					OtherLine: first, Name: label.String()})
				continue
			}
			seen[key] = lr.Line
			f.byLabel[key] = gi
		}
		g.Grid = d.grid(gb)
		if len(gb.Props) > 0 {
			g.Props = make(map[string]Property, len(gb.Props))
			d.props(g.Props, gb.Props)
		}
		f.Glyphs = append(f.Glyphs, g)
	}

	if len(f.Props) == 0 && len(f.Glyphs) == 0 {
		d.add(&ParseError{Kind: EmptyFont, Line: b.Line,
			Detail: "font has neither properties nor glyphs"})
	}
	return f
}

// props decodes one property scope. Duplicate names keep the first value
// and report the later assignment.
func (d *decoder) props(dst map[string]Property, src []syntax.PropertyBlock) {
	for _, pb := range src {
		if pb.Value == "" {
			d.add(&ParseError{Kind: MalformedProperty, Line: pb.Line, Name: pb.Key,
				Detail: "property has no value"})
		}
		if prev, dup := dst[pb.Key]; dup {
			d.add(&ParseError{Kind: DuplicateProperty, Line: pb.Line,
				OtherLine: prev.Line, Name: pb.Key})
			continue
		}
		dst[pb.Key] = Property{Value: propertyValue(pb.Value), Line: pb.Line}
	}
}

// propertyValue strips the optional surrounding double quotes from each line
// of a (possibly multi-line) property value.
func propertyValue(v string) string {
	lines := strings.Split(v, "\n")
	for i, ln := range lines {
		if len(ln) >= 2 && ln[0] == '"' && ln[len(ln)-1] == '"' {
			lines[i] = ln[1 : len(ln)-1]
		}
	}
	return strings.Join(lines, "\n")
}

func commentText(raw string) string {
	t := strings.TrimLeft(raw, " \t")
	t = strings.TrimPrefix(t, "#")
	return strings.TrimPrefix(t, " ")
}

func (d *decoder) grid(gb syntax.GlyphBlock) Grid {
	if gb.Empty {
		return Grid{}
	}
	g := make(Grid, 0, len(gb.Rows))
	for _, rr := range gb.Rows {
		g = append(g, d.row(rr))
	}
	return g
}

// row decodes one raw grid row. A single space between two cell characters
// is visual spacing and is dropped; longer runs are an error. Each row
// reports at most one spacing error and one character error.
func (d *decoder) row(rr syntax.RowRef) []Cell {
	cells := make([]Cell, 0, len(rr.Text))
	gap := 0
	badGap, badChar := false, false
	for i := 0; i < len(rr.Text); i++ {
		b := rr.Text[i]
		if b == ' ' {
			gap++
			if gap > 1 && !badGap {
				d.add(&ParseError{Kind: MalformedGlyphRow, Line: rr.Line,
					Detail: "more than one space between cells"})
				badGap = true
			}
			continue
		}
		gap = 0
		c, ok := decodeCell(b)
		if !ok {
			if !badChar {
				d.add(&ParseError{Kind: InvalidCellCharacter, Line: rr.Line,
					Detail: fmt.Sprintf("%q cannot be part of a glyph row", rune(b))})
				badChar = true
			}
			continue
		}
		cells = append(cells, c)
	}
	return cells
}
