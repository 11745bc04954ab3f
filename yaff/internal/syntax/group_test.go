package syntax

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func group(t *testing.T, text string) ([]FontBlock, []Fault) {
	t.Helper()
	return Group(NewScanner(text), DefaultFontSeparator)
}

func TestGroupSingleFont(t *testing.T) {
	fonts, faults := group(t, `# cozy font
name: cozy
ascent: 7

'A':
	@.@
	.@.

"notdef":
	@@@
	@@@
`)
	if len(faults) != 0 {
		t.Fatalf("unexpected faults: %v", faults)
	}
	if len(fonts) != 1 {
		t.Fatalf("got %d fonts, want 1", len(fonts))
	}

	want := FontBlock{
		Line: 1,
		Props: []PropertyBlock{
			{Key: "name", Value: "cozy", Line: 2},
			{Key: "ascent", Value: "7", Line: 3},
		},
		Comments: []CommentRef{{Text: "# cozy font", Line: 1}},
		Glyphs: []GlyphBlock{
			{
				Line:   5,
				Labels: []LabelRef{{Head: "'A'", Line: 5}},
				Rows:   []RowRef{{Text: "@.@", Line: 6}, {Text: ".@.", Line: 7}},
			},
			{
				Line:   9,
				Labels: []LabelRef{{Head: `"notdef"`, Line: 9}},
				Rows:   []RowRef{{Text: "@@@", Line: 10}, {Text: "@@@", Line: 11}},
			},
		},
	}
	if diff := cmp.Diff(want, fonts[0]); diff != "" {
		t.Errorf("font block mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupLabelAliases(t *testing.T) {
	fonts, faults := group(t, "'A':\n0x41:\n\t@\n")
	if len(faults) != 0 {
		t.Fatalf("unexpected faults: %v", faults)
	}
	g := fonts[0].Glyphs[0]
	if len(g.Labels) != 2 || g.Labels[0].Head != "'A'" || g.Labels[1].Head != "0x41" {
		t.Errorf("label run not collected: %+v", g.Labels)
	}
}

func TestGroupFontBoundary(t *testing.T) {
	text := "name: one\n\n'A':\n\t@\n\n\nname: two\n\n'B':\n\t@\n"
	fonts, faults := group(t, text)
	if len(faults) != 0 {
		t.Fatalf("unexpected faults: %v", faults)
	}
	if len(fonts) != 2 {
		t.Fatalf("got %d fonts, want 2", len(fonts))
	}
	if len(fonts[0].Glyphs) != 1 || len(fonts[1].Glyphs) != 1 {
		t.Errorf("glyphs split wrongly: %d and %d", len(fonts[0].Glyphs), len(fonts[1].Glyphs))
	}
	if fonts[1].Line != 7 {
		t.Errorf("second font starts at line %d, want 7", fonts[1].Line)
	}
}

func TestGroupSingleBlankKeepsFont(t *testing.T) {
	fonts, _ := group(t, "'A':\n\t@\n\n'B':\n\t@\n")
	if len(fonts) != 1 {
		t.Fatalf("got %d fonts, want 1", len(fonts))
	}
	if len(fonts[0].Glyphs) != 2 {
		t.Errorf("got %d glyphs, want 2", len(fonts[0].Glyphs))
	}
}

func TestGroupConfigurableSeparator(t *testing.T) {
	text := "'A':\n\t@\n\n\n'B':\n\t@\n"
	fonts, _ := Group(NewScanner(text), 3)
	if len(fonts) != 1 {
		t.Errorf("separator 3: got %d fonts, want 1", len(fonts))
	}
	fonts, _ = Group(NewScanner(text), 2)
	if len(fonts) != 2 {
		t.Errorf("separator 2: got %d fonts, want 2", len(fonts))
	}
}

func TestGroupContinuation(t *testing.T) {
	fonts, faults := group(t, "notice:\n\tfirst line\n\tsecond line\n")
	if len(faults) != 0 {
		t.Fatalf("unexpected faults: %v", faults)
	}
	p := fonts[0].Props[0]
	if p.Value != "first line\nsecond line" {
		t.Errorf("continuation value %q", p.Value)
	}
}

func TestGroupInlineValuePlusContinuation(t *testing.T) {
	fonts, _ := group(t, "notice: head\n\ttail\n")
	if got := fonts[0].Props[0].Value; got != "head\ntail" {
		t.Errorf("value %q, want %q", got, "head\ntail")
	}
}

func TestGroupValuedPropertyDigitContinuation(t *testing.T) {
	// A valued property can never be a label, so a digit-only line
	// continues the value even though it is shaped like a grid row.
	fonts, faults := group(t, "notice: copyright\n\t1969\n")
	if len(faults) != 0 {
		t.Fatalf("unexpected faults: %v", faults)
	}
	if got := fonts[0].Props[0].Value; got != "copyright\n1969" {
		t.Errorf("value %q, want %q", got, "copyright\n1969")
	}
}

func TestGroupValuedPropertyThenInkRow(t *testing.T) {
	// Continuations never open with a cell or colon; such a line is a
	// grid row with nothing to attach to.
	_, faults := group(t, "notice: copyright\n\t@@@\n")
	if len(faults) != 1 || faults[0].Kind != FaultOrphanRow || faults[0].Line != 2 {
		t.Fatalf("faults = %v, want orphan-row fault on line 2", faults)
	}
}

func TestGroupEmptyGlyphPropertyContinuation(t *testing.T) {
	fonts, faults := group(t, "'A':\n\t@\n\tnote:\n\tsome text\n")
	if len(faults) != 0 {
		t.Fatalf("unexpected faults: %v", faults)
	}
	p := fonts[0].Glyphs[0].Props[0]
	if p.Key != "note" || p.Value != "some text" {
		t.Errorf("glyph property = %+v, want note = %q", p, "some text")
	}
}

func TestGroupPlainLabelRejected(t *testing.T) {
	_, faults := group(t, "A:\n\t@@@\n\t@.@\n")
	if len(faults) != 1 || faults[0].Kind != FaultPlainLabel {
		t.Fatalf("faults = %v, want one plain-label fault", faults)
	}
	if faults[0].Line != 1 {
		t.Errorf("fault on line %d, want 1", faults[0].Line)
	}
}

func TestGroupOrphanRowSkipsFontBlock(t *testing.T) {
	// The second font block must still be grouped.
	_, faults := group(t, "\t@@@\n'A':\n\t@\n\n\nname: two\n")
	if len(faults) == 0 || faults[0].Kind != FaultOrphanRow {
		t.Fatalf("faults = %v, want leading orphan-row fault", faults)
	}
	fonts, _ := group(t, "\t@@@\n\n\nname: two\n")
	if len(fonts) != 2 || len(fonts[1].Props) != 1 {
		t.Fatalf("font after aborted block not grouped: %+v", fonts)
	}
}

func TestGroupRowWidthFault(t *testing.T) {
	_, faults := group(t, "'A':\n\t@.@\n\t@.\n")
	if len(faults) != 1 || faults[0].Kind != FaultRowWidth {
		t.Fatalf("faults = %v, want one row-width fault", faults)
	}
	f := faults[0]
	if f.Line != 3 || f.Want != 3 || f.Got != 2 {
		t.Errorf("fault = %+v, want line 3, want 3 got 2", f)
	}
}

func TestGroupEmptyGlyphMarker(t *testing.T) {
	fonts, faults := group(t, "'A':\n\t-\n")
	if len(faults) != 0 {
		t.Fatalf("unexpected faults: %v", faults)
	}
	g := fonts[0].Glyphs[0]
	if !g.Empty || len(g.Rows) != 0 {
		t.Errorf("empty marker not honored: %+v", g)
	}
}

func TestGroupGlyphProperties(t *testing.T) {
	fonts, faults := group(t, "'A':\n\t@.@\n\tleft-bearing: 1\n\tright-bearing: 2\n")
	if len(faults) != 0 {
		t.Fatalf("unexpected faults: %v", faults)
	}
	g := fonts[0].Glyphs[0]
	if len(g.Props) != 2 || g.Props[0].Key != "left-bearing" || g.Props[1].Key != "right-bearing" {
		t.Errorf("glyph properties %+v", g.Props)
	}
	if len(g.Rows) != 1 {
		t.Errorf("grid polluted by glyph properties: %+v", g.Rows)
	}
}

func TestGroupNakedLabelFault(t *testing.T) {
	_, faults := group(t, "'A':\n\n'B':\n\t@\n")
	if len(faults) != 1 || faults[0].Kind != FaultNakedLabel || faults[0].Line != 1 {
		t.Fatalf("faults = %v, want naked-label fault on line 1", faults)
	}
}
