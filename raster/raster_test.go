package raster

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/math/fixed"

	"github.com/bitmap-font/studio/yaff"
)

func parseFont(t *testing.T, text string) *yaff.Font {
	t.Helper()
	doc, err := yaff.Parse(text)
	if err != nil {
		t.Fatalf("parse failed:\n%v", err)
	}
	return &doc.Fonts[0]
}

func TestRender(t *testing.T) {
	f := parseFont(t, "'A':\n\t@.\n\t.F\n")
	img := Render(f.Glyphs[0].Grid)
	if img.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Fatalf("bounds %v", img.Bounds())
	}
	cases := []struct {
		x, y int
		idx  uint8
	}{
		{0, 0, 1},  // cell 0
		{1, 0, 0},  // paper
		{0, 1, 0},  // paper
		{1, 1, 16}, // cell 15
	}
	for _, c := range cases {
		if got := img.ColorIndexAt(c.x, c.y); got != c.idx {
			t.Errorf("pixel %d,%d has palette index %d, want %d", c.x, c.y, got, c.idx)
		}
	}
}

func TestSheet(t *testing.T) {
	f := parseFont(t, "'A':\n\t@@\n\t@@\n\n'B':\n\t..\n\t.@\n")
	img := Sheet(f, 2)
	// Cells are 3x3 (2x2 glyphs plus one pixel padding).
	if img.Bounds() != image.Rect(0, 0, 6, 3) {
		t.Fatalf("bounds %v", img.Bounds())
	}
	if img.ColorIndexAt(0, 0) != 1 {
		t.Error("first glyph not drawn at origin")
	}
	if img.ColorIndexAt(4, 1) != 1 {
		t.Error("second glyph not drawn in second cell")
	}
}

func TestOverlay(t *testing.T) {
	base := yaff.Grid{{0, yaff.NoInk}, {yaff.NoInk, yaff.NoInk}}
	mark := yaff.Grid{{yaff.NoInk, 3}}
	got := Overlay(base, mark)
	want := yaff.Grid{{0, 3}, {yaff.NoInk, yaff.NoInk}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("overlay (-want +got):\n%s", diff)
	}
}

func TestOverlayGrows(t *testing.T) {
	a := yaff.Grid{{1}}
	b := yaff.Grid{{yaff.NoInk, yaff.NoInk}, {2, 2}}
	got := Overlay(a, b)
	if len(got) != 2 || len(got[0]) != 2 {
		t.Fatalf("result %dx%d, want 2x2", len(got[0]), len(got))
	}
	if got[0][0] != 1 {
		t.Errorf("earlier ink lost: %v", got[0][0])
	}
}

func TestMaskOpacityRamp(t *testing.T) {
	f := parseFont(t, "'A':\n\t@87F\n")
	m := Mask(f.Glyphs[0].Grid)
	want := []uint8{0xff, 0xbf, 0x7f, 0x3f}
	for x, a := range want {
		if got := m.AlphaAt(x, 0).A; got != a {
			t.Errorf("alpha at %d = %#x, want %#x", x, got, a)
		}
	}
}

func TestFace(t *testing.T) {
	f := parseFont(t, "ascent: 2\ndescent: 0\n'A':\n\t@@\n\t@@\n")
	face := NewFace(f)
	defer face.Close()

	adv, ok := face.GlyphAdvance('A')
	if !ok || adv != fixed.I(3) {
		t.Errorf("advance = %v, %v", adv, ok)
	}
	if _, ok := face.GlyphAdvance('Z'); ok {
		t.Error("missing glyph reported present")
	}

	dot := fixed.P(10, 20)
	dr, mask, _, _, ok := face.Glyph(dot, 'A')
	if !ok {
		t.Fatal("glyph not found")
	}
	if dr != image.Rect(10, 18, 12, 20) {
		t.Errorf("draw rect %v", dr)
	}
	if mask.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Errorf("mask bounds %v", mask.Bounds())
	}
	if m := face.Metrics(); m.Ascent != fixed.I(2) {
		t.Errorf("ascent %v", m.Ascent)
	}
}

func TestFaceDefaultAscent(t *testing.T) {
	f := parseFont(t, "'A':\n\t@\n\t@\n\t@\n")
	face := NewFace(f)
	if m := face.Metrics(); m.Ascent != fixed.I(3) {
		t.Errorf("inferred ascent %v, want 3px", m.Ascent)
	}
}
