package raster

import (
	"image"
	"image/color"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/bitmap-font/studio/yaff"
)

// alphaFor maps a cell's color index to mask opacity. For hand-drawn
// anti-aliased monochrome fonts indices 0, 8, 7 and 15 carry 100%, 75%, 50%
// and 25% foreground coverage; every other index is treated as full ink.
func alphaFor(c yaff.Cell) uint8 {
	switch c.Index() {
	case 0:
		return 0xff
	case 8:
		return 0xbf
	case 7:
		return 0x7f
	case 15:
		return 0x3f
	default:
		return 0xff
	}
}

// Mask renders a grid as an alpha mask, one pixel per cell.
func Mask(g yaff.Grid) *image.Alpha {
	img := image.NewAlpha(image.Rect(0, 0, g.Width(), g.Height()))
	for y, row := range g {
		for x, c := range row {
			if c.Ink() {
				img.SetAlpha(x, y, color.Alpha{A: alphaFor(c)})
			}
		}
	}
	return img
}

// Face exposes a parsed font as a golang.org/x/image/font.Face so standard
// drawing code can use it directly. Glyphs are looked up by character
// sequence; tag-only glyphs are not reachable through a Face.
type Face struct {
	font    *yaff.Font
	ascent  int
	descent int
}

var _ font.Face = (*Face)(nil)

// NewFace wraps one font of a parsed document. The ascent and descent
// properties are honored when present and parseable; otherwise the ascent
// defaults to the tallest glyph.
func NewFace(f *yaff.Font) *Face {
	face := &Face{font: f}
	face.ascent = intProperty(f, "ascent", -1)
	face.descent = intProperty(f, "descent", 0)
	if face.ascent < 0 {
		for i := range f.Glyphs {
			if h := f.Glyphs[i].Grid.Height(); h > face.ascent {
				face.ascent = h
			}
		}
	}
	return face
}

func intProperty(f *yaff.Font, name string, fallback int) int {
	v, ok := f.Property(name)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func (f *Face) Close() error { return nil }

func (f *Face) Kern(r0, r1 rune) fixed.Int26_6 { return 0 }

func (f *Face) Metrics() font.Metrics {
	return font.Metrics{
		Ascent:    fixed.I(f.ascent),
		Descent:   fixed.I(f.descent),
		Height:    fixed.I(f.ascent + f.descent + 1),
		CapHeight: fixed.I(f.ascent),
		XHeight:   fixed.I(f.ascent),
	}
}

func (f *Face) glyph(r rune) (*yaff.Glyph, bool) {
	return f.font.GlyphByChars(string(r))
}

func (f *Face) Glyph(dot fixed.Point26_6, r rune) (image.Rectangle, image.Image, image.Point, fixed.Int26_6, bool) {
	g, ok := f.glyph(r)
	if !ok {
		return image.Rectangle{}, nil, image.Point{}, 0, false
	}
	w, h := g.Grid.Width(), g.Grid.Height()
	x := dot.X.Floor()
	y := dot.Y.Floor() - f.ascent
	dr := image.Rect(x, y, x+w, y+h)
	return dr, Mask(g.Grid), image.Point{}, fixed.I(w + 1), true
}

func (f *Face) GlyphBounds(r rune) (fixed.Rectangle26_6, fixed.Int26_6, bool) {
	g, ok := f.glyph(r)
	if !ok {
		return fixed.Rectangle26_6{}, 0, false
	}
	w, h := g.Grid.Width(), g.Grid.Height()
	bounds := fixed.R(0, -f.ascent, w, h-f.ascent)
	return bounds, fixed.I(w + 1), true
}

func (f *Face) GlyphAdvance(r rune) (fixed.Int26_6, bool) {
	g, ok := f.glyph(r)
	if !ok {
		return 0, false
	}
	return fixed.I(g.Grid.Width() + 1), true
}
