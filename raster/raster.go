// Package raster turns decoded yaff glyph grids into images.
package raster

import (
	"image"
	"image/color"

	"github.com/bitmap-font/studio/yaff"
)

// Palette is the 16-color palette glyph cell indices refer to, in the usual
// terminal order: black, red, green, yellow, blue, magenta, cyan, white,
// then the bright variants. Index 0 of the image palette is transparent
// paper; cell index n maps to image palette index n+1.
var Palette = color.Palette{
	color.RGBA{0, 0, 0, 0},
	color.RGBA{0x00, 0x00, 0x00, 0xff},
	color.RGBA{0xaa, 0x00, 0x00, 0xff},
	color.RGBA{0x00, 0xaa, 0x00, 0xff},
	color.RGBA{0xaa, 0x55, 0x00, 0xff},
	color.RGBA{0x00, 0x00, 0xaa, 0xff},
	color.RGBA{0xaa, 0x00, 0xaa, 0xff},
	color.RGBA{0x00, 0xaa, 0xaa, 0xff},
	color.RGBA{0xaa, 0xaa, 0xaa, 0xff},
	color.RGBA{0x55, 0x55, 0x55, 0xff},
	color.RGBA{0xff, 0x55, 0x55, 0xff},
	color.RGBA{0x55, 0xff, 0x55, 0xff},
	color.RGBA{0xff, 0xff, 0x55, 0xff},
	color.RGBA{0x55, 0x55, 0xff, 0xff},
	color.RGBA{0xff, 0x55, 0xff, 0xff},
	color.RGBA{0x55, 0xff, 0xff, 0xff},
	color.RGBA{0xff, 0xff, 0xff, 0xff},
}

// Render draws one glyph grid at one pixel per cell.
func Render(g yaff.Grid) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, g.Width(), g.Height()), Palette)
	for y, row := range g {
		for x, c := range row {
			if c.Ink() {
				img.SetColorIndex(x, y, c.Index()+1)
			}
		}
	}
	return img
}

// Sheet draws every glyph of a font into one image, left to right and top to
// bottom in source order, each glyph in a cell sized to the font's largest
// glyph with one pixel of padding. columns <= 0 means 16 per row.
func Sheet(f *yaff.Font, columns int) *image.Paletted {
	if columns <= 0 {
		columns = 16
	}
	cw, ch := 0, 0
	for i := range f.Glyphs {
		if w := f.Glyphs[i].Grid.Width(); w > cw {
			cw = w
		}
		if h := f.Glyphs[i].Grid.Height(); h > ch {
			ch = h
		}
	}
	cw++
	ch++

	rows := (len(f.Glyphs) + columns - 1) / columns
	img := image.NewPaletted(image.Rect(0, 0, columns*cw, rows*ch), Palette)
	for i := range f.Glyphs {
		ox := (i % columns) * cw
		oy := (i / columns) * ch
		for y, row := range f.Glyphs[i].Grid {
			for x, c := range row {
				if c.Ink() {
					img.SetColorIndex(ox+x, oy+y, c.Index()+1)
				}
			}
		}
	}
	return img
}

// Overlay unions several grids into one: the result is sized to the largest
// input, and later inked cells win over earlier ones. Used to compose a base
// glyph with combining marks.
func Overlay(grids ...yaff.Grid) yaff.Grid {
	var out yaff.Grid
	for _, g := range grids {
		for len(out) < len(g) {
			out = append(out, nil)
		}
		for r, row := range g {
			for len(out[r]) < len(row) {
				out[r] = append(out[r], yaff.NoInk)
			}
			for c, cell := range row {
				if cell.Ink() {
					out[r][c] = cell
				}
			}
		}
	}
	return out
}
