package source

import (
	"fmt"
	"io"
	"strconv"

	"github.com/zachomedia/go-bdf"

	"github.com/bitmap-font/studio/yaff"
)

type bdfLoader struct{}

var _ Loader = bdfLoader{}

// NewBDF returns the loader for BDF bitmap fonts. Each BDF character
// becomes a glyph labeled with its encoding; pixels become two-level cells.
func NewBDF() Loader {
	return bdfLoader{}
}

func (bdfLoader) Load(r io.Reader) (*yaff.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	bf, err := bdf.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("bdf: %w", err)
	}

	props := map[string]yaff.Property{
		"converter": {Value: "yaffgen"},
		"ascent":    {Value: strconv.Itoa(bf.Ascent)},
		"descent":   {Value: strconv.Itoa(bf.Descent)},
	}
	if bf.Name != "" {
		props["name"] = yaff.Property{Value: bf.Name}
	}

	glyphs := make([]yaff.Glyph, 0, len(bf.Characters))
	for i := range bf.Characters {
		c := &bf.Characters[i]
		g := yaff.Glyph{
			Labels: []yaff.Label{yaff.CharLabel{c.Encoding}},
			Grid:   gridFromAlpha(c),
		}
		if c.Name != "" {
			g.Props = map[string]yaff.Property{
				"ps-name": {Value: c.Name},
			}
		}
		glyphs = append(glyphs, g)
	}

	font, err := yaff.NewFont(props, glyphs)
	if err != nil {
		return nil, err
	}
	return &yaff.Document{Fonts: []yaff.Font{*font}}, nil
}

func gridFromAlpha(c *bdf.Character) yaff.Grid {
	b := c.Alpha.Bounds()
	grid := make(yaff.Grid, 0, b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := make([]yaff.Cell, 0, b.Dx())
		for x := b.Min.X; x < b.Max.X; x++ {
			if c.Alpha.AlphaAt(x, y).A > 0 {
				row = append(row, yaff.Cell(0))
			} else {
				row = append(row, yaff.NoInk)
			}
		}
		grid = append(grid, row)
	}
	return grid
}
