package main

import (
	"fmt"
	"go/format"
	"os"

	"github.com/bitmap-font/studio/yaff"
)

// generate writes <name>.go: a package embedding the font's glyph rows so a
// program can carry a pixel font without parsing yaff at run time.
func generate(name string, font *yaff.Font) error {
	template := `// Code generated by yaffgen. DO NOT EDIT.

		package %s

		// Glyphs maps each glyph's first label to its grid rows, one
		// string per row, using the yaff cell characters ('.' paper,
		// '@' ink, hex digits for color indices).
		var Glyphs = %#v
	`

	glyphs := make(map[string][]string, len(font.Glyphs))
	for i := range font.Glyphs {
		g := &font.Glyphs[i]
		if len(g.Labels) == 0 {
			continue
		}
		glyphs[g.Labels[0].Semantic().String()] = g.Grid.Strings()
	}

	code := fmt.Sprintf(template, name, glyphs)
	bcode, err := format.Source([]byte(code))
	if err != nil {
		return err
	}
	return os.WriteFile(name+".go", bcode, 0o644)
}
