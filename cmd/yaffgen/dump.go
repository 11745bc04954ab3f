package main

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/text/unicode/runenames"

	"github.com/bitmap-font/studio/yaff"
)

// dumpFont prints a font back in yaff syntax, properties sorted by name,
// glyphs in source order.
func dumpFont(f *yaff.Font) {
	keys := maps.Keys(f.Props)
	slices.Sort(keys)
	for _, k := range keys {
		printProperty("", k, f.Props[k].Value)
	}

	for i := range f.Glyphs {
		g := &f.Glyphs[i]
		fmt.Println()
		for _, l := range g.Labels {
			fmt.Printf("%s:\n", l)
		}
		rows := g.Grid.Strings()
		if len(rows) == 0 {
			fmt.Println("\t-")
		}
		for _, r := range rows {
			fmt.Printf("\t%s\n", r)
		}
		gkeys := maps.Keys(g.Props)
		slices.Sort(gkeys)
		for _, k := range gkeys {
			printProperty("\t", k, g.Props[k].Value)
		}
	}
}

func printProperty(indent, key, value string) {
	lines := strings.Split(value, "\n")
	if len(lines) == 1 {
		fmt.Printf("%s%s: %s\n", indent, key, value)
		return
	}
	fmt.Printf("%s%s:\n", indent, key)
	for _, ln := range lines {
		fmt.Printf("%s\t%s\n", indent, ln)
	}
}

// describeFont lists every glyph with its size and the Unicode names of its
// character labels.
func describeFont(f *yaff.Font) {
	for i := range f.Glyphs {
		g := &f.Glyphs[i]
		fmt.Printf("glyph %d (%dx%d):\n", i, g.Grid.Width(), g.Grid.Height())
		for _, l := range g.Labels {
			switch l := l.(type) {
			case yaff.TagLabel:
				fmt.Printf("\ttag %s\n", string(l))
			case yaff.CharLabel:
				describeRunes([]rune(l))
			case yaff.CodepointLabel:
				describeRunes([]rune(l))
			}
		}
	}
}

func describeRunes(rs []rune) {
	for _, r := range rs {
		fmt.Printf("\tU+%04X %s\n", r, runenames.Name(r))
	}
}
