// yaffgen is a command line tool for working with yaff pixel fonts. It
// loads a font from yaff text (or converts one from BDF) and dumps it back
// as text, describes its labels, renders a glyph sheet PNG, or generates a
// Go source file embedding the glyphs:
//
//	yaffgen -yaff myfont.yaff
//	yaffgen -yaff myfont.yaff -png sheet.png
//	yaffgen -bdf myfont.bdf -o myfont
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/bitmap-font/studio/cmd/yaffgen/internal/source"
	"github.com/bitmap-font/studio/raster"
	"github.com/bitmap-font/studio/yaff"
)

var (
	yaffName = flag.String("yaff", "", "yaff text file to load")
	bdfName  = flag.String("bdf", "", "BDF file to convert and load")
	outName  = flag.String("o", "", "package name to create (becomes <name>.go)")
	pngName  = flag.String("png", "", "write a glyph sheet PNG to this file")
	columns  = flag.Int("cols", 16, "glyph sheet columns")
	describe = flag.Bool("describe", false, "list glyph labels with their Unicode names")
	verbose  = flag.Bool("v", false, "enable debug logging")
)

var log = logrus.New()

func main() {
	flag.Parse()
	log.SetOutput(os.Stderr)
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	var filename string
	var loader source.Loader
	switch {
	case *yaffName != "":
		filename = *yaffName
		loader = source.NewText()
	case *bdfName != "":
		filename = *bdfName
		loader = source.NewBDF()
	default:
		fmt.Fprintln(os.Stderr, "-yaff or -bdf should be provided")
		flag.Usage()
		os.Exit(2)
	}

	f, err := os.Open(filename)
	if err != nil {
		log.WithError(err).Fatal("failed to open file")
	}
	defer f.Close()

	doc, err := loader.Load(f)
	if err != nil {
		if list, ok := err.(yaff.ErrorList); ok {
			for _, e := range list {
				log.WithField("file", filename).Error(e)
			}
			log.Fatalf("%d problems found in %s", len(list), filename)
		}
		log.WithError(err).Fatal("error parsing file")
	}
	log.Debugf("loaded %d font(s) from %s", len(doc.Fonts), filename)

	for i := range doc.Fonts {
		font := &doc.Fonts[i]
		switch {
		case *outName != "":
			name := *outName
			if len(doc.Fonts) > 1 {
				name = fmt.Sprintf("%s%d", name, i+1)
			}
			if err := generate(name, font); err != nil {
				log.WithError(err).Fatal("code generation failed")
			}
			log.Infof("created package file: %s.go", name)
		case *pngName != "":
			if i > 0 {
				log.Warnf("multiple fonts in %s, sheet holds only the first", filename)
				return
			}
			if err := writeSheet(*pngName, font, *columns); err != nil {
				log.WithError(err).Fatal("sheet rendering failed")
			}
		case *describe:
			describeFont(font)
		default:
			dumpFont(font)
		}
	}
}

func writeSheet(name string, font *yaff.Font, columns int) error {
	img := raster.Sheet(font, columns)
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
