// Package yaff decodes the yaff plain-text bitmap font format: one or more
// fonts per file, each a set of properties plus glyphs drawn as readable
// character grids.
//
// Parsing runs in three forward-only stages: lines are classified, the
// classified lines are grouped into font and glyph blocks, and the blocks
// are decoded into the typed Document model. All problems found in one run
// are reported together; a failed parse never returns a partial Document.
//
//	doc, err := yaff.Parse(text)
//	if err != nil {
//		for _, e := range err.(yaff.ErrorList) {
//			...
//		}
//	}
//
// Writing the format back out is not supported.
package yaff

import (
	"io"

	"github.com/bitmap-font/studio/yaff/internal/syntax"
)

// Options configures parsing.
type Options struct {
	// FontSeparator is the minimum number of consecutive blank lines
	// that separates two fonts within one file. A single blank line only
	// separates glyphs. Zero means the default of 2.
	FontSeparator int
}

// Parse decodes a complete yaff text with default options.
//
// On failure the returned error is an ErrorList carrying every problem
// found, ordered by line number, and the Document is nil. Parse keeps no
// references into text; the buffer may be reused afterwards.
func Parse(text string) (*Document, error) {
	return ParseWithOptions(text, Options{})
}

// ParseWithOptions decodes a complete yaff text.
func ParseWithOptions(text string, opts Options) (*Document, error) {
	sep := opts.FontSeparator
	if sep == 0 {
		sep = syntax.DefaultFontSeparator
	}
	blocks, faults := syntax.Group(syntax.NewScanner(text), sep)
	doc, errs := decodeDocument(blocks, faults)
	if len(errs) > 0 {
		return nil, errs
	}
	return doc, nil
}

// Decode reads all of r and parses it with default options.
func Decode(r io.Reader) (*Document, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(string(b))
}
