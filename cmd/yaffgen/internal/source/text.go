package source

import (
	"io"

	"github.com/bitmap-font/studio/yaff"
)

type textLoader struct{}

var _ Loader = textLoader{}

// NewText returns the loader for yaff text files.
func NewText() Loader {
	return textLoader{}
}

func (textLoader) Load(r io.Reader) (*yaff.Document, error) {
	return yaff.Decode(r)
}
