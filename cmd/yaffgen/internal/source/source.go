// Package source loads font documents from the on-disk formats yaffgen
// understands.
package source

import (
	"io"

	"github.com/bitmap-font/studio/yaff"
)

// Loader decodes one input format into a font document.
type Loader interface {
	Load(io.Reader) (*yaff.Document, error)
}
