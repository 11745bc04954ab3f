package yaff

// Property is one decoded property value plus the source line it was
// assigned on. Values are raw strings; interpreting them (for example
// reading "ascent" as an integer) is the consumer's concern.
type Property struct {
	Value string
	Line  int
}

// Comment is a comment line, preserved for diagnostics.
type Comment struct {
	Text string
	Line int
}

// Glyph is one glyph definition: at least one label, a rectangular cell
// grid (zero rows for an explicitly empty glyph), and optional property
// overrides layered over the font's properties.
type Glyph struct {
	Labels []Label
	Grid   Grid
	Props  map[string]Property
	Line   int
}

// Property returns a glyph-level property override.
func (g *Glyph) Property(name string) (string, bool) {
	p, ok := g.Props[name]
	return p.Value, ok
}

// Font is one font block: font-wide properties plus its glyphs in source
// order.
type Font struct {
	Props    map[string]Property
	Glyphs   []Glyph
	Comments []Comment
	Line     int

	byLabel map[SemanticLabel]int
}

// Property returns a font-wide property value.
func (f *Font) Property(name string) (string, bool) {
	p, ok := f.Props[name]
	return p.Value, ok
}

// GlyphProperty resolves a property for one glyph, preferring the glyph's
// own override over the font-wide value.
func (f *Font) GlyphProperty(g *Glyph, name string) (string, bool) {
	if v, ok := g.Property(name); ok {
		return v, true
	}
	return f.Property(name)
}

// Glyph looks a glyph up by any of its labels. Codepoint and
// character-literal labels naming the same characters find the same glyph.
func (f *Font) Glyph(label Label) (*Glyph, bool) {
	return f.GlyphBySemantic(label.Semantic())
}

// GlyphByChars looks a glyph up by its character sequence.
func (f *Font) GlyphByChars(chars string) (*Glyph, bool) {
	return f.GlyphBySemantic(SemanticLabel{Text: chars})
}

// GlyphByTag looks a glyph up by tag name.
func (f *Font) GlyphByTag(tag string) (*Glyph, bool) {
	return f.GlyphBySemantic(SemanticLabel{IsTag: true, Text: tag})
}

// GlyphBySemantic looks a glyph up by a normalized label.
func (f *Font) GlyphBySemantic(key SemanticLabel) (*Glyph, bool) {
	i, ok := f.byLabel[key]
	if !ok {
		return nil, false
	}
	return &f.Glyphs[i], true
}

// Document is a fully decoded, validated font file: one or more fonts in
// source order. It owns all of its data; the source text is not referenced
// after parsing.
type Document struct {
	Fonts []Font
}

// NewFont assembles a Font from already decoded properties and glyphs and
// indexes the glyph labels. It is meant for importers of other font formats
// that want to reuse this document model; files parsed from yaff text get
// their fonts built by Parse. Label uniqueness is enforced the same way the
// parser enforces it.
func NewFont(props map[string]Property, glyphs []Glyph) (*Font, error) {
	f := &Font{
		Props:   props,
		Glyphs:  glyphs,
		byLabel: make(map[SemanticLabel]int),
	}
	if f.Props == nil {
		f.Props = make(map[string]Property)
	}
	var errs ErrorList
	for i := range f.Glyphs {
		for _, l := range f.Glyphs[i].Labels {
			key := l.Semantic()
			if _, dup := f.byLabel[key]; dup {
				errs = append(errs, &ParseError{Kind: DuplicateLabel, Name: l.String()})
				continue
			}
			f.byLabel[key] = i
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return f, nil
}
