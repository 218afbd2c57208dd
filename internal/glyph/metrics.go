package glyph

// Box is the ink bounding box of a single glyph in pixels, relative to the
// glyph's drawing origin on the baseline. Y grows downwards, so ascenders
// have negative Y0.
//
// Blank boxes belong to glyphs without ink, such as a space. They are
// as wide as the glyph's advance and have no vertical extent.
type Box struct {
    X0, Y0, X1, Y1 int
    Blank          bool
}

func (b Box) Width() int  { return b.X1 - b.X0 }
func (b Box) Height() int { return b.Y1 - b.Y0 }

// InkBox measures r on its own at the font's native size.
func (f *Font) InkBox(r rune) Box {
    bounds, advance, _ := f.face.GlyphBounds(r)
    if bounds.Max.X <= bounds.Min.X || bounds.Max.Y <= bounds.Min.Y {
        w := advance.Round()
        if w < 0 {
            w = 0
        }
        return Box{X1: w, Blank: true}
    }
    return Box{
        X0: bounds.Min.X.Floor(),
        Y0: bounds.Min.Y.Floor(),
        X1: bounds.Max.X.Ceil(),
        Y1: bounds.Max.Y.Ceil(),
    }
}
