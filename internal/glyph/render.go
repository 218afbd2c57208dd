package glyph

import (
    "image"
    "image/color"

    "golang.org/x/image/font"
    "golang.org/x/image/math/fixed"
)

// Run is a single line of text with a fixed gap between glyphs.
type Run struct {
    Text     string
    Tracking int           // extra pixels between consecutive glyphs, negative is treated as 0
    Colors   ColorResolver // nil paints everything white
}

// Placement is a glyph positioned inside a rendered buffer. X and Y are the
// drawing origin, not the top-left corner of the ink.
type Placement struct {
    Rune  rune
    Box   Box
    X, Y  int
    Color color.Color
}

// Layout is the measured arrangement of a run. Width is the sum of ink
// widths plus tracking between glyphs; Height spans the highest ascent to
// the lowest descent of the inked glyphs.
type Layout struct {
    Width, Height int
    MinY, MaxY    int
    Glyphs        []Placement
}

// Measure lays out run without drawing it.
func Measure(run Run, f *Font) Layout {
    runes := []rune(run.Text)
    if len(runes) == 0 {
        return Layout{}
    }
    tracking := run.Tracking
    if tracking < 0 {
        tracking = 0
    }
    colors := run.Colors
    if colors == nil {
        colors = Resolver{}
    }

    boxes := make([]Box, len(runes))
    inked := false
    var l Layout
    for i, r := range runes {
        b := f.InkBox(r)
        boxes[i] = b
        if b.Blank {
            continue
        }
        if !inked || b.Y0 < l.MinY {
            l.MinY = b.Y0
        }
        if !inked || b.Y1 > l.MaxY {
            l.MaxY = b.Y1
        }
        inked = true
    }
    l.Height = l.MaxY - l.MinY

    l.Glyphs = make([]Placement, len(runes))
    cursor := 0
    for i, r := range runes {
        b := boxes[i]
        y1 := b.Y1
        if b.Blank {
            y1 = l.MaxY
        }
        l.Glyphs[i] = Placement{
            Rune:  r,
            Box:   b,
            X:     cursor - b.X0,
            Y:     (l.MaxY - y1) - l.MinY,
            Color: colors.ColorOf(i, r),
        }
        cursor += b.Width()
        if i < len(runes)-1 {
            cursor += tracking
        }
    }
    l.Width = cursor
    return l
}

// Render draws run into a transparent buffer sized to its layout. A run
// with no area yields a 1x1 transparent image.
func Render(run Run, f *Font) *image.RGBA {
    l := Measure(run, f)
    if l.Width <= 0 || l.Height <= 0 {
        return image.NewRGBA(image.Rect(0, 0, 1, 1))
    }
    img := image.NewRGBA(image.Rect(0, 0, l.Width, l.Height))
    d := font.Drawer{Dst: img, Face: f.face}
    for _, g := range l.Glyphs {
        if g.Box.Blank {
            continue
        }
        d.Src = image.NewUniform(g.Color)
        d.Dot = fixed.P(g.X, g.Y)
        d.DrawString(string(g.Rune))
    }
    return img
}
