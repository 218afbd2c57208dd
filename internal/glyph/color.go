package glyph

import (
    "image/color"
)

// ColorResolver picks the fill colour of the character at index.
type ColorResolver interface {
    ColorOf(index int, r rune) color.Color
}

// Palette holds the two fill colours of a card.
type Palette struct {
    Main   color.Color
    Accent color.Color
}

// IsDot is the default accent predicate.
func IsDot(r rune) bool { return r == '.' }

// Resolver resolves colours in priority order: an explicit override for
// the index, then the accent predicate, then the main colour.
type Resolver struct {
    Palette   Palette
    Accent    func(rune) bool // nil means IsDot
    Overrides map[int]color.Color
}

func (res Resolver) ColorOf(index int, r rune) color.Color {
    if c, ok := res.Overrides[index]; ok && c != nil {
        return c
    }
    accent := res.Accent
    if accent == nil {
        accent = IsDot
    }
    if accent(r) && res.Palette.Accent != nil {
        return res.Palette.Accent
    }
    if res.Palette.Main != nil {
        return res.Palette.Main
    }
    return color.White
}

// AccentFrom returns overrides that paint every character from the first
// sep onwards in the accent colour and everything before it in the main
// colour. Indexes count runes. Without sep every character is main.
func AccentFrom(text string, sep rune, p Palette) map[int]color.Color {
    out := map[int]color.Color{}
    accent := false
    i := 0
    for _, r := range text {
        if r == sep {
            accent = true
        }
        if accent {
            out[i] = p.Accent
        } else {
            out[i] = p.Main
        }
        i++
    }
    return out
}
