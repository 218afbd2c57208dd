package glyph

import (
    "bytes"
    "errors"
    "image"
    "image/color"
    "os"
    "path/filepath"
    "testing"

    "github.com/youruser/bcard/internal/asset"
    "golang.org/x/image/font/gofont/goregular"
)

var (
    white = color.RGBA{0xff, 0xff, 0xff, 0xff}
    gold  = color.RGBA{0xed, 0xdc, 0x9e, 0xff}
)

func loadTestFont(t *testing.T, size float64) *Font {
    t.Helper()
    f, err := ParseFont(goregular.TTF, size)
    if err != nil {
        t.Fatalf("failed to load test font: %v", err)
    }
    t.Cleanup(func() { f.Close() })
    return f
}

// expectedSize recomputes the buffer size straight from the ink boxes.
func expectedSize(f *Font, text string, tracking int) (int, int) {
    runes := []rune(text)
    width, minY, maxY := 0, 0, 0
    first := true
    for i, r := range runes {
        b := f.InkBox(r)
        width += b.X1 - b.X0
        if i < len(runes)-1 {
            width += tracking
        }
        if b.Blank {
            continue
        }
        if first || b.Y0 < minY {
            minY = b.Y0
        }
        if first || b.Y1 > maxY {
            maxY = b.Y1
        }
        first = false
    }
    return width, maxY - minY
}

func TestRenderSize(t *testing.T) {
    f := loadTestFont(t, 64)

    tests := []struct {
        name     string
        text     string
        tracking int
    }{
        {"caps", "HELLO", 0},
        {"caps tracked", "SEAN FALLON", 2},
        {"phone", "801.836.6758", 2},
        {"descenders", "Jumpy gq", 5},
        {"accented", "ÉÀÇ", 3},
        {"single dot", ".", 7},
    }

    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            img := Render(Run{Text: tt.text, Tracking: tt.tracking}, f)
            w, h := expectedSize(f, tt.text, tt.tracking)
            if got := img.Bounds().Dx(); got != w {
                t.Errorf("width = %d, want %d", got, w)
            }
            if got := img.Bounds().Dy(); got != h {
                t.Errorf("height = %d, want %d", got, h)
            }
        })
    }
}

func TestRenderPhoneWidth(t *testing.T) {
    f := loadTestFont(t, 120)
    text := "801.836.6758"

    sum := 0
    for _, r := range text {
        b := f.InkBox(r)
        sum += b.Width()
    }
    l := Measure(Run{Text: text, Tracking: 2}, f)
    if len(l.Glyphs) != 12 {
        t.Fatalf("glyphs = %d, want 12", len(l.Glyphs))
    }
    if l.Width != sum+2*11 {
        t.Errorf("width = %d, want %d", l.Width, sum+2*11)
    }
}

func TestRenderIdempotent(t *testing.T) {
    f := loadTestFont(t, 48)
    run := Run{Text: "SEAN.FALLON", Tracking: 2, Colors: Resolver{Palette: Palette{white, gold}}}

    a := Render(run, f)
    b := Render(run, f)
    if a.Bounds() != b.Bounds() {
        t.Fatalf("bounds differ: %v vs %v", a.Bounds(), b.Bounds())
    }
    if !bytes.Equal(a.Pix, b.Pix) {
        t.Error("rendering the same run twice produced different pixels")
    }
}

func TestRenderEmptyRun(t *testing.T) {
    f := loadTestFont(t, 48)
    img := Render(Run{Text: "", Tracking: 2}, f)
    if img.Bounds() != image.Rect(0, 0, 1, 1) {
        t.Fatalf("bounds = %v, want 1x1", img.Bounds())
    }
    if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
        t.Errorf("placeholder alpha = %d, want 0", a)
    }
}

func TestRenderBlankRun(t *testing.T) {
    f := loadTestFont(t, 48)
    img := Render(Run{Text: "   "}, f)
    if img.Bounds() != image.Rect(0, 0, 1, 1) {
        t.Fatalf("bounds = %v, want 1x1", img.Bounds())
    }
}

func TestInkBoxSpace(t *testing.T) {
    f := loadTestFont(t, 48)
    b := f.InkBox(' ')
    if !b.Blank {
        t.Fatalf("space should be blank, got %+v", b)
    }
    if b.Height() != 0 || b.Width() < 0 {
        t.Errorf("space box = %+v", b)
    }
}

func TestInkBoxInvariants(t *testing.T) {
    f := loadTestFont(t, 80)
    for _, r := range "ABCgjpqy0123456789.@É" {
        b := f.InkBox(r)
        if b.X1 < b.X0 || b.Y1 < b.Y0 {
            t.Errorf("%q: inverted box %+v", r, b)
        }
        if b.Blank {
            t.Errorf("%q: unexpectedly blank", r)
        }
    }
    if b := f.InkBox('g'); b.Y1 <= 0 {
        t.Errorf("descender should reach below the baseline, got %+v", b)
    }
    if b := f.InkBox('A'); b.Y0 >= 0 {
        t.Errorf("capital should rise above the baseline, got %+v", b)
    }
}

// opaqueColor returns the colour of the first fully opaque pixel within the
// ink columns of g.
func opaqueColor(img *image.RGBA, g Placement) (color.RGBA, bool) {
    x0, x1 := g.X+g.Box.X0, g.X+g.Box.X1
    b := img.Bounds()
    for y := b.Min.Y; y < b.Max.Y; y++ {
        for x := x0; x < x1; x++ {
            c := img.RGBAAt(x, y)
            if c.A == 0xff {
                return c, true
            }
        }
    }
    return color.RGBA{}, false
}

func TestRenderAccentDot(t *testing.T) {
    f := loadTestFont(t, 96)
    run := Run{Text: "A.B", Tracking: 4, Colors: Resolver{Palette: Palette{white, gold}}}

    l := Measure(run, f)
    img := Render(run, f)
    want := []color.RGBA{white, gold, white}
    for i, g := range l.Glyphs {
        c, ok := opaqueColor(img, g)
        if !ok {
            t.Fatalf("glyph %d (%q) has no opaque pixel", i, g.Rune)
        }
        if c != want[i] {
            t.Errorf("glyph %d (%q) colour = %v, want %v", i, g.Rune, c, want[i])
        }
    }
}

func TestRenderNoEmptyBorder(t *testing.T) {
    f := loadTestFont(t, 64)
    img := Render(Run{Text: "HELLO.", Tracking: 2}, f)
    b := img.Bounds()

    hasInk := func(x0, y0, x1, y1 int) bool {
        for y := y0; y < y1; y++ {
            for x := x0; x < x1; x++ {
                if img.RGBAAt(x, y).A != 0 {
                    return true
                }
            }
        }
        return false
    }
    // one pixel of rounding slack on each side
    if !hasInk(0, 0, b.Dx(), 2) {
        t.Error("top rows are empty")
    }
    if !hasInk(0, b.Dy()-2, b.Dx(), b.Dy()) {
        t.Error("bottom rows are empty")
    }
    if !hasInk(0, 0, 2, b.Dy()) {
        t.Error("left columns are empty")
    }
    if !hasInk(b.Dx()-2, 0, b.Dx(), b.Dy()) {
        t.Error("right columns are empty")
    }
}

func TestMeasureNegativeTracking(t *testing.T) {
    f := loadTestFont(t, 32)
    a := Measure(Run{Text: "AB", Tracking: -10}, f)
    b := Measure(Run{Text: "AB", Tracking: 0}, f)
    if a.Width != b.Width {
        t.Errorf("negative tracking width = %d, want %d", a.Width, b.Width)
    }
}

func TestResolverPriority(t *testing.T) {
    red := color.RGBA{0xff, 0, 0, 0xff}
    res := Resolver{
        Palette:   Palette{Main: white, Accent: gold},
        Overrides: map[int]color.Color{0: red, 1: white},
    }

    tests := []struct {
        index int
        r     rune
        want  color.Color
    }{
        {0, 'A', red},
        {1, '.', white},
        {2, '.', gold},
        {3, 'B', white},
    }
    for _, tt := range tests {
        if got := res.ColorOf(tt.index, tt.r); got != tt.want {
            t.Errorf("ColorOf(%d, %q) = %v, want %v", tt.index, tt.r, got, tt.want)
        }
    }

    custom := Resolver{Palette: Palette{white, gold}, Accent: func(r rune) bool { return r == '@' }}
    if got := custom.ColorOf(0, '@'); got != gold {
        t.Errorf("custom predicate: got %v, want accent", got)
    }
    if got := custom.ColorOf(0, '.'); got != white {
        t.Errorf("custom predicate: dot got %v, want main", got)
    }
}

func TestAccentFrom(t *testing.T) {
    p := Palette{Main: white, Accent: gold}
    m := AccentFrom("SEAN.FALLON", '.', p)
    if len(m) != 11 {
        t.Fatalf("overrides = %d, want 11", len(m))
    }
    for i := 0; i < 4; i++ {
        if m[i] != white {
            t.Errorf("index %d should be main", i)
        }
    }
    for i := 4; i < 11; i++ {
        if m[i] != gold {
            t.Errorf("index %d should be accent", i)
        }
    }

    for i, c := range AccentFrom("SEAN", '.', p) {
        if c != white {
            t.Errorf("index %d should be main without separator", i)
        }
    }
}

func TestLoadFont(t *testing.T) {
    dir := t.TempDir()

    good := filepath.Join(dir, "regular.ttf")
    if err := os.WriteFile(good, goregular.TTF, 0o644); err != nil {
        t.Fatal(err)
    }
    f, err := LoadFont(good, 24)
    if err != nil {
        t.Fatalf("LoadFont: %v", err)
    }
    if f.Size() != 24 {
        t.Errorf("size = %v, want 24", f.Size())
    }
    f.Close()

    _, err = LoadFont(filepath.Join(dir, "missing.ttf"), 24)
    if !errors.Is(err, asset.ErrAssetMissing) {
        t.Errorf("missing font error = %v, want ErrAssetMissing", err)
    }

    bad := filepath.Join(dir, "bad.ttf")
    if err := os.WriteFile(bad, []byte("not a font"), 0o644); err != nil {
        t.Fatal(err)
    }
    if _, err := LoadFont(bad, 24); !errors.Is(err, ErrFontInvalid) {
        t.Errorf("corrupt font error = %v, want ErrFontInvalid", err)
    }

    if _, err := ParseFont(goregular.TTF, 0); err == nil {
        t.Error("zero size should fail")
    }
}

func TestLibraryCachesParsedFonts(t *testing.T) {
    path := filepath.Join(t.TempDir(), "regular.ttf")
    if err := os.WriteFile(path, goregular.TTF, 0o644); err != nil {
        t.Fatal(err)
    }
    lib := NewLibrary()
    a, err := lib.Face(path, 12)
    if err != nil {
        t.Fatal(err)
    }
    b, err := lib.Face(path, 48)
    if err != nil {
        t.Fatal(err)
    }
    if a == b {
        t.Error("faces should not be shared")
    }
    if lib.Len() != 1 {
        t.Errorf("cached fonts = %d, want 1", lib.Len())
    }
}
