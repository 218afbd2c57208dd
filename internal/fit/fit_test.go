package fit

import (
    "encoding/json"
    "errors"
    "image"
    "image/color"
    "testing"

    "github.com/disintegration/imaging"
)

func solid(w, h int) image.Image {
    return imaging.New(w, h, color.NRGBA{0xff, 0xff, 0xff, 0xff})
}

func TestFitCenterScenario(t *testing.T) {
    p := Fit(solid(100, 50), Box{X: 10, Y: 10, Width: 200, Height: 100},
        Alignment{Horizontal: Center, Vertical: Middle, PreserveAspect: true})

    if got := p.Image.Bounds().Size(); got != image.Pt(200, 100) {
        t.Fatalf("size = %v, want 200x100", got)
    }
    if p.X != 10 || p.Y != 10 {
        t.Errorf("position = (%d,%d), want (10,10)", p.X, p.Y)
    }
}

func TestFitPreserveAspect(t *testing.T) {
    tests := []struct {
        name     string
        src      image.Point
        box      Box
        wantSize image.Point
    }{
        {"wide source", image.Pt(300, 40), Box{0, 0, 150, 60}, image.Pt(150, 20)},
        {"tall source", image.Pt(40, 300), Box{0, 0, 150, 60}, image.Pt(8, 60)},
        {"upscale", image.Pt(7, 3), Box{0, 0, 473, 54}, image.Pt(126, 54)},
        {"thirds", image.Pt(3, 7), Box{0, 0, 7, 100}, image.Pt(7, 16)},
        {"same ratio", image.Pt(50, 25), Box{0, 0, 200, 100}, image.Pt(200, 100)},
        {"name box", image.Pt(2915, 214), Box{100, 494, 473, 54}, image.Pt(473, 34)},
    }

    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            p := Fit(solid(tt.src.X, tt.src.Y), tt.box, Alignment{PreserveAspect: true})
            got := p.Image.Bounds().Size()
            if got != tt.wantSize {
                t.Errorf("size = %v, want %v", got, tt.wantSize)
            }
            if got.X > tt.box.Width || got.Y > tt.box.Height {
                t.Errorf("size %v overflows box %dx%d", got, tt.box.Width, tt.box.Height)
            }
            if got.X != tt.box.Width && got.Y != tt.box.Height {
                t.Errorf("size %v touches neither edge of %dx%d", got, tt.box.Width, tt.box.Height)
            }
        })
    }
}

func TestFitStretch(t *testing.T) {
    box := Box{X: 142, Y: 612, Width: 339, Height: 44}
    for _, src := range []image.Point{{1200, 90}, {10, 300}, {339, 44}, {2, 2}} {
        p := Fit(solid(src.X, src.Y), box, Alignment{Horizontal: Left, Vertical: Middle})
        if got := p.Image.Bounds().Size(); got != image.Pt(339, 44) {
            t.Errorf("src %v: size = %v, want 339x44", src, got)
        }
        if p.X != 142 || p.Y != 612 {
            t.Errorf("src %v: position = (%d,%d), want (142,612)", src, p.X, p.Y)
        }
    }
}

func TestFitAlignment(t *testing.T) {
    box := Box{X: 10, Y: 20, Width: 100, Height: 50}
    src := solid(200, 40) // scales to 100x20

    tests := []struct {
        h      HAlign
        v      VAlign
        wx, wy int
    }{
        {Left, Top, 10, 20},
        {Center, Middle, 10, 35},
        {Right, Bottom, 10, 50},
        {Left, Bottom, 10, 50},
    }
    for _, tt := range tests {
        p := Fit(src, box, Alignment{Horizontal: tt.h, Vertical: tt.v, PreserveAspect: true})
        if p.X != tt.wx || p.Y != tt.wy {
            t.Errorf("%v/%v: position = (%d,%d), want (%d,%d)", tt.h, tt.v, p.X, p.Y, tt.wx, tt.wy)
        }
    }

    tall := solid(20, 100) // scales to 10x50
    tests = []struct {
        h      HAlign
        v      VAlign
        wx, wy int
    }{
        {Left, Top, 10, 20},
        {Center, Top, 55, 20},
        {Right, Top, 100, 20},
    }
    for _, tt := range tests {
        p := Fit(tall, box, Alignment{Horizontal: tt.h, Vertical: tt.v, PreserveAspect: true})
        if p.X != tt.wx || p.Y != tt.wy {
            t.Errorf("%v/%v: position = (%d,%d), want (%d,%d)", tt.h, tt.v, p.X, p.Y, tt.wx, tt.wy)
        }
    }
}

func TestFitPassthrough(t *testing.T) {
    box := Box{X: 5, Y: 5, Width: 200, Height: 100}

    placeholder := image.NewRGBA(image.Rect(0, 0, 1, 1))
    for _, preserve := range []bool{true, false} {
        p := Fit(placeholder, box, Alignment{Horizontal: Center, Vertical: Middle, PreserveAspect: preserve})
        if p.Image != image.Image(placeholder) {
            t.Errorf("preserve=%v: transparent placeholder should pass through unscaled", preserve)
        }
    }

    empty := image.NewRGBA(image.Rect(0, 0, 0, 10))
    if p := Fit(empty, box, Alignment{PreserveAspect: true}); p.Image != image.Image(empty) {
        t.Error("zero-width source should pass through")
    }

    blank := image.NewNRGBA(image.Rect(0, 0, 40, 20))
    if got := Fit(blank, box, Alignment{}).Image.Bounds().Size(); got != image.Pt(200, 100) {
        t.Errorf("transparent 40x20 stretched to %v, want exactly 200x100", got)
    }
    if got := Fit(blank, box, Alignment{PreserveAspect: true}).Image.Bounds().Size(); got != image.Pt(200, 100) {
        t.Errorf("transparent 40x20 fitted to %v, want 200x100", got)
    }

    // 1000x1 into 200x100 would be 200x0
    thin := solid(1000, 1)
    p := Fit(thin, box, Alignment{PreserveAspect: true})
    if got := p.Image.Bounds().Size(); got != image.Pt(1000, 1) {
        t.Errorf("degenerate scale size = %v, want unscaled 1000x1", got)
    }
}

func TestBoxValidate(t *testing.T) {
    if err := (Box{0, 0, 10, 10}).Validate(); err != nil {
        t.Errorf("valid box: %v", err)
    }
    for _, b := range []Box{{0, 0, 0, 10}, {0, 0, 10, -1}} {
        if err := b.Validate(); !errors.Is(err, ErrInvalidGeometry) {
            t.Errorf("%+v: err = %v, want ErrInvalidGeometry", b, err)
        }
    }
}

func TestAlignmentJSON(t *testing.T) {
    var a Alignment
    if err := json.Unmarshal([]byte(`{"horizontal":"right","vertical":"middle","preserve_aspect":true}`), &a); err != nil {
        t.Fatal(err)
    }
    if a.Horizontal != Right || a.Vertical != Middle || !a.PreserveAspect {
        t.Errorf("decoded %+v", a)
    }
    out, err := json.Marshal(Alignment{Horizontal: Center, Vertical: Bottom})
    if err != nil {
        t.Fatal(err)
    }
    if string(out) != `{"horizontal":"center","vertical":"bottom","preserve_aspect":false}` {
        t.Errorf("encoded %s", out)
    }
    if err := json.Unmarshal([]byte(`{"horizontal":"sideways"}`), &a); err == nil {
        t.Error("unknown alignment should fail")
    }
}
