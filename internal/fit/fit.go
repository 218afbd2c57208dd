// Package fit scales rendered layers into fixed rectangles of a canvas.
package fit

import (
    "encoding/json"
    "errors"
    "fmt"
    "image"
    "strings"

    "github.com/disintegration/imaging"
)

// ErrInvalidGeometry is returned for boxes that cannot hold an image.
var ErrInvalidGeometry = errors.New("invalid geometry")

// Box is a destination rectangle in canvas coordinates.
type Box struct {
    X      int `json:"x"`
    Y      int `json:"y"`
    Width  int `json:"width"`
    Height int `json:"height"`
}

// Validate rejects boxes with a non-positive width or height.
func (b Box) Validate() error {
    if b.Width <= 0 || b.Height <= 0 {
        return fmt.Errorf("%w: box %dx%d at (%d,%d)", ErrInvalidGeometry, b.Width, b.Height, b.X, b.Y)
    }
    return nil
}

func (b Box) Rect() image.Rectangle {
    return image.Rect(b.X, b.Y, b.X+b.Width, b.Y+b.Height)
}

type HAlign int

const (
    Left HAlign = iota
    Center
    Right
)

type VAlign int

const (
    Top VAlign = iota
    Middle
    Bottom
)

// Alignment controls how a layer is scaled and placed inside its box.
// With PreserveAspect unset the layer is stretched to fill the box exactly.
type Alignment struct {
    Horizontal     HAlign `json:"horizontal"`
    Vertical       VAlign `json:"vertical"`
    PreserveAspect bool   `json:"preserve_aspect"`
}

// Placement is a scaled layer and the canvas position of its top-left corner.
type Placement struct {
    Image image.Image
    X, Y  int
}

func (p Placement) Point() image.Point { return image.Pt(p.X, p.Y) }

// Fit scales src into box and aligns it there. Empty sources and the
// transparent 1x1 placeholder are returned unscaled.
func Fit(src image.Image, box Box, align Alignment) Placement {
    out := src
    if w, h, ok := scaledSize(src, box, align.PreserveAspect); ok {
        out = imaging.Resize(src, w, h, imaging.Lanczos)
    }
    b := out.Bounds()
    return Placement{
        Image: out,
        X:     offset(box.X, box.Width, b.Dx(), int(align.Horizontal)),
        Y:     offset(box.Y, box.Height, b.Dy(), int(align.Vertical)),
    }
}

// scaledSize returns the target size of src, or false when src should be
// passed through. The uniform case cross-multiplies so the limiting axis
// lands exactly on the box edge.
func scaledSize(src image.Image, box Box, preserve bool) (int, int, bool) {
    sw, sh := src.Bounds().Dx(), src.Bounds().Dy()
    if sw <= 0 || sh <= 0 || isPlaceholder(src) {
        return 0, 0, false
    }
    w, h := box.Width, box.Height
    if preserve {
        if sw*box.Height >= sh*box.Width {
            h = sh * box.Width / sw
        } else {
            w = sw * box.Height / sh
        }
    }
    if w <= 0 || h <= 0 {
        return 0, 0, false
    }
    return w, h, true
}

// offset handles both axes: 0 is left/top, 1 center/middle, 2 right/bottom.
func offset(origin, span, size, align int) int {
    switch align {
    case 1:
        return origin + (span-size)/2
    case 2:
        return origin + (span - size)
    default:
        return origin
    }
}

// isPlaceholder reports whether img is the 1x1 fully transparent raster
// produced for a run with no ink.
func isPlaceholder(img image.Image) bool {
    b := img.Bounds()
    if b.Dx() != 1 || b.Dy() != 1 {
        return false
    }
    _, _, _, a := img.At(b.Min.X, b.Min.Y).RGBA()
    return a == 0
}

var (
    hNames = []string{"left", "center", "right"}
    vNames = []string{"top", "center", "bottom"}
)

func (a HAlign) String() string {
    if a < 0 || int(a) >= len(hNames) {
        return fmt.Sprintf("HAlign(%d)", int(a))
    }
    return hNames[a]
}

func (a VAlign) String() string {
    if a < 0 || int(a) >= len(vNames) {
        return fmt.Sprintf("VAlign(%d)", int(a))
    }
    return vNames[a]
}

// ParseHAlign accepts "left", "center" or "right".
func ParseHAlign(s string) (HAlign, error) {
    for i, n := range hNames {
        if strings.EqualFold(s, n) {
            return HAlign(i), nil
        }
    }
    return Left, fmt.Errorf("unknown horizontal alignment %q", s)
}

// ParseVAlign accepts "top", "center" (or "middle") or "bottom".
func ParseVAlign(s string) (VAlign, error) {
    if strings.EqualFold(s, "middle") {
        return Middle, nil
    }
    for i, n := range vNames {
        if strings.EqualFold(s, n) {
            return VAlign(i), nil
        }
    }
    return Top, fmt.Errorf("unknown vertical alignment %q", s)
}

func (a HAlign) MarshalJSON() ([]byte, error) { return json.Marshal(a.String()) }

func (a *HAlign) UnmarshalJSON(data []byte) error {
    var s string
    if err := json.Unmarshal(data, &s); err != nil {
        return err
    }
    v, err := ParseHAlign(s)
    if err != nil {
        return err
    }
    *a = v
    return nil
}

func (a VAlign) MarshalJSON() ([]byte, error) { return json.Marshal(a.String()) }

func (a *VAlign) UnmarshalJSON(data []byte) error {
    var s string
    if err := json.Unmarshal(data, &s); err != nil {
        return err
    }
    v, err := ParseVAlign(s)
    if err != nil {
        return err
    }
    *a = v
    return nil
}
