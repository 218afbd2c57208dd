package imagepkg

import (
    "fmt"
    "image"
    "image/color"
    "path/filepath"
    "strings"

    "github.com/disintegration/imaging"
    "github.com/fogleman/gg"
    "github.com/youruser/bcard/internal/asset"
    "github.com/youruser/bcard/internal/card"
    "github.com/youruser/bcard/internal/util"
)

// Cropper turns an arbitrary photo into a square ready to be masked.
type Cropper interface {
    Crop(img image.Image) image.Image
}

// CropperFunc adapts a function to Cropper.
type CropperFunc func(image.Image) image.Image

func (f CropperFunc) Crop(img image.Image) image.Image { return f(img) }

// CenterCropper cuts the largest centred square.
type CenterCropper struct{}

func (CenterCropper) Crop(img image.Image) image.Image {
    b := img.Bounds()
    side := min(b.Dx(), b.Dy())
    return imaging.CropCenter(img, side, side)
}

// FocusCropper cuts the largest square centred on Focus, given in source
// image coordinates, shifted as needed to stay inside the image. Face
// detectors report their result through it.
type FocusCropper struct {
    Focus image.Point
}

func (c FocusCropper) Crop(img image.Image) image.Image {
    b := img.Bounds()
    side := min(b.Dx(), b.Dy())
    left := clamp(c.Focus.X-side/2, b.Min.X, b.Max.X-side)
    top := clamp(c.Focus.Y-side/2, b.Min.Y, b.Max.Y-side)
    return imaging.Crop(img, image.Rect(left, top, left+side, top+side))
}

func clamp(v, lo, hi int) int {
    if v < lo {
        return lo
    }
    if v > hi {
        return hi
    }
    return v
}

// CircleMask scales img to size x size and clears everything outside the
// inscribed circle.
func CircleMask(img image.Image, size int) image.Image {
    r := float64(size) / 2
    dc := gg.NewContext(size, size)
    dc.DrawCircle(r, r, r)
    dc.Clip()
    dc.DrawImage(imaging.Resize(img, size, size, imaging.Lanczos), 0, 0)
    return dc.Image()
}

// RingHeadshot crops head to a square, masks it into a circle as wide as
// ring and lays the ring on top.
func RingHeadshot(head, ring image.Image, cropper Cropper) *image.NRGBA {
    if cropper == nil {
        cropper = CenterCropper{}
    }
    size := ring.Bounds().Dx()
    if ring.Bounds().Dy() != size {
        ring = imaging.Resize(ring, size, size, imaging.Lanczos)
    }
    masked := CircleMask(cropper.Crop(head), size)
    out := imaging.New(size, size, color.Transparent)
    out = imaging.Overlay(out, masked, image.Pt(0, 0), 1.0)
    return imaging.Overlay(out, ring, image.Pt(0, 0), 1.0)
}

// ComposeWithRing writes the ringed version of the headshot at headshotPath
// into outDir as {stem}_with-ring.png and returns the new path.
func ComposeWithRing(headshotPath, ringPath, outDir string, cropper Cropper) (string, error) {
    head, err := openAsset("headshot", headshotPath)
    if err != nil {
        return "", err
    }
    ring, err := openAsset("ring", ringPath)
    if err != nil {
        return "", err
    }
    stem := strings.TrimSuffix(filepath.Base(headshotPath), filepath.Ext(headshotPath))
    out := filepath.Join(outDir, stem+"_with-ring.png")
    if err := SaveImage(out, RingHeadshot(head, ring, cropper)); err != nil {
        return "", err
    }
    return out, nil
}

var headshotExts = []string{".png", ".jpg", ".jpeg", ".PNG", ".JPG", ".JPEG"}

// FindHeadshot looks for {first}-{last} with a png or jpeg extension in dir.
func FindHeadshot(dir string, a card.Agent) (string, bool) {
    if a.Validate() != nil {
        return "", false
    }
    base := filepath.Join(dir, a.Slug())
    for _, ext := range headshotExts {
        if asset.Exists(base + ext) {
            return base + ext, true
        }
    }
    return "", false
}

// SaveHeadshot stores the headshot named by source, a local path or an
// http(s) URL, as dir/{slug}.png and returns that path.
func SaveHeadshot(source, dir string, a card.Agent) (string, error) {
    if err := a.Validate(); err != nil {
        return "", err
    }
    target := filepath.Join(dir, a.Slug()+".png")
    if IsURL(source) {
        img, err := DownloadImage(source)
        if err != nil {
            return "", fmt.Errorf("downloading headshot: %w", err)
        }
        return target, SaveImage(target, img)
    }
    if err := asset.Require("headshot", source); err != nil {
        return "", err
    }
    if abs(source) == abs(target) {
        return target, nil
    }
    if strings.EqualFold(filepath.Ext(source), ".png") {
        return target, util.CopyFile(source, target)
    }
    img, err := imaging.Open(source, imaging.AutoOrientation(true))
    if err != nil {
        return "", fmt.Errorf("decoding headshot %s: %w", source, err)
    }
    return target, SaveImage(target, img)
}

// IsURL reports whether source is an http or https URL.
func IsURL(source string) bool {
    return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

func abs(p string) string {
    a, err := filepath.Abs(p)
    if err != nil {
        return p
    }
    return a
}

func openAsset(kind, path string) (image.Image, error) {
    if err := asset.Require(kind, path); err != nil {
        return nil, err
    }
    img, err := imaging.Open(path)
    if err != nil {
        return nil, fmt.Errorf("decoding %s %s: %w", kind, path, err)
    }
    return img, nil
}
