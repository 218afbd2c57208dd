// Package glyph measures and rasterizes single-line character runs.
//
// Glyphs are measured one at a time from their ink bounds, with no kerning
// or shaping, and laid out left to right with a fixed tracking gap.
package glyph

import (
    "errors"
    "fmt"
    "os"
    "sync"

    "github.com/youruser/bcard/internal/asset"
    "golang.org/x/image/font"
    "golang.org/x/image/font/opentype"
)

// ErrFontInvalid is returned when font bytes cannot be parsed.
var ErrFontInvalid = errors.New("invalid font")

// Font is a parsed font at a fixed pixel size. A Font carries scratch
// buffers and must not be shared between goroutines.
type Font struct {
    face font.Face
    size float64
}

// LoadFont reads the font file at path and prepares a face at size pixels.
func LoadFont(path string, size float64) (*Font, error) {
    parsed, err := parseFile(path)
    if err != nil {
        return nil, err
    }
    return newFont(parsed, size)
}

// ParseFont prepares a face at size pixels from raw TTF/OTF bytes.
func ParseFont(data []byte, size float64) (*Font, error) {
    parsed, err := opentype.Parse(data)
    if err != nil {
        return nil, fmt.Errorf("%w: %v", ErrFontInvalid, err)
    }
    return newFont(parsed, size)
}

func newFont(parsed *opentype.Font, size float64) (*Font, error) {
    if size <= 0 {
        return nil, fmt.Errorf("font size must be positive, got %v", size)
    }
    face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
        Size:    size,
        DPI:     72,
        Hinting: font.HintingNone,
    })
    if err != nil {
        return nil, fmt.Errorf("create face at %.1fpx: %w", size, err)
    }
    return &Font{face: face, size: size}, nil
}

func parseFile(path string) (*opentype.Font, error) {
    if err := asset.Require("font", path); err != nil {
        return nil, err
    }
    data, err := os.ReadFile(path)
    if err != nil {
        return nil, fmt.Errorf("reading font %s: %w", path, err)
    }
    parsed, err := opentype.Parse(data)
    if err != nil {
        return nil, fmt.Errorf("%w: %s: %v", ErrFontInvalid, path, err)
    }
    return parsed, nil
}

// Size returns the pixel size the font was prepared at.
func (f *Font) Size() float64 { return f.size }

// Close releases the face.
func (f *Font) Close() error { return f.face.Close() }

// Library caches parsed fonts by path. Parsed fonts are read-only and may
// be shared; every call to Face returns a fresh Font with its own buffers,
// so a Library is safe for concurrent use.
type Library struct {
    mu    sync.Mutex
    fonts map[string]*opentype.Font
}

func NewLibrary() *Library {
    return &Library{fonts: make(map[string]*opentype.Font)}
}

// Face returns the font at path prepared at size pixels, parsing the file
// on first use.
func (l *Library) Face(path string, size float64) (*Font, error) {
    l.mu.Lock()
    parsed, found := l.fonts[path]
    l.mu.Unlock()
    if !found {
        var err error
        parsed, err = parseFile(path)
        if err != nil {
            return nil, err
        }
        l.mu.Lock()
        l.fonts[path] = parsed
        l.mu.Unlock()
    }
    return newFont(parsed, size)
}

// Len returns the number of cached fonts.
func (l *Library) Len() int {
    l.mu.Lock()
    defer l.mu.Unlock()
    return len(l.fonts)
}
