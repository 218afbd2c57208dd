package imagepkg

import (
    "fmt"
    "image"

    "github.com/disintegration/imaging"
    "github.com/youruser/bcard/internal/asset"
    "github.com/youruser/bcard/internal/glyph"
)

// TextSource provides the raster of one text label, either from a
// pre-rendered asset or by rendering a run live.
type TextSource interface {
    Image() (image.Image, error)
}

// AssetSource loads a pre-rendered label from disk.
type AssetSource struct {
    Path string
}

func (s AssetSource) Image() (image.Image, error) {
    if err := asset.Require("text asset", s.Path); err != nil {
        return nil, err
    }
    img, err := imaging.Open(s.Path)
    if err != nil {
        return nil, fmt.Errorf("decoding %s: %w", s.Path, err)
    }
    return img, nil
}

// RunSource renders a run with the font at FontPath, prepared at Size.
type RunSource struct {
    Run      glyph.Run
    FontPath string
    Size     float64
    Fonts    *glyph.Library
}

func (s RunSource) Image() (image.Image, error) {
    lib := s.Fonts
    if lib == nil {
        lib = glyph.NewLibrary()
    }
    f, err := lib.Face(s.FontPath, s.Size)
    if err != nil {
        return nil, err
    }
    defer f.Close()
    return glyph.Render(s.Run, f), nil
}

// PreferAsset returns an AssetSource when path names an existing file and
// live otherwise.
func PreferAsset(path string, live TextSource) TextSource {
    if asset.Exists(path) {
        return AssetSource{Path: path}
    }
    return live
}
