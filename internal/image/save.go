package imagepkg

import (
    "image"
    "image/color"
    "io"

    "github.com/disintegration/imaging"
    "github.com/youruser/bcard/internal/util"
)

// SaveImage encodes img in the format implied by the extension of path.
// JPEG output is flattened over white at quality 95. The file is written
// to a temporary name and renamed into place.
func SaveImage(path string, img image.Image) error {
    format, err := imaging.FormatFromFilename(path)
    if err != nil {
        return err
    }
    var opts []imaging.EncodeOption
    if format == imaging.JPEG {
        img = Flatten(img, color.White)
        opts = append(opts, imaging.JPEGQuality(95))
    }
    return util.WriteAtomic(path, func(w io.Writer) error {
        return imaging.Encode(w, img, format, opts...)
    })
}

// Flatten composites img over an opaque bg.
func Flatten(img image.Image, bg color.Color) *image.NRGBA {
    b := img.Bounds()
    return imaging.Overlay(imaging.New(b.Dx(), b.Dy(), bg), img, image.Pt(0, 0), 1.0)
}
