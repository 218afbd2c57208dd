package imagepkg

import (
    "bytes"
    "fmt"
    "image"

    "github.com/disintegration/imaging"
    "github.com/youruser/bcard/internal/util"
)

// DownloadImage downloads an image from URL and returns image.Image (decoded).
func DownloadImage(url string) (image.Image, error) {
    body, err := util.GetBytes(url)
    if err != nil {
        return nil, err
    }
    img, err := imaging.Decode(bytes.NewReader(body), imaging.AutoOrientation(true))
    if err != nil {
        return nil, fmt.Errorf("decoding %s: %w", url, err)
    }
    return img, nil
}
