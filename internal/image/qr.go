package imagepkg

import (
    "bytes"
    "fmt"
    "image"
    "image/png"
    "path/filepath"

    "github.com/fogleman/gg"
    qrcode "github.com/skip2/go-qrcode"
    "github.com/youruser/bcard/internal/card"
)

// GenerateQRPNG returns PNG bytes of a plain square-module QR code.
func GenerateQRPNG(text string, size int) ([]byte, error) {
    pngBytes, err := qrcode.Encode(text, qrcode.Highest, size)
    if err != nil {
        return nil, err
    }
    // validate png decode
    _, err = png.Decode(bytes.NewReader(pngBytes))
    if err != nil {
        return nil, err
    }
    return pngBytes, nil
}

// GenerateQRImage draws text as a QR code with dotted modules: each dark
// module becomes a circle inset by style.Padding of the module size.
func GenerateQRImage(text string, style card.QRStyle) (image.Image, error) {
    if style.ModuleSize <= 0 {
        return nil, fmt.Errorf("qr module size must be positive, got %d", style.ModuleSize)
    }
    q, err := qrcode.New(text, qrcode.Highest)
    if err != nil {
        return nil, err
    }
    q.DisableBorder = true
    bits := q.Bitmap()

    ms := float64(style.ModuleSize)
    side := (len(bits) + 2*style.Border) * style.ModuleSize
    radius := (ms - 2*ms*style.Padding) / 2

    dc := gg.NewContext(side, side)
    dc.SetColor(style.Back)
    dc.Clear()
    dc.SetColor(style.Front)
    for y, row := range bits {
        for x, dark := range row {
            if !dark {
                continue
            }
            cx := float64(x+style.Border)*ms + ms/2
            cy := float64(y+style.Border)*ms + ms/2
            dc.DrawCircle(cx, cy, radius)
        }
    }
    dc.Fill()
    return dc.Image(), nil
}

// GenerateQRCode writes the booking QR of a to dir/{slug}-qr.png.
func GenerateQRCode(tpl card.Template, a card.Agent, dir string) (string, error) {
    if err := a.Validate(); err != nil {
        return "", err
    }
    img, err := GenerateQRImage(tpl.BookingURLFor(a), tpl.QRStyle)
    if err != nil {
        return "", fmt.Errorf("qr for %s: %w", a, err)
    }
    out := filepath.Join(dir, a.Slug()+"-qr.png")
    if err := SaveImage(out, img); err != nil {
        return "", err
    }
    return out, nil
}
