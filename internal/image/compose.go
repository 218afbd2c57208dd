package imagepkg

import (
    "fmt"
    "image"

    "github.com/disintegration/imaging"
    "github.com/youruser/bcard/internal/card"
    "github.com/youruser/bcard/internal/fit"
    "github.com/youruser/bcard/internal/glyph"
    "go.uber.org/zap"
)

// Layers are the per-card inputs of a composition. Nil layers are skipped.
type Layers struct {
    Headshot image.Image // ringed headshot
    QR       image.Image
    Name     TextSource
    Phone    TextSource
    Email    TextSource
}

// TextAssets are the paths of pre-rendered labels. Empty or missing paths
// fall back to live rendering.
type TextAssets struct {
    Name  string
    Phone string
    Email string
}

// Composer lays the layers of a card over the template background.
type Composer struct {
    tpl  card.Template
    opts options
}

// NewComposer validates tpl and returns a composer for it.
func NewComposer(tpl card.Template, opts ...Option) (*Composer, error) {
    if err := tpl.Validate(); err != nil {
        return nil, fmt.Errorf("template: %w", err)
    }
    return &Composer{tpl: tpl, opts: buildOptions(opts)}, nil
}

func (c *Composer) Template() card.Template { return c.tpl }

// Compose loads the background and pastes every layer into its box using
// source-over blending.
func (c *Composer) Compose(l Layers) (*image.NRGBA, error) {
    bg, err := openAsset("background", c.tpl.Background)
    if err != nil {
        return nil, err
    }
    canvas := imaging.Clone(bg)

    square := fit.Alignment{Horizontal: fit.Center, Vertical: fit.Middle, PreserveAspect: true}
    images := []struct {
        name string
        img  image.Image
        box  fit.Box
    }{
        {"headshot", l.Headshot, c.tpl.Headshot},
        {"qr", l.QR, c.tpl.QR},
    }
    for _, layer := range images {
        if layer.img == nil {
            c.opts.log.Debug("layer skipped", zap.String("layer", layer.name))
            continue
        }
        canvas = paste(canvas, fit.Fit(layer.img, layer.box, square))
    }

    texts := []struct {
        name  string
        field card.Field
        src   TextSource
    }{
        {"name", c.tpl.Name, l.Name},
        {"phone", c.tpl.Phone, l.Phone},
        {"email", c.tpl.Email, l.Email},
    }
    for _, t := range texts {
        if t.src == nil {
            c.opts.log.Debug("layer skipped", zap.String("layer", t.name))
            continue
        }
        img, err := t.src.Image()
        if err != nil {
            return nil, fmt.Errorf("%s: %w", t.name, err)
        }
        p := fit.Fit(img, t.field.Box, t.field.Align)
        c.opts.log.Debug("text placed",
            zap.String("layer", t.name),
            zap.Int("x", p.X), zap.Int("y", p.Y),
            zap.Int("width", p.Image.Bounds().Dx()), zap.Int("height", p.Image.Bounds().Dy()))
        canvas = paste(canvas, p)
    }
    return canvas, nil
}

func paste(canvas *image.NRGBA, p fit.Placement) *image.NRGBA {
    return imaging.Overlay(canvas, p.Image, p.Point(), 1.0)
}

// Run builds the character run of text for field in the template colours.
func (c *Composer) Run(field card.Field, text string) glyph.Run {
    pal := glyph.Palette{Main: c.tpl.Main, Accent: c.tpl.Accent}
    res := glyph.Resolver{Palette: pal}
    if field.AccentTail {
        res.Overrides = glyph.AccentFrom(text, '.', pal)
    }
    return glyph.Run{Text: text, Tracking: c.tpl.Tracking, Colors: res}
}

// Live renders text for field at size with the field's font.
func (c *Composer) Live(field card.Field, text string, size float64) RunSource {
    return RunSource{
        Run:      c.Run(field, text),
        FontPath: field.Font,
        Size:     size,
        Fonts:    c.opts.fonts,
    }
}

// Measure lays out text for field at size without rasterizing it. The
// font comes from the composer's library.
func (c *Composer) Measure(field card.Field, text string, size float64) (glyph.Layout, error) {
    f, err := c.opts.fonts.Face(field.Font, size)
    if err != nil {
        return glyph.Layout{}, err
    }
    defer f.Close()
    return glyph.Measure(c.Run(field, text), f), nil
}

// Fonts is the font cache shared by every render of this composer.
func (c *Composer) Fonts() *glyph.Library { return c.opts.fonts }

// Sources resolves the text layers of a, preferring the given assets.
func (c *Composer) Sources(a card.Agent, assets TextAssets) (Layers, error) {
    phone, err := card.FormatPhone(a.Phone)
    if err != nil {
        return Layers{}, err
    }
    return Layers{
        Name:  PreferAsset(assets.Name, c.Live(c.tpl.Name, card.NameLabel(a.First, a.Last), c.tpl.Name.Size)),
        Phone: PreferAsset(assets.Phone, c.Live(c.tpl.Phone, phone, c.tpl.Phone.Size)),
        Email: PreferAsset(assets.Email, c.Live(c.tpl.Email, card.EmailLabel(a.First, a.Last), c.tpl.Email.Size)),
    }, nil
}
