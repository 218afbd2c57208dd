package imagepkg

import (
    "context"
    "fmt"
    "path/filepath"

    "github.com/youruser/bcard/internal/asset"
    "github.com/youruser/bcard/internal/card"
    "go.uber.org/zap"
)

// Builder runs the whole pipeline for one agent: ringed headshot, QR code,
// text assets and the final card. Each stage writes its artifact to the
// matching directory of Dirs.
type Builder struct {
    composer *Composer
    dirs     card.Dirs
    opts     options
}

type step struct {
    msg string
    run func() error
}

func NewBuilder(tpl card.Template, dirs card.Dirs, opts ...Option) (*Builder, error) {
    o := buildOptions(opts)
    c, err := NewComposer(tpl, WithLogger(o.log), WithFontLibrary(o.fonts), WithCropper(o.cropper))
    if err != nil {
        return nil, err
    }
    return &Builder{composer: c, dirs: dirs, opts: o}, nil
}

func (b *Builder) Composer() *Composer { return b.composer }

func (b *Builder) Dirs() card.Dirs { return b.dirs }

// CardPath is where Build writes the card of a.
func (b *Builder) CardPath(a card.Agent) string {
    return filepath.Join(b.dirs.Cards, a.Slug()+"-bcard.jpg")
}

// Build produces the card of a and returns its path. Missing assets are
// reported before anything is written.
func (b *Builder) Build(ctx context.Context, a card.Agent) (string, error) {
    log := b.opts.log.With(zap.String("agent", a.String()))
    tpl := b.composer.Template()

    if err := a.Validate(); err != nil {
        return "", err
    }
    if _, err := card.FormatPhone(a.Phone); err != nil {
        return "", err
    }
    for _, req := range []struct{ kind, path string }{
        {"background", tpl.Background},
        {"ring", tpl.Ring},
        {"font", tpl.Name.Font},
        {"font", tpl.Phone.Font},
        {"font", tpl.Email.Font},
    } {
        if err := asset.Require(req.kind, req.path); err != nil {
            return "", err
        }
    }
    if err := b.dirs.Ensure(); err != nil {
        return "", err
    }

    headshot, err := b.headshot(a)
    if err != nil {
        return "", err
    }

    var ringed, qr string
    var texts TextAssets
    steps := []step{
        {"composing ringed headshot", func() (err error) {
            ringed, err = ComposeWithRing(headshot, tpl.Ring, b.dirs.Agents, b.opts.cropper)
            return err
        }},
        {"creating qr code", func() (err error) {
            qr, err = GenerateQRCode(tpl, a, b.dirs.QRCodes)
            return err
        }},
        {"generating text assets", func() (err error) {
            texts, err = b.composer.GenerateTextAssets(a, b.dirs.Texts)
            return err
        }},
    }
    for _, s := range steps {
        if err := ctx.Err(); err != nil {
            return "", err
        }
        log.Info(s.msg)
        if err := s.run(); err != nil {
            return "", fmt.Errorf("%s: %w", s.msg, err)
        }
    }

    if err := ctx.Err(); err != nil {
        return "", err
    }
    layers, err := b.composer.Sources(a, texts)
    if err != nil {
        return "", err
    }
    if layers.Headshot, err = openAsset("ringed headshot", ringed); err != nil {
        return "", err
    }
    if layers.QR, err = openAsset("qr code", qr); err != nil {
        return "", err
    }
    canvas, err := b.composer.Compose(layers)
    if err != nil {
        return "", err
    }
    out := b.CardPath(a)
    log.Info("writing card", zap.String("path", out))
    if err := SaveImage(out, canvas); err != nil {
        return "", err
    }
    return out, nil
}

// headshot resolves the raw headshot of a: the source named on the agent
// is ingested into the headshot directory, otherwise the directory is
// searched for {slug}.png or .jpg.
func (b *Builder) headshot(a card.Agent) (string, error) {
    if a.Headshot != "" {
        return SaveHeadshot(a.Headshot, b.dirs.Headshots, a)
    }
    if p, ok := FindHeadshot(b.dirs.Headshots, a); ok {
        return p, nil
    }
    return "", asset.Missing("headshot", filepath.Join(b.dirs.Headshots, a.Slug()+".png"))
}
