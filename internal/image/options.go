package imagepkg

import (
    "github.com/youruser/bcard/internal/glyph"
    "go.uber.org/zap"
)

type options struct {
    log     *zap.Logger
    fonts   *glyph.Library
    cropper Cropper
}

// Option configures a Composer or Builder.
type Option func(*options)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
    return func(o *options) {
        if l != nil {
            o.log = l
        }
    }
}

// WithFontLibrary shares parsed fonts between composers.
func WithFontLibrary(lib *glyph.Library) Option {
    return func(o *options) {
        if lib != nil {
            o.fonts = lib
        }
    }
}

// WithCropper replaces the centre crop used for headshots.
func WithCropper(c Cropper) Option {
    return func(o *options) {
        if c != nil {
            o.cropper = c
        }
    }
}

func buildOptions(opts []Option) options {
    o := options{
        log:     zap.NewNop(),
        fonts:   glyph.NewLibrary(),
        cropper: CenterCropper{},
    }
    for _, opt := range opts {
        opt(&o)
    }
    return o
}
