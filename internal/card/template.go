package card

import (
    "encoding/json"
    "errors"
    "fmt"
    "image/color"
    "os"
    "path/filepath"
    "strconv"
    "strings"

    "github.com/youruser/bcard/internal/fit"
)

// Color is an opaque-by-default colour written as "#RRGGBB" or "#RRGGBBAA".
type Color color.NRGBA

func (c Color) RGBA() (r, g, b, a uint32) { return color.NRGBA(c).RGBA() }

func (c Color) String() string {
    if c.A == 0xff {
        return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
    }
    return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// ParseHexColor parses "#RGB", "#RRGGBB" or "#RRGGBBAA".
func ParseHexColor(s string) (Color, error) {
    h := strings.TrimPrefix(strings.TrimSpace(s), "#")
    if len(h) == 3 {
        h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
    }
    if len(h) == 6 {
        h += "ff"
    }
    if len(h) != 8 {
        return Color{}, fmt.Errorf("invalid colour %q", s)
    }
    v, err := strconv.ParseUint(h, 16, 32)
    if err != nil {
        return Color{}, fmt.Errorf("invalid colour %q: %w", s, err)
    }
    return Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

func (c Color) MarshalJSON() ([]byte, error) { return json.Marshal(c.String()) }

func (c *Color) UnmarshalJSON(data []byte) error {
    var s string
    if err := json.Unmarshal(data, &s); err != nil {
        return err
    }
    v, err := ParseHexColor(s)
    if err != nil {
        return err
    }
    *c = v
    return nil
}

// Field describes one text label of the card.
type Field struct {
    Font      string        `json:"font"`
    Size      float64       `json:"size"`       // pixel size used when rendering live
    AssetSize float64       `json:"asset_size"` // pixel size of pre-rendered assets
    Box       fit.Box       `json:"box"`
    Align     fit.Alignment `json:"align"`
    // AccentTail paints everything from the first dot onwards in the
    // accent colour instead of the dots alone.
    AccentTail bool `json:"accent_tail"`
}

// QRStyle controls how the booking QR code is drawn.
type QRStyle struct {
    ModuleSize int     `json:"module_size"`
    Border     int     `json:"border"`  // quiet zone, in modules
    Padding    float64 `json:"padding"` // fraction of a module inset on each side of a dot
    Back       Color   `json:"back"`
    Front      Color   `json:"front"`
}

// Template is the fixed layout of a card design. It is loaded once and
// never mutated afterwards.
type Template struct {
    Background string  `json:"background"`
    Ring       string  `json:"ring"`
    Main       Color   `json:"main_color"`
    Accent     Color   `json:"accent_color"`
    Tracking   int     `json:"tracking"`
    Name       Field   `json:"name"`
    Phone      Field   `json:"phone"`
    Email      Field   `json:"email"`
    Headshot   fit.Box `json:"headshot"`
    QR         fit.Box `json:"qr"`
    QRStyle    QRStyle `json:"qr_style"`
    // BookingURL is the QR target; "{slug}" is replaced by the agent slug.
    BookingURL string `json:"booking_url"`
}

// DefaultTemplate is the 675x1125 gold card. Asset paths are rooted at root.
func DefaultTemplate(root string) Template {
    fonts := filepath.Join(root, "static", "assets", "fonts")
    core := filepath.Join(root, "static", "assets", "img", "core")
    semibold := filepath.Join(fonts, "Montserrat-SemiBold.ttf")
    regular := filepath.Join(fonts, "Montserrat-Regular.ttf")
    centered := fit.Alignment{Horizontal: fit.Center, Vertical: fit.Middle, PreserveAspect: true}

    return Template{
        Background: filepath.Join(core, "bcard-bg.png"),
        Ring:       filepath.Join(core, "gold-ring.png"),
        Main:       Color{0xff, 0xff, 0xff, 0xff},
        Accent:     Color{0xed, 0xdc, 0x9e, 0xff},
        Tracking:   2,
        Name: Field{
            Font:      semibold,
            Size:      400,
            AssetSize: 300,
            Box:       fit.Box{X: 100, Y: 494, Width: 473, Height: 54},
            Align:     centered,
        },
        Phone: Field{
            Font:      semibold,
            Size:      200,
            AssetSize: 120,
            Box:       fit.Box{X: 142, Y: 612, Width: 339, Height: 44},
            Align:     fit.Alignment{Horizontal: fit.Left, Vertical: fit.Middle},
        },
        Email: Field{
            Font:       regular,
            Size:       300,
            AssetSize:  180,
            Box:        fit.Box{X: 130, Y: 667, Width: 369, Height: 49},
            Align:      centered,
            AccentTail: true,
        },
        Headshot: fit.Box{X: 166, Y: 109, Width: 335, Height: 335},
        QR:       fit.Box{X: 337, Y: 762, Width: 238, Height: 238},
        QRStyle: QRStyle{
            ModuleSize: 10,
            Border:     4,
            Padding:    0.15,
            Back:       Color{0xff, 0xfa, 0xbf, 0xff},
            Front:      Color{0x00, 0x00, 0x00, 0xff},
        },
        BookingURL: "https://thebenefitsboss.com/{slug}-booking",
    }
}

// LoadTemplate reads JSON overrides from path on top of DefaultTemplate(root).
// Relative asset paths in the file are resolved against root.
func LoadTemplate(path, root string) (Template, error) {
    defaults := DefaultTemplate(root)
    tpl := defaults
    data, err := os.ReadFile(path)
    if err != nil {
        return Template{}, fmt.Errorf("reading template %s: %w", path, err)
    }
    if err := json.Unmarshal(data, &tpl); err != nil {
        return Template{}, fmt.Errorf("parsing template %s: %w", path, err)
    }
    paths := []struct {
        got *string
        def string
    }{
        {&tpl.Background, defaults.Background},
        {&tpl.Ring, defaults.Ring},
        {&tpl.Name.Font, defaults.Name.Font},
        {&tpl.Phone.Font, defaults.Phone.Font},
        {&tpl.Email.Font, defaults.Email.Font},
    }
    for _, p := range paths {
        if *p.got != p.def && *p.got != "" && !filepath.IsAbs(*p.got) {
            *p.got = filepath.Join(root, *p.got)
        }
    }
    if err := tpl.Validate(); err != nil {
        return Template{}, fmt.Errorf("template %s: %w", path, err)
    }
    return tpl, nil
}

// Validate checks the geometry and numeric settings of the template.
// Asset files are checked when a card is built, not here.
func (t Template) Validate() error {
    var errs []error
    boxes := []struct {
        name string
        box  fit.Box
    }{
        {"name", t.Name.Box},
        {"phone", t.Phone.Box},
        {"email", t.Email.Box},
        {"headshot", t.Headshot},
        {"qr", t.QR},
    }
    for _, b := range boxes {
        if err := b.box.Validate(); err != nil {
            errs = append(errs, fmt.Errorf("%s: %w", b.name, err))
        }
    }
    for name, f := range map[string]Field{"name": t.Name, "phone": t.Phone, "email": t.Email} {
        if f.Size <= 0 || f.AssetSize <= 0 {
            errs = append(errs, fmt.Errorf("%s: font sizes must be positive", name))
        }
    }
    if t.Tracking < 0 {
        errs = append(errs, fmt.Errorf("tracking must not be negative, got %d", t.Tracking))
    }
    if t.QRStyle.ModuleSize <= 0 || t.QRStyle.Border < 0 {
        errs = append(errs, fmt.Errorf("%w: qr module size %d, border %d", fit.ErrInvalidGeometry, t.QRStyle.ModuleSize, t.QRStyle.Border))
    }
    if t.QRStyle.Padding < 0 || t.QRStyle.Padding >= 0.5 {
        errs = append(errs, fmt.Errorf("qr padding must be in [0, 0.5), got %v", t.QRStyle.Padding))
    }
    if !strings.Contains(t.BookingURL, "{slug}") {
        errs = append(errs, fmt.Errorf("booking url %q has no {slug}", t.BookingURL))
    }
    return errors.Join(errs...)
}

// BookingURLFor returns the QR target for a.
func (t Template) BookingURLFor(a Agent) string {
    return strings.ReplaceAll(t.BookingURL, "{slug}", a.Slug())
}
