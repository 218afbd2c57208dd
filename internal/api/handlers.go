package api

import (
    "bytes"
    "errors"
    "image"
    "image/png"
    "math"
    "net/http"
    "strconv"
    "unicode/utf8"

    "github.com/gin-gonic/gin"
    "github.com/youruser/bcard/internal/asset"
    "github.com/youruser/bcard/internal/card"
    "github.com/youruser/bcard/internal/fit"
    imagepkg "github.com/youruser/bcard/internal/image"
    "go.uber.org/zap"
)

// MaxQRSize caps the side of a plain QR code in pixels.
const MaxQRSize = 2048

// maxTextScale caps a requested text size at this multiple of the field's
// asset size.
const maxTextScale = 2

// maxTextLen caps the characters of one rendered label.
const maxTextLen = 64

// Handler serves the card endpoints for one template.
type Handler struct {
    builder *imagepkg.Builder
    log     *zap.Logger
}

func NewHandler(b *imagepkg.Builder, log *zap.Logger) *Handler {
    if log == nil {
        log = zap.NewNop()
    }
    return &Handler{builder: b, log: log}
}

// health
func health(c *gin.Context) {
    c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func statusOf(err error) int {
    switch {
    case errors.Is(err, card.ErrInvalidPhone), errors.Is(err, card.ErrInvalidName),
        errors.Is(err, fit.ErrInvalidGeometry):
        return http.StatusBadRequest
    case errors.Is(err, asset.ErrAssetMissing):
        return http.StatusNotFound
    default:
        return http.StatusInternalServerError
    }
}

func (h *Handler) fail(c *gin.Context, err error) {
    status := statusOf(err)
    if status == http.StatusInternalServerError {
        h.log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
    }
    c.JSON(status, gin.H{"error": err.Error()})
}

// qr returns the styled booking QR for first/last, or a plain QR of
// "text" at "size" pixels.
func (h *Handler) qr(c *gin.Context) {
    tpl := h.builder.Composer().Template()
    first, last := c.Query("first"), c.Query("last")
    if first != "" && last != "" {
        a := card.Agent{First: first, Last: last}
        if err := a.Validate(); err != nil {
            h.fail(c, err)
            return
        }
        img, err := imagepkg.GenerateQRImage(tpl.BookingURLFor(a), tpl.QRStyle)
        if err != nil {
            h.fail(c, err)
            return
        }
        writePNG(c, img)
        return
    }

    text := c.Query("text")
    if text == "" {
        c.JSON(http.StatusBadRequest, gin.H{"error": "first and last, or text, are required"})
        return
    }
    size := 400
    if sizeStr := c.Query("size"); sizeStr != "" {
        if v, err := strconv.Atoi(sizeStr); err == nil && v > 0 {
            size = v
        }
    }
    if size > MaxQRSize {
        c.JSON(http.StatusBadRequest, gin.H{"error": "size must be at most " + strconv.Itoa(MaxQRSize)})
        return
    }
    b, err := imagepkg.GenerateQRPNG(text, size)
    if err != nil {
        h.fail(c, err)
        return
    }
    c.Data(http.StatusOK, "image/png", b)
}

type textRequest struct {
    Field string  `json:"field" binding:"required"`
    Text  string  `json:"text" binding:"max=64"`
    Size  float64 `json:"size"`
}

func (h *Handler) field(name string) (card.Field, bool) {
    tpl := h.builder.Composer().Template()
    switch name {
    case "name":
        return tpl.Name, true
    case "phone":
        return tpl.Phone, true
    case "email":
        return tpl.Email, true
    }
    return card.Field{}, false
}

// textSize resolves a requested text size: non-positive means the field's
// asset size, anything above maxTextScale times that is rejected.
func textSize(c *gin.Context, field card.Field, requested float64) (float64, bool) {
    if requested <= 0 || math.IsNaN(requested) {
        return field.AssetSize, true
    }
    if limit := maxTextScale * field.AssetSize; requested > limit {
        c.JSON(http.StatusBadRequest, gin.H{"error": "size must be at most " + strconv.FormatFloat(limit, 'f', -1, 64)})
        return 0, false
    }
    return requested, true
}

// text renders one label with the field's font and colours, unfitted.
func (h *Handler) text(c *gin.Context) {
    var req textRequest
    if err := c.BindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }
    field, ok := h.field(req.Field)
    if !ok {
        c.JSON(http.StatusBadRequest, gin.H{"error": "unknown field " + strconv.Quote(req.Field)})
        return
    }
    sz, ok := textSize(c, field, req.Size)
    if !ok {
        return
    }
    img, err := h.builder.Composer().Live(field, req.Text, sz).Image()
    if err != nil {
        h.fail(c, err)
        return
    }
    writePNG(c, img)
}

type glyphJSON struct {
    Rune  string `json:"rune"`
    X     int    `json:"x"`
    Y     int    `json:"y"`
    Width int    `json:"width"`
    Blank bool   `json:"blank,omitempty"`
}

// layout reports how "text" is measured for a field.
func (h *Handler) layout(c *gin.Context) {
    field, ok := h.field(c.DefaultQuery("field", "name"))
    if !ok {
        c.JSON(http.StatusBadRequest, gin.H{"error": "unknown field"})
        return
    }
    text := c.Query("text")
    if utf8.RuneCountInString(text) > maxTextLen {
        c.JSON(http.StatusBadRequest, gin.H{"error": "text must be at most " + strconv.Itoa(maxTextLen) + " characters"})
        return
    }
    requested, _ := strconv.ParseFloat(c.Query("size"), 64)
    sz, ok := textSize(c, field, requested)
    if !ok {
        return
    }
    l, err := h.builder.Composer().Measure(field, text, sz)
    if err != nil {
        h.fail(c, err)
        return
    }
    glyphs := make([]glyphJSON, 0, len(l.Glyphs))
    for _, g := range l.Glyphs {
        glyphs = append(glyphs, glyphJSON{Rune: string(g.Rune), X: g.X, Y: g.Y, Width: g.Box.Width(), Blank: g.Box.Blank})
    }
    c.JSON(http.StatusOK, gin.H{"width": l.Width, "height": l.Height, "glyphs": glyphs})
}

type cardRequest struct {
    First       string `json:"first" binding:"required"`
    Last        string `json:"last" binding:"required"`
    Phone       string `json:"phone" binding:"required"`
    HeadshotURL string `json:"headshot_url"`
}

// card builds the full card and returns the JPEG.
func (h *Handler) card(c *gin.Context) {
    var req cardRequest
    if err := c.BindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }
    if req.HeadshotURL != "" && !imagepkg.IsURL(req.HeadshotURL) {
        c.JSON(http.StatusBadRequest, gin.H{"error": "headshot_url must be an http or https URL"})
        return
    }
    a := card.Agent{First: req.First, Last: req.Last, Phone: req.Phone, Headshot: req.HeadshotURL}
    out, err := h.builder.Build(c.Request.Context(), a)
    if err != nil {
        h.fail(c, err)
        return
    }
    c.File(out)
}

func writePNG(c *gin.Context, img image.Image) {
    buf := new(bytes.Buffer)
    if err := png.Encode(buf, img); err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }
    c.Data(http.StatusOK, "image/png", buf.Bytes())
}
