package imagepkg

import (
    "image"
    "image/color"
    "os"
    "path/filepath"
    "testing"

    "github.com/disintegration/imaging"
    "github.com/fogleman/gg"
    "github.com/youruser/bcard/internal/card"
    "golang.org/x/image/font/gofont/gobold"
    "golang.org/x/image/font/gofont/goregular"
)

var (
    navy = color.NRGBA{0x10, 0x20, 0x40, 0xff}
    red  = color.NRGBA{0xff, 0x00, 0x00, 0xff}
)

type fixture struct {
    root string
    tpl  card.Template
    dirs card.Dirs
}

func writeFile(t *testing.T, path string, data []byte) {
    t.Helper()
    if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
        t.Fatal(err)
    }
    if err := os.WriteFile(path, data, 0o644); err != nil {
        t.Fatal(err)
    }
}

func writeImage(t *testing.T, path string, img image.Image) {
    t.Helper()
    if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
        t.Fatal(err)
    }
    if err := imaging.Save(img, path); err != nil {
        t.Fatal(err)
    }
}

// ringImage is a gold annulus on a transparent square.
func ringImage(size int) image.Image {
    dc := gg.NewContext(size, size)
    dc.SetColor(color.NRGBA{0xd4, 0xaf, 0x37, 0xff})
    dc.SetLineWidth(float64(size) / 20)
    dc.DrawCircle(float64(size)/2, float64(size)/2, float64(size)/2-float64(size)/40)
    dc.Stroke()
    return dc.Image()
}

// newFixture lays out a complete asset tree for the default template.
func newFixture(t *testing.T) fixture {
    t.Helper()
    root := t.TempDir()
    tpl := card.DefaultTemplate(root)
    writeFile(t, tpl.Name.Font, gobold.TTF)
    writeFile(t, tpl.Email.Font, goregular.TTF)
    writeImage(t, tpl.Background, imaging.New(675, 1125, navy))
    writeImage(t, tpl.Ring, ringImage(200))
    return fixture{root: root, tpl: tpl, dirs: card.DefaultDirs(root)}
}

func (f fixture) addHeadshot(t *testing.T, a card.Agent) string {
    t.Helper()
    path := filepath.Join(f.dirs.Headshots, a.Slug()+".jpg")
    writeImage(t, path, imaging.New(400, 300, red))
    return path
}

var sean = card.Agent{First: "Sean", Last: "Fallon", Phone: "8018366758"}
