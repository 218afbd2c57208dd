package card

import (
    "os"
    "path/filepath"

    "github.com/youruser/bcard/internal/util"
)

// Dirs are the working directories of a card build.
type Dirs struct {
    Headshots string // raw headshots, {slug}.png
    Agents    string // ringed headshots
    QRCodes   string
    Cards     string
    Texts     string // pre-rendered text labels
}

// DefaultDirs lays the directories out under root/static/assets/img.
func DefaultDirs(root string) Dirs {
    img := filepath.Join(root, "static", "assets", "img")
    return Dirs{
        Headshots: filepath.Join(img, "headshots"),
        Agents:    filepath.Join(img, "agents"),
        QRCodes:   filepath.Join(img, "qrcodes"),
        Cards:     filepath.Join(img, "bcards"),
        Texts:     filepath.Join(img, "texts"),
    }
}

// DirsFromEnv starts from DefaultDirs(root) and applies HEADSHOT_DIR,
// AGENT_DIR, QR_DIR, BCARD_DIR and TEXT_DIR when set.
func DirsFromEnv(root string) Dirs {
    d := DefaultDirs(root)
    for env, dst := range map[string]*string{
        "HEADSHOT_DIR": &d.Headshots,
        "AGENT_DIR":    &d.Agents,
        "QR_DIR":       &d.QRCodes,
        "BCARD_DIR":    &d.Cards,
        "TEXT_DIR":     &d.Texts,
    } {
        if v := os.Getenv(env); v != "" {
            *dst = v
        }
    }
    return d
}

// RootFromEnv returns BCARD_ROOT, or "." when unset.
func RootFromEnv() string {
    if v := os.Getenv("BCARD_ROOT"); v != "" {
        return v
    }
    return "."
}

// Ensure creates every directory.
func (d Dirs) Ensure() error {
    for _, p := range []string{d.Headshots, d.Agents, d.QRCodes, d.Cards, d.Texts} {
        if err := util.EnsureDir(p); err != nil {
            return err
        }
    }
    return nil
}
