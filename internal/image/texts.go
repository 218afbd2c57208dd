package imagepkg

import (
    "path/filepath"

    "github.com/youruser/bcard/internal/card"
)

// GenerateTextAssets renders the name, phone and email labels of a at
// their asset sizes into dir as {slug}-name.png, {slug}-phone.png and
// {slug}-email.png.
func (c *Composer) GenerateTextAssets(a card.Agent, dir string) (TextAssets, error) {
    if err := a.Validate(); err != nil {
        return TextAssets{}, err
    }
    phone, err := card.FormatPhone(a.Phone)
    if err != nil {
        return TextAssets{}, err
    }
    base := filepath.Join(dir, a.Slug())
    out := TextAssets{
        Name:  base + "-name.png",
        Phone: base + "-phone.png",
        Email: base + "-email.png",
    }
    labels := []struct {
        field card.Field
        text  string
        path  string
    }{
        {c.tpl.Name, card.NameLabel(a.First, a.Last), out.Name},
        {c.tpl.Phone, phone, out.Phone},
        {c.tpl.Email, card.EmailLabel(a.First, a.Last), out.Email},
    }
    for _, l := range labels {
        img, err := c.Live(l.field, l.text, l.field.AssetSize).Image()
        if err != nil {
            return TextAssets{}, err
        }
        if err := SaveImage(l.path, img); err != nil {
            return TextAssets{}, err
        }
    }
    return out, nil
}
