package card

import "strings"

type FilterOptions struct {
    Slugs     []string // exact "first-last" matches
    FreeWords string   // every word must appear in the name or phone
}

func Filter(agents []Agent, opt FilterOptions) []Agent {
    var out []Agent
    for _, a := range agents {
        if len(opt.Slugs) > 0 {
            matched := false
            for _, s := range opt.Slugs {
                if strings.EqualFold(strings.TrimSpace(s), a.Slug()) {
                    matched = true
                    break
                }
            }
            if !matched {
                continue
            }
        }
        if opt.FreeWords != "" {
            hay := strings.ToLower(a.First + " " + a.Last + " " + a.Phone)
            ok := true
            for _, k := range strings.Fields(opt.FreeWords) {
                if !strings.Contains(hay, strings.ToLower(k)) {
                    ok = false
                    break
                }
            }
            if !ok {
                continue
            }
        }
        out = append(out, a)
    }
    return out
}
