package batch

import (
    "fmt"
    "strings"
)

// ExportManifest lists one line per result, in order: "ok <slug> <path>"
// or "error <slug> <message>", followed by a summary line.
func ExportManifest(results []Result) string {
    lines := []string{}
    for _, r := range results {
        if r.Err != nil {
            lines = append(lines, fmt.Sprintf("error %s %s", r.Agent.Slug(), r.Err))
            continue
        }
        lines = append(lines, fmt.Sprintf("ok %s %s", r.Agent.Slug(), r.Path))
    }
    lines = append(lines, fmt.Sprintf("# %d built, %d failed", len(results)-Failed(results), Failed(results)))
    return strings.Join(lines, "\n")
}
