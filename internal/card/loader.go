package card

import (
    "encoding/csv"
    "fmt"
    "io"
    "os"
    "strings"
)

// LoadAgents reads agents from a CSV file with a header row. Recognised
// columns are first, last, phone and headshot; header names are matched
// case-insensitively and unknown columns are ignored.
func LoadAgents(path string) ([]Agent, error) {
    fp, err := os.Open(path)
    if err != nil {
        return nil, err
    }
    defer fp.Close()
    agents, err := ReadAgents(fp)
    if err != nil {
        return nil, fmt.Errorf("loading %s: %w", path, err)
    }
    return agents, nil
}

// ReadAgents parses the CSV format described in LoadAgents. Rows without a
// first or last name are skipped.
func ReadAgents(r io.Reader) ([]Agent, error) {
    cr := csv.NewReader(r)
    cr.FieldsPerRecord = -1
    cr.TrimLeadingSpace = true
    rows, err := cr.ReadAll()
    if err != nil {
        return nil, err
    }
    if len(rows) < 1 {
        return nil, fmt.Errorf("csv has no header")
    }
    cols := map[string]int{}
    for i, h := range rows[0] {
        cols[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
    }
    for _, required := range []string{"first", "last", "phone"} {
        if _, ok := cols[required]; !ok {
            return nil, fmt.Errorf("csv header is missing column %q", required)
        }
    }

    get := func(row []string, name string) string {
        if idx, ok := cols[name]; ok && idx < len(row) {
            return strings.TrimSpace(row[idx])
        }
        return ""
    }

    out := []Agent{}
    for _, row := range rows[1:] {
        a := Agent{
            First:    get(row, "first"),
            Last:     get(row, "last"),
            Phone:    get(row, "phone"),
            Headshot: get(row, "headshot"),
        }
        if a.First == "" || a.Last == "" {
            continue
        }
        out = append(out, a)
    }
    return out, nil
}
