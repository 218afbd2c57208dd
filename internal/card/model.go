package card

import (
    "errors"
    "fmt"
    "strings"
    "unicode"
)

// ErrInvalidName is returned for names that cannot form a file name.
var ErrInvalidName = errors.New("invalid agent name")

// Agent is the person a card is built for.
type Agent struct {
    First    string `json:"first"`
    Last     string `json:"last"`
    Phone    string `json:"phone"`
    Headshot string `json:"headshot,omitempty"` // local path or http(s) URL
}

// Slug is the lowercase "first-last" stem used for every file of the agent.
func (a Agent) Slug() string {
    return strings.ToLower(strings.TrimSpace(a.First)) + "-" + strings.ToLower(strings.TrimSpace(a.Last))
}

// Validate checks that both names are present and that the slug is made
// of letters, digits and hyphens only, so it can never leave the
// directory it is joined to.
func (a Agent) Validate() error {
    if strings.TrimSpace(a.First) == "" || strings.TrimSpace(a.Last) == "" {
        return fmt.Errorf("%w: first and last name are required", ErrInvalidName)
    }
    for _, r := range a.Slug() {
        if r != '-' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
            return fmt.Errorf("%w: %q contains %q", ErrInvalidName, a.String(), r)
        }
    }
    return nil
}

func (a Agent) String() string {
    return strings.TrimSpace(a.First + " " + a.Last)
}
