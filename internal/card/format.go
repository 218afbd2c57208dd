package card

import (
    "errors"
    "fmt"
    "strings"
    "unicode"
)

var ErrInvalidPhone = errors.New("invalid phone number")

// FormatPhone keeps the digits of raw and groups them as DDD.DDD.DDDD.
// An eleven digit number with a leading 1 drops the country code.
func FormatPhone(raw string) (string, error) {
    var digits []rune
    for _, r := range raw {
        if unicode.IsDigit(r) {
            digits = append(digits, r)
        }
    }
    if len(digits) == 11 && digits[0] == '1' {
        digits = digits[1:]
    }
    if len(digits) != 10 {
        return "", fmt.Errorf("%w: %q has %d digits", ErrInvalidPhone, raw, len(digits))
    }
    return string(digits[:3]) + "." + string(digits[3:6]) + "." + string(digits[6:]), nil
}

// EmailLocal returns the "first.last" local part in lowercase.
func EmailLocal(first, last string) string {
    return strings.ToLower(strings.TrimSpace(first)) + "." + strings.ToLower(strings.TrimSpace(last))
}

// NameLabel is the uppercase label printed under the headshot.
func NameLabel(first, last string) string {
    return strings.ToUpper(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}

// EmailLabel is the uppercase email local part as printed on the card.
func EmailLabel(first, last string) string {
    return strings.ToUpper(EmailLocal(first, last))
}
