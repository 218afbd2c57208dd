package asset

import (
    "errors"
    "fmt"
    "os"
)

// ErrAssetMissing is wrapped by every error caused by a resource file that
// does not exist. A missing asset aborts the current card build.
var ErrAssetMissing = errors.New("asset missing")

// Error names the resource that could not be found.
type Error struct {
    Kind string // "font", "background", "ring", "headshot", ...
    Path string
    Err  error
}

func (e *Error) Error() string {
    if e.Err != nil {
        return fmt.Sprintf("%s not found at %s: %v", e.Kind, e.Path, e.Err)
    }
    return fmt.Sprintf("%s not found at %s", e.Kind, e.Path)
}

func (e *Error) Unwrap() []error {
    if e.Err != nil {
        return []error{ErrAssetMissing, e.Err}
    }
    return []error{ErrAssetMissing}
}

// Missing builds the error for a resource of the given kind.
func Missing(kind, path string) error {
    return &Error{Kind: kind, Path: path}
}

// Require returns an *Error when path does not name a regular file.
func Require(kind, path string) error {
    if path == "" {
        return Missing(kind, "<empty path>")
    }
    info, err := os.Stat(path)
    if err != nil {
        if errors.Is(err, os.ErrNotExist) {
            return Missing(kind, path)
        }
        return &Error{Kind: kind, Path: path, Err: err}
    }
    if info.IsDir() {
        return &Error{Kind: kind, Path: path, Err: errors.New("is a directory")}
    }
    return nil
}

// Exists reports whether path names an existing regular file.
func Exists(path string) bool {
    if path == "" {
        return false
    }
    info, err := os.Stat(path)
    return err == nil && !info.IsDir()
}
