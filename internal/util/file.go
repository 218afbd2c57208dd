package util

import (
    "fmt"
    "io"
    "os"
    "path/filepath"
)

func EnsureDir(path string) error {
    return os.MkdirAll(path, 0o755)
}

// WriteAtomic streams write into a temporary file next to path and renames
// it into place, so readers never see a partial file. Nothing is left
// behind when write fails.
func WriteAtomic(path string, write func(w io.Writer) error) (err error) {
    dir := filepath.Dir(path)
    if err := EnsureDir(dir); err != nil {
        return err
    }
    tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
    if err != nil {
        return err
    }
    defer func() {
        if err != nil {
            tmp.Close()
            os.Remove(tmp.Name())
        }
    }()
    if err = write(tmp); err != nil {
        return fmt.Errorf("writing %s: %w", path, err)
    }
    if err = tmp.Close(); err != nil {
        return err
    }
    if err = os.Chmod(tmp.Name(), 0o644); err != nil {
        return err
    }
    return os.Rename(tmp.Name(), path)
}

// CopyFile copies src to dst atomically.
func CopyFile(src, dst string) error {
    in, err := os.Open(src)
    if err != nil {
        return err
    }
    defer in.Close()
    return WriteAtomic(dst, func(w io.Writer) error {
        _, err := io.Copy(w, in)
        return err
    })
}
