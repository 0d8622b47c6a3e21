// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package naming

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const pdfExt = ".pdf"

// Candidate returns the n-th file name tried for base: base.pdf for n == 0,
// base_n.pdf otherwise.
func Candidate(base string, n int) string {
	if n == 0 {
		return base + pdfExt
	}
	return fmt.Sprintf("%s_%d%s", base, n, pdfExt)
}

// ResolveName returns the first candidate name for base that does not exist
// in folder. self is the current name of the file being renamed; if a
// candidate equals self it is returned, since renaming a file onto itself is
// not a collision. Pass an empty self when there is no such file.
//
// The check is not atomic with respect to the later rename.
func ResolveName(folder, base, self string) (string, error) {
	return resolve(base, self, func(name string) (bool, error) {
		return exists(filepath.Join(folder, name))
	})
}

// ResolveNameReserved is ResolveName with an overlay on the folder contents:
// a name present in overlay is taken if its value is true and free if it is
// false, whatever is on disk. Names not in overlay are checked on disk.
func ResolveNameReserved(folder, base, self string, overlay map[string]bool) (string, error) {
	return resolve(base, self, func(name string) (bool, error) {
		if taken, ok := overlay[name]; ok {
			return taken, nil
		}
		return exists(filepath.Join(folder, name))
	})
}

func resolve(base, self string, taken func(string) (bool, error)) (string, error) {
	for n := 0; ; n++ {
		name := Candidate(base, n)
		if name == self {
			return name, nil
		}
		used, err := taken(name)
		if err != nil {
			return "", err
		}
		if !used {
			return name, nil
		}
	}
}

func exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("checking %s: %w", path, err)
}
