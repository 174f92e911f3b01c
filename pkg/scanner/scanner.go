// Package scanner discovers image files under a scan root.
package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/menta2k/image-optimizer/pkg/types"
)

// ErrRootNotFound is returned when the scan root does not exist or is not a
// directory. It is fatal for the whole run.
var ErrRootNotFound = errors.New("scan root not found")

// Extensions recognized by the scanner (lowercase, with leading dot).
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".svg":  true,
}

// Recognized reports whether a file name carries a recognized image
// extension, matched case-insensitively.
func Recognized(name string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(name))]
}

// Scan walks root and returns every file with a recognized image extension
// as a slash-separated path relative to root, sorted lexicographically for
// deterministic processing order. Symbolic links are not followed. An empty
// result is not an error.
func Scan(root string) ([]types.ImageFile, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRootNotFound, root)
		}
		return nil, fmt.Errorf("cannot access scan root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrRootNotFound, root)
	}

	var files []types.ImageFile
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			return nil
		}
		if !Recognized(d.Name()) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, types.ImageFile(filepath.ToSlash(rel)))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i] < files[j] })
	return files, nil
}
