// Package resolve maps a scanned file and an output strategy to the path the
// converted file is written to.
package resolve

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/menta2k/image-optimizer/pkg/types"
)

// Resolver computes output locations under a fixed scan root.
type Resolver struct {
	root      string
	targetExt string // without dot, e.g. "webp"
}

// New returns a Resolver rooted at root writing files with targetExt.
func New(root, targetExt string) *Resolver {
	return &Resolver{root: root, targetExt: targetExt}
}

// OutputPath computes where the converted form of file is written. It is
// pure; EnsureDir performs the directory side effect.
//
//	Overwrite:            <root>/<dir>/<base>.<ext>
//	NewFolder, top level: <root>/<suffix>/<base>.<ext>
//	NewFolder, nested:    <root>/<parent>/<dirname><suffix>/<base>.<ext>
//
// The new-folder directory is a sibling of the source directory at the same
// nesting level ("images" + "_optimized" -> "images_optimized"), never
// nested inside it.
func (r *Resolver) OutputPath(file types.ImageFile, strategy types.OutputStrategy) string {
	name := file.Base() + "." + r.targetExt
	dir := file.Dir()

	outDir := dir
	if strategy.Mode == types.OutputNewFolder {
		if dir == types.RootDir {
			outDir = strategy.Suffix
		} else {
			outDir = path.Join(path.Dir(dir), path.Base(dir)+strategy.Suffix)
		}
	}
	return filepath.Join(r.root, filepath.FromSlash(outDir), name)
}

// EnsureDir creates the containing directory of outputPath, recursively.
// Creating an already-existing directory is a no-op, so redundant calls per
// file are fine. A failure is scoped to the file being resolved, not the run.
func (r *Resolver) EnsureDir(outputPath string) error {
	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create output directory %s: %w", dir, err)
	}
	return nil
}
