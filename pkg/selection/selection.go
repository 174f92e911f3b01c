// Package selection narrows a scan result to the subset chosen by the user.
package selection

import (
	"errors"
	"fmt"
	"sort"

	"github.com/menta2k/image-optimizer/pkg/types"
)

// ErrEmptySelection is returned when a scope resolves to zero files. This is
// a user-input condition, not a fatal one: callers re-prompt or abort
// cleanly, they never schedule an empty batch.
var ErrEmptySelection = errors.New("selection contains no files")

// Folders returns the deduplicated, sorted set of containing directories of
// the scanned files. Top-level files contribute types.RootDir. Only
// directories that actually hold images appear; empty directories are never
// offered for selection.
func Folders(files []types.ImageFile) []string {
	seen := make(map[string]bool)
	var dirs []string
	for _, f := range files {
		dir := f.Dir()
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}
	sort.Strings(dirs)
	return dirs
}

// Apply filters files down to the scope. The scan order of files is
// preserved in the result for every mode. Files outside the original scan
// result are silently dropped for SelectByFile; a scope that yields nothing
// returns ErrEmptySelection.
func Apply(files []types.ImageFile, scope types.SelectionScope) ([]types.ImageFile, error) {
	var selected []types.ImageFile

	switch scope.Mode {
	case types.SelectAll:
		selected = append(selected, files...)

	case types.SelectByFolder:
		dirs := make(map[string]bool, len(scope.Folders))
		for _, d := range scope.Folders {
			dirs[d] = true
		}
		for _, f := range files {
			if dirs[f.Dir()] {
				selected = append(selected, f)
			}
		}

	case types.SelectByFile:
		want := make(map[types.ImageFile]bool, len(scope.Files))
		for _, f := range scope.Files {
			want[f] = true
		}
		for _, f := range files {
			if want[f] {
				selected = append(selected, f)
			}
		}

	default:
		return nil, fmt.Errorf("unknown selection mode %q", scope.Mode)
	}

	if len(selected) == 0 {
		return nil, ErrEmptySelection
	}
	return selected, nil
}
