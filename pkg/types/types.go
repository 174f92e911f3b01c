package types

import (
	"path"
	"strings"
)

// RootDir is the folder identifier for files that sit directly in the scan
// root. It is what path.Dir returns for a bare filename and can never clash
// with a real subdirectory name.
const RootDir = "."

// ImageFile is a scanned image path relative to the scan root, always
// slash-separated.
type ImageFile string

// Dir returns the containing directory of the file, RootDir for top-level files.
func (f ImageFile) Dir() string {
	return path.Dir(string(f))
}

// Base returns the file name with the extension stripped.
func (f ImageFile) Base() string {
	name := path.Base(string(f))
	return strings.TrimSuffix(name, path.Ext(name))
}

// Ext returns the lowercased extension including the leading dot.
func (f ImageFile) Ext() string {
	return strings.ToLower(path.Ext(string(f)))
}

// IsVector reports whether the file is a vector format. Vector files are
// scanned and selectable but never re-encoded: there is no pixel grid to
// hand to the codec.
func (f ImageFile) IsVector() bool {
	return f.Ext() == ".svg"
}

// SelectionMode identifies which variant of SelectionScope is active.
type SelectionMode string

const (
	SelectAll      SelectionMode = "all"
	SelectByFolder SelectionMode = "folder"
	SelectByFile   SelectionMode = "file"
)

// SelectionScope is the user's chosen subset policy. Exactly one variant is
// active per run; Folders and Files carry the payload for their mode and are
// nil otherwise.
type SelectionScope struct {
	Mode    SelectionMode
	Folders []string
	Files   []ImageFile
}

// AllFiles returns a scope selecting every scanned file.
func AllFiles() SelectionScope {
	return SelectionScope{Mode: SelectAll}
}

// ByFolder returns a scope selecting files whose containing directory is in dirs.
func ByFolder(dirs ...string) SelectionScope {
	return SelectionScope{Mode: SelectByFolder, Folders: dirs}
}

// ByFile returns a scope selecting exactly the given files.
func ByFile(files ...ImageFile) SelectionScope {
	return SelectionScope{Mode: SelectByFile, Files: files}
}

// OutputMode identifies which variant of OutputStrategy is active.
type OutputMode string

const (
	// OutputNewFolder writes converted files into a sibling directory named
	// after the source directory plus a suffix.
	OutputNewFolder OutputMode = "new-folder"
	// OutputOverwrite writes converted files beside the originals. The source
	// file is never removed; the operation is additive.
	OutputOverwrite OutputMode = "overwrite"
)

// OutputStrategy determines where converted files are written. Suffix is
// only meaningful for OutputNewFolder.
type OutputStrategy struct {
	Mode   OutputMode
	Suffix string
}

// NewFolder returns a strategy writing into "<dir><suffix>" sibling directories.
func NewFolder(suffix string) OutputStrategy {
	return OutputStrategy{Mode: OutputNewFolder, Suffix: suffix}
}

// Overwrite returns a strategy writing converted files beside the originals.
func Overwrite() OutputStrategy {
	return OutputStrategy{Mode: OutputOverwrite}
}

// Status is the terminal outcome of one file in a batch run.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

// ConversionResult is the per-file outcome produced by the conversion worker
// and consumed by the batch runner for counting.
type ConversionResult struct {
	Input      ImageFile
	OutputPath string
	Status     Status
	Err        error
}

// RunSummary aggregates a batch run. Succeeded + Failed + Skipped equals the
// number of files handed to the runner.
type RunSummary struct {
	Strategy  OutputStrategy
	Succeeded int
	Failed    int
	Skipped   int

	TotalInputBytes  int64
	TotalOutputBytes int64
}

// SpaceSaved returns the byte difference between converted inputs and their
// outputs. Positive means the outputs are smaller.
func (s RunSummary) SpaceSaved() int64 {
	return s.TotalInputBytes - s.TotalOutputBytes
}
