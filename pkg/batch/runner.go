// Package batch drives the conversion worker over a selected file set,
// sequentially, isolating per-file failures.
package batch

import (
	"context"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"

	"github.com/menta2k/image-optimizer/internal/logging"
	"github.com/menta2k/image-optimizer/pkg/resolve"
	"github.com/menta2k/image-optimizer/pkg/types"
)

// Converter encodes one input file to the target format at the output path.
type Converter interface {
	Convert(inputPath, outputPath string) error
}

// Runner converts a file set one file at a time. A failure on one file is
// recorded and the loop moves on; the run never aborts on per-file errors
// and never rolls back outputs already written.
type Runner struct {
	log      *logging.Logger
	resolver *resolve.Resolver
	enc      Converter
}

// New returns a Runner. The resolver's root must match the root the file set
// was scanned from.
func New(log *logging.Logger, resolver *resolve.Resolver, enc Converter) *Runner {
	return &Runner{log: log, resolver: resolver, enc: enc}
}

// Run converts files in the order given and returns the aggregate summary.
// Vector files are skipped without touching the encoder and count as neither
// success nor failure. Cancellation is honored between files, never mid-file.
func (r *Runner) Run(ctx context.Context, root string, files []types.ImageFile, strategy types.OutputStrategy) types.RunSummary {
	summary := types.RunSummary{Strategy: strategy}
	total := len(files)

	bar := progressbar.NewOptions(total,
		progressbar.OptionSetDescription("converting"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	for i, file := range files {
		if ctx.Err() != nil {
			r.log.Warn("Interrupted, %d of %d files not processed", total-i, total)
			break
		}

		res := r.processFile(root, file, strategy)
		switch res.Status {
		case types.StatusSuccess:
			summary.Succeeded++
		case types.StatusFailed:
			summary.Failed++
			r.log.Error("[%d/%d] %s: %v", i+1, total, file, res.Err)
		case types.StatusSkipped:
			summary.Skipped++
			r.log.Debug("[%d/%d] %s: skipped (vector format)", i+1, total, file)
		}

		if res.Status == types.StatusSuccess {
			r.accountBytes(&summary, root, file, res.OutputPath)
			r.log.Debug("[%d/%d] %s -> %s", i+1, total, file, res.OutputPath)
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	return summary
}

// processFile resolves and converts a single file. Every failure path is
// captured in the result; nothing propagates to the caller.
func (r *Runner) processFile(root string, file types.ImageFile, strategy types.OutputStrategy) types.ConversionResult {
	if file.IsVector() {
		return types.ConversionResult{Input: file, Status: types.StatusSkipped}
	}

	outputPath := r.resolver.OutputPath(file, strategy)
	if err := r.resolver.EnsureDir(outputPath); err != nil {
		return types.ConversionResult{Input: file, Status: types.StatusFailed, Err: err}
	}

	inputPath := filepath.Join(root, filepath.FromSlash(string(file)))
	if err := r.enc.Convert(inputPath, outputPath); err != nil {
		return types.ConversionResult{Input: file, Status: types.StatusFailed, Err: err}
	}
	return types.ConversionResult{Input: file, OutputPath: outputPath, Status: types.StatusSuccess}
}

func (r *Runner) accountBytes(summary *types.RunSummary, root string, file types.ImageFile, outputPath string) {
	if in, err := os.Stat(filepath.Join(root, filepath.FromSlash(string(file)))); err == nil {
		summary.TotalInputBytes += in.Size()
	}
	if out, err := os.Stat(outputPath); err == nil {
		summary.TotalOutputBytes += out.Size()
	}
}
