// Package cli wires the scan, prompt, selection, and batch stages into the
// interactive run behind the image-optimizer command.
package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/menta2k/image-optimizer/internal/cli/ui"
	"github.com/menta2k/image-optimizer/internal/config"
	"github.com/menta2k/image-optimizer/internal/logging"
	"github.com/menta2k/image-optimizer/pkg/batch"
	"github.com/menta2k/image-optimizer/pkg/codec"
	"github.com/menta2k/image-optimizer/pkg/resolve"
	"github.com/menta2k/image-optimizer/pkg/scanner"
	"github.com/menta2k/image-optimizer/pkg/selection"
	"github.com/menta2k/image-optimizer/pkg/types"
)

// rootFolderLabel is how the scan root itself is presented in the folder prompt.
const rootFolderLabel = "(top level)"

// Run executes one interactive conversion run. It returns an error only for
// fatal conditions (missing scan root, prompt I/O failure); "no images
// found", an empty selection and user cancellation all end the run cleanly
// with a nil error.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) error {
	root, err := filepath.Abs(cfg.ScanRoot)
	if err != nil {
		log.Error("Cannot resolve scan root: %v", err)
		return err
	}

	files, err := scanner.Scan(root)
	if err != nil {
		if errors.Is(err, scanner.ErrRootNotFound) {
			log.Error("Scan root %s does not exist. Run the command from the directory containing %q.", root, cfg.ScanRoot)
		} else {
			log.Error("Scan failed: %v", err)
		}
		return err
	}

	if len(files) == 0 {
		log.Warn("No images found under %s", root)
		return nil
	}
	log.Info("Found %d images under %s", len(files), root)

	scope, err := promptScope(files)
	if err != nil {
		return finishPrompt(log, err)
	}

	selected, err := selection.Apply(files, scope)
	if err != nil {
		if errors.Is(err, selection.ErrEmptySelection) {
			log.Warn("Nothing selected, nothing to do")
			return nil
		}
		log.Error("Selection failed: %v", err)
		return err
	}

	strategy, err := promptStrategy(cfg)
	if err != nil {
		return finishPrompt(log, err)
	}

	ok, err := ui.Confirm(fmt.Sprintf("Convert %d images to %s (quality %d)?",
		len(selected), cfg.TargetExt, cfg.Quality))
	if err != nil {
		return finishPrompt(log, err)
	}
	if !ok {
		log.Info("Aborted, no files touched")
		return nil
	}

	runner := batch.New(log,
		resolve.New(root, cfg.TargetExt),
		codec.NewWebP(codec.Options{Quality: cfg.Quality, Lossless: cfg.Lossless}),
	)
	summary := runner.Run(ctx, root, selected, strategy)
	report(log, summary)
	return nil
}

// finishPrompt maps prompt cancellation to a clean exit and everything else
// to a fatal error.
func finishPrompt(log *logging.Logger, err error) error {
	if errors.Is(err, ui.ErrCancelled) {
		log.Info("Cancelled, no files touched")
		return nil
	}
	log.Error("Prompt failed: %v", err)
	return err
}

// promptScope asks for the selection mode and, when needed, the folder or
// file subset.
func promptScope(files []types.ImageFile) (types.SelectionScope, error) {
	mode, err := ui.Choose("How do you want to select images?", []string{
		"All images",
		"By folder",
		"By file",
	})
	if err != nil {
		return types.SelectionScope{}, err
	}

	switch mode {
	case 1:
		folders := selection.Folders(files)
		labels := make([]string, len(folders))
		for i, dir := range folders {
			if dir == types.RootDir {
				labels[i] = rootFolderLabel
			} else {
				labels[i] = dir
			}
		}
		picked, err := ui.MultiSelect("Which folders?", labels)
		if err != nil {
			return types.SelectionScope{}, err
		}
		dirs := make([]string, len(picked))
		for i, idx := range picked {
			dirs[i] = folders[idx]
		}
		return types.ByFolder(dirs...), nil

	case 2:
		labels := make([]string, len(files))
		for i, f := range files {
			labels[i] = string(f)
		}
		picked, err := ui.MultiSelect("Which files?", labels)
		if err != nil {
			return types.SelectionScope{}, err
		}
		chosen := make([]types.ImageFile, len(picked))
		for i, idx := range picked {
			chosen[i] = files[idx]
		}
		return types.ByFile(chosen...), nil

	default:
		return types.AllFiles(), nil
	}
}

// promptStrategy asks where converted files should be written.
func promptStrategy(cfg *config.Config) (types.OutputStrategy, error) {
	mode, err := ui.Choose("Where should converted images go?", []string{
		"New folder next to each source folder",
		"Beside the originals (originals are kept)",
	})
	if err != nil {
		return types.OutputStrategy{}, err
	}

	if mode == 1 {
		return types.Overwrite(), nil
	}

	suffix, err := ui.Input("Folder suffix", cfg.DefaultSuffix)
	if err != nil {
		return types.OutputStrategy{}, err
	}
	return types.NewFolder(suffix), nil
}

func report(log *logging.Logger, s types.RunSummary) {
	log.Info("==============================")
	if s.Skipped > 0 {
		log.Info("Done: %d converted, %d failed, %d skipped", s.Succeeded, s.Failed, s.Skipped)
	} else {
		log.Info("Done: %d converted, %d failed", s.Succeeded, s.Failed)
	}

	saved := s.SpaceSaved()
	switch {
	case s.Succeeded == 0:
	case saved >= 0:
		log.Success("Space saved: %s (input %s -> output %s)",
			formatBytes(saved), formatBytes(s.TotalInputBytes), formatBytes(s.TotalOutputBytes))
	default:
		log.Warn("Space saved: -%s (overall output is larger)", formatBytes(-saved))
	}
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}
