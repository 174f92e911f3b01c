// Package imageoptimizer converts raster images in a directory tree to WebP.
//
// This package combines directory scanning, subset selection, output path
// resolution and batch WebP encoding behind one facade, for use without the
// interactive command.
//
// Basic usage:
//
//	package main
//
//	import (
//		"context"
//		"log"
//
//		imageoptimizer "github.com/menta2k/image-optimizer"
//		"github.com/menta2k/image-optimizer/pkg/types"
//	)
//
//	func main() {
//		opt := imageoptimizer.New("public")
//
//		files, err := opt.Scan()
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		summary, err := opt.Convert(context.Background(),
//			types.AllFiles(), types.NewFolder("_optimized"))
//		if err != nil {
//			log.Fatal(err)
//		}
//		log.Printf("converted %d of %d", summary.Succeeded, len(files))
//	}
package imageoptimizer

import (
	"context"
	"path/filepath"

	"github.com/menta2k/image-optimizer/internal/config"
	"github.com/menta2k/image-optimizer/internal/logging"
	"github.com/menta2k/image-optimizer/pkg/batch"
	"github.com/menta2k/image-optimizer/pkg/codec"
	"github.com/menta2k/image-optimizer/pkg/resolve"
	"github.com/menta2k/image-optimizer/pkg/scanner"
	"github.com/menta2k/image-optimizer/pkg/selection"
	"github.com/menta2k/image-optimizer/pkg/types"
)

// Optimizer scans one root directory and converts selections of its images.
type Optimizer struct {
	root string
	cfg  *config.Config
	log  *logging.Logger
}

// New creates an Optimizer for root with default settings (WebP, quality 80).
func New(root string) *Optimizer {
	cfg := config.Default()
	cfg.ScanRoot = root
	return NewWithConfig(cfg)
}

// NewWithConfig creates an Optimizer with custom settings.
func NewWithConfig(cfg *config.Config) *Optimizer {
	root, err := filepath.Abs(cfg.ScanRoot)
	if err != nil {
		root = cfg.ScanRoot
	}
	return &Optimizer{
		root: root,
		cfg:  cfg,
		log:  logging.New(false),
	}
}

// Root returns the absolute scan root.
func (o *Optimizer) Root() string {
	return o.root
}

// Scan returns every recognized image below the root, sorted, relative to it.
func (o *Optimizer) Scan() ([]types.ImageFile, error) {
	return scanner.Scan(o.root)
}

// Folders returns the selectable folder identifiers for the current tree.
func (o *Optimizer) Folders() ([]string, error) {
	files, err := o.Scan()
	if err != nil {
		return nil, err
	}
	return selection.Folders(files), nil
}

// Convert scans, applies scope, and converts the resulting files with the
// given strategy. Per-file failures are reflected in the summary counts, not
// in the returned error; the error covers scan and selection problems only.
func (o *Optimizer) Convert(ctx context.Context, scope types.SelectionScope, strategy types.OutputStrategy) (types.RunSummary, error) {
	files, err := o.Scan()
	if err != nil {
		return types.RunSummary{}, err
	}

	selected, err := selection.Apply(files, scope)
	if err != nil {
		return types.RunSummary{}, err
	}

	runner := batch.New(o.log,
		resolve.New(o.root, o.cfg.TargetExt),
		codec.NewWebP(codec.Options{Quality: o.cfg.Quality, Lossless: o.cfg.Lossless}),
	)
	return runner.Run(ctx, o.root, selected, strategy), nil
}
