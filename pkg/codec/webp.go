// Package codec re-encodes raster images to WebP.
package codec

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// DefaultQuality is the fixed encode quality on a 0-100 scale.
const DefaultQuality = 80

// Options control the WebP encoder.
type Options struct {
	Quality  int
	Lossless bool
}

// DefaultOptions returns the encoder settings used by the CLI.
func DefaultOptions() Options {
	return Options{Quality: DefaultQuality}
}

// ConversionError wraps a per-file codec failure with the offending input
// path. It never escapes the batch loop.
type ConversionError struct {
	InputPath string
	Err       error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("converting %s: %v", e.InputPath, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }

// WebPEncoder converts single raster files to WebP.
type WebPEncoder struct {
	opts Options
}

// NewWebP returns an encoder with the given options.
func NewWebP(opts Options) *WebPEncoder {
	return &WebPEncoder{opts: opts}
}

// Convert decodes the raster image at inputPath and writes its WebP encoding
// to outputPath. The source file is left untouched. The result is staged in
// a temp file and renamed into place so a failed encode never leaves a
// partial output behind.
func (e *WebPEncoder) Convert(inputPath, outputPath string) error {
	img, err := loadImage(inputPath)
	if err != nil {
		return &ConversionError{InputPath: inputPath, Err: err}
	}

	tmp, err := os.CreateTemp(filepath.Dir(outputPath), ".webp-*")
	if err != nil {
		return &ConversionError{InputPath: inputPath, Err: err}
	}
	tmpPath := tmp.Name()

	opts := &webp.Options{Lossless: e.opts.Lossless, Quality: float32(e.opts.Quality)}
	if err := webp.Encode(tmp, img, opts); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return &ConversionError{InputPath: inputPath, Err: fmt.Errorf("webp encode: %w", err)}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return &ConversionError{InputPath: inputPath, Err: err}
	}

	if err := os.Rename(tmpPath, outputPath); err != nil {
		os.Remove(tmpPath)
		return &ConversionError{InputPath: inputPath, Err: err}
	}
	return nil
}

// loadImage decodes a raster file. imaging.Open covers jpeg/png/gif; the
// fallback handles anything else with a registered decoder, webp included.
func loadImage(path string) (image.Image, error) {
	if img, err := imaging.Open(path); err == nil {
		return img, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return img, nil
}
