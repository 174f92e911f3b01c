package batch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menta2k/image-optimizer/internal/logging"
	"github.com/menta2k/image-optimizer/pkg/resolve"
	"github.com/menta2k/image-optimizer/pkg/types"
)

// fakeConverter writes a marker output file, or fails for listed inputs.
type fakeConverter struct {
	failBase map[string]bool // base names that should fail
	calls    []string
}

func (f *fakeConverter) Convert(inputPath, outputPath string) error {
	f.calls = append(f.calls, filepath.Base(inputPath))
	if f.failBase[filepath.Base(inputPath)] {
		return errors.New("forced failure")
	}
	return os.WriteFile(outputPath, []byte("webp"), 0o644)
}

func newTestRunner(root string, fc *fakeConverter) *Runner {
	return New(logging.New(false), resolve.New(root, "webp"), fc)
}

func touch(t *testing.T, root string, rel string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte("source"), 0o644))
}

func TestRun_AllSucceed(t *testing.T) {
	root := t.TempDir()
	files := []types.ImageFile{"logo.png", "images/hero.jpg"}
	for _, f := range files {
		touch(t, root, string(f))
	}

	fc := &fakeConverter{}
	summary := newTestRunner(root, fc).Run(context.Background(), root, files, types.NewFolder("_optimized"))

	assert.Equal(t, 2, summary.Succeeded)
	assert.Equal(t, 0, summary.Failed)
	assert.Equal(t, 0, summary.Skipped)

	assert.FileExists(t, filepath.Join(root, "_optimized", "logo.webp"))
	assert.FileExists(t, filepath.Join(root, "images_optimized", "hero.webp"))
	// Originals untouched.
	assert.FileExists(t, filepath.Join(root, "logo.png"))
	assert.FileExists(t, filepath.Join(root, "images", "hero.jpg"))
}

func TestRun_FaultIsolation(t *testing.T) {
	root := t.TempDir()
	files := []types.ImageFile{"a.png", "broken.png", "c.png"}
	for _, f := range files {
		touch(t, root, string(f))
	}

	fc := &fakeConverter{failBase: map[string]bool{"broken.png": true}}
	summary := newTestRunner(root, fc).Run(context.Background(), root, files, types.Overwrite())

	assert.Equal(t, len(files)-1, summary.Succeeded)
	assert.Equal(t, 1, summary.Failed)
	// The failure did not stop later files.
	assert.Equal(t, []string{"a.png", "broken.png", "c.png"}, fc.calls)
	assert.FileExists(t, filepath.Join(root, "a.webp"))
	assert.FileExists(t, filepath.Join(root, "c.webp"))
	assert.NoFileExists(t, filepath.Join(root, "broken.webp"))
}

func TestRun_VectorFilesNeverReachTheConverter(t *testing.T) {
	root := t.TempDir()
	files := []types.ImageFile{"icon.svg", "logo.png"}
	for _, f := range files {
		touch(t, root, string(f))
	}

	fc := &fakeConverter{}
	summary := newTestRunner(root, fc).Run(context.Background(), root, files, types.Overwrite())

	assert.Equal(t, 1, summary.Succeeded)
	assert.Equal(t, 0, summary.Failed)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, []string{"logo.png"}, fc.calls)
}

func TestRun_TotalsAddUp(t *testing.T) {
	root := t.TempDir()
	files := []types.ImageFile{"a.png", "b.svg", "c.jpg", "d.gif"}
	for _, f := range files {
		touch(t, root, string(f))
	}

	fc := &fakeConverter{failBase: map[string]bool{"c.jpg": true}}
	summary := newTestRunner(root, fc).Run(context.Background(), root, files, types.Overwrite())

	assert.Equal(t, len(files), summary.Succeeded+summary.Failed+summary.Skipped)
}

func TestRun_ByteAccounting(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "a.png") // 6 bytes of source
	fc := &fakeConverter{}  // writes 4 bytes

	summary := newTestRunner(root, fc).Run(context.Background(), root,
		[]types.ImageFile{"a.png"}, types.Overwrite())

	assert.Equal(t, int64(6), summary.TotalInputBytes)
	assert.Equal(t, int64(4), summary.TotalOutputBytes)
	assert.Equal(t, int64(2), summary.SpaceSaved())
}

func TestRun_CancelledContextStopsBetweenFiles(t *testing.T) {
	root := t.TempDir()
	files := []types.ImageFile{"a.png", "b.png"}
	for _, f := range files {
		touch(t, root, string(f))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fc := &fakeConverter{}
	summary := newTestRunner(root, fc).Run(ctx, root, files, types.Overwrite())

	assert.Empty(t, fc.calls)
	assert.Equal(t, 0, summary.Succeeded+summary.Failed+summary.Skipped)
}

func TestRun_StrategyRecordedInSummary(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "a.png")

	strategy := types.NewFolder("_min")
	summary := newTestRunner(root, &fakeConverter{}).Run(context.Background(), root,
		[]types.ImageFile{"a.png"}, strategy)

	assert.Equal(t, strategy, summary.Strategy)
}
