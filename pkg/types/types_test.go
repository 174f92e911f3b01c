package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageFileHelpers(t *testing.T) {
	f := ImageFile("images/team/Alice.JPG")

	assert.Equal(t, "images/team", f.Dir())
	assert.Equal(t, "Alice", f.Base())
	assert.Equal(t, ".jpg", f.Ext())
	assert.False(t, f.IsVector())
}

func TestImageFileTopLevel(t *testing.T) {
	f := ImageFile("logo.png")

	assert.Equal(t, RootDir, f.Dir())
	assert.Equal(t, "logo", f.Base())
}

func TestImageFileVector(t *testing.T) {
	assert.True(t, ImageFile("icon.svg").IsVector())
	assert.True(t, ImageFile("sub/ICON.SVG").IsVector())
	assert.False(t, ImageFile("photo.jpeg").IsVector())
}

func TestScopeConstructors(t *testing.T) {
	assert.Equal(t, SelectAll, AllFiles().Mode)

	s := ByFolder("images", RootDir)
	assert.Equal(t, SelectByFolder, s.Mode)
	assert.Equal(t, []string{"images", RootDir}, s.Folders)

	s = ByFile("a.png")
	assert.Equal(t, SelectByFile, s.Mode)
	assert.Equal(t, []ImageFile{"a.png"}, s.Files)
}

func TestStrategyConstructors(t *testing.T) {
	s := NewFolder("_optimized")
	assert.Equal(t, OutputNewFolder, s.Mode)
	assert.Equal(t, "_optimized", s.Suffix)

	assert.Equal(t, OutputOverwrite, Overwrite().Mode)
}

func TestRunSummarySpaceSaved(t *testing.T) {
	s := RunSummary{TotalInputBytes: 1000, TotalOutputBytes: 300}
	assert.Equal(t, int64(700), s.SpaceSaved())

	s = RunSummary{TotalInputBytes: 100, TotalOutputBytes: 150}
	assert.Equal(t, int64(-50), s.SpaceSaved())
}
