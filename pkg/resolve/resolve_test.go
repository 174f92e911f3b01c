package resolve

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menta2k/image-optimizer/pkg/types"
)

func TestOutputPath_Overwrite(t *testing.T) {
	r := New("/data/public", "webp")

	cases := []struct {
		file types.ImageFile
		want string
	}{
		{"logo.png", filepath.Join("/data/public", "logo.webp")},
		{"images/hero.jpg", filepath.Join("/data/public", "images", "hero.webp")},
		{"a/b/c/deep.gif", filepath.Join("/data/public", "a", "b", "c", "deep.webp")},
	}
	for _, tc := range cases {
		got := r.OutputPath(tc.file, types.Overwrite())
		assert.Equal(t, tc.want, got, "file %s", tc.file)
		// Output directory equals input directory at every nesting depth.
		assert.Equal(t,
			filepath.Join("/data/public", filepath.FromSlash(tc.file.Dir())),
			filepath.Dir(got))
	}
}

func TestOutputPath_NewFolderNested(t *testing.T) {
	r := New("/data/public", "webp")

	got := r.OutputPath("images/hero.jpg", types.NewFolder("_optimized"))
	assert.Equal(t, filepath.Join("/data/public", "images_optimized", "hero.webp"), got)
}

func TestOutputPath_NewFolderTopLevel(t *testing.T) {
	r := New("/data/public", "webp")

	got := r.OutputPath("logo.png", types.NewFolder("_optimized"))
	assert.Equal(t, filepath.Join("/data/public", "_optimized", "logo.webp"), got)
}

func TestOutputPath_NewFolderDeepNesting(t *testing.T) {
	r := New("/data/public", "webp")

	// The suffixed folder is a sibling at the same nesting level, not a new
	// top-level directory and not nested inside the source folder.
	got := r.OutputPath("images/team/alice.png", types.NewFolder("_optimized"))
	assert.Equal(t, filepath.Join("/data/public", "images", "team_optimized", "alice.webp"), got)
}

func TestOutputPath_CustomSuffixAndExt(t *testing.T) {
	r := New("/srv", "avif")

	got := r.OutputPath("img/pic.jpeg", types.NewFolder("-small"))
	assert.Equal(t, filepath.Join("/srv", "img-small", "pic.avif"), got)
}

func TestEnsureDir_CreatesRecursively(t *testing.T) {
	root := t.TempDir()
	r := New(root, "webp")

	out := filepath.Join(root, "a", "b", "c", "x.webp")
	require.NoError(t, r.EnsureDir(out))

	info, err := os.Stat(filepath.Dir(out))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestEnsureDir_Idempotent(t *testing.T) {
	root := t.TempDir()
	r := New(root, "webp")

	out := filepath.Join(root, "images_optimized", "x.webp")
	require.NoError(t, r.EnsureDir(out))
	require.NoError(t, r.EnsureDir(out))
}
