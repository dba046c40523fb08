package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	ico "github.com/sergeymakinen/go-ico"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrack/brandgen/images"
)

func testSource(t *testing.T, w, h int) *images.Source {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 59, G: 88, B: 148, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	src, err := images.Decode(buf.Bytes())
	require.NoError(t, err)
	return src
}

// TestGenerateLogos checks the fixed size table produces exactly four PNGs
// with the declared pixel dimensions.
func TestGenerateLogos(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "public", "logo")
	src := testSource(t, 512, 512)

	written, err := NewGenerator(dir).GenerateLogos(src)
	require.NoError(t, err)
	require.Len(t, written, 4)

	expected := map[string]int{
		"logo-32.png":  32,
		"logo-64.png":  64,
		"logo-128.png": 128,
		"logo-256.png": 256,
	}
	for _, path := range written {
		size, ok := expected[filepath.Base(path)]
		require.True(t, ok, "unexpected output %s", path)

		f, err := os.Open(path)
		require.NoError(t, err)
		cfg, err := png.DecodeConfig(f)
		f.Close()
		require.NoError(t, err)
		assert.Equal(t, size, cfg.Width)
		assert.Equal(t, size, cfg.Height)
	}
}

// TestGenerateLogosIdempotent verifies a second run with the same source
// produces byte-identical files.
func TestGenerateLogosIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logo")
	src := testSource(t, 300, 300)
	gen := NewGenerator(dir)

	first, err := gen.GenerateLogos(src)
	require.NoError(t, err)

	before := map[string][]byte{}
	for _, path := range first {
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		before[path] = data
	}

	_, err = gen.GenerateLogos(src)
	require.NoError(t, err)

	for path, data := range before {
		after, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, data, after, "%s should be byte-identical on rerun", path)
	}
}

func TestGenerateIco(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "favicon-new.ico")
	src := testSource(t, 256, 256)

	require.NoError(t, NewGenerator(dir).GenerateIco(src, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	frames, err := ico.DecodeAll(f)
	require.NoError(t, err)
	require.Len(t, frames, len(IcoSizes))

	got := map[int]bool{}
	for _, frame := range frames {
		b := frame.Bounds()
		assert.Equal(t, b.Dx(), b.Dy(), "icon frames should be square")
		got[b.Dx()] = true
	}
	for _, size := range IcoSizes {
		assert.True(t, got[size], "bundle should contain a %dx%d frame", size, size)
	}
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	require.NoError(t, EnsureDir(dir))
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Create-if-missing must not error when the directory already exists.
	require.NoError(t, EnsureDir(dir))
}

func TestGenerateLogosUnwritableDir(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}

	parent := t.TempDir()
	require.NoError(t, os.Chmod(parent, 0o555))
	t.Cleanup(func() { _ = os.Chmod(parent, 0o755) })

	_, err := NewGenerator(filepath.Join(parent, "out")).GenerateLogos(testSource(t, 64, 64))
	assert.Error(t, err)
}
