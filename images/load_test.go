package images

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestSniff(t *testing.T) {
	img := solidImage(4, 4, color.NRGBA{R: 255, A: 255})

	pngBytes := encodePNG(t, img)
	assert.Equal(t, FormatPNG, Sniff(pngBytes))

	var jpegBuf bytes.Buffer
	require.NoError(t, jpeg.Encode(&jpegBuf, img, nil))
	assert.Equal(t, FormatJPEG, Sniff(jpegBuf.Bytes()))

	var webpBuf bytes.Buffer
	require.NoError(t, webp.Encode(&webpBuf, img, &webp.Options{Lossless: true}))
	assert.Equal(t, FormatWebP, Sniff(webpBuf.Bytes()))

	assert.Equal(t, FormatUnknown, Sniff([]byte("not an image")))
	assert.Equal(t, FormatUnknown, Sniff(nil))
}

func TestDecode(t *testing.T) {
	src, err := Decode(encodePNG(t, solidImage(40, 30, color.NRGBA{G: 200, A: 255})))
	require.NoError(t, err)
	assert.Equal(t, FormatPNG, src.Format)
	assert.Equal(t, 40, src.Width)
	assert.Equal(t, 30, src.Height)
	assert.NotNil(t, src.Image())
	assert.Empty(t, src.Path)
}

func TestDecodeWebP(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, webp.Encode(&buf, solidImage(16, 16, color.NRGBA{B: 180, A: 255}), &webp.Options{Lossless: true}))

	src, err := Decode(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, FormatWebP, src.Format)
	assert.Equal(t, 16, src.Width)
	assert.Equal(t, 16, src.Height)
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(nil)
	assert.Error(t, err, "empty input should not decode")

	_, err = Decode([]byte("definitely not a raster"))
	assert.Error(t, err, "unknown magic bytes should not decode")

	// Valid PNG magic followed by garbage must surface a decode error.
	corrupt := append([]byte("\x89PNG\r\n\x1a\n"), []byte("garbage")...)
	_, err = Decode(corrupt)
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logo.png")
	require.NoError(t, os.WriteFile(path, encodePNG(t, solidImage(8, 8, color.NRGBA{R: 59, G: 88, B: 148, A: 255})), 0o644))

	src, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, src.Path)
	assert.Equal(t, FormatPNG, src.Format)
	assert.Equal(t, 8, src.Width)
	assert.Equal(t, 8, src.Height)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.png"))
	assert.Error(t, err)
}
