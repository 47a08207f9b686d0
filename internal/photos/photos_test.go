package photos

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngOf(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 120, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestProcessDownscalesToWebp(t *testing.T) {
	out, err := Process(bytes.NewReader(pngOf(t, 1024, 256)))
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 512, cfg.Width)
	assert.Equal(t, 128, cfg.Height)
}

func TestProcessKeepsSmallImages(t *testing.T) {
	out, err := Process(bytes.NewReader(pngOf(t, 40, 60)))
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Width)
	assert.Equal(t, 60, cfg.Height)
}

func TestProcessRejectsGarbage(t *testing.T) {
	_, err := Process(strings.NewReader("definitely not an image"))
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestProcessRejectsOversizedUploads(t *testing.T) {
	_, err := Process(bytes.NewReader(make([]byte, MaxUploadBytes+10)))
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestResizeTallImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 300, 1200))
	dst := Resize(src, 512)
	assert.Equal(t, 128, dst.Bounds().Dx())
	assert.Equal(t, 512, dst.Bounds().Dy())
}

// withDeclaredSize rewrites the IHDR chunk of a PNG so it claims w x h
// pixels while the payload stays tiny.
func withDeclaredSize(t *testing.T, raw []byte, w, h uint32) []byte {
	t.Helper()

	out := append([]byte(nil), raw...)
	require.Equal(t, "IHDR", string(out[12:16]))

	binary.BigEndian.PutUint32(out[16:20], w)
	binary.BigEndian.PutUint32(out[20:24], h)
	binary.BigEndian.PutUint32(out[29:33], crc32.ChecksumIEEE(out[12:29]))
	return out
}

func TestProcessRejectsHugeDeclaredDimensions(t *testing.T) {
	small := pngOf(t, 4, 4)

	cases := map[string][2]uint32{
		"pixel budget": {8000, 8000},
		"wide":         {MaxSide + 1, 10},
		"tall":         {10, MaxSide + 1},
	}
	for name, dims := range cases {
		t.Run(name, func(t *testing.T) {
			bomb := withDeclaredSize(t, small, dims[0], dims[1])

			cfg, _, err := image.DecodeConfig(bytes.NewReader(bomb))
			require.NoError(t, err)
			require.Equal(t, int(dims[0]), cfg.Width)

			_, err = Process(bytes.NewReader(bomb))
			assert.ErrorIs(t, err, ErrTooLarge)
		})
	}
}
