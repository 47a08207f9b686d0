package photos

import (
	"bytes"
	"context"
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	// MaxUploadBytes bounds the accepted upload size.
	MaxUploadBytes = 5 << 20

	// MaxEdge is the longest side of a stored photo, in pixels.
	MaxEdge = 512

	// MaxSide and MaxPixels bound the decoded size an upload may declare.
	MaxSide   = 10000
	MaxPixels = 40_000_000

	ContentType = "image/webp"

	quality = 80
)

var (
	ErrTooLarge    = errors.New("photo too large")
	ErrUnsupported = errors.New("unsupported image")
)

// Store persists an encoded photo under key and returns its public URL.
type Store interface {
	Put(ctx context.Context, key, contentType string, body []byte) (string, error)
}

// Process decodes a jpeg, png or gif upload, shrinks it so the long edge is
// at most MaxEdge and re-encodes it as lossy webp.
func Process(r io.Reader) ([]byte, error) {
	raw, err := io.ReadAll(io.LimitReader(r, MaxUploadBytes+1))
	if err != nil {
		return nil, err
	}
	if len(raw) > MaxUploadBytes {
		return nil, ErrTooLarge
	}

	// Check the declared dimensions before the decoder allocates pixels.
	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, ErrUnsupported
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, ErrUnsupported
	}
	if cfg.Width > MaxSide || cfg.Height > MaxSide || cfg.Width*cfg.Height > MaxPixels {
		return nil, ErrTooLarge
	}

	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, ErrUnsupported
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, Resize(src, MaxEdge), &webp.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Resize returns src unchanged when it already fits in a maxEdge square.
func Resize(src image.Image, maxEdge int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxEdge && h <= maxEdge {
		return src
	}

	if w >= h {
		h = max(1, h*maxEdge/w)
		w = maxEdge
	} else {
		w = max(1, w*maxEdge/h)
		h = maxEdge
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}
