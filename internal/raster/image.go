package raster

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	xdraw "golang.org/x/image/draw"

	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// decodeImage decodes a single-page image (PNG/JPEG/GIF/TIFF/BMP),
// downscales it to the configured bounds when needed, and re-encodes it
// as PNG.
func (r *Renderer) decodeImage(data []byte) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	scaled := r.downscale(img)

	// A PNG that needed no scaling can pass through untouched.
	if format == "png" && scaled == img {
		return data, nil
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("encoding image: %w", err)
	}
	return buf.Bytes(), nil
}

// downscale fits img inside maxWidth×maxHeight preserving aspect ratio.
// Images already within bounds are returned as-is.
func (r *Renderer) downscale(img image.Image) image.Image {
	if r.maxWidth <= 0 || r.maxHeight <= 0 {
		return img
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= r.maxWidth && h <= r.maxHeight {
		return img
	}

	scaleW := float64(r.maxWidth) / float64(w)
	scaleH := float64(r.maxHeight) / float64(h)
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}
	newW := int(float64(w) * scale)
	newH := int(float64(h) * scale)
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}
