package raster

import (
	"bytes"
	"context"
	"fmt"
	"image/png"

	"github.com/gen2brain/go-fitz"

	"docread/internal/domain"
)

// renderPDF rasterizes every page at the requested DPI (scale = dpi/72
// against the PDF point baseline) into an independent PNG buffer. The
// document handle is released on every path.
func (r *Renderer) renderPDF(ctx context.Context, data []byte, dpi int, sourceID string) ([]domain.PageUnit, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, domain.NewDecodeError(fmt.Errorf("opening pdf: %w", err))
	}
	defer func() { _ = doc.Close() }()

	pageCount := doc.NumPage()
	units := make([]domain.PageUnit, 0, pageCount)
	for n := 0; n < pageCount; n++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		img, err := doc.ImageDPI(n, float64(dpi))
		if err != nil {
			return nil, domain.NewDecodeError(fmt.Errorf("rendering page %d: %w", n+1, err))
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return nil, domain.NewDecodeError(fmt.Errorf("encoding page %d: %w", n+1, err))
		}
		units = append(units, domain.PageUnit{
			Index:    n,
			Image:    buf.Bytes(),
			SourceID: sourceID,
		})
	}
	return units, nil
}
