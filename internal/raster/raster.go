// Package raster converts document byte streams into ordered sequences of
// page images ready for inference.
package raster

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"docread/internal/domain"
	"docread/internal/port"
)

// Renderer implements port.Rasterizer. Pages are produced eagerly so the
// page count is known before fan-out sizing.
type Renderer struct {
	maxWidth  int
	maxHeight int
}

// NewRenderer creates a Renderer. Decoded single images larger than
// maxWidth×maxHeight are downscaled preserving aspect ratio; zero values
// disable the cap.
func NewRenderer(maxWidth, maxHeight int) *Renderer {
	return &Renderer{maxWidth: maxWidth, maxHeight: maxHeight}
}

// Rasterize decodes data into page units. Image kind yields exactly one
// unit with index 0; PDF kind yields one unit per page in document order.
func (r *Renderer) Rasterize(ctx context.Context, data []byte, kind domain.DocumentKind, dpi int) ([]domain.PageUnit, error) {
	if len(data) == 0 {
		return nil, domain.NewDecodeError(fmt.Errorf("empty input"))
	}
	sourceID := uuid.New().String()

	switch kind {
	case domain.KindImage:
		png, err := r.decodeImage(data)
		if err != nil {
			return nil, domain.NewDecodeError(err)
		}
		return []domain.PageUnit{{Index: 0, Image: png, SourceID: sourceID}}, nil
	case domain.KindPDF:
		return r.renderPDF(ctx, data, dpi, sourceID)
	default:
		return nil, domain.NewDecodeError(fmt.Errorf("unknown document kind: %q", kind))
	}
}

var _ port.Rasterizer = (*Renderer)(nil)
