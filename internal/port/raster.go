package port

import (
	"context"

	"docread/internal/domain"
)

// Rasterizer converts a document byte stream into an ordered, eagerly
// produced sequence of page units at a target resolution. The page count is
// known before fan-out. A stream that cannot be decoded at all yields a
// domain.DecodeError; a document that decodes to zero pages yields an empty
// slice and no error.
type Rasterizer interface {
	Rasterize(ctx context.Context, data []byte, kind domain.DocumentKind, dpi int) ([]domain.PageUnit, error)
}
