package domain

import (
	"path/filepath"
	"strings"
)

// DocumentKind distinguishes the two rasterization paths.
type DocumentKind string

const (
	KindPDF   DocumentKind = "pdf"
	KindImage DocumentKind = "image"
)

// AllowedImageExtensions lists the single-page image formats accepted for upload.
var AllowedImageExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"tif":  true,
	"tiff": true,
	"bmp":  true,
	"gif":  true,
}

// KindForFilename classifies an upload by its extension. PDFs are routed to
// the multi-page path, known image extensions to the single-image path.
func KindForFilename(name string) (DocumentKind, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if ext == "pdf" {
		return KindPDF, true
	}
	if AllowedImageExtensions[ext] {
		return KindImage, true
	}
	return "", false
}
