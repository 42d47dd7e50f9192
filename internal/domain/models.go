package domain

// PageUnit is one rasterized page (or the single input image) submitted as
// one inference call. Created by the rasterizer, read by the fan-out
// executor, discarded after inference.
type PageUnit struct {
	Index    int
	Image    []byte // PNG-encoded pixels
	SourceID string
}

// PageResult is the outcome of one page's inference call. Exactly one of
// Text/Error is meaningful, determined by Success.
type PageResult struct {
	Index   int    `json:"index"`
	Success bool   `json:"success"`
	Text    string `json:"text,omitempty"`
	Error   string `json:"error,omitempty"`
}

// BatchResult collects per-page outcomes for one document in page order.
// Results is always index-ordered with Results[i].Index == i; a failed page
// stays in the sequence as an error-tagged entry.
type BatchResult struct {
	Filename   string       `json:"filename"`
	Success    bool         `json:"success"`
	TotalPages int          `json:"total_pages"`
	Results    []PageResult `json:"results"`
}
