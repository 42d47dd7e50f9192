package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"docread/internal/domain"
)

// OCRResponse is the wire shape for a single-image outcome.
type OCRResponse struct {
	Success   bool   `json:"success"`
	Text      string `json:"text,omitempty"`
	Error     string `json:"error,omitempty"`
	PageCount int    `json:"page_count"`
}

// DocumentResponse is the wire shape for a multi-page document outcome.
// Error is set only when the document could not be decoded at all.
type DocumentResponse struct {
	Filename   string              `json:"filename"`
	Success    bool                `json:"success"`
	TotalPages int                 `json:"total_pages"`
	Results    []domain.PageResult `json:"results"`
	Error      string              `json:"error,omitempty"`
}

// BatchResponse wraps the per-file outcomes of a batch request.
type BatchResponse struct {
	Success bool                `json:"success"`
	Results []BatchItemResponse `json:"results"`
}

// BatchItemResponse pairs one batch file with its outcome. Result is an
// OCRResponse for images and a DocumentResponse for PDFs.
type BatchItemResponse struct {
	Filename string      `json:"filename"`
	Result   interface{} `json:"result"`
}

// APIError holds error details in a rejection response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the envelope for requests rejected before the pipeline.
type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   *APIError `json:"error,omitempty"`
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, ErrorResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "unsupported file type; allowed: pdf, png, jpg, jpeg, tif, tiff, bmp, gif"
	case errors.Is(err, domain.ErrEmptyFile):
		return http.StatusBadRequest, "EMPTY_FILE", "uploaded file is empty"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size"
	case errors.Is(err, domain.ErrInvalidArgument):
		return http.StatusBadRequest, "INVALID_ARGUMENT", err.Error()
	case errors.Is(err, domain.ErrEngineNotReady):
		return http.StatusServiceUnavailable, "ENGINE_NOT_READY", "inference engine is not ready"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, code, msg)
}

// imageResponse projects a one-page result onto the image wire shape.
func imageResponse(res *domain.BatchResult) OCRResponse {
	out := OCRResponse{Success: false, PageCount: res.TotalPages}
	if len(res.Results) > 0 {
		page := res.Results[0]
		out.Success = page.Success
		out.Text = page.Text
		out.Error = page.Error
	}
	return out
}

// documentResponse projects an aggregated result onto the document wire shape.
func documentResponse(res *domain.BatchResult) DocumentResponse {
	results := res.Results
	if results == nil {
		results = []domain.PageResult{}
	}
	return DocumentResponse{
		Filename:   res.Filename,
		Success:    res.Success,
		TotalPages: res.TotalPages,
		Results:    results,
	}
}

// decodeFailureResponse is the document wire shape for a stream that could
// not be decoded at all: unsuccessful, zero pages, cause at the top level.
func decodeFailureResponse(filename string, err error) DocumentResponse {
	return DocumentResponse{
		Filename:   filename,
		Success:    false,
		TotalPages: 0,
		Results:    []domain.PageResult{},
		Error:      err.Error(),
	}
}
