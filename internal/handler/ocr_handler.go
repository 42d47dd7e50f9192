package handler

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"docread/internal/domain"
	"docread/internal/service"
)

// batchDefaultPrompt is the override applied to batch files when the request
// carries no prompt field. It leaves layout instructions to the model.
const batchDefaultPrompt = "<image>"

// OCRHandler handles document recognition endpoints.
type OCRHandler struct {
	ocrService service.OCRService
}

// NewOCRHandler creates a new OCRHandler.
func NewOCRHandler(ocrService service.OCRService) *OCRHandler {
	return &OCRHandler{ocrService: ocrService}
}

// ProcessImage handles POST /ocr/image
// @Summary Recognize a single image
// @Description Run OCR on one image file (PNG, JPG, TIFF, BMP, or GIF) with an optional custom prompt and sampling overrides
// @Tags ocr
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file to recognize"
// @Param prompt formData string false "Custom prompt; blank falls back to prompt_mode, then the default"
// @Param prompt_mode formData string false "Prompt table key (markdown, ocr, tables, course_catalog)"
// @Param temperature formData number false "Sampling temperature, clamped to [0, 2]"
// @Param top_p formData number false "Nucleus sampling mass, clamped to [0, 1]"
// @Param max_tokens formData integer false "Generation cap, clamped to [1, 8192]"
// @Param dpi formData integer false "Rasterization resolution (default 144)"
// @Success 200 {object} OCRResponse "Recognition outcome; success=false carries the failure in the body"
// @Failure 400 {object} ErrorResponse "Missing file, unsupported type, or malformed form field"
// @Failure 413 {object} ErrorResponse "File too large"
// @Router /ocr/image [post]
func (h *OCRHandler) ProcessImage(c *gin.Context) {
	in, ok := h.readUpload(c)
	if !ok {
		return
	}

	res, err := h.ocrService.ProcessImage(c.Request.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrDocumentDecode) {
			c.JSON(http.StatusOK, OCRResponse{Success: false, Error: err.Error()})
			return
		}
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, imageResponse(res))
}

// ProcessPDF handles POST /ocr/pdf
// @Summary Recognize a PDF document
// @Description Rasterize a PDF and run OCR on every page concurrently; pages fail independently
// @Tags ocr
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PDF file to recognize"
// @Param prompt formData string false "Custom prompt; blank falls back to prompt_mode, then the default"
// @Param prompt_mode formData string false "Prompt table key (markdown, ocr, tables, course_catalog)"
// @Param temperature formData number false "Sampling temperature, clamped to [0, 2]"
// @Param top_p formData number false "Nucleus sampling mass, clamped to [0, 1]"
// @Param max_tokens formData integer false "Generation cap, clamped to [1, 8192]"
// @Param dpi formData integer false "Rasterization resolution (default 144)"
// @Success 200 {object} DocumentResponse "Per-page outcomes; an undecodable stream yields success=false with zero pages"
// @Failure 400 {object} ErrorResponse "Missing file, unsupported type, or malformed form field"
// @Failure 413 {object} ErrorResponse "File too large"
// @Router /ocr/pdf [post]
func (h *OCRHandler) ProcessPDF(c *gin.Context) {
	in, ok := h.readUpload(c)
	if !ok {
		return
	}

	res, err := h.ocrService.ProcessPDF(c.Request.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrDocumentDecode) {
			c.JSON(http.StatusOK, decodeFailureResponse(in.Filename, err))
			return
		}
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, documentResponse(res))
}

// ProcessBatch handles POST /ocr/batch
// @Summary Recognize multiple files
// @Description Run OCR over a mix of images and PDFs in one request; files are processed in order and fail independently
// @Tags ocr
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Files to recognize (repeatable)"
// @Param prompt formData string false "Custom prompt applied to every file (defaults to \"<image>\")"
// @Param prompt_mode formData string false "Prompt table key (markdown, ocr, tables, course_catalog)"
// @Param temperature formData number false "Sampling temperature, clamped to [0, 2]"
// @Param top_p formData number false "Nucleus sampling mass, clamped to [0, 1]"
// @Param max_tokens formData integer false "Generation cap, clamped to [1, 8192]"
// @Param dpi formData integer false "Rasterization resolution (default 144)"
// @Success 200 {object} BatchResponse "Per-file outcomes"
// @Failure 400 {object} ErrorResponse "Missing files, unsupported type, or malformed form field"
// @Failure 413 {object} ErrorResponse "A file exceeds the maximum allowed size"
// @Router /ocr/batch [post]
func (h *OCRHandler) ProcessBatch(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_FORM", "could not parse multipart form")
		return
	}
	headers := form.File["files"]
	if len(headers) == 0 {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "files field is required")
		return
	}

	_, hasPrompt := c.GetPostForm("prompt")

	inputs := make([]service.ProcessInput, 0, len(headers))
	for _, fh := range headers {
		data, readErr := readFileHeader(fh)
		if readErr != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_UPLOAD", fmt.Sprintf("could not read uploaded file %s", fh.Filename))
			return
		}
		in, parseErr := parseProcessInput(c, fh.Filename, data)
		if parseErr != nil {
			HandleError(c, parseErr)
			return
		}
		if !hasPrompt {
			in.Prompt = batchDefaultPrompt
		}
		inputs = append(inputs, in)
	}

	items, err := h.ocrService.ProcessBatch(c.Request.Context(), inputs)
	if err != nil {
		HandleError(c, err)
		return
	}

	resp := BatchResponse{Success: true, Results: make([]BatchItemResponse, 0, len(items))}
	for _, item := range items {
		kind, _ := domain.KindForFilename(item.Filename)
		var result interface{}
		switch {
		case item.Err != nil && kind == domain.KindPDF:
			result = decodeFailureResponse(item.Filename, item.Err)
		case item.Err != nil:
			result = OCRResponse{Success: false, Error: item.Err.Error()}
		case kind == domain.KindPDF:
			result = documentResponse(item.Result)
		default:
			result = imageResponse(item.Result)
		}
		resp.Results = append(resp.Results, BatchItemResponse{Filename: item.Filename, Result: result})
	}
	c.JSON(http.StatusOK, resp)
}

// readUpload extracts the single uploaded file and the shared form fields.
// On failure the error response has already been written.
func (h *OCRHandler) readUpload(c *gin.Context) (service.ProcessInput, bool) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return service.ProcessInput{}, false
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_UPLOAD", "could not read uploaded file")
		return service.ProcessInput{}, false
	}

	in, err := parseProcessInput(c, header.Filename, data)
	if err != nil {
		HandleError(c, err)
		return service.ProcessInput{}, false
	}
	return in, true
}

// parseProcessInput builds a ProcessInput from the request's form fields.
// Unparsable numeric fields are rejected rather than silently dropped.
func parseProcessInput(c *gin.Context, filename string, data []byte) (service.ProcessInput, error) {
	in := service.ProcessInput{
		Filename: filename,
		Data:     data,
		Prompt:   c.PostForm("prompt"),
		Mode:     c.PostForm("prompt_mode"),
	}

	if v := c.PostForm("temperature"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return in, fmt.Errorf("%w: temperature must be a number", domain.ErrInvalidArgument)
		}
		in.Sampling.Temperature = &f
	}
	if v := c.PostForm("top_p"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return in, fmt.Errorf("%w: top_p must be a number", domain.ErrInvalidArgument)
		}
		in.Sampling.TopP = &f
	}
	if v := c.PostForm("max_tokens"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return in, fmt.Errorf("%w: max_tokens must be an integer", domain.ErrInvalidArgument)
		}
		in.Sampling.MaxTokens = &n
	}
	if v := c.PostForm("dpi"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return in, fmt.Errorf("%w: dpi must be a positive integer", domain.ErrInvalidArgument)
		}
		in.DPI = n
	}
	return in, nil
}

func readFileHeader(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return io.ReadAll(f)
}
