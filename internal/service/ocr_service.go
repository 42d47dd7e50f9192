package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"docread/internal/config"
	"docread/internal/domain"
	"docread/internal/port"
	"docread/internal/prompt"
	"docread/internal/sampling"
)

// ProcessInput is the DTO for OCR requests.
type ProcessInput struct {
	Filename string
	Data     []byte
	Prompt   string // raw override; blank falls back to Mode, then default
	Mode     string // prompt table key ("markdown", "ocr", ...)
	Sampling sampling.Overrides
	DPI      int // rasterization resolution; <=0 uses the configured default
}

// BatchItem pairs one batch file with its outcome. Err is set when the file
// failed before fan-out (undecodable stream); Result is set otherwise.
type BatchItem struct {
	Filename string
	Result   *domain.BatchResult
	Err      error
}

// OCRService defines the document recognition contract.
type OCRService interface {
	ProcessImage(ctx context.Context, in ProcessInput) (*domain.BatchResult, error)
	ProcessPDF(ctx context.Context, in ProcessInput) (*domain.BatchResult, error)
	ProcessBatch(ctx context.Context, files []ProcessInput) ([]BatchItem, error)
	EngineReady(ctx context.Context) error
	InFlight() int
}

type ocrService struct {
	engine     port.InferenceEngine
	rasterizer port.Rasterizer
	store      port.ObjectStorage
	cfg        *config.Config
	base       sampling.Params
	sem        chan struct{}
	inFlight   atomic.Int64
}

// NewOCRService creates a new OCRService implementation. The concurrency
// budget is allocated once here and shared by every request the service
// handles for its lifetime.
func NewOCRService(
	engine port.InferenceEngine,
	rasterizer port.Rasterizer,
	store port.ObjectStorage,
	cfg *config.Config,
) OCRService {
	base := sampling.Default()
	base.Temperature = cfg.Sampling.Temperature
	base.TopP = cfg.Sampling.TopP
	base.MaxTokens = cfg.Sampling.MaxTokens

	return &ocrService{
		engine:     engine,
		rasterizer: rasterizer,
		store:      store,
		cfg:        cfg,
		base:       base,
		sem:        make(chan struct{}, cfg.Engine.MaxConcurrency),
	}
}

func (s *ocrService) ProcessImage(ctx context.Context, in ProcessInput) (*domain.BatchResult, error) {
	kind, ok := domain.KindForFilename(in.Filename)
	if !ok || kind != domain.KindImage {
		return nil, domain.ErrUnsupportedFileType
	}
	if err := s.admit(in); err != nil {
		return nil, err
	}
	return s.process(ctx, in, kind)
}

func (s *ocrService) ProcessPDF(ctx context.Context, in ProcessInput) (*domain.BatchResult, error) {
	kind, ok := domain.KindForFilename(in.Filename)
	if !ok || kind != domain.KindPDF {
		return nil, domain.ErrUnsupportedFileType
	}
	if err := s.admit(in); err != nil {
		return nil, err
	}
	return s.process(ctx, in, kind)
}

// ProcessBatch validates every file up front, then processes them in order.
// Admission failures reject the whole batch; pipeline failures are folded
// into the affected item so the remaining files still run.
func (s *ocrService) ProcessBatch(ctx context.Context, files []ProcessInput) ([]BatchItem, error) {
	for _, in := range files {
		if _, ok := domain.KindForFilename(in.Filename); !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFileType, in.Filename)
		}
		if err := s.admit(in); err != nil {
			return nil, fmt.Errorf("%w: %s", err, in.Filename)
		}
	}

	items := make([]BatchItem, 0, len(files))
	for _, in := range files {
		kind, _ := domain.KindForFilename(in.Filename)
		res, err := s.process(ctx, in, kind)
		items = append(items, BatchItem{Filename: in.Filename, Result: res, Err: err})
	}
	return items, nil
}

func (s *ocrService) EngineReady(ctx context.Context) error {
	return s.engine.Ping(ctx)
}

func (s *ocrService) InFlight() int {
	return int(s.inFlight.Load())
}

// admit applies the upload limits that never reach the pipeline.
func (s *ocrService) admit(in ProcessInput) error {
	if len(in.Data) == 0 {
		return domain.ErrEmptyFile
	}
	if int64(len(in.Data)) > s.cfg.Limits.MaxFileSizeBytes() {
		return domain.ErrFileTooLarge
	}
	return nil
}

// process runs the full pipeline for one document: resolve prompt and
// sampling, rasterize, fan out, aggregate, archive.
func (s *ocrService) process(ctx context.Context, in ProcessInput, kind domain.DocumentKind) (*domain.BatchResult, error) {
	promptText := prompt.Resolve(in.Prompt, in.Mode)
	params := sampling.Resolve(s.base, in.Sampling)

	dpi := in.DPI
	if dpi <= 0 {
		dpi = s.cfg.Raster.DPI
	}

	units, err := s.rasterizer.Rasterize(ctx, in.Data, kind, dpi)
	if err != nil {
		return nil, err
	}

	results := s.dispatch(ctx, units, promptText, params)
	res := aggregate(in.Filename, results)
	log.Printf("service.OCRService: processed %s: %d pages, success=%t", in.Filename, res.TotalPages, res.Success)

	s.archive(res)
	return res, nil
}

// archive writes the aggregated result to the configured sink without
// blocking the response. Failures are logged and otherwise ignored.
func (s *ocrService) archive(res *domain.BatchResult) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		payload, err := json.Marshal(res)
		if err != nil {
			log.Printf("service.OCRService: marshaling archive payload for %s: %v", res.Filename, err)
			return
		}
		key := fmt.Sprintf("%s/%s.json", s.cfg.Archive.Prefix, uuid.New().String())
		if _, err := s.store.Upload(ctx, port.UploadInput{
			Bucket:      s.cfg.Archive.S3.Bucket,
			Key:         key,
			Body:        bytes.NewReader(payload),
			ContentType: "application/json",
		}); err != nil {
			log.Printf("service.OCRService: archiving result for %s: %v", res.Filename, err)
		}
	}()
}
