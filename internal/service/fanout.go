package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"docread/internal/domain"
	"docread/internal/port"
	"docread/internal/sampling"
)

// eosMarker is the end-of-sequence token the engine appends when generation
// stops naturally. It uses fullwidth ｜ (U+FF5C) and ▁ (U+2581).
const eosMarker = "<｜end▁of▁sentence｜>"

// dispatch fans the page units out to the inference engine. Admission is
// bounded by the service-wide semaphore, so concurrent requests share one
// budget. Each page fails independently; a failed page never aborts its
// siblings. results[i] always holds the outcome for page index i.
func (s *ocrService) dispatch(ctx context.Context, units []domain.PageUnit, promptText string, params sampling.Params) []domain.PageResult {
	results := make([]domain.PageResult, len(units))
	var wg sync.WaitGroup

	for _, u := range units {
		wg.Add(1)
		go func(u domain.PageUnit) {
			defer wg.Done()

			s.sem <- struct{}{}
			defer func() { <-s.sem }()

			s.inFlight.Add(1)
			defer s.inFlight.Add(-1)

			text, err := s.engine.Infer(ctx, port.InferenceRequest{
				Image:    u.Image,
				Prompt:   promptText,
				Sampling: params,
			})
			if err != nil {
				results[u.Index] = domain.PageResult{
					Index:   u.Index,
					Success: false,
					Error:   fmt.Sprintf("Page %d error: %s", u.Index+1, err),
				}
				return
			}
			results[u.Index] = domain.PageResult{
				Index:   u.Index,
				Success: true,
				Text:    strings.ReplaceAll(text, eosMarker, ""),
			}
		}(u)
	}

	wg.Wait()
	return results
}

// aggregate folds per-page outcomes into a document-level result. Success
// reflects that the pipeline ran, not that every page succeeded; only a
// document that produced no pages at all is unsuccessful.
func aggregate(filename string, results []domain.PageResult) *domain.BatchResult {
	return &domain.BatchResult{
		Filename:   filename,
		Success:    len(results) > 0,
		TotalPages: len(results),
		Results:    results,
	}
}
