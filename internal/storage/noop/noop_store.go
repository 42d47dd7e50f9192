package noop

import (
	"context"
	"fmt"
	"log"

	"docread/internal/port"
)

type noopStore struct{}

// NewNoopStore creates a no-op ObjectStorage that logs uploads and discards
// them. It is the default archive sink when no bucket is configured.
func NewNoopStore() port.ObjectStorage {
	return &noopStore{}
}

func (s *noopStore) Upload(_ context.Context, input port.UploadInput) (*port.UploadOutput, error) {
	log.Printf("[NOOP ARCHIVE] Discarding %s object %s/%s", input.ContentType, input.Bucket, input.Key)
	return &port.UploadOutput{
		Location: fmt.Sprintf("noop://%s/%s", input.Bucket, input.Key),
	}, nil
}
