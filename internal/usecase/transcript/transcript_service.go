package transcript

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/johnquangdev/transcript-archive/internal/domain/entities"
	"github.com/johnquangdev/transcript-archive/internal/domain/repositories"
	"github.com/johnquangdev/transcript-archive/pkg/metrics"
)

// TranscriptService handles transcript business logic
type TranscriptService struct {
	transcriptRepo repositories.TranscriptRepository
	cache          repositories.ConfidenceCache
	metrics        *metrics.Metrics
	logger         *zap.Logger
}

// NewTranscriptService creates a new transcript service
func NewTranscriptService(
	transcriptRepo repositories.TranscriptRepository,
	cache repositories.ConfidenceCache,
	m *metrics.Metrics,
	logger *zap.Logger,
) *TranscriptService {
	return &TranscriptService{
		transcriptRepo: transcriptRepo,
		cache:          cache,
		metrics:        m,
		logger:         logger,
	}
}

// Attach validates path and payload before any I/O. The file's existence is checked
// by the repository inside the insert transaction.
func (s *TranscriptService) Attach(
	ctx context.Context,
	fileID int64,
	transcriptPath string,
	payload entities.ConfidencePayload,
) (*entities.Transcript, error) {
	t, err := entities.NewTranscript(fileID, transcriptPath, payload)
	if err != nil {
		return nil, err
	}

	if err := s.transcriptRepo.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to attach transcript: %w", err)
	}

	s.metrics.TranscriptsAttached.Inc()
	s.logger.Info("transcript attached",
		zap.Int64("transcript_id", t.ID),
		zap.Int64("file_id", fileID),
		zap.Bool("has_confidence", t.HasConfidence()),
	)
	return t, nil
}

// Get retrieves a transcript by ID
func (s *TranscriptService) Get(ctx context.Context, transcriptID int64) (*entities.Transcript, error) {
	return s.transcriptRepo.FindByID(ctx, transcriptID)
}

// UpdateConfidence replaces the payload; an absent payload is rejected.
// The cached copy is evicted after the write commits.
func (s *TranscriptService) UpdateConfidence(ctx context.Context, transcriptID int64, payload entities.ConfidencePayload) error {
	if !payload.Present() {
		return entities.NewValidationError("wer", "is required")
	}
	if err := payload.Validate(); err != nil {
		return err
	}

	if err := s.transcriptRepo.UpdateConfidence(ctx, transcriptID, payload); err != nil {
		return fmt.Errorf("failed to update confidence: %w", err)
	}
	s.cache.Delete(ctx, transcriptID)

	s.metrics.ConfidenceUpdates.Inc()
	s.logger.Info("confidence updated", zap.Int64("transcript_id", transcriptID))
	return nil
}

// ListForFile returns an empty slice for a file with no transcripts or no such file
func (s *TranscriptService) ListForFile(ctx context.Context, fileID int64) ([]*entities.Transcript, error) {
	return s.transcriptRepo.FindByFileID(ctx, fileID)
}

// LowConfidenceSpans reads the payload through the cache
func (s *TranscriptService) LowConfidenceSpans(ctx context.Context, transcriptID int64, threshold float64) ([]entities.SpanScore, error) {
	if math.IsNaN(threshold) || math.IsInf(threshold, 0) {
		return nil, entities.NewValidationError("threshold", "must be a finite number")
	}

	payload, err := s.confidence(ctx, transcriptID)
	if err != nil {
		return nil, err
	}

	spans, err := payload.LowConfidence(threshold)
	if err != nil {
		return nil, err
	}

	s.metrics.LowConfidenceSpans.Observe(float64(len(spans)))
	return spans, nil
}

// confidence reads the payload through the cache. A hit is only served while the
// transcript row still exists, so entries left behind by a delete in another process,
// or re-populated by a read that overlapped a delete, are never returned.
func (s *TranscriptService) confidence(ctx context.Context, transcriptID int64) (entities.ConfidencePayload, error) {
	if payload, ok := s.cache.Get(ctx, transcriptID); ok {
		exists, err := s.transcriptRepo.Exists(ctx, transcriptID)
		if err != nil {
			return nil, err
		}
		if exists {
			s.metrics.CacheHits.Inc()
			return payload, nil
		}
		s.cache.Delete(ctx, transcriptID)
		s.logger.Debug("evicted cached confidence of deleted transcript", zap.Int64("transcript_id", transcriptID))
		return nil, &entities.NotFoundError{Entity: entities.EntityTranscript, ID: transcriptID}
	}
	s.metrics.CacheMisses.Inc()

	t, err := s.transcriptRepo.FindByID(ctx, transcriptID)
	if err != nil {
		return nil, err
	}
	if !t.HasConfidence() {
		return nil, &entities.NotFoundError{Entity: entities.EntityConfidence, ID: transcriptID}
	}

	s.cache.Set(ctx, transcriptID, t.Confidence)
	return t.Confidence, nil
}
