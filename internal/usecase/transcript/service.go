package transcript

import (
	"context"

	"github.com/johnquangdev/transcript-archive/internal/domain/entities"
)

// Service defines the transcript store use case
type Service interface {
	// Attach stores a new transcript for an existing file. payload may be nil.
	Attach(ctx context.Context, fileID int64, transcriptPath string, payload entities.ConfidencePayload) (*entities.Transcript, error)

	// Get retrieves a transcript by ID
	Get(ctx context.Context, transcriptID int64) (*entities.Transcript, error)

	// UpdateConfidence replaces the confidence payload of a transcript
	UpdateConfidence(ctx context.Context, transcriptID int64, payload entities.ConfidencePayload) error

	// ListForFile lists the transcripts of a file, oldest first
	ListForFile(ctx context.Context, fileID int64) ([]*entities.Transcript, error)

	// LowConfidenceSpans returns the spans scored strictly below threshold, in payload order
	LowConfidenceSpans(ctx context.Context, transcriptID int64, threshold float64) ([]entities.SpanScore, error)
}

// Ensure TranscriptService implements Service interface
var _ Service = (*TranscriptService)(nil)
