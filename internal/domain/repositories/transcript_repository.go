package repositories

import (
	"context"

	"github.com/johnquangdev/transcript-archive/internal/domain/entities"
)

// TranscriptRepository defines persistence operations for transcripts and their confidence payloads
type TranscriptRepository interface {
	// Create inserts a transcript after checking, in the same transaction, that its file exists
	Create(ctx context.Context, transcript *entities.Transcript) error

	// FindByID retrieves a transcript by its ID, failing with entities.NotFoundError
	FindByID(ctx context.Context, id int64) (*entities.Transcript, error)

	// Exists reports whether the transcript is stored
	Exists(ctx context.Context, id int64) (bool, error)

	// FindByFileID lists the transcripts of a file, oldest first
	FindByFileID(ctx context.Context, fileID int64) ([]*entities.Transcript, error)

	// UpdateConfidence replaces the confidence payload of a transcript
	UpdateConfidence(ctx context.Context, id int64, payload entities.ConfidencePayload) error
}

// ConfidenceCache keeps recently read confidence payloads by transcript ID.
// Entries may be stale or outlive their transcript; readers confirm a hit against the store.
type ConfidenceCache interface {
	Get(ctx context.Context, transcriptID int64) (entities.ConfidencePayload, bool)
	Set(ctx context.Context, transcriptID int64, payload entities.ConfidencePayload)
	Delete(ctx context.Context, transcriptIDs ...int64)
}
