package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/johnquangdev/transcript-archive/internal/domain/entities"
	"github.com/johnquangdev/transcript-archive/internal/domain/repositories"
)

// transcriptRepository handles transcript data operations
type transcriptRepository struct {
	db *gorm.DB
}

// NewTranscriptRepository creates a new transcript repository
func NewTranscriptRepository(db *gorm.DB) repositories.TranscriptRepository {
	return &transcriptRepository{db: db}
}

// Create inserts a transcript. The owning file is read with a shared row lock inside the
// insert transaction, so referential integrity is checked at write time.
func (r *transcriptRepository) Create(ctx context.Context, transcript *entities.Transcript) error {
	if transcript == nil {
		return errors.New("transcript cannot be nil")
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var file entities.File
		if err := tx.Clauses(clause.Locking{Strength: "SHARE"}).
			Select("file_id").
			Where("file_id = ?", transcript.FileID).
			First(&file).Error; err != nil {
			return err
		}
		return tx.Create(transcript).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &entities.NotFoundError{Entity: entities.EntityFile, ID: transcript.FileID}
		}
		return translateError("attach transcript", err)
	}
	return nil
}

// FindByID retrieves a transcript by ID
func (r *transcriptRepository) FindByID(ctx context.Context, id int64) (*entities.Transcript, error) {
	var transcript entities.Transcript
	if err := r.db.WithContext(ctx).Where("transcript_id = ?", id).First(&transcript).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &entities.NotFoundError{Entity: entities.EntityTranscript, ID: id}
		}
		return nil, translateError("find transcript", err)
	}
	return &transcript, nil
}

// Exists reports whether the transcript is stored
func (r *transcriptRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Transcript{}).
		Where("transcript_id = ?", id).
		Count(&count).Error; err != nil {
		return false, translateError("check transcript", err)
	}
	return count > 0, nil
}

// FindByFileID retrieves all transcripts of a file in creation order.
// Identifiers come from a store sequence, so ascending ID is creation order.
func (r *transcriptRepository) FindByFileID(ctx context.Context, fileID int64) ([]*entities.Transcript, error) {
	transcripts := make([]*entities.Transcript, 0)
	if err := r.db.WithContext(ctx).
		Where("file_id = ?", fileID).
		Order("transcript_id ASC").
		Find(&transcripts).Error; err != nil {
		return nil, translateError("list transcripts", err)
	}
	return transcripts, nil
}

// UpdateConfidence replaces the stored confidence payload
func (r *transcriptRepository) UpdateConfidence(ctx context.Context, id int64, payload entities.ConfidencePayload) error {
	res := r.db.WithContext(ctx).
		Model(&entities.Transcript{}).
		Where("transcript_id = ?", id).
		Update("wer", payload)
	if res.Error != nil {
		return translateError("update confidence", res.Error)
	}
	if res.RowsAffected == 0 {
		return &entities.NotFoundError{Entity: entities.EntityTranscript, ID: id}
	}
	return nil
}
