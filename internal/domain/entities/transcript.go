package entities

import (
	"time"

	"github.com/johnquangdev/transcript-archive/pkg/validator"
)

// Transcript is one transcription run over a File
type Transcript struct {
	ID         int64             `json:"transcript_id" gorm:"column:transcript_id;primaryKey;autoIncrement"`
	FileID     int64             `json:"file_id" gorm:"column:file_id;not null;index"`
	Path       string            `json:"transcript_path" gorm:"column:transcript_path;type:text;not null" validate:"required"`
	Confidence ConfidencePayload `json:"wer,omitempty" gorm:"column:wer"`
	CreatedAt  time.Time         `json:"created_at" gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (Transcript) TableName() string {
	return "file_transcripts"
}

// NewTranscript builds a transcript for fileID. The payload may be nil when scoring has not run yet;
// otherwise it must be a well-formed confidence document.
func NewTranscript(fileID int64, path string, payload ConfidencePayload) (*Transcript, error) {
	t := &Transcript{
		FileID: fileID,
		Path:   path,
	}
	if err := validator.Struct(t); err != nil {
		return nil, toValidationError(err)
	}
	if payload.Present() {
		if err := payload.Validate(); err != nil {
			return nil, err
		}
		t.Confidence = payload
	}
	return t, nil
}

// HasConfidence reports whether a scoring pass has attached a payload
func (t *Transcript) HasConfidence() bool {
	return t.Confidence.Present()
}
