package transcript

import "gorm.io/datatypes"

// AttachTranscriptRequest represents the request to attach a transcript to a file
type AttachTranscriptRequest struct {
	TranscriptPath string         `json:"transcript_path" validate:"required"`
	WER            datatypes.JSON `json:"wer,omitempty" swaggertype:"object"`
}

// UpdateConfidenceRequest replaces the confidence payload of a transcript
type UpdateConfidenceRequest struct {
	WER datatypes.JSON `json:"wer" swaggertype:"object"`
}
