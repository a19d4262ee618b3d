package transcript

import (
	"time"

	"gorm.io/datatypes"
)

// TranscriptResponse represents a transcript in responses
type TranscriptResponse struct {
	TranscriptID   int64          `json:"transcript_id"`
	FileID         int64          `json:"file_id"`
	TranscriptPath string         `json:"transcript_path"`
	WER            datatypes.JSON `json:"wer" swaggertype:"object"`
	CreatedAt      time.Time      `json:"created_at"`
}

// TranscriptListResponse lists the transcripts of one file, oldest first
type TranscriptListResponse struct {
	FileID      int64                 `json:"file_id"`
	Transcripts []*TranscriptResponse `json:"transcripts"`
}

// SpanResponse is one low-confidence span
type SpanResponse struct {
	Span  string  `json:"span"`
	Score float64 `json:"score"`
}

// LowConfidenceResponse lists spans scored below the threshold, in payload order
type LowConfidenceResponse struct {
	TranscriptID int64          `json:"transcript_id"`
	Threshold    float64        `json:"threshold"`
	Spans        []SpanResponse `json:"spans"`
}
