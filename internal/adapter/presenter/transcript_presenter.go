package presenter

import (
	"gorm.io/datatypes"

	"github.com/johnquangdev/transcript-archive/internal/adapter/dto/transcript"
	"github.com/johnquangdev/transcript-archive/internal/domain/entities"
)

// ToTranscriptResponse converts a Transcript entity to TranscriptResponse DTO.
// The payload is embedded without re-encoding.
func ToTranscriptResponse(t *entities.Transcript) *transcript.TranscriptResponse {
	if t == nil {
		return nil
	}

	response := &transcript.TranscriptResponse{
		TranscriptID:   t.ID,
		FileID:         t.FileID,
		TranscriptPath: t.Path,
		CreatedAt:      t.CreatedAt,
	}
	if t.HasConfidence() {
		response.WER = datatypes.JSON(t.Confidence)
	}
	return response
}

// ToTranscriptListResponse converts the transcripts of a file
func ToTranscriptListResponse(fileID int64, ts []*entities.Transcript) *transcript.TranscriptListResponse {
	items := make([]*transcript.TranscriptResponse, len(ts))
	for i, t := range ts {
		items[i] = ToTranscriptResponse(t)
	}
	return &transcript.TranscriptListResponse{
		FileID:      fileID,
		Transcripts: items,
	}
}

// ToLowConfidenceResponse converts spans below threshold
func ToLowConfidenceResponse(transcriptID int64, threshold float64, spans []entities.SpanScore) *transcript.LowConfidenceResponse {
	items := make([]transcript.SpanResponse, len(spans))
	for i, s := range spans {
		items[i] = transcript.SpanResponse{Span: s.Span, Score: s.Score}
	}
	return &transcript.LowConfidenceResponse{
		TranscriptID: transcriptID,
		Threshold:    threshold,
		Spans:        items,
	}
}

// ToConfidencePayload converts a request payload; JSON null and omission both mean absent
func ToConfidencePayload(raw datatypes.JSON) entities.ConfidencePayload {
	payload := entities.ConfidencePayload(raw)
	if !payload.Present() {
		return nil
	}
	return payload
}
