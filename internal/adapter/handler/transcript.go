package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/transcript-archive/errors"
	"github.com/johnquangdev/transcript-archive/internal/adapter/dto/transcript"
	"github.com/johnquangdev/transcript-archive/internal/adapter/presenter"
	"github.com/johnquangdev/transcript-archive/internal/usecase/registry"
	transcriptUsecase "github.com/johnquangdev/transcript-archive/internal/usecase/transcript"
)

// DefaultThreshold is used by the low-confidence endpoint when no threshold is given
const DefaultThreshold = 0.5

// Transcript handles transcript store HTTP requests
type Transcript struct {
	transcripts transcriptUsecase.Service
	registry    registry.Service
	logger      *zap.Logger
}

// NewTranscriptHandler creates a new transcript handler
func NewTranscriptHandler(transcripts transcriptUsecase.Service, registrySvc registry.Service, logger *zap.Logger) *Transcript {
	return &Transcript{
		transcripts: transcripts,
		registry:    registrySvc,
		logger:      logger,
	}
}

// AttachTranscript handles POST /files/:id/transcripts
// @Summary      Attach a transcript
// @Description  Attaches a transcript, optionally with its confidence payload, to an existing file
// @Tags         Transcripts
// @Accept       json
// @Produce      json
// @Param        id       path      int                                 true  "File ID"
// @Param        request  body      transcript.AttachTranscriptRequest  true  "Transcript"
// @Success      201      {object}  transcript.TranscriptResponse
// @Failure      400      {object}  map[string]interface{}  "Validation failed"
// @Failure      404      {object}  map[string]interface{}  "File not found"
// @Failure      409      {object}  map[string]interface{}  "Concurrent modification"
// @Router       /files/{id}/transcripts [post]
func (h *Transcript) AttachTranscript(c echo.Context) error {
	fileID, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req transcript.AttachTranscriptRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, bindError(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	t, err := h.transcripts.Attach(c.Request().Context(), fileID, req.TranscriptPath, presenter.ToConfidencePayload(req.WER))
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleCreated(h.logger, c, presenter.ToTranscriptResponse(t))
}

// ListTranscripts handles GET /files/:id/transcripts
// @Summary      List transcripts of a file
// @Tags         Transcripts
// @Produce      json
// @Param        id   path      int  true  "File ID"
// @Success      200  {object}  transcript.TranscriptListResponse
// @Failure      404  {object}  map[string]interface{}  "File not found"
// @Router       /files/{id}/transcripts [get]
func (h *Transcript) ListTranscripts(c echo.Context) error {
	fileID, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	ctx := c.Request().Context()
	exists, err := h.registry.Exists(ctx, fileID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	if !exists {
		return HandleError(h.logger, c, errors.ErrFileNotFound(fileID))
	}

	ts, err := h.transcripts.ListForFile(ctx, fileID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToTranscriptListResponse(fileID, ts))
}

// GetTranscript handles GET /transcripts/:id
// @Summary      Get a transcript
// @Tags         Transcripts
// @Produce      json
// @Param        id   path      int  true  "Transcript ID"
// @Success      200  {object}  transcript.TranscriptResponse
// @Failure      404  {object}  map[string]interface{}  "Transcript not found"
// @Router       /transcripts/{id} [get]
func (h *Transcript) GetTranscript(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	t, err := h.transcripts.Get(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToTranscriptResponse(t))
}

// UpdateConfidence handles PUT /transcripts/:id/confidence
// @Summary      Replace the confidence payload
// @Tags         Transcripts
// @Accept       json
// @Produce      json
// @Param        id       path      int                                 true  "Transcript ID"
// @Param        request  body      transcript.UpdateConfidenceRequest  true  "New payload"
// @Success      200      {object}  transcript.TranscriptResponse
// @Failure      400      {object}  map[string]interface{}  "Invalid payload"
// @Failure      404      {object}  map[string]interface{}  "Transcript not found"
// @Router       /transcripts/{id}/confidence [put]
func (h *Transcript) UpdateConfidence(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req transcript.UpdateConfidenceRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, bindError(err))
	}

	ctx := c.Request().Context()
	if err := h.transcripts.UpdateConfidence(ctx, id, presenter.ToConfidencePayload(req.WER)); err != nil {
		return HandleError(h.logger, c, err)
	}

	t, err := h.transcripts.Get(ctx, id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToTranscriptResponse(t))
}

// LowConfidenceSpans handles GET /transcripts/:id/low-confidence
// @Summary      Spans below a confidence threshold
// @Description  Returns spans scored strictly below threshold, in payload order
// @Tags         Transcripts
// @Produce      json
// @Param        id         path      int     true   "Transcript ID"
// @Param        threshold  query     number  false  "Threshold (default 0.5)"
// @Success      200        {object}  transcript.LowConfidenceResponse
// @Failure      400        {object}  map[string]interface{}  "Invalid threshold"
// @Failure      404        {object}  map[string]interface{}  "Transcript or payload not found"
// @Router       /transcripts/{id}/low-confidence [get]
func (h *Transcript) LowConfidenceSpans(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	threshold := DefaultThreshold
	if err := echo.QueryParamsBinder(c).Float64("threshold", &threshold).BindError(); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("threshold must be a number"))
	}

	spans, err := h.transcripts.LowConfidenceSpans(c.Request().Context(), id, threshold)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToLowConfidenceResponse(id, threshold, spans))
}
