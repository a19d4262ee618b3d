// Package assemblyai turns AssemblyAI word confidences into confidence payloads
package assemblyai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/transcript-archive/internal/domain/entities"
	"github.com/johnquangdev/transcript-archive/pkg/config"
	"github.com/johnquangdev/transcript-archive/pkg/wer"
)

// ErrNotReady is returned while the provider is still transcribing
var ErrNotReady = errors.New("assemblyai: transcript not ready")

// PathScheme prefixes transcript paths of imported transcripts
const PathScheme = "assemblyai://"

// Client fetches finished transcripts from AssemblyAI
type Client struct {
	sdk    *aai.Client
	cfg    config.AssemblyAIConfig
	logger *zap.Logger
}

// NewClient creates an AssemblyAI client
func NewClient(cfg config.AssemblyAIConfig, logger *zap.Logger) *Client {
	opts := []aai.ClientOption{aai.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, aai.WithBaseURL(cfg.BaseURL))
	}
	return &Client{
		sdk:    aai.NewClientWithOptions(opts...),
		cfg:    cfg,
		logger: logger,
	}
}

// FetchConfidence returns the list-form payload of a completed transcript.
// It returns ErrNotReady while the transcript is queued or processing.
func (c *Client) FetchConfidence(ctx context.Context, transcriptID string) (entities.ConfidencePayload, error) {
	transcript, err := c.sdk.Transcripts.Get(ctx, transcriptID)
	if err != nil {
		return nil, fmt.Errorf("fetching transcript %s: %w", transcriptID, err)
	}

	switch transcript.Status {
	case aai.TranscriptStatusCompleted:
		return toPayload(transcript.Words)
	case aai.TranscriptStatusError:
		msg := "transcription failed"
		if transcript.Error != nil {
			msg = *transcript.Error
		}
		return nil, fmt.Errorf("assemblyai transcript %s: %s", transcriptID, msg)
	default:
		return nil, ErrNotReady
	}
}

// AwaitConfidence polls until the transcript completes, fails, or the poll timeout passes
func (c *Client) AwaitConfidence(ctx context.Context, transcriptID string) (entities.ConfidencePayload, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.PollTimeout)
	defer cancel()

	var payload entities.ConfidencePayload
	operation := func() error {
		var err error
		payload, err = c.FetchConfidence(ctx, transcriptID)
		if err == nil || errors.Is(err, ErrNotReady) {
			return err
		}
		return backoff.Permanent(err)
	}
	notify := func(_ error, wait time.Duration) {
		c.logger.Info("transcript still processing",
			zap.String("assemblyai_id", transcriptID),
			zap.Duration("next_poll", wait),
		)
	}

	policy := backoff.WithContext(backoff.NewConstantBackOff(c.cfg.PollInterval), ctx)
	if err := backoff.RetryNotify(operation, policy, notify); err != nil {
		return nil, err
	}
	return payload, nil
}

func toPayload(words []aai.TranscriptWord) (entities.ConfidencePayload, error) {
	scores := make([]wer.WordScore, 0, len(words))
	for _, w := range words {
		if w.Text == nil {
			continue
		}
		score := wer.WordScore{Word: *w.Text}
		if w.Confidence != nil {
			score.Confidence = *w.Confidence
		}
		scores = append(scores, score)
	}

	doc, err := json.Marshal(scores)
	if err != nil {
		return nil, err
	}
	return entities.ConfidencePayload(doc), nil
}
