// Package ingest feeds files, transcripts and scoring results into the archive,
// retrying whole operations that lost a race with a concurrent writer.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/johnquangdev/transcript-archive/internal/domain/entities"
	"github.com/johnquangdev/transcript-archive/internal/usecase/registry"
	"github.com/johnquangdev/transcript-archive/internal/usecase/transcript"
	"github.com/johnquangdev/transcript-archive/pkg/config"
	"github.com/johnquangdev/transcript-archive/pkg/jobcontext"
	"github.com/johnquangdev/transcript-archive/pkg/metrics"
	"github.com/johnquangdev/transcript-archive/pkg/wer"
)

// Item is one upload with its transcription result
type Item struct {
	FilePath       string
	OriginalName   string
	TranscriptPath string
	Payload        entities.ConfidencePayload
}

// Result reports what Ingest stored
type Result struct {
	File       *entities.File
	Transcript *entities.Transcript
}

// BatchResult is the outcome of one batch item
type BatchResult struct {
	Item   Item
	Result *Result
	Err    error
}

// Pipeline drives the registry and transcript store
type Pipeline struct {
	registry    registry.Service
	transcripts transcript.Service
	cfg         config.IngestConfig
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewPipeline creates a new ingestion pipeline
func NewPipeline(
	registrySvc registry.Service,
	transcriptSvc transcript.Service,
	cfg config.IngestConfig,
	m *metrics.Metrics,
	logger *zap.Logger,
) *Pipeline {
	return &Pipeline{
		registry:    registrySvc,
		transcripts: transcriptSvc,
		cfg:         cfg,
		metrics:     m,
		logger:      logger,
	}
}

// IngestFile registers an uploaded file, deriving its extension from the original name
func (p *Pipeline) IngestFile(ctx context.Context, path, originalName string) (*entities.File, error) {
	var file *entities.File
	err := p.retry(ctx, "ingest file", func() error {
		var err error
		file, err = p.registry.RegisterUpload(ctx, path, originalName)
		return err
	})
	if err != nil {
		return nil, err
	}
	return file, nil
}

// RecordTranscript attaches a transcript to fileID
func (p *Pipeline) RecordTranscript(
	ctx context.Context,
	fileID int64,
	transcriptPath string,
	payload entities.ConfidencePayload,
) (*entities.Transcript, error) {
	var t *entities.Transcript
	err := p.retry(ctx, "record transcript", func() error {
		var err error
		t, err = p.transcripts.Attach(ctx, fileID, transcriptPath, payload)
		return err
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// ScoreTranscript compares hypothesis with reference, stores the word-level payload
// and returns the word error rate
func (p *Pipeline) ScoreTranscript(ctx context.Context, transcriptID int64, reference, hypothesis string) (float64, error) {
	doc, rate, err := wer.Payload(reference, hypothesis)
	if err != nil {
		return 0, fmt.Errorf("failed to build confidence payload: %w", err)
	}

	err = p.retry(ctx, "score transcript", func() error {
		return p.transcripts.UpdateConfidence(ctx, transcriptID, entities.ConfidencePayload(doc))
	})
	if err != nil {
		return 0, err
	}

	p.logger.Info("transcript scored",
		zap.Int64("transcript_id", transcriptID),
		zap.Float64("wer", rate),
	)
	return rate, nil
}

// Ingest registers the file and attaches its transcript
func (p *Pipeline) Ingest(ctx context.Context, item Item) (*Result, error) {
	file, err := p.IngestFile(ctx, item.FilePath, item.OriginalName)
	if err != nil {
		return nil, err
	}

	t, err := p.RecordTranscript(ctx, file.ID, item.TranscriptPath, item.Payload)
	if err != nil {
		return &Result{File: file}, err
	}
	return &Result{File: file, Transcript: t}, nil
}

// IngestBatch ingests items with at most workers running at once.
// Results keep the order of items; one failure does not stop the others.
func (p *Pipeline) IngestBatch(ctx context.Context, items []Item, workers int) []BatchResult {
	if workers < 1 {
		workers = 1
	}

	results := make([]BatchResult, len(items))
	var g errgroup.Group
	g.SetLimit(workers)

	for i, item := range items {
		results[i].Item = item
		if err := ctx.Err(); err != nil {
			results[i].Err = err
			continue
		}

		g.Go(func() error {
			jobCtx := jobcontext.Begin(ctx, "ingest", i)
			res, err := p.Ingest(jobCtx, item)
			results[i].Result = res
			results[i].Err = err
			if err != nil {
				p.logger.Error("ingest item failed", append(jobcontext.Fields(jobCtx),
					zap.String("file_path", item.FilePath),
					zap.Error(err),
				)...)
			}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// retry runs fn until it succeeds, fails with anything other than an IntegrityError,
// or the retry budget is spent
func (p *Pipeline) retry(ctx context.Context, op string, fn func() error) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = p.cfg.InitialInterval
	bo.MaxElapsedTime = p.cfg.MaxElapsed

	policy := backoff.WithContext(backoff.WithMaxRetries(bo, p.cfg.MaxRetries), ctx)

	attempt := jobcontext.GetRetryAttempt(ctx)

	operation := func() error {
		err := fn()
		if err == nil || errors.Is(err, entities.ErrIntegrity) {
			return err
		}
		return backoff.Permanent(err)
	}

	notify := func(err error, wait time.Duration) {
		attempt++
		p.metrics.IngestRetries.Inc()
		p.logger.Warn("retrying after integrity error", append(
			jobcontext.Fields(jobcontext.SetRetryAttempt(ctx, attempt)),
			zap.String("operation", op),
			zap.Duration("wait", wait),
			zap.Error(err),
		)...)
	}

	return backoff.RetryNotify(operation, policy, notify)
}
