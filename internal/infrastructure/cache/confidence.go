package cache

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/transcript-archive/internal/domain/entities"
	"github.com/johnquangdev/transcript-archive/internal/domain/repositories"
)

const confidenceKeyPrefix = "transcript:wer:"

// ConfidenceCache stores confidence payloads in a Store.
// Store failures are logged and treated as misses; the database stays authoritative.
type ConfidenceCache struct {
	store  Store
	ttl    time.Duration
	logger *zap.Logger
}

var _ repositories.ConfidenceCache = (*ConfidenceCache)(nil)

// NewConfidenceCache returns a cache over store, or a no-op cache when store is nil
func NewConfidenceCache(store Store, ttl time.Duration, logger *zap.Logger) repositories.ConfidenceCache {
	if store == nil {
		return Nop{}
	}
	return &ConfidenceCache{store: store, ttl: ttl, logger: logger}
}

func confidenceKey(id int64) string {
	return confidenceKeyPrefix + strconv.FormatInt(id, 10)
}

// Get returns the cached payload of a transcript
func (c *ConfidenceCache) Get(ctx context.Context, transcriptID int64) (entities.ConfidencePayload, bool) {
	val, ok, err := c.store.Get(ctx, confidenceKey(transcriptID))
	if err != nil {
		c.logger.Warn("confidence cache get failed", zap.Int64("transcript_id", transcriptID), zap.Error(err))
		return nil, false
	}
	if !ok {
		return nil, false
	}
	return entities.ConfidencePayload(val), true
}

// Set caches a present payload
func (c *ConfidenceCache) Set(ctx context.Context, transcriptID int64, payload entities.ConfidencePayload) {
	if !payload.Present() {
		return
	}
	if err := c.store.Set(ctx, confidenceKey(transcriptID), string(payload), c.ttl); err != nil {
		c.logger.Warn("confidence cache set failed", zap.Int64("transcript_id", transcriptID), zap.Error(err))
	}
}

// Delete evicts the given transcripts
func (c *ConfidenceCache) Delete(ctx context.Context, transcriptIDs ...int64) {
	if len(transcriptIDs) == 0 {
		return
	}
	keys := make([]string, len(transcriptIDs))
	for i, id := range transcriptIDs {
		keys[i] = confidenceKey(id)
	}
	if err := c.store.Delete(ctx, keys...); err != nil {
		c.logger.Warn("confidence cache delete failed", zap.Int64s("transcript_ids", transcriptIDs), zap.Error(err))
	}
}

// Nop is a ConfidenceCache that never holds anything
type Nop struct{}

func (Nop) Get(context.Context, int64) (entities.ConfidencePayload, bool) { return nil, false }
func (Nop) Set(context.Context, int64, entities.ConfidencePayload)        {}
func (Nop) Delete(context.Context, ...int64)                               {}
