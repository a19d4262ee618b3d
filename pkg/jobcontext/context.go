package jobcontext

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type KeyContext string

var (
	keyJobID        KeyContext = "job_id"
	keyJobType      KeyContext = "job_type"
	keyItemIndex    KeyContext = "item_index"
	keyRetryAttempt KeyContext = "retry_attempt"
	keyJobStartTime KeyContext = "job_start_time"
)

// JobMetadata holds metadata for one unit of ingest work
type JobMetadata struct {
	JobID        uuid.UUID
	JobType      string
	ItemIndex    int
	RetryAttempt int
	StartTime    time.Time
}

// Begin tags ctx with a fresh job ID. Cancellation is inherited from parent.
func Begin(parent context.Context, jobType string, itemIndex int) context.Context {
	ctx := context.WithValue(parent, keyJobID, uuid.New())
	ctx = context.WithValue(ctx, keyJobType, jobType)
	ctx = context.WithValue(ctx, keyItemIndex, itemIndex)
	ctx = context.WithValue(ctx, keyRetryAttempt, 0)
	ctx = context.WithValue(ctx, keyJobStartTime, time.Now())
	return ctx
}

// GetJobID extracts job ID from context
func GetJobID(ctx context.Context) (uuid.UUID, bool) {
	jobID, ok := ctx.Value(keyJobID).(uuid.UUID)
	return jobID, ok
}

// GetJobType extracts job type from context
func GetJobType(ctx context.Context) (string, bool) {
	jobType, ok := ctx.Value(keyJobType).(string)
	return jobType, ok
}

// GetItemIndex extracts the batch position from context, -1 outside a batch
func GetItemIndex(ctx context.Context) int {
	idx, ok := ctx.Value(keyItemIndex).(int)
	if !ok {
		return -1
	}
	return idx
}

// GetRetryAttempt extracts current retry attempt from context
func GetRetryAttempt(ctx context.Context) int {
	attempt, ok := ctx.Value(keyRetryAttempt).(int)
	if !ok {
		return 0
	}
	return attempt
}

// SetRetryAttempt updates retry attempt in context
func SetRetryAttempt(ctx context.Context, attempt int) context.Context {
	return context.WithValue(ctx, keyRetryAttempt, attempt)
}

// GetJobStartTime extracts job start time from context
func GetJobStartTime(ctx context.Context) (time.Time, bool) {
	startTime, ok := ctx.Value(keyJobStartTime).(time.Time)
	return startTime, ok
}

// GetJobMetadata extracts all job metadata from context
func GetJobMetadata(ctx context.Context) *JobMetadata {
	jobID, _ := GetJobID(ctx)
	jobType, _ := GetJobType(ctx)
	startTime, _ := GetJobStartTime(ctx)

	return &JobMetadata{
		JobID:        jobID,
		JobType:      jobType,
		ItemIndex:    GetItemIndex(ctx),
		RetryAttempt: GetRetryAttempt(ctx),
		StartTime:    startTime,
	}
}

// Fields returns the job metadata present in ctx as log fields
func Fields(ctx context.Context) []zap.Field {
	if _, ok := GetJobID(ctx); !ok {
		return nil
	}
	md := GetJobMetadata(ctx)

	fields := []zap.Field{
		zap.String("job_id", md.JobID.String()),
		zap.String("job_type", md.JobType),
		zap.Int("item_index", md.ItemIndex),
		zap.Int("retry_attempt", md.RetryAttempt),
	}
	if !md.StartTime.IsZero() {
		fields = append(fields, zap.Duration("elapsed", time.Since(md.StartTime)))
	}
	return fields
}
