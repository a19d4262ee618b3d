package registry

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/johnquangdev/transcript-archive/internal/domain/entities"
	"github.com/johnquangdev/transcript-archive/internal/domain/repositories"
	"github.com/johnquangdev/transcript-archive/pkg/metrics"
)

// RegistryService handles file registry business logic
type RegistryService struct {
	fileRepo repositories.FileRepository
	cache    repositories.ConfidenceCache
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewRegistryService creates a new registry service
func NewRegistryService(
	fileRepo repositories.FileRepository,
	cache repositories.ConfidenceCache,
	m *metrics.Metrics,
	logger *zap.Logger,
) *RegistryService {
	return &RegistryService{
		fileRepo: fileRepo,
		cache:    cache,
		metrics:  m,
		logger:   logger,
	}
}

// Register validates the record before any I/O, then inserts it.
// Several files may share a path; each registration gets its own ID.
func (s *RegistryService) Register(ctx context.Context, path, name, extension string) (*entities.File, error) {
	file, err := entities.NewFile(path, name, extension)
	if err != nil {
		return nil, err
	}

	if err := s.fileRepo.Create(ctx, file); err != nil {
		return nil, fmt.Errorf("failed to register file: %w", err)
	}

	s.metrics.FilesRegistered.Inc()
	s.logger.Info("file registered",
		zap.Int64("file_id", file.ID),
		zap.String("file_path", file.Path),
		zap.String("file_extension", file.Extension),
	)
	return file, nil
}

// RegisterUpload derives name and extension from the uploaded file name
func (s *RegistryService) RegisterUpload(ctx context.Context, path, originalName string) (*entities.File, error) {
	name := filepath.Base(originalName)
	ext, err := entities.ExtensionFromName(name)
	if err != nil {
		return nil, err
	}
	return s.Register(ctx, path, name, ext)
}

// Get retrieves a file by ID
func (s *RegistryService) Get(ctx context.Context, fileID int64) (*entities.File, error) {
	return s.fileRepo.FindByID(ctx, fileID)
}

// Exists reports whether a file is registered
func (s *RegistryService) Exists(ctx context.Context, fileID int64) (bool, error) {
	return s.fileRepo.Exists(ctx, fileID)
}

// Delete removes the file and its transcripts atomically, then evicts their cached payloads
func (s *RegistryService) Delete(ctx context.Context, fileID int64) ([]int64, error) {
	removed, err := s.fileRepo.Delete(ctx, fileID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete file: %w", err)
	}

	s.cache.Delete(ctx, removed...)

	s.metrics.FilesDeleted.Inc()
	s.metrics.TranscriptsCascaded.Add(float64(len(removed)))
	s.logger.Info("file deleted",
		zap.Int64("file_id", fileID),
		zap.Int("transcripts_removed", len(removed)),
	)
	return removed, nil
}
