package registry

import (
	"context"

	"github.com/johnquangdev/transcript-archive/internal/domain/entities"
)

// Service defines the file registry use case
type Service interface {
	// Register validates and stores a new file record
	Register(ctx context.Context, path, name, extension string) (*entities.File, error)

	// RegisterUpload stores a file whose extension is taken from the uploaded file name
	RegisterUpload(ctx context.Context, path, originalName string) (*entities.File, error)

	// Get retrieves a file by ID
	Get(ctx context.Context, fileID int64) (*entities.File, error)

	// Exists reports whether a file is registered
	Exists(ctx context.Context, fileID int64) (bool, error)

	// Delete removes a file and all of its transcripts, returning the removed transcript IDs
	Delete(ctx context.Context, fileID int64) ([]int64, error)
}

// Ensure RegistryService implements Service interface
var _ Service = (*RegistryService)(nil)
