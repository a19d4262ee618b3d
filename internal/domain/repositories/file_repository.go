package repositories

import (
	"context"

	"github.com/johnquangdev/transcript-archive/internal/domain/entities"
)

// FileRepository defines the interface for file registry data access
type FileRepository interface {
	// Create inserts a new file and fills in its ID and load date
	Create(ctx context.Context, file *entities.File) error

	// FindByID retrieves a file by its ID, failing with entities.NotFoundError
	FindByID(ctx context.Context, id int64) (*entities.File, error)

	// Exists reports whether a file with the given ID is registered
	Exists(ctx context.Context, id int64) (bool, error)

	// Delete removes the file and all of its transcripts in one transaction.
	// It returns the IDs of the removed transcripts.
	Delete(ctx context.Context, id int64) ([]int64, error)
}
