package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/johnquangdev/transcript-archive/internal/domain/entities"
	"github.com/johnquangdev/transcript-archive/internal/domain/repositories"
)

// fileRepository implements the FileRepository interface
type fileRepository struct {
	db *gorm.DB
}

// NewFileRepository creates a new file repository
func NewFileRepository(db *gorm.DB) repositories.FileRepository {
	return &fileRepository{db: db}
}

// Create inserts a new file
func (r *fileRepository) Create(ctx context.Context, file *entities.File) error {
	if file == nil {
		return errors.New("file cannot be nil")
	}
	if err := r.db.WithContext(ctx).Create(file).Error; err != nil {
		return translateError("register file", err)
	}
	return nil
}

// FindByID retrieves a file by its ID
func (r *fileRepository) FindByID(ctx context.Context, id int64) (*entities.File, error) {
	var file entities.File
	if err := r.db.WithContext(ctx).Where("file_id = ?", id).First(&file).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &entities.NotFoundError{Entity: entities.EntityFile, ID: id}
		}
		return nil, translateError("find file", err)
	}
	return &file, nil
}

// Exists reports whether the file is registered
func (r *fileRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.File{}).
		Where("file_id = ?", id).
		Count(&count).Error; err != nil {
		return false, translateError("check file", err)
	}
	return count > 0, nil
}

// Delete removes a file and its transcripts.
// The file row is locked FOR UPDATE first so that concurrent attaches, which take a
// shared lock on the same row, either commit before the cascade or observe the file as gone.
func (r *fileRepository) Delete(ctx context.Context, id int64) ([]int64, error) {
	removed := make([]int64, 0)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var file entities.File
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("file_id = ?", id).
			First(&file).Error; err != nil {
			return err
		}

		if err := tx.Model(&entities.Transcript{}).
			Where("file_id = ?", id).
			Order("transcript_id ASC").
			Pluck("transcript_id", &removed).Error; err != nil {
			return err
		}

		if err := tx.Where("file_id = ?", id).Delete(&entities.Transcript{}).Error; err != nil {
			return err
		}

		return tx.Where("file_id = ?", id).Delete(&entities.File{}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &entities.NotFoundError{Entity: entities.EntityFile, ID: id}
		}
		return nil, translateError("delete file", err)
	}

	return removed, nil
}
