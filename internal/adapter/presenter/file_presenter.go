package presenter

import (
	"github.com/johnquangdev/transcript-archive/internal/adapter/dto/file"
	"github.com/johnquangdev/transcript-archive/internal/domain/entities"
)

// ToFileResponse converts a File entity to FileResponse DTO
func ToFileResponse(f *entities.File) *file.FileResponse {
	if f == nil {
		return nil
	}

	return &file.FileResponse{
		FileID:        f.ID,
		FilePath:      f.Path,
		FileName:      f.Name,
		FileExtension: f.Extension,
		LoadDate:      f.LoadDate,
	}
}

// ToDeleteFileResponse reports the transcripts removed along with the file
func ToDeleteFileResponse(fileID int64, removed []int64) *file.DeleteFileResponse {
	if removed == nil {
		removed = []int64{}
	}
	return &file.DeleteFileResponse{
		FileID:             fileID,
		RemovedTranscripts: removed,
	}
}
