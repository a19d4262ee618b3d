package file

import "time"

// FileResponse represents a registered file in responses
type FileResponse struct {
	FileID        int64     `json:"file_id"`
	FilePath      string    `json:"file_path"`
	FileName      string    `json:"file_name"`
	FileExtension string    `json:"file_extension"`
	LoadDate      time.Time `json:"load_date"`
}

// DeleteFileResponse reports a file deletion and the transcripts removed with it
type DeleteFileResponse struct {
	FileID             int64   `json:"file_id"`
	RemovedTranscripts []int64 `json:"removed_transcripts"`
}
