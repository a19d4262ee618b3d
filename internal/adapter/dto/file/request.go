package file

// RegisterFileRequest represents the request to register a file.
// When FileExtension is empty it is derived from FileName.
type RegisterFileRequest struct {
	FilePath      string `json:"file_path" validate:"required"`
	FileName      string `json:"file_name" validate:"required"`
	FileExtension string `json:"file_extension,omitempty" validate:"omitempty,max=10"`
}
