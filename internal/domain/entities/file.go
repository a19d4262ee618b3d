package entities

import (
	"errors"
	"path/filepath"
	"strings"
	"time"

	playground "github.com/go-playground/validator/v10"

	"github.com/johnquangdev/transcript-archive/pkg/validator"
)

// File is the canonical record of an ingested source artifact
type File struct {
	ID        int64     `json:"file_id" gorm:"column:file_id;primaryKey;autoIncrement"`
	Path      string    `json:"file_path" gorm:"column:file_path;type:text;not null" validate:"required"`
	Name      string    `json:"file_name" gorm:"column:file_name;type:text;not null" validate:"required"`
	Extension string    `json:"file_extension" gorm:"column:file_extension;type:varchar(10);not null" validate:"required,alphanum,max=10"`
	LoadDate  time.Time `json:"load_date" gorm:"column:load_date;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (File) TableName() string {
	return "files"
}

// NewFile builds a file record, rejecting empty path/name and extensions outside ^[a-zA-Z0-9]{1,10}$.
// The identifier and load date are assigned by the store on insert.
func NewFile(path, name, extension string) (*File, error) {
	f := &File{
		Path:      path,
		Name:      name,
		Extension: extension,
	}
	if err := validator.Struct(f); err != nil {
		return nil, toValidationError(err)
	}
	return f, nil
}

// ExtensionFromName returns the lower-cased suffix of a file name without its dot
func ExtensionFromName(name string) (string, error) {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if ext == "" {
		return "", NewValidationError("file_extension", "could not be derived from file name")
	}
	return strings.ToLower(ext), nil
}

// toValidationError converts the first go-playground field error into a ValidationError
func toValidationError(err error) error {
	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Reason: err.Error()}
	}

	fe := fieldErrs[0]
	field := jsonFieldNames[fe.StructNamespace()]
	if field == "" {
		field = fe.Field()
	}

	switch fe.Tag() {
	case "required":
		return NewValidationError(field, "is required")
	case "alphanum":
		return NewValidationError(field, "must match ^[a-zA-Z0-9]+$")
	case "max":
		return NewValidationError(field, "must be at most "+fe.Param()+" characters")
	default:
		return NewValidationError(field, "failed "+fe.Tag()+" check")
	}
}

var jsonFieldNames = map[string]string{
	"File.Path":       "file_path",
	"File.Name":       "file_name",
	"File.Extension":  "file_extension",
	"Transcript.Path": "transcript_path",
}
