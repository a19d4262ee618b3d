package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/transcript-archive/errors"
	"github.com/johnquangdev/transcript-archive/internal/adapter/dto/file"
	"github.com/johnquangdev/transcript-archive/internal/adapter/presenter"
	"github.com/johnquangdev/transcript-archive/internal/domain/entities"
	"github.com/johnquangdev/transcript-archive/internal/usecase/registry"
)

// File handles file registry HTTP requests
type File struct {
	registry registry.Service
	logger   *zap.Logger
}

// NewFileHandler creates a new file handler
func NewFileHandler(registrySvc registry.Service, logger *zap.Logger) *File {
	return &File{
		registry: registrySvc,
		logger:   logger,
	}
}

// RegisterFile handles POST /files
// @Summary      Register a file
// @Description  Registers a source file. The extension is derived from file_name when omitted.
// @Tags         Files
// @Accept       json
// @Produce      json
// @Param        request  body      file.RegisterFileRequest  true  "File to register"
// @Success      201      {object}  file.FileResponse
// @Failure      400      {object}  map[string]interface{}  "Validation failed"
// @Router       /files [post]
func (h *File) RegisterFile(c echo.Context) error {
	var req file.RegisterFileRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, bindError(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	ctx := c.Request().Context()

	var (
		f   *entities.File
		err error
	)
	if req.FileExtension == "" {
		f, err = h.registry.RegisterUpload(ctx, req.FilePath, req.FileName)
	} else {
		f, err = h.registry.Register(ctx, req.FilePath, req.FileName, req.FileExtension)
	}
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleCreated(h.logger, c, presenter.ToFileResponse(f))
}

// GetFile handles GET /files/:id
// @Summary      Get a file
// @Tags         Files
// @Produce      json
// @Param        id   path      int  true  "File ID"
// @Success      200  {object}  file.FileResponse
// @Failure      404  {object}  map[string]interface{}  "File not found"
// @Router       /files/{id} [get]
func (h *File) GetFile(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	f, err := h.registry.Get(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToFileResponse(f))
}

// DeleteFile handles DELETE /files/:id
// @Summary      Delete a file
// @Description  Deletes a file together with all of its transcripts
// @Tags         Files
// @Produce      json
// @Param        id   path      int  true  "File ID"
// @Success      200  {object}  file.DeleteFileResponse
// @Failure      404  {object}  map[string]interface{}  "File not found"
// @Router       /files/{id} [delete]
func (h *File) DeleteFile(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	removed, err := h.registry.Delete(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToDeleteFileResponse(id, removed))
}
