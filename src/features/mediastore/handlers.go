package mediastore

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/contre95/mediastore/src/media"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AssetPrefix is the route under which managed files are served.
const AssetPrefix = "/asset"

// Handler is the handler for the media store feature.
type Handler struct {
	service  *Service
	validate *validator.Validate
}

// NewHandler creates a new handler for the media store feature.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service, validate: validator.New()}
}

// ImportRequest is the body of an import call.
type ImportRequest struct {
	SourcePath string `json:"sourcePath" validate:"required"`
	Category   string `json:"category" validate:"required"`
}

// AssetURL returns the URL under which the bridge serves a managed file.
func AssetURL(category, filename string) string {
	return AssetPrefix + "/" + url.PathEscape(category) + "/" + url.PathEscape(filename)
}

// ImportFile copies a file from the host filesystem into the store.
func (h *Handler) ImportFile(c *fiber.Ctx) error {
	var req ImportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body", "kind": "InvalidRequestError"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error(), "kind": "InvalidRequestError"})
	}

	rel, err := h.service.ImportFile(c.UserContext(), req.SourcePath, req.Category)
	if err != nil {
		return h.sendError(c, err)
	}

	category, filename := splitRelative(rel)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"path":     rel,
		"filename": filename,
		"url":      AssetURL(category, filename),
	})
}

// GetBasePath returns the media root.
func (h *Handler) GetBasePath(c *fiber.Ctx) error {
	path, err := h.service.ResolveBasePath(c.UserContext())
	if err != nil {
		return h.sendError(c, err)
	}
	return c.JSON(fiber.Map{"path": path})
}

// GetExtensions returns the file picker extensions per category.
func (h *Handler) GetExtensions(c *fiber.Ctx) error {
	return c.JSON(h.service.Extensions())
}

// ListFiles returns the files of a category with their asset URLs.
func (h *Handler) ListFiles(c *fiber.Ctx) error {
	files, err := h.service.ListMediaFiles(c.UserContext(), c.Params("category"), AssetURL)
	if err != nil {
		return h.sendError(c, err)
	}
	return c.JSON(fiber.Map{"files": files})
}

// GetFilePath returns the absolute path of a managed file.
func (h *Handler) GetFilePath(c *fiber.Ctx) error {
	path, err := h.service.ResolveFilePath(c.UserContext(), c.Params("category"), c.Params("filename"))
	if err != nil {
		return h.sendError(c, err)
	}
	return c.JSON(fiber.Map{"path": path})
}

// DeleteFile removes a managed file.
func (h *Handler) DeleteFile(c *fiber.Ctx) error {
	if err := h.service.DeleteFile(c.UserContext(), c.Params("category"), c.Params("filename")); err != nil {
		return h.sendError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ServeAsset sends the content of a managed file.
func (h *Handler) ServeAsset(c *fiber.Ctx) error {
	path, err := h.service.ResolveFilePath(c.UserContext(), c.Params("category"), c.Params("filename"))
	if err != nil {
		return h.sendError(c, err)
	}

	// The resolved path is opened as is; it never goes back through URI parsing.
	f, err := os.Open(path)
	if err != nil {
		return h.sendError(c, fmt.Errorf("%w: failed to open file: %w", media.ErrStorageIO, err))
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return h.sendError(c, fmt.Errorf("%w: failed to stat file: %w", media.ErrStorageIO, err))
	}

	if ext := strings.TrimPrefix(filepath.Ext(path), "."); ext != "" {
		c.Type(ext)
	} else {
		c.Set(fiber.HeaderContentType, fiber.MIMEOctetStream)
	}
	// fasthttp closes f once the body is written.
	return c.SendStream(f, int(info.Size()))
}

func (h *Handler) sendError(c *fiber.Ctx, err error) error {
	status := statusOf(err)
	if status == fiber.StatusInternalServerError {
		slog.Error("Media request failed", "path", c.Path(), "error", err)
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
		"kind":  media.ErrorKind(err),
	})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, media.ErrInvalidCategory), errors.Is(err, media.ErrInvalidFilename):
		return fiber.StatusBadRequest
	case errors.Is(err, media.ErrSourceNotFound), errors.Is(err, media.ErrFileNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

func splitRelative(rel string) (category, filename string) {
	category, filename, _ = strings.Cut(rel, "/")
	return category, filename
}
