package ui

import (
	"log/slog"

	"github.com/contre95/mediastore/src/features/config"
	"github.com/contre95/mediastore/src/features/mediastore"
	"github.com/contre95/mediastore/src/media"
	"github.com/gofiber/fiber/v2"
)

// Handler is the handler for the UI feature.
type Handler struct {
	configManager *config.Manager
	service       *mediastore.Service
}

// NewHandler creates a new handler for the UI feature.
func NewHandler(configManager *config.Manager, service *mediastore.Service) *Handler {
	return &Handler{
		configManager: configManager,
		service:       service,
	}
}

type categoryView struct {
	Category   string
	Extensions []string
	Files      []media.MediaFile
	Error      string
}

func (h *Handler) viewOf(c *fiber.Ctx, category string) categoryView {
	view := categoryView{Category: category}
	if parsed, err := media.ParseCategory(category); err == nil {
		view.Extensions = parsed.Extensions()
	}
	files, err := h.service.ListMediaFiles(c.UserContext(), category, mediastore.AssetURL)
	if err != nil {
		view.Error = err.Error()
		return view
	}
	view.Files = files
	return view
}

// RenderMediaSection renders the media library page.
func (h *Handler) RenderMediaSection(c *fiber.Ctx) error {
	slog.Debug("RenderMediaSection handler called")
	base, err := h.service.ResolveBasePath(c.UserContext())
	if err != nil {
		return err
	}
	categories := make([]categoryView, 0, len(media.Categories))
	for _, category := range media.Categories {
		categories = append(categories, h.viewOf(c, category.String()))
	}
	return c.Render("main", fiber.Map{
		"Title":         "Media",
		"Section":       "media",
		"AppIdentifier": h.configManager.Get().AppIdentifier,
		"BasePath":      base,
		"Categories":    categories,
	})
}

// GetCategoryCard renders the file list of a single category as an HTML
// fragment for embedding in the host UI.
func (h *Handler) GetCategoryCard(c *fiber.Ctx) error {
	slog.Debug("GetCategoryCard handler called", "category", c.Params("category"))
	return c.Render("partials/category", h.viewOf(c, c.Params("category")))
}
