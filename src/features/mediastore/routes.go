package mediastore

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the routes for the media store feature.
func RegisterRoutes(app *fiber.App, service *Service) {
	handler := NewHandler(service)

	api := app.Group("/api/media")
	api.Post("/import", handler.ImportFile)
	api.Get("/base", handler.GetBasePath)
	api.Get("/extensions", handler.GetExtensions)
	api.Get("/:category", handler.ListFiles)
	api.Get("/:category/:filename/path", handler.GetFilePath)
	api.Delete("/:category/:filename", handler.DeleteFile)

	app.Get(AssetPrefix+"/:category/:filename", handler.ServeAsset)
}
