package ui

import (
	"embed"
	"io/fs"
	"net/http"
	"strings"

	"github.com/contre95/mediastore/src/media"
	"github.com/gofiber/template/html/v2"
)

//go:embed views
var views embed.FS

// NewEngine returns the template engine for the embedded views.
func NewEngine(debug bool) *html.Engine {
	sub, err := fs.Sub(views, "views")
	if err != nil {
		panic(err)
	}
	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.Debug(debug)
	engine.AddFunc("join", strings.Join)
	engine.AddFunc("count", func(files []media.MediaFile) int {
		return len(files)
	})
	return engine
}
