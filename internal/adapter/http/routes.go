package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// Register mounts all routes. The builder API sits behind the access gate;
// the contact and access endpoints are rate limited.
func (h *Handler) Register(app *fiber.App, pages *Pages) {
	app.Static("/static", "./static")

	app.Get("/", pages.Home)
	app.Get("/resume-builder", pages.ResumeBuilder)
	app.Get("/travel-blogs", pages.TravelBlogs)

	api := app.Group("/api")

	guarded := limiter.New(limiter.Config{
		Max:        20,
		Expiration: time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
	})
	api.Post("/access", guarded, h.Access)
	api.Post("/contact", guarded, h.Contact)

	api.Get("/nav/sections", h.NavSections)

	api.Get("/books/:slug", h.GetBook)
	api.Post("/books/:slug/open", h.OpenBook)
	api.Post("/books/:slug/close", h.CloseBook)
	api.Post("/books/:slug/next", h.NextPage)
	api.Post("/books/:slug/previous", h.PreviousPage)

	builder := api.Group("/", h.RequireAccess)
	builder.Get("/resume", h.GetResume)
	builder.Put("/resume", h.ReplaceResume)
	builder.Post("/resume/edits", h.Edit)
	builder.Post("/resume/entries", h.AddEntry)
	builder.Delete("/resume/entries/:list/:id", h.RemoveEntry)
	builder.Post("/resume/export", h.StartExport)
	builder.Get("/exports/:id", h.GetExport)
	builder.Get("/exports/:id/download", h.DownloadExport)
}
