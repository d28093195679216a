// Package httpapp exposes the booking and query services as a JSON API.
package httpapp

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/cesargomez89/fyyur/internal/app"
	"github.com/cesargomez89/fyyur/internal/logger"
)

type Handler struct {
	App    *app.App
	Logger *logger.Logger
}

func NewHandler(a *app.App, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Default()
	}
	return &Handler{App: a, Logger: log.WithComponent("http")}
}

// Router returns the API router with request logging and panic recovery.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(h.requestLogger)
	r.Use(middleware.Recoverer)
	h.RegisterRoutes(r)
	return r
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Home)

	r.Route("/venues", func(r chi.Router) {
		r.Get("/", h.ListVenues)
		r.Post("/", h.CreateVenue)
		r.Post("/search", h.SearchVenues)
		r.Get("/{id}", h.GetVenue)
		r.Put("/{id}", h.UpdateVenue)
		r.Delete("/{id}", h.DeleteVenue)
	})

	r.Route("/artists", func(r chi.Router) {
		r.Get("/", h.ListArtists)
		r.Post("/", h.CreateArtist)
		r.Post("/search", h.SearchArtists)
		r.Get("/{id}", h.GetArtist)
		r.Put("/{id}", h.UpdateArtist)
		r.Delete("/{id}", h.DeleteArtist)
		r.Post("/{id}/availability", h.AddAvailability)
		r.Post("/{id}/albums", h.AddAlbum)
	})

	r.Put("/availability/{id}", h.UpdateAvailability)
	r.Delete("/availability/{id}", h.DeleteAvailability)

	r.Put("/albums/{id}", h.UpdateAlbum)
	r.Delete("/albums/{id}", h.DeleteAlbum)
	r.Post("/albums/{id}/songs", h.AddSong)
	r.Put("/songs/{id}", h.UpdateSong)
	r.Delete("/songs/{id}", h.DeleteSong)

	r.Route("/shows", func(r chi.Router) {
		r.Get("/", h.ListShows)
		r.Post("/", h.CreateShow)
		r.Put("/{id}", h.RescheduleShow)
		r.Delete("/{id}", h.CancelShow)
	})
}

func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.Logger.Debug("Request served",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
