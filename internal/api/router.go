package api

import (
	"iss-display-gadget/internal/api/handlers"
	"iss-display-gadget/internal/ports"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Options struct {
	Frames  ports.FrameSource
	Buttons handlers.Presser
	// Nil when observation history is disabled.
	History    ports.ObservationRepository
	CORSOrigin string
	// Empty leaves the button endpoint open.
	JWTSecret string
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
func NewRouter(opts Options) http.Handler {
	frameHandler := &handlers.FrameHandler{Source: opts.Frames}
	obsHandler := &handlers.ObservationHandler{Repo: opts.History}
	buttonHandler := &handlers.ButtonHandler{Panel: opts.Buttons}

	origin := opts.CORSOrigin
	if origin == "" {
		origin = "*"
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(loggingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{origin},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", handlers.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/frame", frameHandler.Get)
		r.Get("/frame.png", frameHandler.PNG)
		r.Get("/observations", obsHandler.List)

		r.Group(func(r chi.Router) {
			if opts.JWTSecret != "" {
				r.Use(requireBearer(opts.JWTSecret))
			}
			r.Post("/buttons/{button}", buttonHandler.Press)
		})
	})

	return r
}
