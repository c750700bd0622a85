package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handlers groups the REST handlers mounted by NewRouter.
type Handlers struct {
	Auth    *AuthHandler
	Users   *UserHandler
	Domains *DomainHandler
	Sports  *SportsHandler
	Topics  *TopicHandler
	Digest  *DigestHandler
	Health  *HealthHandler
}

// RouterOptions carries the router-level middleware. Global middleware runs
// for every request, API middleware only under /api, and Login guards the
// login endpoint.
type RouterOptions struct {
	Global []func(http.Handler) http.Handler
	API    []func(http.Handler) http.Handler
	Login  []func(http.Handler) http.Handler
}

// NewRouter builds the HTTP routing tree. Role and session guards live in the
// services, so every route is mounted here without per-route auth.
func NewRouter(h Handlers, opts RouterOptions) http.Handler {
	r := chi.NewRouter()
	r.Use(opts.Global...)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health.Health)

		r.Group(func(r chi.Router) {
			r.Use(opts.API...)

			r.Route("/auth", func(r chi.Router) {
				r.With(opts.Login...).Post("/login", h.Auth.Login)
				r.Get("/me", h.Auth.Me)
			})

			r.Route("/users", func(r chi.Router) {
				r.Get("/", h.Users.List)
				r.Post("/", h.Users.Create)
				r.Get("/roles", h.Users.Roles)
				r.Put("/me/profile", h.Users.UpdateProfile)
				r.Put("/me/smtp-password", h.Users.SetSMTPPassword)
				r.Put("/{id}", h.Users.Update)
				r.Delete("/{id}", h.Users.Delete)
			})

			r.Route("/domains", func(r chi.Router) {
				r.Get("/", h.Domains.List)
				r.Post("/", h.Domains.Create)
				r.Get("/export", h.Domains.Export)
				r.Get("/categories", h.Domains.ListCategories)
				r.Post("/categories", h.Domains.CreateCategory)
				r.Put("/categories/{id}", h.Domains.UpdateCategory)
				r.Delete("/categories/{id}", h.Domains.DeleteCategory)
				r.Put("/{id}", h.Domains.Update)
				r.Delete("/{id}", h.Domains.Delete)
			})

			r.Route("/sports", func(r chi.Router) {
				r.Post("/events/batch", h.Sports.ReplaceBatch)
				r.Get("/events", h.Sports.List)
			})

			r.Route("/topics", func(r chi.Router) {
				r.Get("/auto", h.Topics.ListAuto)
				r.Post("/auto", h.Topics.CreateAuto)
				r.Post("/auto/apply", h.Topics.ApplyAuto)
				r.Put("/auto/{id}", h.Topics.UpdateAuto)
				r.Delete("/auto/{id}", h.Topics.DeleteAuto)

				r.Get("/categories", h.Topics.ListCategories)
				r.Post("/categories", h.Topics.CreateCategory)
				r.Put("/categories/{id}", h.Topics.UpdateCategory)
				r.Delete("/categories/{id}", h.Topics.DeleteCategory)

				r.Get("/added", h.Topics.ListDaily)
				r.Post("/added", h.Topics.CreateDaily)
				r.Put("/added/{id}", h.Topics.UpdateDaily)
				r.Delete("/added/{id}", h.Topics.DeleteDaily)

				r.Post("/digest/preview", h.Digest.Preview)
				r.Post("/send", h.Digest.Send)
				r.Get("/logs", h.Digest.Logs)
			})
		})
	})

	return r
}
