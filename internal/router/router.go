// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up the HTTP routes and middleware chains for the
// toolindex API. Catalog reads are public; mutations require an
// authenticated, 2FA-verified session.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"toolindex/internal/handlers"
	"toolindex/internal/middleware"
	"toolindex/internal/session"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(
	sessionStore *session.Store,
	categories *handlers.Categories,
	tools *handlers.Tools,
	auth *handlers.Auth,
	sitemap *handlers.Sitemap,
) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(sessionStore))

	// Auth endpoints get a tight limit; catalog mutations a looser one.
	loginLimiter := middleware.NewRateLimiter(10, time.Minute)
	writeLimiter := middleware.NewRateLimiter(60, time.Minute)

	// Health check — no auth.
	r.Get("/healthz", healthHandler)

	r.Get("/sitemap.xml", sitemap.Serve)

	r.Route("/api/v1", func(r chi.Router) {
		// Authentication.
		r.Route("/auth", func(r chi.Router) {
			r.With(loginLimiter.Middleware).Post("/login", auth.Login)
			r.Post("/logout", auth.Logout)

			// 2FA setup and verification need a session but not completed 2FA.
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth)
				r.Get("/2fa/setup", auth.TwoFASetup)
				r.With(loginLimiter.Middleware).Post("/2fa/verify", auth.TwoFAVerify)
			})
		})

		// Categories.
		r.Route("/categories", func(r chi.Router) {
			r.Get("/", categories.List)
			r.Get("/slug/{categorySlug}", categories.GetBySlug)
			r.Get("/{id}", categories.Get)
			r.Get("/{id}/tools", tools.ListByCategory)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth)
				r.Use(middleware.RequireTwoFA)
				r.Use(writeLimiter.Middleware)
				r.Post("/", categories.Create)
				r.Put("/{id}", categories.Update)
				r.Delete("/{id}", categories.Delete)
			})
		})

		// Tools.
		r.Route("/tools", func(r chi.Router) {
			r.Get("/", tools.List)
			r.Get("/{id}", tools.Get)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth)
				r.Use(middleware.RequireTwoFA)
				r.Use(writeLimiter.Middleware)
				r.Post("/", tools.Create)
				r.Put("/{id}", tools.Update)
				r.Delete("/{id}", tools.Delete)
			})
		})

		// Public directory pages by slug.
		r.Route("/dir", func(r chi.Router) {
			r.Get("/{categorySlug}", tools.ListByCategorySlug)
			r.Get("/{categorySlug}/{toolSlug}", tools.GetBySlugs)
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
