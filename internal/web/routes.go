package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bookpress/bookpress/internal/web/handlers"
)

func (s *Server) setupRoutes() {
	// Create handlers
	calcHandler := handlers.NewCalcHandler()
	trimSizesHandler := handlers.NewTrimSizesHandler()
	validateHandler := handlers.NewValidateHandler()
	coversHandler := handlers.NewCoversHandler(s.config, s.store)
	depsHandler := handlers.NewDepsHandler(s.config)
	projectsHandler := handlers.NewProjectsHandler(s.store)

	// Health check
	s.router.Get("/api/v1/health", handlers.HealthCheck)

	// API routes
	s.router.Route("/api/v1", func(r chi.Router) {
		// Geometry calculators
		r.Post("/calc/spine", calcHandler.Spine)
		r.Post("/calc/dimensions", calcHandler.Dimensions)
		r.Post("/calc/margins", calcHandler.Margins)

		// Trim size catalog and manuscript validation
		r.Get("/trim-sizes", trimSizesHandler.List)
		r.Post("/validate", validateHandler.Validate)

		// Cover generation
		r.Post("/covers", coversHandler.Create)

		// External tool availability
		r.Get("/dependencies", depsHandler.List)

		// Projects
		r.Get("/projects", projectsHandler.List)
		r.Post("/projects", projectsHandler.Create)
		r.Get("/projects/search", projectsHandler.Search)
		r.Get("/projects/stats", projectsHandler.Stats)
		r.Get("/projects/{id}", projectsHandler.Get)
		r.Put("/projects/{id}", projectsHandler.Update)
		r.Delete("/projects/{id}", projectsHandler.Delete)
		r.Post("/projects/{id}/files", projectsHandler.AddFile)
	})

	// Landing page
	s.router.Get("/", s.serveIndex)
}

// serveIndex serves a minimal landing page pointing at the API.
func (s *Server) serveIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`<!DOCTYPE html>
<html>
<head>
    <title>BookPress</title>
    <style>
        body { font-family: system-ui, sans-serif; display: flex; justify-content: center; align-items: center; height: 100vh; margin: 0; background: #1a1a2e; color: #eee; }
        .container { text-align: center; }
        h1 { color: #00d9ff; }
        p { color: #aaa; }
        a { color: #00d9ff; }
        code { background: #2a2a3e; padding: 2px 8px; border-radius: 4px; }
    </style>
</head>
<body>
    <div class="container">
        <h1>BookPress</h1>
        <p>E-book production API. Try <code>POST /api/v1/calc/spine</code> or <code>GET /api/v1/trim-sizes</code>.</p>
        <p>Health check at <a href="/api/v1/health">/api/v1/health</a></p>
    </div>
</body>
</html>`))
}
