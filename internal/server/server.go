// Package server exposes the README viewer over HTTP: the viewer page and
// its assets, a JSON API, and a websocket endpoint driving live sessions.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/zopdev/chartdoc/internal/attempts"
	"github.com/zopdev/chartdoc/internal/viewer"
)

// Config holds server configuration.
type Config struct {
	Port     int
	AllowAll bool // allow all CORS origins (dev mode)
}

// Server serves README pages for chart identifiers.
type Server struct {
	cfg        Config
	factory    viewer.Factory
	attempts   *attempts.Store
	router     chi.Router
	httpServer *http.Server

	mu   sync.Mutex
	live map[*liveConn]struct{}
}

// New creates a server. store may be nil, in which case the attempt log
// endpoints are not mounted.
func New(cfg Config, factory viewer.Factory, store *attempts.Store) *Server {
	s := &Server{
		cfg:      cfg,
		factory:  factory,
		attempts: store,
		live:     make(map[*liveConn]struct{}),
	}

	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Websocket sessions live as long as the page, so they stay outside
	// the request timeout.
	r.Get("/ws/readme", s.handleLive)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		r.Get("/readme", s.handlePage)
		r.Get("/assets/viewer.css", serveAsset("text/css; charset=utf-8", cssContent))
		r.Get("/assets/viewer.js", serveAsset("application/javascript; charset=utf-8", jsContent))

		r.Route("/api/readme/{id}", func(r chi.Router) {
			r.Get("/", s.handleReadme)
			r.Get("/toc", s.handleTOC)
		})

		if s.attempts != nil {
			attempts.RegisterRoutes(r, s.attempts)
		}
	})

	return r
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("chartdoc server listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server. Websocket sessions are
// hijacked connections that http.Server does not track, so they are closed
// here.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	for lc := range s.live {
		lc.close()
	}
	s.mu.Unlock()

	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

func (s *Server) track(lc *liveConn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.live[lc] = struct{}{}
}

func (s *Server) untrack(lc *liveConn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.live, lc)
}
