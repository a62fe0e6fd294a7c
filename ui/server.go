// Package ui serves the browser shell (gin) and the JSON API (chi).
package ui

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	domainstats "sportstat/domain/stats"
	"sportstat/internal"
	"sportstat/internal/config"
	"sportstat/internal/report"
	"sportstat/internal/session"
	"sportstat/ports"
)

//go:embed templates/*.html static/*
var embeddedFiles embed.FS

// Server is the web server for the browser shell
type Server struct {
	router    *gin.Engine
	templates *template.Template
	sessions  *session.Manager
	renderer  ports.PlotRenderer
	api       http.Handler
	cfg       *config.Config
	logger    *internal.Logger
}

// ServerConfig holds the server dependencies
type ServerConfig struct {
	Config   *config.Config
	Sessions *session.Manager
	Renderer ports.PlotRenderer
	Params   domainstats.Params
	Logger   *internal.Logger
}

// NewServer creates the web server with the JSON API mounted under /api
func NewServer(sc ServerConfig) (*Server, error) {
	logger := sc.Logger
	if logger == nil {
		logger = internal.DefaultLogger
	}
	gin.SetMode(sc.Config.Server.GinMode)

	funcMap := template.FuncMap{
		"decision": report.DecisionText,
		"pct":      func(v float64) string { return fmt.Sprintf("%g%%", v*100) },
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	s := &Server{
		router:    gin.New(),
		templates: templates,
		sessions:  sc.Sessions,
		renderer:  sc.Renderer,
		cfg:       sc.Config,
		logger:    logger.With("component", "ui"),
	}
	s.api = NewApp(AppConfig{
		Sessions:       sc.Sessions,
		Renderer:       sc.Renderer,
		Params:         sc.Params,
		UploadMaxBytes: sc.Config.Server.UploadMaxBytes,
		Logger:         logger,
	})

	s.setupMiddleware()
	s.setupRoutes()
	return s, nil
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.GET("/healthz", s.handleHealth)
	s.router.Any("/api/*path", gin.WrapH(s.api))

	pages := s.router.Group("/", s.sessionMiddleware())
	pages.GET("/", s.handleIndex)
	pages.POST("/upload", s.handleUpload)
	pages.POST("/category", s.handleCategory)
	pages.POST("/analyze", s.handleAnalyze)
	pages.GET("/plots/:kind", s.handlePlot)
	pages.GET("/export.xlsx", s.handleExport)
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// HTTPServer builds the http.Server listening on the configured port
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:    ":" + s.cfg.Server.Port,
		Handler: s.router,
	}
}

// preload loads the configured DATA_FILE into a freshly created session
func (s *Server) preload(ctx context.Context, sess *session.Session) {
	path := s.cfg.Data.File
	if path == "" {
		return
	}
	f, err := os.Open(path)
	if err != nil {
		s.logger.Warn("failed to open %s: %v", path, err)
		return
	}
	defer f.Close()
	if _, err := sess.Load(ctx, path, f); err != nil {
		s.logger.Warn("failed to preload %s: %v", path, err)
	}
}
