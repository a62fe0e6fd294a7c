package ui

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"sportstat/domain/dataset"
	"sportstat/domain/sport"
	domainstats "sportstat/domain/stats"
	"sportstat/internal"
	"sportstat/internal/analysis"
	"sportstat/internal/errors"
	"sportstat/internal/plotting"
	"sportstat/internal/profiling"
	"sportstat/internal/session"
	"sportstat/ports"
)

// App is the JSON API mounted under /api
type App struct {
	router         *chi.Mux
	sessions       *session.Manager
	renderer       ports.PlotRenderer
	engine         *analysis.Engine
	profiler       *profiling.DataProfiler
	params         domainstats.Params
	validate       *validator.Validate
	uploadMaxBytes int64
	logger         *internal.Logger
}

// AppConfig holds the API dependencies
type AppConfig struct {
	Sessions       *session.Manager
	Renderer       ports.PlotRenderer
	Params         domainstats.Params
	UploadMaxBytes int64
	Logger         *internal.Logger
}

// NewApp creates the API application
func NewApp(cfg AppConfig) *App {
	logger := cfg.Logger
	if logger == nil {
		logger = internal.DefaultLogger
	}
	app := &App{
		router:         chi.NewRouter(),
		sessions:       cfg.Sessions,
		renderer:       cfg.Renderer,
		engine:         analysis.NewEngine(),
		profiler:       profiling.NewDataProfiler(),
		params:         cfg.Params,
		validate:       validator.New(),
		uploadMaxBytes: cfg.UploadMaxBytes,
		logger:         logger.With("component", "api"),
	}
	app.setupMiddleware()
	app.setupRoutes()
	return app
}

// ServeHTTP implements http.Handler
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.ServeHTTP(w, r)
}

func (a *App) setupMiddleware() {
	a.router.Use(middleware.RequestID)
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
}

func (a *App) setupRoutes() {
	a.router.Route("/api", func(r chi.Router) {
		r.Get("/categories", a.handleCategories)
		r.Post("/analyze", a.handleAnalyzeValues)
		r.Post("/sessions", a.handleCreateSession)
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/columns", a.handleColumns)
			r.Post("/analyze", a.handleAnalyzeColumn)
			r.Get("/plots/{kind}", a.handlePlot)
		})
	})
}

type categoryResponse struct {
	Name       string   `json:"name"`
	Attributes []string `json:"attributes"`
}

type sessionResponse struct {
	SessionID string                    `json:"session_id"`
	Source    string                    `json:"source"`
	Rows      int                       `json:"rows"`
	Schema    []dataset.Column          `json:"schema"`
	Numeric   []string                  `json:"numeric_columns"`
	Profiles  []profiling.ColumnProfile `json:"profiles"`
}

type columnsResponse struct {
	Category string   `json:"category"`
	Columns  []string `json:"columns"`
	Warning  string   `json:"warning,omitempty"`
}

type analyzeColumnRequest struct {
	Column string `json:"column" validate:"required"`
}

type analyzeValuesRequest struct {
	Column string    `json:"column"`
	Values []float64 `json:"values" validate:"required"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func (a *App) handleCategories(w http.ResponseWriter, r *http.Request) {
	out := make([]categoryResponse, 0, len(sport.All()))
	for _, c := range sport.All() {
		out = append(out, categoryResponse{Name: c.String(), Attributes: c.Attributes()})
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *App) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	if a.uploadMaxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, a.uploadMaxBytes)
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		a.writeError(w, errors.InvalidInput("multipart field \"file\" is required"))
		return
	}
	defer file.Close()

	sess := a.sessions.Create()
	ds, err := sess.Load(r.Context(), header.Filename, file)
	if err != nil {
		a.sessions.Delete(sess.ID())
		a.writeError(w, err)
		return
	}

	profiles, err := a.profiler.ProfileDataset(ds)
	if err != nil {
		a.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sessionResponse{
		SessionID: sess.ID().String(),
		Source:    ds.Source(),
		Rows:      ds.Len(),
		Schema:    ds.Schema(),
		Numeric:   ds.NumericColumns(),
		Profiles:  profiles,
	})
}

func (a *App) handleColumns(w http.ResponseWriter, r *http.Request) {
	sess, err := a.sessions.Lookup(chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, err)
		return
	}
	label := r.URL.Query().Get("category")
	cols, err := sess.SelectCategory(label)
	resp := columnsResponse{Category: label, Columns: cols}
	if c, perr := sport.Parse(label); perr == nil {
		resp.Category = c.String()
	}
	if err != nil {
		if errors.GetCode(err) != errors.CodeNoApplicableColumns {
			a.writeError(w, err)
			return
		}
		resp.Warning = err.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *App) handleAnalyzeColumn(w http.ResponseWriter, r *http.Request) {
	sess, err := a.sessions.Lookup(chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, err)
		return
	}
	var req analyzeColumnRequest
	if !a.decode(w, r, &req) {
		return
	}
	result, err := sess.Analyze(req.Column)
	if err != nil {
		a.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *App) handleAnalyzeValues(w http.ResponseWriter, r *http.Request) {
	var req analyzeValuesRequest
	if !a.decode(w, r, &req) {
		return
	}
	column := req.Column
	if column == "" {
		column = "values"
	}
	result, err := a.engine.Analyze(analysis.NewSample(column, req.Values), a.params)
	if err != nil {
		a.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *App) handlePlot(w http.ResponseWriter, r *http.Request) {
	sess, err := a.sessions.Lookup(chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, err)
		return
	}
	kind, err := plotting.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		a.writeError(w, errors.InvalidInput(err.Error()))
		return
	}
	plots, err := sess.Plots(r.URL.Query().Get("column"))
	if err != nil {
		a.writeError(w, err)
		return
	}
	var buf bytes.Buffer
	if err := a.renderer.Render(plots, kind, &buf); err != nil {
		a.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (a *App) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		a.writeError(w, errors.InvalidInput("malformed JSON body: "+err.Error()))
		return false
	}
	if err := a.validate.Struct(v); err != nil {
		a.writeError(w, errors.InvalidInput(err.Error()))
		return false
	}
	return true
}

func (a *App) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := errors.HTTPStatus(code)
	if status >= http.StatusInternalServerError {
		a.logger.Error("request failed: %v", err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error(), Code: code})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
