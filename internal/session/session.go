// Package session holds the per-user analysis state shared by the terminal
// and browser shells.
package session

import (
	"context"
	"io"
	"sync"
	"time"

	"sportstat/domain/core"
	"sportstat/domain/dataset"
	"sportstat/domain/sport"
	domainstats "sportstat/domain/stats"
	"sportstat/internal"
	"sportstat/internal/analysis"
	"sportstat/internal/plotting"
	"sportstat/ports"
)

// Session owns one loaded dataset, the chosen category and its selectable
// columns, and the latest analysis. A new load replaces the dataset
// wholesale; nothing mutates a dataset after it is stored.
type Session struct {
	id     core.SessionID
	loader ports.DatasetLoader
	engine *analysis.Engine
	params domainstats.Params
	logger *internal.Logger

	mu        sync.RWMutex
	dataset   *dataset.Dataset
	category  sport.Category
	columns   []string
	latest    *domainstats.AnalysisResult
	sample    analysis.Sample
	createdAt time.Time
	lastSeen  time.Time
}

// View is a read-only copy of the session state for rendering
type View struct {
	ID         core.SessionID
	Source     string
	Rows       int
	Loaded     bool
	Category   sport.Category
	Columns    []string
	Latest     *domainstats.AnalysisResult
	Categories []sport.Category
}

// New creates an empty session
func New(id core.SessionID, loader ports.DatasetLoader, params domainstats.Params, logger *internal.Logger) *Session {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	now := time.Now()
	return &Session{
		id:        id,
		loader:    loader,
		engine:    analysis.NewEngine(),
		params:    params,
		logger:    logger.With("session", id.String()),
		columns:   []string{},
		createdAt: now,
		lastSeen:  now,
	}
}

// ID returns the session identifier
func (s *Session) ID() core.SessionID { return s.id }

// Load reads a tabular file and makes it the current dataset. On failure the
// previous dataset stays in place. A previously chosen category is
// re-applied to the new dataset.
func (s *Session) Load(ctx context.Context, name string, r io.Reader) (*dataset.Dataset, error) {
	ds, err := s.loader.Load(ctx, name, r)
	if err != nil {
		s.logger.Warn("load of %s failed: %v", name, err)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.dataset = ds
	s.latest = nil
	s.sample = analysis.Sample{}
	s.columns = []string{}
	s.touch()
	s.logger.Info("loaded %s: %d rows, %d columns", name, ds.Len(), len(ds.Names()))

	if s.category != "" {
		cols, err := analysis.SelectColumns(ds, s.category)
		s.columns = cols
		if err != nil {
			return ds, err
		}
	}
	return ds, nil
}

// SelectCategory resolves label and lists the analyzable columns for it. An
// unsupported label leaves the current category unchanged.
func (s *Session) SelectCategory(label string) ([]string, error) {
	category, err := sport.Parse(label)
	if err != nil {
		return []string{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.category = category
	s.columns = []string{}
	if s.dataset == nil {
		return []string{}, core.ErrNoDatasetLoaded
	}

	cols, err := analysis.SelectColumns(s.dataset, category)
	s.columns = cols
	if err != nil {
		return copyStrings(cols), err
	}
	return copyStrings(cols), nil
}

// Analyze cleans column and runs the statistics engine on it
func (s *Session) Analyze(column string) (*domainstats.AnalysisResult, error) {
	s.mu.RLock()
	ds := s.dataset
	s.mu.RUnlock()
	if ds == nil {
		return nil, core.ErrNoDatasetLoaded
	}

	sample, err := analysis.Clean(ds, column)
	if err != nil {
		return nil, err
	}
	result, err := s.engine.Analyze(sample, s.params)
	if err != nil {
		s.logger.Debug("analysis of %s failed: %v", column, err)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// the dataset may have been replaced while computing
	if s.dataset == ds {
		s.latest = result
		s.sample = sample
	}
	s.touch()
	return result, nil
}

// Sample returns the cleaned values of column
func (s *Session) Sample(column string) (analysis.Sample, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.dataset == nil {
		return analysis.Sample{}, core.ErrNoDatasetLoaded
	}
	if s.latest != nil && s.sample.Column() == column {
		return s.sample, nil
	}
	return analysis.Clean(s.dataset, column)
}

// Plots builds the plot specifications for column
func (s *Session) Plots(column string) (plotting.Plots, error) {
	sample, err := s.Sample(column)
	if err != nil {
		return plotting.Plots{}, err
	}
	if sample.Len() == 0 {
		return plotting.Plots{}, core.NewInsufficientDataError(column, 0)
	}
	return plotting.Build(sample, column), nil
}

// Latest returns the most recent successful result, or nil
func (s *Session) Latest() *domainstats.AnalysisResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}

// Dataset returns the current dataset, or nil
func (s *Session) Dataset() *dataset.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dataset
}

// View returns a snapshot of the session state
func (s *Session) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v := View{
		ID:         s.id,
		Category:   s.category,
		Columns:    copyStrings(s.columns),
		Latest:     s.latest,
		Categories: sport.All(),
	}
	if s.dataset != nil {
		v.Loaded = true
		v.Source = s.dataset.Source()
		v.Rows = s.dataset.Len()
	}
	return v
}

// HasColumn reports whether column is one of the selectable columns
func (s *Session) HasColumn(column string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.columns {
		if c == column {
			return true
		}
	}
	return false
}

func (s *Session) lastActivity() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastSeen
}

// touch must be called with mu held for writing
func (s *Session) touch() {
	s.lastSeen = time.Now()
}

func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
