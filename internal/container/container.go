package container

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/sync/errgroup"

	"sportstat/adapters/loader"
	"sportstat/adapters/loader/coercer"
	"sportstat/domain/core"
	domainstats "sportstat/domain/stats"
	"sportstat/internal"
	"sportstat/internal/config"
	"sportstat/internal/plotting"
	"sportstat/internal/session"
	"sportstat/ui"
)

// Container holds all application dependencies and manages their lifecycle
type Container struct {
	Config *config.Config
	Logger *internal.Logger
	Params domainstats.Params

	Loader   *loader.DataReader
	Renderer *plotting.Renderer
	Sessions *session.Manager
	Server   *ui.Server
}

// New creates a new dependency injection container
func New(cfg *config.Config, logger *internal.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		logger = internal.NewLogger(internal.ParseLogLevel(cfg.Log.Level))
	}

	c := &Container{
		Config: cfg,
		Logger: logger,
		Params: domainstats.DefaultParams(),
	}

	cc := coercer.DefaultCoercionConfig()
	cc.Enabled = cfg.Data.CoerceText
	cc.NumericThreshold = cfg.Data.NumericThreshold
	c.Loader = loader.NewDataReader(cc, logger.With("component", "loader"))
	c.Renderer = plotting.NewRenderer(cfg.Plot.WidthCm, cfg.Plot.HeightCm)
	c.Sessions = session.NewManager(cfg.Session.TTL, c.newSession, logger.With("component", "sessions"))

	server, err := ui.NewServer(ui.ServerConfig{
		Config:   cfg,
		Sessions: c.Sessions,
		Renderer: c.Renderer,
		Params:   c.Params,
		Logger:   logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create server: %w", err)
	}
	c.Server = server

	return c, nil
}

func (c *Container) newSession(id core.SessionID) *session.Session {
	return session.New(id, c.Loader, c.Params, c.Logger)
}

// Run serves HTTP and sweeps idle sessions until ctx is cancelled, then
// shuts the server down within the configured timeout
func (c *Container) Run(ctx context.Context) error {
	srv := c.Server.HTTPServer()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		c.Logger.Info("listening on http://localhost%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return c.Sessions.Run(ctx)
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), c.Config.Server.ShutdownTimeout)
		defer cancel()
		c.Logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
