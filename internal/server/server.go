package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/hashicorp/go-hclog"

	"github.com/ytget/ytfetch/internal/config"
	"github.com/ytget/ytfetch/internal/download"
	"github.com/ytget/ytfetch/internal/muxer"
	"github.com/ytget/ytfetch/internal/platform"
	"github.com/ytget/ytfetch/internal/session"
)

// shutdownTimeout bounds graceful shutdown
const shutdownTimeout = 10 * time.Second

// Server wires the HTTP API to the download service
type Server struct {
	cfg       *config.ServerConfig
	downloads download.Downloader
	sessions  *session.Registry
	workspace *platform.Workspace
	probe     *muxer.Probe
	logger    hclog.Logger

	upgrader websocket.Upgrader
	router   *gin.Engine

	// customDir resolves the folder used when use_custom_folder is set
	customDir func(name string) (string, error)
}

// Options holds the collaborators of a Server
type Options struct {
	Config    *config.ServerConfig
	Downloads download.Downloader
	Sessions  *session.Registry
	Workspace *platform.Workspace
	Probe     *muxer.Probe
	Logger    hclog.Logger
}

// New builds a server and its routes
func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	s := &Server{
		cfg:       opts.Config,
		downloads: opts.Downloads,
		sessions:  opts.Sessions,
		workspace: opts.Workspace,
		probe:     opts.Probe,
		logger:    logger.Named("http"),
		upgrader:  newUpgrader(opts.Config.AllowedOrigins),
		customDir: platform.GetCustomDownloadsDir,
	}
	s.router = s.routes()
	return s
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.logger))

	r.GET("/healthz", s.handleHealth)
	r.GET("/ws/progress/:client_id", s.handleProgressSocket)

	api := r.Group("/api")
	{
		api.POST("/info", s.handleInfo)
		api.POST("/download", s.handleDownload)
		api.GET("/tasks", s.handleListTasks)
		api.GET("/tasks/:id", s.handleGetTask)
	}
	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	s.sessions.CloseAll()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}

// requestLogger logs each request through hclog
func requestLogger(logger hclog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		args := []any{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"took", time.Since(start),
		}
		if len(c.Errors) > 0 {
			args = append(args, "error", c.Errors.Last().Err)
		}

		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			logger.Error("request failed", args...)
		case c.Writer.Status() >= http.StatusBadRequest:
			logger.Warn("request rejected", args...)
		default:
			logger.Debug("request served", args...)
		}
	}
}
