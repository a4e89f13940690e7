package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jbjulia/mccmnc/internal/config"
)

const (
	readHeaderTimeout = 10 * time.Second
	apiPrefix         = "/api/v1"
)

type Server struct {
	srv *http.Server
}

// NewServer builds the HTTP server. registerHandlerFn receives the /api/v1
// route group.
func NewServer(cfg *config.Configuration, registerHandlerFn func(router *gin.RouterGroup)) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("configuration is required")
	}

	switch cfg.Server.ServerMode {
	case "prod":
		gin.SetMode(gin.ReleaseMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	engine := NewEngine(registerHandlerFn)

	return &Server{
		srv: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Server.HTTPPort),
			Handler:           engine,
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}, nil
}

// NewEngine returns the gin engine with middleware and the API routes.
func NewEngine(registerHandlerFn func(router *gin.RouterGroup)) *gin.Engine {
	logger := zap.L().Named("http")

	engine := gin.New()
	engine.Use(
		ginzap.Ginzap(logger, time.RFC3339, true),
		ginzap.RecoveryWithZap(logger, true),
	)
	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	registerHandlerFn(engine.Group(apiPrefix))
	return engine
}

// Start serves until the server is stopped or fails. Requests inherit ctx.
func (s *Server) Start(ctx context.Context) error {
	zap.S().Named("server").Infow("starting server", "addr", s.srv.Addr)

	s.srv.BaseContext = func(net.Listener) context.Context { return ctx }
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop shuts the server down, waiting for in-flight requests.
func (s *Server) Stop(ctx context.Context) error {
	zap.S().Named("server").Info("stopping server")
	return s.srv.Shutdown(ctx)
}
