package server

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/akave-ai/reqlog/internal/config"
	"github.com/akave-ai/reqlog/internal/requestlog"
)

// Server holds the Echo app and dependencies.
type Server struct {
	Echo   *echo.Echo
	Config *config.Config
}

// New builds the Echo server with completion logging wired in and
// registers the demo routes.
func New(cfg *config.Config, logger zerolog.Logger) *Server {
	e := echo.New()
	e.HideBanner = true

	// Recover sits inside the completion logger so a handler panic is
	// turned into a 500 response before the completion event records the
	// status. Outside, the panic would unwind past the logger unseen.
	sink := logger.With().Str("component", "requestlog").Logger()
	e.Use(
		middleware.RequestID(),
		requestlog.MiddlewareWithConfig(requestlog.Config{
			Logger:          &sink,
			MessageTemplate: cfg.RequestLog.MessageTemplate,
			IgnoredPaths:    cfg.RequestLog.IgnoredPaths,
			BodyChunkSize:   cfg.RequestLog.BodyChunkSize,
			Headers: requestlog.HeaderConfig{
				LogAll:  cfg.RequestLog.Headers.LogAll,
				Prefix:  cfg.RequestLog.Headers.Prefix,
				Include: cfg.RequestLog.Headers.Include,
				Exclude: cfg.RequestLog.Headers.Exclude,
			},
		}),
		middleware.Recover(),
	)

	e.GET("/health", health)
	e.POST("/echo", echoBody)
	e.GET("/work", work)

	return &Server{Echo: e, Config: cfg}
}

// health answers liveness probes. Probe paths are usually in
// ignored_paths so they do not flood the completion log.
func health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// echoBody returns the request body unchanged. The middleware captured
// the body before this handler ran, so a matching response proves the
// capture is transparent.
func echoBody(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "read body: "+err.Error())
	}
	return c.Blob(http.StatusOK, c.Request().Header.Get(echo.HeaderContentType), body)
}

// work simulates a handler that enriches the completion event and can be
// told to fail (?fail=1) or stall (?delay_ms=N).
func work(c echo.Context) error {
	if ms, err := strconv.Atoi(c.QueryParam("delay_ms")); err == nil && ms > 0 {
		time.Sleep(time.Duration(ms) * time.Millisecond)
	}

	d := requestlog.From(c)
	d.Set("handler", "work")
	d.Set("delayed", c.QueryParam("delay_ms") != "")

	if c.QueryParam("fail") == "1" {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "work failed")
	}
	return c.JSON(http.StatusOK, map[string]string{"result": "done"})
}

// Start starts the HTTP server. Blocks until the context is cancelled or
// the server fails. On context cancel, Shutdown is called.
func (s *Server) Start(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		_ = s.Shutdown(context.Background())
	}()
	addr := ":" + s.Config.Server.Port
	s.Echo.Server.ReadTimeout = time.Duration(s.Config.Server.ReadTimeout) * time.Second
	s.Echo.Server.WriteTimeout = time.Duration(s.Config.Server.WriteTimeout) * time.Second
	s.Echo.Server.IdleTimeout = time.Duration(s.Config.Server.IdleTimeout) * time.Second
	return s.Echo.Start(addr)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.Echo.Shutdown(ctx)
}
