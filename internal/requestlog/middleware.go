// Package requestlog is Echo middleware that emits one structured
// completion event per request: method, path, status, elapsed time,
// request id, captured request body, and filtered headers. Handlers can
// attach extra properties to the event through the request's
// Diagnostics handle (see From).
package requestlog

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/valyala/fasttemplate"
)

// Middleware returns the request completion logging middleware with
// default configuration.
func Middleware() echo.MiddlewareFunc {
	return MiddlewareWithConfig(Config{})
}

// MiddlewareWithConfig returns the middleware for the given config.
// It panics on a malformed message template; configuration problems must
// surface at registration, before the server takes traffic.
func MiddlewareWithConfig(cfg Config) echo.MiddlewareFunc {
	if cfg.MessageTemplate == "" {
		cfg.MessageTemplate = DefaultMessageTemplate
	}
	if cfg.LevelSelector == nil {
		cfg.LevelSelector = DefaultLevelSelector
	}
	if cfg.BodyChunkSize <= 0 {
		cfg.BodyChunkSize = DefaultBodyChunkSize
	}

	tmpl, err := fasttemplate.NewTemplate(cfg.MessageTemplate, "{", "}")
	if err != nil {
		panic("requestlog: invalid message template: " + err.Error())
	}

	logger := log.With().Str("component", "requestlog").Logger()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	completion := &completionLogger{
		logger:   logger,
		template: tmpl,
		selector: cfg.LevelSelector,
		enricher: cfg.Enricher,
		headers:  newHeaderFilter(cfg.Headers),
	}

	ignored := make(map[string]struct{}, len(cfg.IgnoredPaths))
	for _, p := range cfg.IgnoredPaths {
		ignored[p] = struct{}{}
	}
	chunkSize := cfg.BodyChunkSize

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			if _, skip := ignored[effectivePath(c.Request())]; skip {
				return next(c)
			}

			d := newDiagnostics()
			c.Set(diagnosticsKey, d)
			defer d.Release()

			body, err := captureBody(c.Request(), chunkSize)
			if err != nil {
				completion.log(c, d, http.StatusInternalServerError, elapsedMs(start), err)
				return err
			}
			d.Set(BodyKey, body)

			if err := next(c); err != nil {
				completion.log(c, d, http.StatusInternalServerError, elapsedMs(start), err)
				return err
			}

			completion.log(c, d, c.Response().Status, elapsedMs(start), nil)
			return nil
		}
	}
}

func elapsedMs(start time.Time) float64 {
	return float64(time.Since(start)) / float64(time.Millisecond)
}

// effectivePath prefers the raw request target over the normalized URL
// path, so the logged path matches what the client actually sent.
func effectivePath(r *http.Request) string {
	if r.RequestURI != "" {
		return r.RequestURI
	}
	return r.URL.Path
}

// requestID returns the request's trace identifier: the X-Request-ID
// set by the RequestID middleware on the response, else the one the
// client sent, else a fresh UUID.
func requestID(c echo.Context) string {
	id := c.Response().Header().Get(echo.HeaderXRequestID)
	if id == "" {
		id = c.Request().Header.Get(echo.HeaderXRequestID)
	}
	if id == "" {
		id = uuid.NewString()
	}
	return id
}
