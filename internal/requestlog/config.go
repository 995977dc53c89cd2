package requestlog

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// DefaultMessageTemplate is the completion message rendered when no
// template is configured.
const DefaultMessageTemplate = "HTTP {RequestMethod} {RequestPath} responded {StatusCode} in {Elapsed:0.0000} ms"

// DefaultBodyChunkSize is the read size used when draining the request
// body into the capture buffer.
const DefaultBodyChunkSize = 4096

// LevelSelector picks the level for a completion event. elapsed is in
// milliseconds; err is the error returned by the downstream handler, or
// nil on success.
type LevelSelector func(c echo.Context, elapsed float64, err error) zerolog.Level

// Enricher adds last-minute properties to the diagnostics right before
// the completion event is finalized.
type Enricher func(d *Diagnostics, c echo.Context)

// HeaderConfig controls which request headers are attached to the
// completion event. Include and Exclude hold header names as sent on the
// wire (matching is canonical, e.g. "x-custom" matches "X-Custom").
type HeaderConfig struct {
	// LogAll attaches every header not explicitly excluded.
	LogAll bool
	// Prefix is prepended to each header name to build the property name.
	Prefix string
	// Include lists headers to attach even when LogAll is false.
	Include []string
	// Exclude lists headers never attached, regardless of Include or
	// LogAll. Exclude wins over both.
	Exclude []string
}

// Config configures the request completion logging middleware. The zero
// value is usable: Middleware() is MiddlewareWithConfig(Config{}).
// All fields are read once at registration; mutating a Config after
// passing it to MiddlewareWithConfig has no effect.
type Config struct {
	// Logger overrides the event sink. When nil, events go to the package
	// default logger tagged with the component name.
	Logger *zerolog.Logger

	// MessageTemplate is the completion message with {Name} placeholders
	// filled from the event properties. Placeholders may carry a format
	// after a colon, e.g. {Elapsed:0.0000}. Empty selects
	// DefaultMessageTemplate; a malformed template panics at registration.
	MessageTemplate string

	// LevelSelector picks the event level. Nil selects DefaultLevelSelector.
	LevelSelector LevelSelector

	// Enricher, when non-nil, runs right before the diagnostics are
	// finalized so callers can attach request-scoped properties computed
	// late in the request.
	Enricher Enricher

	// IgnoredPaths lists request paths that skip body capture and
	// completion logging entirely. The downstream handler still runs.
	IgnoredPaths []string

	// Headers controls header property attachment.
	Headers HeaderConfig

	// BodyChunkSize is the per-read size for body capture. Zero or
	// negative selects DefaultBodyChunkSize.
	BodyChunkSize int
}

// DefaultLevelSelector is the level policy used when Config.LevelSelector
// is nil: Error when the handler returned an error, Error on 5xx server
// statuses above 499, Info otherwise.
func DefaultLevelSelector(c echo.Context, elapsed float64, err error) zerolog.Level {
	if err != nil {
		return zerolog.ErrorLevel
	}
	if c.Response().Status > 499 {
		return zerolog.ErrorLevel
	}
	return zerolog.InfoLevel
}
