// Package logging builds the process-wide zerolog logger and holds the
// canonical field names shared across the service.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Canonical field names for service-level log events.
const (
	FieldService   = "service"
	FieldComponent = "component"
	FieldEnv       = "env"
)

// Config selects the level and output format of the process logger.
type Config struct {
	Level  string `koanf:"level" validate:"required"`  // trace, debug, info, warn, error
	Format string `koanf:"format" validate:"required"` // json or console
}

// New builds the process logger and installs it as the zerolog global so
// package-level log calls share the same sink and level.
func New(cfg Config, service, env string) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return zerolog.Logger{}, err
	}

	var out io.Writer = os.Stderr
	if strings.EqualFold(cfg.Format, "console") {
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	logger := zerolog.New(out).Level(level).With().
		Timestamp().
		Str(FieldService, service).
		Str(FieldEnv, env).
		Logger()
	log.Logger = logger
	return logger, nil
}
