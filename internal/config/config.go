package config

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"

	"github.com/akave-ai/reqlog/internal/logging"
)

type Config struct {
	Primary    Primary        `koanf:"primary" validate:"required"`
	Server     ServerConfig   `koanf:"server" validate:"required"`
	Logging    logging.Config `koanf:"logging" validate:"required"`
	RequestLog RequestLog     `koanf:"requestlog"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Port         string `koanf:"port" validate:"required"`
	ReadTimeout  int    `koanf:"read_timeout" validate:"required"`
	WriteTimeout int    `koanf:"write_timeout" validate:"required"`
	IdleTimeout  int    `koanf:"idle_timeout" validate:"required"`
}

// RequestLog configures the completion logging middleware. Zero values
// fall back to the middleware defaults.
type RequestLog struct {
	MessageTemplate string        `koanf:"message_template"`
	IgnoredPaths    []string      `koanf:"ignored_paths"`
	BodyChunkSize   int           `koanf:"body_chunk_size"`
	Headers         HeaderLogging `koanf:"headers"`
}

type HeaderLogging struct {
	LogAll  bool     `koanf:"log_all"`
	Prefix  string   `koanf:"prefix"`
	Include []string `koanf:"include"`
	Exclude []string `koanf:"exclude"`
}

// LoadConfig loads the configuration from environment variables using koanf.
func LoadConfig() (mainConfig *Config, err error) {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	k := koanf.New(".")
	err = k.Load(env.Provider("REQLOG_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "REQLOG_"))
	}), nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not load initial env variables")
	}

	mainConfig = &Config{}
	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not unmarshal mainconfig")
	}

	validate := validator.New()
	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not validate the struct")
	}

	return
}
