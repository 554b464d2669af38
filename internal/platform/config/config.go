package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// ErrInvalidConfig is wrapped by every configuration error.
var ErrInvalidConfig = errors.New("invalid config")

// Sink names accepted by EDENLOG_SINK.
const (
	SinkSlog    = "slog"
	SinkZap     = "zap"
	SinkJSON    = "json"
	SinkDiscard = "discard"
)

// Log output formats accepted by EDENLOG_LOG_FORMAT.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Version is stamped at build time with -ldflags "-X edenlog/internal/platform/config.Version=...".
var Version = "dev"

// Config captures process level configuration.
type Config struct {
	AdminAddr  string
	Sink       string
	LogLevel   slog.Level
	LogFormat  string
	AppVersion string
	// Trace also records every event on the span carried by its context.
	// Spans come from the global OpenTelemetry tracer provider, which the
	// binary leaves as a no-op; programs embedding the logger install their own.
	Trace bool
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() (Config, error) {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) (Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}

	cfg := Config{
		AdminAddr:  get("EDENLOG_ADMIN_ADDR", ":9464"),
		Sink:       strings.ToLower(get("EDENLOG_SINK", SinkSlog)),
		LogFormat:  strings.ToLower(get("EDENLOG_LOG_FORMAT", FormatJSON)),
		AppVersion: get("EDENLOG_VERSION", Version),
	}

	switch cfg.Sink {
	case SinkSlog, SinkZap, SinkJSON, SinkDiscard:
	default:
		return Config{}, fmt.Errorf("%w: unknown sink %q", ErrInvalidConfig, cfg.Sink)
	}

	switch cfg.LogFormat {
	case FormatJSON, FormatText:
	default:
		return Config{}, fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, cfg.LogFormat)
	}

	trace, err := strconv.ParseBool(get("EDENLOG_TRACE", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("%w: trace: %w", ErrInvalidConfig, err)
	}
	cfg.Trace = trace

	if err := cfg.LogLevel.UnmarshalText([]byte(get("EDENLOG_LOG_LEVEL", "info"))); err != nil {
		return Config{}, fmt.Errorf("%w: log level: %w", ErrInvalidConfig, err)
	}

	return cfg, nil
}
