package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Format represents logger output format.
type Format string

const (
	// FormatJSON outputs structured logs for log aggregation systems.
	FormatJSON Format = "json"
	// FormatText outputs human-readable logs for local runs.
	FormatText Format = "text"
)

// Environment names accepted by WithEnvironment.
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// Option configures logger creation.
type Option func(*config)

func WithLevel(l slog.Level) Option {
	return func(c *config) { c.level = l }
}

// WithFormat sets output format.
// Panics for invalid formats so misconfiguration fails at startup.
func WithFormat(f Format) Option {
	return func(c *config) {
		switch f {
		case FormatJSON, FormatText:
			c.format = f
		default:
			panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
		}
	}
}

func WithTextFormatter() Option {
	return func(c *config) {
		c.format = FormatText
	}
}

func WithJSONFormatter() Option {
	return func(c *config) {
		c.format = FormatJSON
	}
}

// WithOutput sets custom output destination, ignoring nil writers.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithAttr adds static attributes to every log record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) {
		if len(attrs) > 0 {
			c.attrs = append(c.attrs, attrs...)
		}
	}
}

// WithDevelopment configures text output at debug level.
func WithDevelopment(service string) Option {
	return withPreset(service, EnvDevelopment, slog.LevelDebug, FormatText)
}

// WithStaging configures JSON output at info level.
func WithStaging(service string) Option {
	return withPreset(service, EnvStaging, slog.LevelInfo, FormatJSON)
}

// WithProduction configures JSON output at info level.
func WithProduction(service string) Option {
	return withPreset(service, EnvProduction, slog.LevelInfo, FormatJSON)
}

// WithEnvironment picks a preset by environment name. Unknown names fall
// back to development.
func WithEnvironment(env string, service string) Option {
	return func(c *config) {
		switch env {
		case EnvProduction, "prod":
			WithProduction(service)(c)
		case EnvStaging, "stage":
			WithStaging(service)(c)
		default:
			WithDevelopment(service)(c)
		}
	}
}

func withPreset(service, env string, level slog.Level, format Format) Option {
	return func(c *config) {
		if service == "" {
			return
		}
		c.level = level
		c.format = format
		c.attrs = append(c.attrs,
			slog.String("service", service),
			slog.String("env", env),
		)
	}
}

func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}

type config struct {
	level  slog.Level
	format Format
	output io.Writer
	attrs  []slog.Attr
}

// defaultConfig: JSON format with INFO level on stdout.
func defaultConfig() *config {
	return &config{
		level:  slog.LevelInfo,
		format: FormatJSON,
		output: os.Stdout,
	}
}

// New creates a configured slog.Logger.
func New(opts ...Option) *slog.Logger {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := &slog.HandlerOptions{Level: cfg.level}

	var handler slog.Handler
	if cfg.format == FormatText {
		handler = slog.NewTextHandler(cfg.output, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(cfg.output, handlerOpts)
	}

	if len(cfg.attrs) > 0 {
		handler = handler.WithAttrs(cfg.attrs)
	}

	return slog.New(handler)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
