package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/parsernode/internal/ctxlog"
)

// App encapsulates the checker's dependencies and configuration.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	parser *hclparse.Parser
}

// NewApp is the constructor for the application. It returns a fully
// initialized App instance with its own isolated logger and HCL parser.
func NewApp(outW io.Writer, config *Config) *App {
	logger := newLogger(config.LogLevel, config.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: config,
		parser: hclparse.NewParser(),
	}
}

// withLogger returns ctx carrying the application's logger.
func (a *App) withLogger(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}
