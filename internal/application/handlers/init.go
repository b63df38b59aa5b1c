// Package handlers contains application use case handlers.
package handlers

import (
	"context"
	"fmt"

	"github.com/ersonp/flight-desk/internal/domain/ports"
	"github.com/ersonp/flight-desk/internal/infrastructure/config"
)

// LogOpener opens the resolution log stored at path.
type LogOpener func(path string) (ports.ResolutionLog, error)

// InitHandler handles workspace initialization.
type InitHandler struct {
	openLog LogOpener
}

// NewInitHandler creates a new init handler. A nil opener skips creating
// the resolution log.
func NewInitHandler(openLog LogOpener) *InitHandler {
	return &InitHandler{
		openLog: openLog,
	}
}

// InitResult contains the result of initialization.
type InitResult struct {
	ConfigPath   string
	DatabasePath string
}

// Handle writes the default config and creates the resolution log schema.
func (h *InitHandler) Handle(ctx context.Context, basePath string) (*InitResult, error) {
	if config.Exists(basePath) {
		return nil, fmt.Errorf("flight already initialized in %s", basePath)
	}

	if err := config.WriteDefault(basePath); err != nil {
		return nil, fmt.Errorf("writing default config: %w", err)
	}

	cfg, err := config.Load(basePath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	dbPath := cfg.SQLitePath(basePath)
	if h.openLog != nil {
		resLog, err := h.openLog(dbPath)
		if err != nil {
			return nil, fmt.Errorf("opening resolution log: %w", err)
		}
		defer resLog.Close()

		if err := resLog.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("creating resolution log schema: %w", err)
		}
	}

	return &InitResult{
		ConfigPath:   config.ConfigFilePath(basePath),
		DatabasePath: dbPath,
	}, nil
}
