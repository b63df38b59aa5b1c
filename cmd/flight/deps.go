package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ersonp/flight-desk/internal/application/handlers"
	"github.com/ersonp/flight-desk/internal/domain/catalog"
	"github.com/ersonp/flight-desk/internal/domain/ports"
	"github.com/ersonp/flight-desk/internal/domain/services"
	"github.com/ersonp/flight-desk/internal/infrastructure/config"
	llm "github.com/ersonp/flight-desk/internal/infrastructure/llm/openai"
	"github.com/ersonp/flight-desk/internal/infrastructure/observability"
	"github.com/ersonp/flight-desk/internal/infrastructure/relationaldb/sqlite"
)

// Deps holds high-level dependencies for commands.
// Only handlers are exposed - services and repositories are internal.
type Deps struct {
	Config         *config.Config
	Logger         zerolog.Logger
	Catalog        *catalog.Catalog
	ResolveHandler *handlers.ResolveHandler
	AuditHandler   *handlers.AuditHandler
	// ChatHandler is nil when no API key is configured.
	ChatHandler *handlers.ChatHandler
}

// withDeps loads config and builds dependencies, then calls the provided function.
// It handles cleanup automatically.
func withDeps(ctx context.Context, fn func(*Deps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.LoadOrDefault(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	level := cfg.Log.Level
	if globalLogLevel != "" {
		level = globalLogLevel
	}
	logger, err := observability.NewLogger(level, cfg.Log.Format)
	if err != nil {
		return err
	}
	log.Logger = logger

	c, err := handlers.NewCatalogHandler().Load(cfg.CatalogPath(cwd))
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	// The resolution log is optional; resolving still works without it.
	var resLog ports.ResolutionLog
	repo, err := openResolutionLog(ctx, cfg.SQLitePath(cwd))
	if err != nil {
		logger.Warn().Err(err).Msg("resolution log unavailable")
	} else {
		defer repo.Close()
		resLog = repo
	}

	resolver := services.NewResolver(c, cfg.Resolver.Options())
	resolveHandler := handlers.NewResolveHandler(resolver, resLog, logger)

	deps := &Deps{
		Config:         cfg,
		Logger:         logger,
		Catalog:        c,
		ResolveHandler: resolveHandler,
		AuditHandler:   handlers.NewAuditHandler(resLog),
	}

	if cfg.LLM.APIKey != "" {
		llmClient, err := llm.NewClient(cfg.LLM)
		if err != nil {
			return fmt.Errorf("creating llm client: %w", err)
		}
		tools := services.NewToolService(c, resolveHandler.ResolveFunc(handlers.SourceTool))
		tools.OnDispatch(observability.ObserveToolCall)
		chatService := services.NewChatService(llmClient, tools, cfg.LLM.MaxToolRounds)
		deps.ChatHandler = handlers.NewChatHandler(chatService, logger)
	} else {
		logger.Debug().Msg("no OpenAI API key configured, chat disabled")
	}

	return fn(deps)
}

// openResolutionLog opens the SQLite resolution log and ensures its schema.
func openResolutionLog(ctx context.Context, path string) (*sqlite.Repository, error) {
	if dir := parentDir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	repo, err := sqlite.NewRepository(config.SQLiteConfig{Path: path})
	if err != nil {
		return nil, fmt.Errorf("creating sqlite repository: %w", err)
	}
	if err := repo.EnsureSchema(ctx); err != nil {
		repo.Close()
		return nil, fmt.Errorf("ensuring sqlite schema: %w", err)
	}
	return repo, nil
}

// sqliteOpener adapts the SQLite repository to handlers.LogOpener.
func sqliteOpener(path string) (ports.ResolutionLog, error) {
	repo, err := openResolutionLog(context.Background(), path)
	if err != nil {
		return nil, err
	}
	return repo, nil
}
