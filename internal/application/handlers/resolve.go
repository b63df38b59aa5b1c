package handlers

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ersonp/flight-desk/internal/domain/entities"
	"github.com/ersonp/flight-desk/internal/domain/ports"
	"github.com/ersonp/flight-desk/internal/domain/services"
	"github.com/ersonp/flight-desk/internal/infrastructure/observability"
)

// Resolution sources recorded in the log.
const (
	SourceCLI  = "cli"
	SourceHTTP = "http"
	SourceTool = "tool"
)

// ResolveHandler resolves destination text, recording and measuring each call.
type ResolveHandler struct {
	resolver *services.Resolver
	resLog   ports.ResolutionLog
	logger   zerolog.Logger
}

// NewResolveHandler creates a new resolve handler. resLog may be nil.
func NewResolveHandler(resolver *services.Resolver, resLog ports.ResolutionLog, logger zerolog.Logger) *ResolveHandler {
	return &ResolveHandler{
		resolver: resolver,
		resLog:   resLog,
		logger:   logger,
	}
}

// Handle resolves raw. Logging failures are reported but never change the result.
func (h *ResolveHandler) Handle(ctx context.Context, raw, source string) entities.Resolution {
	res := h.resolver.Resolve(raw)
	rec := entities.NewResolutionRecord(raw, res, source)

	observability.ObserveResolution(rec.Stage, rec.Corrected)
	h.logger.Debug().
		Str("input", raw).
		Str("normalized", rec.NormalizedInput).
		Str("stage", rec.Stage).
		Str("key", rec.Key).
		Bool("corrected", rec.Corrected).
		Str("source", source).
		Msg("destination resolved")

	if h.resLog != nil {
		if err := h.resLog.Record(ctx, rec); err != nil {
			h.logger.Warn().Err(err).Str("input", raw).Msg("recording resolution failed")
		}
	}
	return res
}

// ResolveFunc returns a services.ResolveFunc recording calls under source.
func (h *ResolveHandler) ResolveFunc(source string) services.ResolveFunc {
	return func(ctx context.Context, raw string) entities.Resolution {
		return h.Handle(ctx, raw, source)
	}
}
