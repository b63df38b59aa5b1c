package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/ersonp/flight-desk/internal/domain/entities"
	"github.com/ersonp/flight-desk/internal/domain/ports"
)

// DefaultAuditLimit is used when no positive limit is given.
const DefaultAuditLimit = 20

// AuditHandler reads the resolution log.
type AuditHandler struct {
	resLog ports.ResolutionLog
}

// NewAuditHandler creates a new audit handler.
func NewAuditHandler(resLog ports.ResolutionLog) *AuditHandler {
	return &AuditHandler{
		resLog: resLog,
	}
}

// Recent returns the newest resolutions.
func (h *AuditHandler) Recent(ctx context.Context, limit int) ([]entities.ResolutionRecord, error) {
	if h.resLog == nil {
		return nil, errors.New("resolution log is not configured")
	}
	if limit <= 0 {
		limit = DefaultAuditLimit
	}
	records, err := h.resLog.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent resolutions: %w", err)
	}
	return records, nil
}

// Unresolved returns the most frequent inputs that matched nothing.
func (h *AuditHandler) Unresolved(ctx context.Context, limit int) ([]entities.UnresolvedInput, error) {
	if h.resLog == nil {
		return nil, errors.New("resolution log is not configured")
	}
	if limit <= 0 {
		limit = DefaultAuditLimit
	}
	inputs, err := h.resLog.TopUnresolved(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listing unresolved inputs: %w", err)
	}
	return inputs, nil
}
