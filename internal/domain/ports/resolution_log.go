package ports

import (
	"context"

	"github.com/ersonp/flight-desk/internal/domain/entities"
)

// ResolutionLog stores every resolver call so unresolved inputs can be
// reviewed and turned into aliases.
type ResolutionLog interface {
	// EnsureSchema creates the storage schema if it doesn't exist.
	EnsureSchema(ctx context.Context) error

	// Close releases the underlying storage.
	Close() error

	// Record stores one resolution. ID and CreatedAt are filled when empty.
	Record(ctx context.Context, rec entities.ResolutionRecord) error

	// Recent returns the newest records first.
	Recent(ctx context.Context, limit int) ([]entities.ResolutionRecord, error)

	// TopUnresolved returns the most frequent unresolved normalized inputs.
	TopUnresolved(ctx context.Context, limit int) ([]entities.UnresolvedInput, error)
}
