package handlers

import (
	"fmt"

	"github.com/ersonp/flight-desk/internal/domain/catalog"
	"github.com/ersonp/flight-desk/internal/domain/entities"
	"github.com/ersonp/flight-desk/internal/infrastructure/parsers"
)

// CatalogHandler loads and inspects destination catalogs.
type CatalogHandler struct{}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// CatalogSummary describes a built catalog.
type CatalogSummary struct {
	Path         string
	Destinations int
	Aliases      int
}

// Load builds the catalog stored at path, or the built-in catalog when path is empty.
func (h *CatalogHandler) Load(path string) (*catalog.Catalog, error) {
	if path == "" {
		c, err := catalog.Default()
		if err != nil {
			return nil, fmt.Errorf("building built-in catalog: %w", err)
		}
		return c, nil
	}

	rows, err := parsers.ParseFile(path)
	if err != nil {
		return nil, err
	}
	dests, aliases, err := parsers.ToCatalogInput(rows)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	c, err := catalog.Build(dests, aliases)
	if err != nil {
		return nil, fmt.Errorf("building catalog from %s: %w", path, err)
	}
	return c, nil
}

// Validate builds the catalog at path and summarizes it.
func (h *CatalogHandler) Validate(path string) (*CatalogSummary, error) {
	c, err := h.Load(path)
	if err != nil {
		return nil, err
	}
	return &CatalogSummary{
		Path:         path,
		Destinations: c.Len(),
		Aliases:      c.AliasCount(),
	}, nil
}

// Destinations lists the catalog in registration order.
func (h *CatalogHandler) Destinations(c *catalog.Catalog) []entities.Destination {
	return c.Destinations()
}
