// Package parsers provides parsers for loading destination catalogs from various formats.
package parsers

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ersonp/flight-desk/internal/domain/entities"
)

// RawDestination represents a catalog row parsed from an external source before validation.
type RawDestination struct {
	Key         string   `json:"key" yaml:"key"`
	DisplayName string   `json:"display_name,omitempty" yaml:"display_name,omitempty"`
	Price       string   `json:"price" yaml:"price"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Aliases     []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	LineNum     int      `json:"-" yaml:"-"` // Position in source file (set by parser)
}

// Parser defines the interface for parsing destinations from various formats.
type Parser interface {
	Parse(r io.Reader) ([]RawDestination, error)
}

// ForFormat returns the appropriate parser for the given format.
// Supported formats: "yaml", "yml", "json", "csv".
func ForFormat(format string) Parser {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		return &YAMLParser{}
	case "json":
		return &JSONParser{}
	case "csv":
		return &CSVParser{}
	default:
		return nil
	}
}

// ForFile returns the appropriate parser based on file extension.
func ForFile(filename string) Parser {
	return ForFormat(strings.TrimPrefix(filepath.Ext(filename), "."))
}

// ParseFile opens path and parses it with the parser for its extension.
func ParseFile(path string) ([]RawDestination, error) {
	parser := ForFile(path)
	if parser == nil {
		return nil, fmt.Errorf("unsupported catalog format: %s (use .yaml, .json or .csv)", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog file: %w", err)
	}
	defer f.Close()

	rows, err := parser.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return rows, nil
}

// ToCatalogInput converts parsed rows into destinations and alias entries.
// Keys are normalized; a missing display name becomes the title-cased key.
// Duplicate keys and aliases are left for the catalog to reject.
func ToCatalogInput(rows []RawDestination) ([]entities.Destination, []entities.AliasEntry, error) {
	title := cases.Title(language.English)

	dests := make([]entities.Destination, 0, len(rows))
	var aliases []entities.AliasEntry
	for _, row := range rows {
		key := entities.NormalizeName(row.Key)
		if key == "" {
			return nil, nil, fmt.Errorf("row %d: key is required", row.LineNum)
		}

		displayName := strings.TrimSpace(row.DisplayName)
		if displayName == "" {
			displayName = title.String(key)
		}

		dests = append(dests, entities.Destination{
			Key:         key,
			DisplayName: displayName,
			Price:       strings.TrimSpace(row.Price),
			Description: strings.TrimSpace(row.Description),
		})
		for _, alias := range row.Aliases {
			if strings.TrimSpace(alias) == "" {
				continue
			}
			aliases = append(aliases, entities.AliasEntry{Alias: alias, Key: key})
		}
	}

	return dests, aliases, nil
}
