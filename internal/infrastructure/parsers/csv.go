package parsers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// aliasSeparator separates aliases inside the CSV aliases column.
const aliasSeparator = "|"

// CSVParser parses destinations from CSV format.
type CSVParser struct{}

// Parse reads CSV from the reader and returns parsed destinations.
// Expected columns: key, price, display_name, description, aliases (|-separated)
func (p *CSVParser) Parse(r io.Reader) ([]RawDestination, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	colIndex, err := p.readHeader(reader)
	if err != nil {
		return nil, err
	}

	return p.readRecords(reader, colIndex)
}

// readHeader reads and validates the CSV header row.
func (p *CSVParser) readHeader(reader *csv.Reader) (map[string]int, error) {
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	colIndex := make(map[string]int)
	for i, col := range header {
		colIndex[strings.ToLower(strings.TrimSpace(col))] = i
	}

	requiredCols := []string{"key", "price"}
	for _, col := range requiredCols {
		if _, ok := colIndex[col]; !ok {
			return nil, fmt.Errorf("missing required column: %s", col)
		}
	}

	return colIndex, nil
}

// readRecords reads all data rows and converts them to RawDestinations.
func (p *CSVParser) readRecords(reader *csv.Reader, colIndex map[string]int) ([]RawDestination, error) {
	rows := []RawDestination{}
	lineNum := 1 // Header is line 1

	for {
		lineNum++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		rows = append(rows, RawDestination{
			Key:         getColumn(record, colIndex, "key"),
			DisplayName: getColumn(record, colIndex, "display_name"),
			Price:       getColumn(record, colIndex, "price"),
			Description: getColumn(record, colIndex, "description"),
			Aliases:     splitAliases(getColumn(record, colIndex, "aliases")),
			LineNum:     lineNum,
		})
	}

	return rows, nil
}

// splitAliases splits the aliases column, dropping empty entries.
func splitAliases(value string) []string {
	var aliases []string
	for _, alias := range strings.Split(value, aliasSeparator) {
		if alias = strings.TrimSpace(alias); alias != "" {
			aliases = append(aliases, alias)
		}
	}
	return aliases
}

// getColumn safely retrieves a column value from a record.
func getColumn(record []string, colIndex map[string]int, col string) string {
	if idx, ok := colIndex[col]; ok && idx < len(record) {
		return record[idx]
	}
	return ""
}
