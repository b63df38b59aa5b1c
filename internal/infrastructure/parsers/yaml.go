package parsers

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLParser parses destinations from a YAML sequence.
type YAMLParser struct{}

// Parse reads YAML from the reader and returns parsed destinations.
// LineNum is the source line of each sequence item.
func (p *YAMLParser) Parse(r io.Reader) ([]RawDestination, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []RawDestination{}, nil
		}
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	if len(doc.Content) == 0 {
		return []RawDestination{}, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("parsing YAML: line %d: expected a list of destinations", root.Line)
	}

	rows := make([]RawDestination, 0, len(root.Content))
	for _, item := range root.Content {
		var row RawDestination
		if err := item.Decode(&row); err != nil {
			return nil, fmt.Errorf("parsing YAML: line %d: %w", item.Line, err)
		}
		row.LineNum = item.Line
		rows = append(rows, row)
	}

	return rows, nil
}
