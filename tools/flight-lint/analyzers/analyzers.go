// Package analyzers lists the flight-lint analyzers.
package analyzers

import (
	"golang.org/x/tools/go/analysis"

	"github.com/ersonp/flight-desk/tools/flight-lint/analyzers/loopcall"
	"github.com/ersonp/flight-desk/tools/flight-lint/analyzers/maplookup"
	"github.com/ersonp/flight-desk/tools/flight-lint/analyzers/regexloop"
	"github.com/ersonp/flight-desk/tools/flight-lint/analyzers/stringconcat"
)

// All returns all analyzers to run.
func All() []*analysis.Analyzer {
	return []*analysis.Analyzer{
		loopcall.Analyzer,
		maplookup.Analyzer,
		regexloop.Analyzer,
		stringconcat.Analyzer,
	}
}
