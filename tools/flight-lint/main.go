// flight-lint checks flight-desk code for hot-path and N+1 call patterns.
package main

import (
	"golang.org/x/tools/go/analysis/multichecker"

	"github.com/ersonp/flight-desk/tools/flight-lint/analyzers"
)

func main() {
	multichecker.Main(analyzers.All()...)
}
