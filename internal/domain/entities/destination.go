// Package entities contains core domain data structures.
package entities

import "strings"

const (
	cityPrefix = "city of "
	citySuffix = " city"
)

// Destination is one canonical entry of the destination catalog.
type Destination struct {
	Key         string `json:"key" yaml:"key"`
	DisplayName string `json:"display_name" yaml:"display_name"`
	Price       string `json:"price" yaml:"price"` // Opaque, e.g. "$899"
	Description string `json:"description" yaml:"description"`
}

// NormalizeName converts free-form destination text to the form used for
// alias matching: lowercase, single-spaced, trimmed, without a leading
// "city of " or a trailing " city". NormalizeName(NormalizeName(s)) equals
// NormalizeName(s).
func NormalizeName(name string) string {
	s := strings.Join(strings.Fields(strings.ToLower(name)), " ")
	for {
		next := strings.TrimPrefix(s, cityPrefix)
		next = strings.TrimSuffix(next, citySuffix)
		next = strings.TrimSpace(next)
		if next == s {
			return s
		}
		s = next
	}
}
