// Package catalog provides the immutable destination and alias table.
package catalog

import (
	"fmt"
	"iter"

	"github.com/ersonp/flight-desk/internal/domain/entities"
)

// Catalog is an immutable table of destinations and their aliases.
// It is safe for concurrent use once built.
type Catalog struct {
	destinations []entities.Destination
	byKey        map[string]int
	aliases      []entities.AliasEntry
	aliasToKey   map[string]string
}

// Build validates destinations and aliases and returns a Catalog.
//
// Every key is registered as its own alias. Aliases are normalized with
// entities.NormalizeName; registering an alias twice for the same key is a
// no-op, registering it for a different key is a *DuplicateAliasError.
// Alias iteration order is destination order, and within one destination
// the key first, then its aliases in the order given.
func Build(destinations []entities.Destination, aliases []entities.AliasEntry) (*Catalog, error) {
	c := &Catalog{
		destinations: make([]entities.Destination, 0, len(destinations)),
		byKey:        make(map[string]int, len(destinations)),
		aliasToKey:   make(map[string]string, len(destinations)+len(aliases)),
	}

	for i, d := range destinations {
		if d.Key == "" {
			return nil, fmt.Errorf("destination %d: empty key: %w", i, ErrInvalidDestination)
		}
		if entities.NormalizeName(d.Key) != d.Key {
			return nil, fmt.Errorf("destination %q: key must be lowercase and normalized: %w", d.Key, ErrInvalidDestination)
		}
		if _, ok := c.byKey[d.Key]; ok {
			return nil, &DuplicateKeyError{Key: d.Key}
		}
		c.byKey[d.Key] = len(c.destinations)
		c.destinations = append(c.destinations, d)
	}

	perKey := make(map[string][]string, len(c.destinations))
	for _, d := range c.destinations {
		if err := c.register(d.Key, d.Key, perKey); err != nil {
			return nil, err
		}
	}
	for _, a := range aliases {
		if _, ok := c.byKey[a.Key]; !ok {
			return nil, &UnknownKeyError{Key: a.Key}
		}
		alias := entities.NormalizeName(a.Alias)
		if alias == "" {
			return nil, fmt.Errorf("alias %q for %q is empty after normalization: %w", a.Alias, a.Key, ErrInvalidDestination)
		}
		if err := c.register(alias, a.Key, perKey); err != nil {
			return nil, err
		}
	}

	c.aliases = make([]entities.AliasEntry, 0, len(c.aliasToKey))
	for _, d := range c.destinations {
		for _, alias := range perKey[d.Key] {
			c.aliases = append(c.aliases, entities.AliasEntry{Alias: alias, Key: d.Key})
		}
	}

	return c, nil
}

// register adds alias for key, recording registration order in perKey.
func (c *Catalog) register(alias, key string, perKey map[string][]string) error {
	if existing, ok := c.aliasToKey[alias]; ok {
		if existing == key {
			return nil
		}
		return &DuplicateAliasError{Alias: alias, ExistingKey: existing, Key: key}
	}
	c.aliasToKey[alias] = key
	perKey[key] = append(perKey[key], alias)
	return nil
}

// LookupExact returns the key registered for an already normalized alias.
func (c *Catalog) LookupExact(normalized string) (string, bool) {
	key, ok := c.aliasToKey[normalized]
	return key, ok
}

// Aliases yields every (alias, key) pair in catalog order.
// The sequence can be ranged over any number of times.
func (c *Catalog) Aliases() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, a := range c.aliases {
			if !yield(a.Alias, a.Key) {
				return
			}
		}
	}
}

// Entity returns the destination for key, or *UnknownKeyError.
func (c *Catalog) Entity(key string) (entities.Destination, error) {
	i, ok := c.byKey[key]
	if !ok {
		return entities.Destination{}, &UnknownKeyError{Key: key}
	}
	return c.destinations[i], nil
}

// Destinations returns a copy of all destinations in registration order.
func (c *Catalog) Destinations() []entities.Destination {
	out := make([]entities.Destination, len(c.destinations))
	copy(out, c.destinations)
	return out
}

// Len returns the number of destinations.
func (c *Catalog) Len() int {
	return len(c.destinations)
}

// AliasCount returns the number of distinct registered aliases, keys included.
func (c *Catalog) AliasCount() int {
	return len(c.aliases)
}

// Default builds the catalog from entities.DefaultDestinations and entities.DefaultAliases.
func Default() (*Catalog, error) {
	return Build(entities.DefaultDestinations, entities.DefaultAliases)
}
