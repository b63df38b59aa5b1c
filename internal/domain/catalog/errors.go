package catalog

import (
	"errors"
	"fmt"
)

// ErrInvalidDestination is wrapped by Build errors for malformed destinations or aliases.
var ErrInvalidDestination = errors.New("invalid destination")

// DuplicateKeyError reports two destinations registered under the same key.
type DuplicateKeyError struct {
	Key string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate destination key %q", e.Key)
}

// DuplicateAliasError reports one normalized alias registered for two different keys.
type DuplicateAliasError struct {
	Alias       string
	ExistingKey string
	Key         string
}

func (e *DuplicateAliasError) Error() string {
	return fmt.Sprintf("alias %q already registered for %q, cannot register for %q", e.Alias, e.ExistingKey, e.Key)
}

// UnknownKeyError reports a key with no destination in the catalog.
type UnknownKeyError struct {
	Key string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown destination key %q", e.Key)
}
