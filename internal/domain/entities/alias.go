package entities

// AliasEntry maps one surface string to a destination key.
// Alias is normalized with NormalizeName when the catalog is built.
type AliasEntry struct {
	Alias string `json:"alias" yaml:"alias"`
	Key   string `json:"key" yaml:"key"`
}
