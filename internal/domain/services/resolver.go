package services

import (
	"strings"
	"unicode/utf8"

	"github.com/ersonp/flight-desk/internal/domain/catalog"
	"github.com/ersonp/flight-desk/internal/domain/entities"
)

// Default resolver tuning.
const (
	// DefaultThreshold is the fuzzy score a candidate must strictly exceed.
	DefaultThreshold = 0.6
	// DefaultOverlapFloor is the lowest character-overlap ratio that counts as a score.
	// Below it, short unrelated names sharing common letters would clear the threshold.
	DefaultOverlapFloor = 0.7
	// DefaultSubstitutionScore is given when 0/o and 1/i swaps turn the input into an alias.
	DefaultSubstitutionScore = 0.9
	// DefaultMinContainmentLength is the shortest input, in runes, tried for containment.
	// Two-letter inputs are substrings of most aliases.
	DefaultMinContainmentLength = 3
	// DefaultMinOverlapLength is the shortest input and alias, in runes, scored by overlap.
	DefaultMinOverlapLength = 4
)

var (
	digitsToLetters = strings.NewReplacer("0", "o", "1", "i")
	lettersToDigits = strings.NewReplacer("o", "0", "i", "1")
)

// ResolverOptions tunes the matching heuristics of a Resolver.
type ResolverOptions struct {
	Threshold            float64
	OverlapFloor         float64
	SubstitutionScore    float64
	MinContainmentLength int
	MinOverlapLength     int
}

// DefaultResolverOptions returns the standard tuning.
func DefaultResolverOptions() ResolverOptions {
	return ResolverOptions{
		Threshold:            DefaultThreshold,
		OverlapFloor:         DefaultOverlapFloor,
		SubstitutionScore:    DefaultSubstitutionScore,
		MinContainmentLength: DefaultMinContainmentLength,
		MinOverlapLength:     DefaultMinOverlapLength,
	}
}

// Resolver maps free-form destination text to a catalog destination.
//
// Resolution runs normalize, exact alias lookup, containment, fuzzy scoring
// and finally prefix suggestions, stopping at the first stage that matches.
// A Resolver holds no mutable state and is safe for concurrent use.
type Resolver struct {
	catalog *catalog.Catalog
	opts    ResolverOptions
}

// NewResolver creates a Resolver over an already built catalog.
// Options are used as given; start from DefaultResolverOptions.
func NewResolver(c *catalog.Catalog, opts ResolverOptions) *Resolver {
	return &Resolver{
		catalog: c,
		opts:    opts,
	}
}

// Options returns the tuning the resolver was built with.
func (r *Resolver) Options() ResolverOptions {
	return r.opts
}

// Resolve returns a Found or NotFound for raw. It never fails and always
// returns the same result for the same input.
func (r *Resolver) Resolve(raw string) entities.Resolution {
	normalized := entities.NormalizeName(raw)
	if normalized == "" {
		return entities.NotFound{NormalizedInput: "", Suggestions: []string{}}
	}

	if key, ok := r.catalog.LookupExact(normalized); ok {
		return r.found(key, normalized, false, entities.StageExact, 1)
	}

	if alias, key, ok := r.containment(normalized); ok {
		return r.found(key, alias, true, entities.StageContainment, 1)
	}

	if alias, key, score, ok := r.fuzzy(normalized); ok {
		return r.found(key, alias, true, entities.StageFuzzy, score)
	}

	return entities.NotFound{
		NormalizedInput: normalized,
		Suggestions:     r.suggest(normalized),
	}
}

// containment returns the first alias that contains the input or is
// contained in it. Both plain and space-free forms are compared, so
// "sai gon" finds "saigon".
func (r *Resolver) containment(input string) (string, string, bool) {
	compactInput := compact(input)
	if utf8.RuneCountInString(compactInput) < r.opts.MinContainmentLength {
		return "", "", false
	}

	for alias, key := range r.catalog.Aliases() {
		compactAlias := compact(alias)
		if strings.Contains(alias, input) || strings.Contains(compactAlias, compactInput) {
			return alias, key, true
		}
		if utf8.RuneCountInString(compactAlias) < r.opts.MinContainmentLength {
			continue
		}
		if strings.Contains(input, alias) || strings.Contains(compactInput, compactAlias) {
			return alias, key, true
		}
	}
	return "", "", false
}

// fuzzy scores every alias and returns the best one if it clears the threshold.
// Ties keep the earliest alias.
func (r *Resolver) fuzzy(input string) (string, string, float64, bool) {
	inputSet := charset(input)
	inputLen := utf8.RuneCountInString(input)

	var bestAlias, bestKey string
	best := 0.0
	for alias, key := range r.catalog.Aliases() {
		score := r.similarity(input, inputSet, inputLen, alias)
		if score > best {
			best, bestAlias, bestKey = score, alias, key
		}
	}

	if best > r.opts.Threshold {
		return bestAlias, bestKey, best, true
	}
	return "", "", best, false
}

// similarity is the larger of the overlap score and the substitution score.
func (r *Resolver) similarity(input string, inputSet map[rune]struct{}, inputLen int, alias string) float64 {
	score := 0.0
	if inputLen >= r.opts.MinOverlapLength && utf8.RuneCountInString(alias) >= r.opts.MinOverlapLength {
		if ratio := overlapRatio(inputSet, alias); ratio >= r.opts.OverlapFloor {
			score = ratio
		}
	}
	if score < r.opts.SubstitutionScore && substitutes(input, alias) {
		score = r.opts.SubstitutionScore
	}
	return score
}

// suggest lists display names of destinations whose key shares the input's
// first two characters, in catalog order.
func (r *Resolver) suggest(input string) []string {
	prefix := firstRunes(input, 2)
	suggestions := make([]string, 0)
	for _, d := range r.catalog.Destinations() {
		if strings.HasPrefix(d.Key, prefix) || strings.HasPrefix(input, firstRunes(d.Key, 2)) {
			suggestions = append(suggestions, d.DisplayName)
		}
	}
	return suggestions
}

func (r *Resolver) found(key, alias string, corrected bool, stage entities.MatchStage, score float64) entities.Found {
	d, err := r.catalog.Entity(key)
	if err != nil {
		// Keys only ever come from the catalog itself.
		panic(err)
	}
	return entities.Found{
		Key:          d.Key,
		DisplayName:  d.DisplayName,
		Price:        d.Price,
		Description:  d.Description,
		MatchedAlias: alias,
		Corrected:    corrected,
		Stage:        stage,
		Score:        score,
	}
}

// overlapRatio is |set ∩ chars(alias)| / |chars(alias)|.
func overlapRatio(inputSet map[rune]struct{}, alias string) float64 {
	aliasSet := charset(alias)
	if len(aliasSet) == 0 {
		return 0
	}
	shared := 0
	for r := range aliasSet {
		if _, ok := inputSet[r]; ok {
			shared++
		}
	}
	return float64(shared) / float64(len(aliasSet))
}

// substitutes reports whether swapping 0/o and 1/i in one direction makes input equal alias.
func substitutes(input, alias string) bool {
	return digitsToLetters.Replace(input) == alias || lettersToDigits.Replace(input) == alias
}

func charset(s string) map[rune]struct{} {
	set := make(map[rune]struct{}, len(s))
	for _, r := range s {
		set[r] = struct{}{}
	}
	return set
}

func compact(s string) string {
	return strings.ReplaceAll(s, " ", "")
}

func firstRunes(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
