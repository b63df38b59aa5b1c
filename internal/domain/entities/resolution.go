package entities

// MatchStage names the pipeline stage that produced a match.
type MatchStage string

// Matching stages, in pipeline order.
const (
	StageExact       MatchStage = "exact"
	StageContainment MatchStage = "containment"
	StageFuzzy       MatchStage = "fuzzy"
)

// Resolution is the outcome of resolving one input string.
// It is either a Found or a NotFound value.
type Resolution interface {
	IsFound() bool
	resolution()
}

// Found is a resolution that matched a catalog destination.
type Found struct {
	Key          string     `json:"key"`
	DisplayName  string     `json:"display_name"`
	Price        string     `json:"price"`
	Description  string     `json:"description"`
	MatchedAlias string     `json:"matched_alias"`
	Corrected    bool       `json:"corrected"` // Input was not itself a registered alias
	Stage        MatchStage `json:"stage"`
	Score        float64    `json:"score"`
}

// NotFound is a resolution that matched nothing.
// Suggestions holds display names and is never nil.
type NotFound struct {
	NormalizedInput string   `json:"normalized_input"`
	Suggestions     []string `json:"suggestions"`
}

// IsFound reports true.
func (Found) IsFound() bool { return true }

// IsFound reports false.
func (NotFound) IsFound() bool { return false }

func (Found) resolution()    {}
func (NotFound) resolution() {}
