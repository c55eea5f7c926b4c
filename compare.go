package standex

import "strings"

// Comparison defaults. Topic-scoped comparisons demand high overlap
// because every sampled snippet already contains the topic term; the
// corpus-wide variant samples heterogeneous leading pages and uses looser
// nets over a smaller sample.
const (
	DefaultSampleCap           = 30
	DefaultSimilarityThreshold = 80
	DefaultUniquenessThreshold = 50

	CorpusSampleCap           = 10
	CorpusSimilarityThreshold = 70
	CorpusUniquenessThreshold = 40

	// DefaultSnippetWindow is the size of the snippet extracted around
	// the first topic occurrence; DefaultSnippetLead is how far before
	// the occurrence the window starts, clamped to the content start.
	DefaultSnippetWindow = 240
	DefaultSnippetLead   = 80

	DefaultHitLimit        = 400
	DefaultMaxSimilarities = 15
	DefaultMaxDifferences  = 20
	DefaultMaxUniques      = 20
)

// CompareConfig holds the similarity analyzer thresholds. All values are
// explicit configuration rather than embedded constants.
type CompareConfig struct {
	// SampleCap bounds how many hit pages per standard enter pairwise
	// scoring. Pairwise cost is quadratic in this value.
	SampleCap int

	// SimilarityThreshold is the minimum token-set score (0-100,
	// inclusive) for a pair to be reported as similar.
	SimilarityThreshold int

	// UniquenessThreshold marks a page unique when its best
	// cross-standard score is strictly below this value.
	UniquenessThreshold int

	// SnippetWindow and SnippetLead control hit snippet extraction.
	SnippetWindow int
	SnippetLead   int

	// HitLimit bounds the number of hit pages fetched per standard.
	HitLimit int

	// MaxSimilarities, MaxDifferences and MaxUniques independently
	// truncate the emitted lists. MaxUniques bounds each standard's
	// unique-page list, not the report total.
	MaxSimilarities int
	MaxDifferences  int
	MaxUniques      int

	// Workers bounds concurrent standard-pair scoring. Zero means one
	// worker per CPU.
	Workers int
}

// DefaultCompareConfig returns the topic-scoped comparison thresholds.
func DefaultCompareConfig() CompareConfig {
	return CompareConfig{
		SampleCap:           DefaultSampleCap,
		SimilarityThreshold: DefaultSimilarityThreshold,
		UniquenessThreshold: DefaultUniquenessThreshold,
		SnippetWindow:       DefaultSnippetWindow,
		SnippetLead:         DefaultSnippetLead,
		HitLimit:            DefaultHitLimit,
		MaxSimilarities:     DefaultMaxSimilarities,
		MaxDifferences:      DefaultMaxDifferences,
		MaxUniques:          DefaultMaxUniques,
	}
}

// CorpusCompareConfig returns the corpus-wide (topic-less) thresholds.
func CorpusCompareConfig() CompareConfig {
	cfg := DefaultCompareConfig()
	cfg.SampleCap = CorpusSampleCap
	cfg.SimilarityThreshold = CorpusSimilarityThreshold
	cfg.UniquenessThreshold = CorpusUniquenessThreshold
	return cfg
}

// Hit is one page of a standard whose content contains the compared topic.
type Hit struct {
	PageID    int64  `json:"pageId"`
	PageIndex int    `json:"pageIndex"`
	Snippet   string `json:"snippet"`
}

// StandardHits groups the hits of one standard.
type StandardHits struct {
	Standard *Standard `json:"standard"`
	Hits     []Hit     `json:"hits"`
}

// SimilarityPair reports two pages of distinct standards whose snippets
// score at or above the similarity threshold.
type SimilarityPair struct {
	A      *Standard `json:"a"`
	B      *Standard `json:"b"`
	AIndex int       `json:"aIndex"`
	BIndex int       `json:"bIndex"`

	// Score is the token-set ratio in [0,100]; symmetric in A and B.
	Score int `json:"score"`
}

// UniquePage is a page whose content has no close counterpart in any
// other standard. Uniqueness is 100 minus the best cross-standard score.
type UniquePage struct {
	PageIndex  int    `json:"pageIndex"`
	Uniqueness int    `json:"uniqueness"`
	Snippet    string `json:"snippet"`
}

// StandardUniques groups the unique pages of one standard.
type StandardUniques struct {
	Standard *Standard    `json:"standard"`
	Pages    []UniquePage `json:"pages"`
}

// MethodologyMatch attributes a hit snippet to a named methodology
// lineage via the static keyword table.
type MethodologyMatch struct {
	Label     string    `json:"label"`
	Keyword   string    `json:"keyword"`
	Standard  *Standard `json:"standard"`
	PageIndex int       `json:"pageIndex"`
	Snippet   string    `json:"snippet"`
}

// CompareReport is the full result of a topic comparison. It is computed
// fresh per query and never persisted.
type CompareReport struct {
	Topic        string             `json:"topic"`
	Hits         []StandardHits     `json:"hits"`
	Similarities []SimilarityPair   `json:"similarities"`
	Differences  []MethodologyMatch `json:"differences"`
	Uniques      []StandardUniques  `json:"uniques"`
}

// StandardCount pairs a standard with a page count.
type StandardCount struct {
	Standard *Standard `json:"standard"`
	Pages    int       `json:"pages"`
}

// TermOverlap reports, for one lifecycle term, how many pages of each
// standard mention it.
type TermOverlap struct {
	Term   string          `json:"term"`
	Counts []StandardCount `json:"counts"`
}

// InsightsReport is the corpus-wide analysis result.
type InsightsReport struct {
	TotalPages   int               `json:"totalPages"`
	PageCounts   []StandardCount   `json:"pageCounts"`
	Overlaps     []TermOverlap     `json:"overlaps"`
	Similarities []SimilarityPair  `json:"similarities"`
	Uniques      []StandardUniques `json:"uniques"`
}

// Recommendation is one page suggested for a tailored project profile.
type Recommendation struct {
	Standard  *Standard `json:"standard"`
	PageID    int64     `json:"pageId"`
	PageIndex int       `json:"pageIndex"`
	Snippet   string    `json:"snippet"`
}

// PhaseEvidence lists supporting pages for one lifecycle phase.
type PhaseEvidence struct {
	Phase    string           `json:"phase"`
	Evidence []Recommendation `json:"evidence"`
}

// TailorReport is the result of a project-type tailoring query.
type TailorReport struct {
	ProjectType     string           `json:"projectType"`
	Recommendations []Recommendation `json:"recommendations"`
	Phases          []PhaseEvidence  `json:"phases"`
}

// Methodology maps a named standard lineage to the phrase keywords that
// mark content as specific to it. Attribution is a static lookup: a group
// only fires for standards whose title contains the label.
type Methodology struct {
	Label    string   `json:"label"`
	Keywords []string `json:"keywords"`
}

// DefaultMethodologies returns the built-in methodology keyword table.
func DefaultMethodologies() []Methodology {
	return []Methodology{
		{Label: "PMBOK", Keywords: []string{"process group", "knowledge area", "work performance", "enterprise environmental factors", "organizational process assets"}},
		{Label: "PRINCE2", Keywords: []string{"business case", "project board", "stage boundary", "work package", "management product", "tolerances"}},
		{Label: "ISO", Keywords: []string{"shall", "conformity", "annex", "normative", "this document"}},
		{Label: "Agile", Keywords: []string{"sprint", "iteration", "backlog", "increment", "retrospective"}},
	}
}

// Phase is one entry of the fixed lifecycle phase taxonomy used for
// tailoring.
type Phase struct {
	Name  string   `json:"name"`
	Terms []string `json:"terms"`
}

// DefaultPhases returns the built-in lifecycle phase taxonomy.
func DefaultPhases() []Phase {
	return []Phase{
		{Name: "Initiation", Terms: []string{"charter", "case", "scope", "stakeholder", "sponsor", "mandate"}},
		{Name: "Planning", Terms: []string{"plan", "schedule", "cost", "resource", "risk", "quality", "communications"}},
		{Name: "Execution", Terms: []string{"deliverable", "work package", "team", "leadership", "manage work"}},
		{Name: "Monitoring & Control", Terms: []string{"monitor", "control", "variance", "change", "issue", "metrics"}},
		{Name: "Closing", Terms: []string{"close", "handover", "benefits", "transition", "retrospective"}},
	}
}

// LifecycleTerms are the common project-lifecycle keywords used for the
// corpus-wide overlap estimate.
var LifecycleTerms = []string{
	"initiation", "planning", "execution", "monitoring",
	"closing", "governance", "risk", "stakeholder",
}

// ProjectTypeKeywords returns the search keywords for a known project
// type. An unknown type falls back to the raw tag itself.
func ProjectTypeKeywords(projectType string) []string {
	switch strings.ToLower(projectType) {
	case "it":
		return []string{"agile", "iteration", "change", "software", "sprint"}
	case "construction":
		return []string{"contract", "site", "safety", "procurement"}
	case "research":
		return []string{"experiment", "hypothesis", "review", "ethics"}
	default:
		return []string{projectType}
	}
}

// TopicSnippet extracts a bounded window of content around the first
// case-insensitive occurrence of topic. The window starts lead characters
// before the occurrence, clamped to the content start, and spans at most
// window characters.
func TopicSnippet(content, topic string, lead, window int) string {
	idx := strings.Index(strings.ToLower(content), strings.ToLower(topic))
	if idx < 0 {
		idx = 0
	}
	start := max(idx-lead, 0)
	end := min(start+window, len(content))
	return content[start:end]
}
