// Package compare provides cross-standard similarity analysis.
// It scores topic-scoped page snippets across standards with a token-set
// fuzzy ratio and derives similarity, uniqueness, and methodology
// attribution reports. Reports are computed fresh per query and never
// persisted.
package compare

import (
	"context"
	"runtime"
	"sort"
	"strings"
	"sync"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
	"github.com/standexhq/standex"
	"golang.org/x/sync/errgroup"
)

const (
	maxRecommendations = 100
	phaseEvidenceLimit = 30
)

// Analyzer runs comparison queries against the stored corpus.
type Analyzer struct {
	Standards standex.StandardService
	Pages     standex.PageService

	// Config supplies thresholds; the zero value means topic defaults
	// for CompareTopic and corpus defaults for Insights.
	Config *standex.CompareConfig

	// Methodologies and Phases default to the built-in taxonomies when nil.
	Methodologies []standex.Methodology
	Phases        []standex.Phase
}

// CompareTopic compares how each stored standard treats a topic. An empty
// or whitespace topic yields an empty report rather than an error.
func (a *Analyzer) CompareTopic(ctx context.Context, topic string) (*standex.CompareReport, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return &standex.CompareReport{Topic: topic}, nil
	}

	cfg := a.config(standex.DefaultCompareConfig)

	standards, err := a.Standards.FindStandards(ctx, standex.StandardFilter{})
	if err != nil {
		return nil, err
	}

	var hits []standex.StandardHits
	var sets []*sampleSet
	for _, std := range standards {
		pages, err := a.Pages.FindPages(ctx, standex.PageFilter{
			StandardID:       &std.ID,
			ContentSubstring: &topic,
			Limit:            cfg.HitLimit,
		})
		if err != nil {
			return nil, err
		}
		if len(pages) == 0 {
			continue
		}

		sh := standex.StandardHits{Standard: std}
		set := &sampleSet{standard: std}
		for _, page := range pages {
			snippet := standex.TopicSnippet(page.Content, topic, cfg.SnippetLead, cfg.SnippetWindow)
			sh.Hits = append(sh.Hits, standex.Hit{
				PageID:    page.ID,
				PageIndex: page.PageIndex,
				Snippet:   snippet,
			})
			if len(set.samples) < cfg.SampleCap {
				set.samples = append(set.samples, newSample(page, snippet))
			}
		}
		hits = append(hits, sh)
		sets = append(sets, set)
	}

	pairs, err := a.scorePairs(ctx, cfg, sets)
	if err != nil {
		return nil, err
	}

	return &standex.CompareReport{
		Topic:        topic,
		Hits:         hits,
		Similarities: similarPairs(pairs, cfg),
		Differences:  attributeMethodologies(hits, a.methodologies(), cfg.MaxDifferences),
		Uniques:      uniquePages(sets, cfg),
	}, nil
}

// Insights analyzes the whole corpus without a topic: page counts,
// lifecycle term overlap, and similarity over each standard's leading pages.
func (a *Analyzer) Insights(ctx context.Context) (*standex.InsightsReport, error) {
	cfg := a.config(standex.CorpusCompareConfig)

	standards, err := a.Standards.FindStandards(ctx, standex.StandardFilter{})
	if err != nil {
		return nil, err
	}

	total, err := a.Pages.CountPages(ctx)
	if err != nil {
		return nil, err
	}

	perStandard, err := a.Pages.CountPagesByStandard(ctx)
	if err != nil {
		return nil, err
	}

	var counts []standex.StandardCount
	var sets []*sampleSet
	for _, std := range standards {
		counts = append(counts, standex.StandardCount{Standard: std, Pages: perStandard[std.ID]})

		pages, err := a.Pages.FindPages(ctx, standex.PageFilter{
			StandardID: &std.ID,
			Limit:      cfg.SampleCap,
		})
		if err != nil {
			return nil, err
		}
		set := &sampleSet{standard: std}
		for _, page := range pages {
			snippet := standex.TopicSnippet(page.Content, "", 0, cfg.SnippetWindow)
			set.samples = append(set.samples, newSample(page, snippet))
		}
		sets = append(sets, set)
	}
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].Pages > counts[j].Pages })

	overlaps, err := a.termOverlaps(ctx, standards, cfg)
	if err != nil {
		return nil, err
	}

	pairs, err := a.scorePairs(ctx, cfg, sets)
	if err != nil {
		return nil, err
	}

	return &standex.InsightsReport{
		TotalPages:   total,
		PageCounts:   counts,
		Overlaps:     overlaps,
		Similarities: similarPairs(pairs, cfg),
		Uniques:      uniquePages(sets, cfg),
	}, nil
}

// Tailor recommends corpus pages for a project profile and groups
// supporting evidence by lifecycle phase.
func (a *Analyzer) Tailor(ctx context.Context, projectType string) (*standex.TailorReport, error) {
	projectType = strings.TrimSpace(projectType)
	if projectType == "" {
		return nil, standex.Errorf(standex.EINVALID, "project type required")
	}

	cfg := a.config(standex.DefaultCompareConfig)

	standards, err := a.Standards.FindStandards(ctx, standex.StandardFilter{})
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*standex.Standard, len(standards))
	for _, std := range standards {
		byID[std.ID] = std
	}

	keywords := standex.ProjectTypeKeywords(projectType)
	recommendations, err := a.findEvidence(ctx, byID, keywords, cfg, maxRecommendations)
	if err != nil {
		return nil, err
	}

	var phases []standex.PhaseEvidence
	for _, phase := range a.phases() {
		evidence, err := a.findEvidence(ctx, byID, phase.Terms, cfg, phaseEvidenceLimit)
		if err != nil {
			return nil, err
		}
		phases = append(phases, standex.PhaseEvidence{Phase: phase.Name, Evidence: evidence})
	}

	return &standex.TailorReport{
		ProjectType:     projectType,
		Recommendations: recommendations,
		Phases:          phases,
	}, nil
}

// findEvidence fetches pages matching any of the keywords and snippets
// them around the first keyword each page actually contains.
func (a *Analyzer) findEvidence(ctx context.Context, byID map[string]*standex.Standard, keywords []string, cfg standex.CompareConfig, limit int) ([]standex.Recommendation, error) {
	pages, err := a.Pages.FindPages(ctx, standex.PageFilter{
		ContentAny: keywords,
		Limit:      limit,
	})
	if err != nil {
		return nil, err
	}

	var recs []standex.Recommendation
	for _, page := range pages {
		term := firstContained(page.Content, keywords)
		recs = append(recs, standex.Recommendation{
			Standard:  byID[page.StandardID],
			PageID:    page.ID,
			PageIndex: page.PageIndex,
			Snippet:   standex.TopicSnippet(page.Content, term, cfg.SnippetLead, cfg.SnippetWindow),
		})
	}
	return recs, nil
}

func (a *Analyzer) termOverlaps(ctx context.Context, standards []*standex.Standard, cfg standex.CompareConfig) ([]standex.TermOverlap, error) {
	var overlaps []standex.TermOverlap
	for _, term := range standex.LifecycleTerms {
		term := term
		overlap := standex.TermOverlap{Term: term}
		for _, std := range standards {
			pages, err := a.Pages.FindPages(ctx, standex.PageFilter{
				StandardID:       &std.ID,
				ContentSubstring: &term,
				Limit:            cfg.HitLimit,
			})
			if err != nil {
				return nil, err
			}
			overlap.Counts = append(overlap.Counts, standex.StandardCount{Standard: std, Pages: len(pages)})
		}
		overlaps = append(overlaps, overlap)
	}
	return overlaps, nil
}

func (a *Analyzer) config(fallback func() standex.CompareConfig) standex.CompareConfig {
	if a.Config != nil {
		return *a.Config
	}
	return fallback()
}

func (a *Analyzer) methodologies() []standex.Methodology {
	if a.Methodologies != nil {
		return a.Methodologies
	}
	return standex.DefaultMethodologies()
}

func (a *Analyzer) phases() []standex.Phase {
	if a.Phases != nil {
		return a.Phases
	}
	return standex.DefaultPhases()
}

// sample is one page snippet entering pairwise scoring.
type sample struct {
	pageIndex int
	snippet   string

	// best is the highest score against any other standard's samples,
	// guarded by the collector mutex during scoring.
	best int
}

type sampleSet struct {
	standard *standex.Standard
	samples  []*sample
}

func newSample(page *standex.Page, snippet string) *sample {
	return &sample{
		pageIndex: page.PageIndex,
		snippet:   snippet,
	}
}

// scoredPair is one cross-standard sample pair at or above zero score.
type scoredPair struct {
	a, b   *sampleSet
	sa, sb *sample
	score  int
}

// scorePairs runs token-set scoring over every cross-standard sample pair,
// one worker task per standard pair. It also records each sample's best
// cross-standard score for uniqueness reporting.
func (a *Analyzer) scorePairs(ctx context.Context, cfg standex.CompareConfig, sets []*sampleSet) ([]scoredPair, error) {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var mu sync.Mutex
	var pairs []scoredPair

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range sets {
		for j := i + 1; j < len(sets); j++ {
			left, right := sets[i], sets[j]
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				local := scoreSetPair(left, right)

				mu.Lock()
				defer mu.Unlock()
				for _, p := range local {
					if p.score > p.sa.best {
						p.sa.best = p.score
					}
					if p.score > p.sb.best {
						p.sb.best = p.score
					}
				}
				pairs = append(pairs, local...)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Deterministic order regardless of worker completion order.
	sort.SliceStable(pairs, func(i, j int) bool {
		pi, pj := pairs[i], pairs[j]
		if pi.score != pj.score {
			return pi.score > pj.score
		}
		if pi.a.standard.Slug != pj.a.standard.Slug {
			return pi.a.standard.Slug < pj.a.standard.Slug
		}
		if pi.b.standard.Slug != pj.b.standard.Slug {
			return pi.b.standard.Slug < pj.b.standard.Slug
		}
		if pi.sa.pageIndex != pj.sa.pageIndex {
			return pi.sa.pageIndex < pj.sa.pageIndex
		}
		return pi.sb.pageIndex < pj.sb.pageIndex
	})
	return pairs, nil
}

// scoreSetPair scores every sample pair across the two standards. The
// ratio is character-level, so even pairs sharing no exact token must be
// scored: near-identical wording can still clear the threshold.
func scoreSetPair(left, right *sampleSet) []scoredPair {
	var out []scoredPair
	for _, sa := range left.samples {
		for _, sb := range right.samples {
			score := fuzzy.TokenSetRatio(sa.snippet, sb.snippet)
			out = append(out, scoredPair{a: left, b: right, sa: sa, sb: sb, score: score})
		}
	}
	return out
}

func similarPairs(pairs []scoredPair, cfg standex.CompareConfig) []standex.SimilarityPair {
	var out []standex.SimilarityPair
	for _, p := range pairs {
		if p.score < cfg.SimilarityThreshold {
			continue
		}
		out = append(out, standex.SimilarityPair{
			A:      p.a.standard,
			B:      p.b.standard,
			AIndex: p.sa.pageIndex,
			BIndex: p.sb.pageIndex,
			Score:  p.score,
		})
		if len(out) == cfg.MaxSimilarities {
			break
		}
	}
	return out
}

// uniquePages reports sampled pages whose best cross-standard score is
// strictly below the uniqueness threshold. A page never compared to
// anything scores zero and is maximally unique.
func uniquePages(sets []*sampleSet, cfg standex.CompareConfig) []standex.StandardUniques {
	// Uniqueness only means something against at least one other standard.
	if len(sets) < 2 {
		return nil
	}

	var out []standex.StandardUniques
	for _, set := range sets {
		// MaxUniques truncates each standard's list independently.
		su := standex.StandardUniques{Standard: set.standard}
		for _, s := range set.samples {
			if len(su.Pages) == cfg.MaxUniques {
				break
			}
			if s.best >= cfg.UniquenessThreshold {
				continue
			}
			su.Pages = append(su.Pages, standex.UniquePage{
				PageIndex:  s.pageIndex,
				Uniqueness: 100 - s.best,
				Snippet:    s.snippet,
			})
		}
		if len(su.Pages) > 0 {
			out = append(out, su)
		}
	}
	return out
}

// firstContained returns the first keyword present in content, or the
// first keyword as a fallback.
func firstContained(content string, keywords []string) string {
	lower := strings.ToLower(content)
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return kw
		}
	}
	if len(keywords) > 0 {
		return keywords[0]
	}
	return ""
}
