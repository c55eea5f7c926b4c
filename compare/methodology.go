package compare

import (
	"strings"

	"github.com/standexhq/standex"
)

// attributeMethodologies marks hit snippets that carry a methodology's
// signature vocabulary. A keyword group only fires for standards whose
// title names the methodology, so shared terms are never misattributed
// across lineages. At most one match per page per group is reported.
func attributeMethodologies(hits []standex.StandardHits, methodologies []standex.Methodology, limit int) []standex.MethodologyMatch {
	var out []standex.MethodologyMatch
	for _, m := range methodologies {
		label := strings.ToLower(m.Label)
		for _, sh := range hits {
			if !strings.Contains(strings.ToLower(sh.Standard.Title), label) {
				continue
			}
			for _, hit := range sh.Hits {
				if len(out) == limit {
					return out
				}
				kw, ok := containedKeyword(hit.Snippet, m.Keywords)
				if !ok {
					continue
				}
				out = append(out, standex.MethodologyMatch{
					Label:     m.Label,
					Keyword:   kw,
					Standard:  sh.Standard,
					PageIndex: hit.PageIndex,
					Snippet:   hit.Snippet,
				})
			}
		}
	}
	return out
}

func containedKeyword(snippet string, keywords []string) (string, bool) {
	lower := strings.ToLower(snippet)
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return kw, true
		}
	}
	return "", false
}
