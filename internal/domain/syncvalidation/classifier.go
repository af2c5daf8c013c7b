package syncvalidation

import "sort"

// ---------------------------------------------------------------------------
// Finding Classifier
// ---------------------------------------------------------------------------
//
// The classifier normalizes the raw findings collected from the rule
// evaluators: duplicates are dropped, findings are ranked by severity, and
// the recommendation list is derived.

// ClassifyFindings deduplicates findings by (code, field, value) and orders
// them by severity rank, most severe first. Findings of equal severity keep
// their relative order.
func ClassifyFindings(findings []Finding) []Finding {
	type key struct {
		code  string
		field string
		value string
	}
	seen := make(map[key]struct{}, len(findings))
	deduped := make([]Finding, 0, len(findings))
	for _, f := range findings {
		k := key{f.Code, f.Field, f.Value}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		deduped = append(deduped, f)
	}

	sort.SliceStable(deduped, func(i, j int) bool {
		return deduped[i].Severity.Rank() < deduped[j].Severity.Rank()
	})

	return deduped
}

// BuildRecommendations derives the deduplicated recommendation list for a
// result. A critical error prepends the standing critical-error advisory;
// each distinct error and warning recommendation follows in finding order.
func BuildRecommendations(errors, warnings []Finding) []string {
	var recommendations []string
	seen := make(map[string]struct{})

	appendRec := func(rec string) {
		if rec == "" {
			return
		}
		if _, ok := seen[rec]; ok {
			return
		}
		seen[rec] = struct{}{}
		recommendations = append(recommendations, rec)
	}

	for _, f := range errors {
		if f.Severity == SeverityCritical {
			appendRec(RecommendationCriticalErrors)
			break
		}
	}
	for _, f := range errors {
		appendRec(f.Recommendation)
	}
	for _, f := range warnings {
		appendRec(f.Recommendation)
	}

	return recommendations
}
