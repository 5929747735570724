package core

import "strings"

// Empirically tuned scoring constants. These are load-bearing product
// behavior; do not rebalance them without guidance.
const (
	// confidenceFloor is the minimum top score required before a specialist
	// is preferred over the default strategist.
	confidenceFloor = 0.1
	// fallbackConfidence is reported when the floor forces the default agent.
	fallbackConfidence = 0.5
	// keywordWeightDivisor converts keyword length into match weight.
	keywordWeightDivisor = 10.0
)

// KeywordConfidence scores how well a lower-cased query matches a keyword
// list, returning a value in [0,1]. Each keyword contained in the query (as
// a substring, case-folded) counts once toward the base score and adds a
// length-proportional weight. Keyword order does not affect the result.
//
// Known quirk: because the weight term grows with keyword length rather than
// match quality, a query hitting several short keywords saturates at 1.0
// quickly. Kept for behavioral compatibility.
func KeywordConfidence(queryLower string, keywords []string) float64 {
	if len(keywords) == 0 {
		return 0
	}
	matchCount := 0
	matchWeight := 0.0
	for _, kw := range keywords {
		if strings.Contains(queryLower, strings.ToLower(kw)) {
			matchCount++
			matchWeight += float64(len(kw)) / keywordWeightDivisor
		}
	}
	n := float64(len(keywords))
	score := float64(matchCount)/n + matchWeight/n
	if score > 1.0 {
		return 1.0
	}
	return score
}
