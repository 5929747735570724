package core

import (
	"fmt"
	"sort"
	"strings"
)

// Router selects the answering agent for a query. It holds only a reference
// to the immutable catalog, so concurrent Route calls need no locking.
type Router struct {
	catalog *Catalog
}

// NewRouter creates a router over the given catalog.
func NewRouter(catalog *Catalog) *Router {
	return &Router{catalog: catalog}
}

// Route picks the primary agent for a query. Every input has a defined
// output: tutoring modes dispatch to the fixed tutor persona, business mode
// scores the catalog, and anything below the confidence floor falls back to
// the default strategist.
func (r *Router) Route(query string, ctx *AgentContext) RouteDecision {
	if ctx != nil && ctx.Mode.IsTutoring() {
		if tutor, ok := r.catalog.Get(AgentDataMentor); ok {
			return RouteDecision{
				PrimaryAgent:     tutor,
				SupportingAgents: nil,
				Reasoning:        fmt.Sprintf("%s mode uses fixed dispatch to the %s persona", ctx.Mode, tutor.DisplayName),
				Confidence:       1.0,
			}
		}
	}

	queryLower := strings.ToLower(query)
	type scored struct {
		agent Agent
		score float64
	}
	candidates := make([]scored, 0, r.catalog.Len())
	for _, agent := range r.catalog.All() {
		candidates = append(candidates, scored{agent: agent, score: KeywordConfidence(queryLower, agent.Keywords)})
	}
	// Stable sort keeps registration order among equal scores.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) == 0 || candidates[0].score < confidenceFloor {
		if fallback, ok := r.catalog.Get(AgentGrowthStrategist); ok {
			return RouteDecision{
				PrimaryAgent:     fallback,
				SupportingAgents: nil,
				Reasoning:        "no specialist matched the query above the confidence floor; defaulting to the generalist strategist",
				Confidence:       fallbackConfidence,
			}
		}
		if len(candidates) == 0 {
			return RouteDecision{Reasoning: "catalog is empty"}
		}
	}

	top := candidates[0]
	return RouteDecision{
		PrimaryAgent:     top.agent,
		SupportingAgents: nil,
		Reasoning:        fmt.Sprintf("selected %s (confidence %.2f) from keyword match", top.agent.DisplayName, top.score),
		Confidence:       top.score,
	}
}
