// Package assistant bundles the agent catalog, router and prompt composer
// behind a single facade for the HTTP server and CLI.
package assistant

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/marketpulse-ai/marketpulse/internal/assistant/core"
	"github.com/marketpulse-ai/marketpulse/internal/assistant/telemetry"
)

// Assistant routes queries to agents and composes their instruction prompts.
// It is safe for concurrent use: the catalog is immutable and every request
// carries its own context.
type Assistant struct {
	catalog *core.Catalog
	router  *core.Router
	logger  *log.Logger
}

// New builds an assistant over the given catalog. A nil catalog gets the
// default production persona set.
func New(catalog *core.Catalog) *Assistant {
	if catalog == nil {
		catalog = core.DefaultCatalog()
	}
	return &Assistant{
		catalog: catalog,
		router:  core.NewRouter(catalog),
		logger:  log.New(os.Stdout, "[ASSISTANT] ", log.LstdFlags),
	}
}

// Catalog returns the agent catalog backing this assistant.
func (a *Assistant) Catalog() *core.Catalog { return a.catalog }

// Route returns the routing decision for the context's query without
// composing a prompt.
func (a *Assistant) Route(ctx *core.AgentContext) core.RouteDecision {
	if ctx == nil {
		ctx = &core.AgentContext{}
	}
	decision := a.router.Route(ctx.Query, ctx)
	a.observe(ctx, decision)
	return decision
}

// BuildInstruction routes the context's query and composes the selected
// agent's full instruction prompt.
func (a *Assistant) BuildInstruction(ctx *core.AgentContext) (core.RouteDecision, string) {
	if ctx == nil {
		ctx = &core.AgentContext{}
	}
	started := time.Now()
	decision := a.router.Route(ctx.Query, ctx)
	a.observe(ctx, decision)

	var prompt string
	if decision.PrimaryAgent.PromptTemplate != nil {
		prompt = decision.PrimaryAgent.PromptTemplate(ctx)
	}

	telemetry.PromptBytes.Observe(float64(len(prompt)))
	telemetry.ComposeDuration.Observe(time.Since(started).Seconds())
	a.logger.Printf("query routed to %s (confidence %.2f, prompt %d bytes)",
		decision.PrimaryAgent.ID, decision.Confidence, len(prompt))
	return decision, prompt
}

func (a *Assistant) observe(ctx *core.AgentContext, decision core.RouteDecision) {
	mode := string(ctx.Mode)
	if mode == "" {
		mode = string(core.ModeBusiness)
	}
	telemetry.RouteDecisions.WithLabelValues(decision.PrimaryAgent.ID, mode).Inc()
	telemetry.RouteConfidence.Observe(decision.Confidence)
	if strings.Contains(decision.Reasoning, "confidence floor") {
		telemetry.RouteFallbacks.Inc()
	}
}
