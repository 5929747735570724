package server

import "github.com/marketpulse-ai/marketpulse/internal/assistant/core"

// agentSummary is the public catalog view of an agent. Keyword lists and
// templates stay internal.
type agentSummary struct {
	ID           string   `json:"id"`
	DisplayName  string   `json:"display_name"`
	Emoji        string   `json:"emoji"`
	Description  string   `json:"description"`
	Capabilities []string `json:"capabilities"`
}

type routeResponse struct {
	RequestID string             `json:"request_id"`
	Decision  core.RouteDecision `json:"decision"`
}

type promptResponse struct {
	RequestID string             `json:"request_id"`
	Decision  core.RouteDecision `json:"decision"`
	Prompt    string             `json:"prompt"`
}
