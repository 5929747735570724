package core

import "time"

// Mode selects the assistant's dispatch policy. Business mode routes by
// keyword confidence; education and instructor modes always dispatch to the
// tutor persona.
type Mode string

const (
	ModeBusiness   Mode = "business"
	ModeEducation  Mode = "education"
	ModeInstructor Mode = "instructor"
)

// IsTutoring reports whether the mode uses fixed tutor dispatch.
func (m Mode) IsTutoring() bool {
	return m == ModeEducation || m == ModeInstructor
}

// Agent describes a specialized answering persona. Agents are immutable once
// registered in a Catalog; identity is ID.
type Agent struct {
	ID           string   `json:"id"`
	DisplayName  string   `json:"display_name"`
	Emoji        string   `json:"emoji"`
	Description  string   `json:"description"`
	Capabilities []string `json:"capabilities"`
	Keywords     []string `json:"keywords"`

	// PromptTemplate renders the full instruction text for this agent given
	// the per-request context. Set by the catalog; nil only in zero values.
	PromptTemplate func(ctx *AgentContext) string `json:"-"`
}

// Message is a single turn of conversation history, consumed read-only.
type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// Client identifies the advertiser whose data is being discussed, together
// with which platforms they have connected. Owned by the external
// client-management layer; read-only here.
type Client struct {
	Name      string                    `json:"name"`
	Platforms map[string]PlatformStatus `json:"platforms,omitempty"`
}

// PlatformStatus records whether a platform integration is connected.
type PlatformStatus struct {
	Connected bool `json:"connected"`
}

// DateRange bounds the analytics window the user is looking at. Either edge
// may be empty.
type DateRange struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// SelectedFilters carries the user's drill-down selection from the dashboard.
// An id equal to FilterAll requests the cumulative view.
type SelectedFilters struct {
	PropertyID              string `json:"property_id,omitempty"`
	MetaCampaignID          string `json:"meta_campaign_id,omitempty"`
	GoogleAdsCampaignID     string `json:"google_ads_campaign_id,omitempty"`
	LinkedInCampaignGroupID string `json:"linkedin_campaign_group_id,omitempty"`
	LinkedInCampaignID      string `json:"linkedin_campaign_id,omitempty"`
}

// FilterAll is the sentinel drill-down id meaning "all entities".
const FilterAll = "all"

// AgentContext is the full per-request input bundle: one is built per user
// turn and never shared across concurrent requests.
type AgentContext struct {
	Client              *Client             `json:"client,omitempty"`
	PlatformData        *PlatformDataBundle `json:"platform_data,omitempty"`
	ConversationHistory []Message           `json:"conversation_history,omitempty"`
	Query               string              `json:"query"`
	DateRange           *DateRange          `json:"date_range,omitempty"`
	Mode                Mode                `json:"mode"`
	SelectedFilters     SelectedFilters     `json:"selected_filters,omitempty"`
}

// RouteDecision is the router's verdict for a single query. It is produced
// once per query and not persisted.
type RouteDecision struct {
	PrimaryAgent     Agent   `json:"primary_agent"`
	SupportingAgents []Agent `json:"supporting_agents"`
	Reasoning        string  `json:"reasoning"`
	Confidence       float64 `json:"confidence"`
}
