package core

// Well-known agent ids the router depends on.
const (
	AgentGrowthStrategist  = "growth-strategist"
	AgentTrafficAnalyst    = "traffic-analyst"
	AgentCampaignOptimizer = "campaign-optimizer"
	AgentAudienceInsights  = "audience-insights"
	AgentRevenuePlanner    = "revenue-planner"
	AgentDataMentor        = "data-mentor"
)

// Catalog is an immutable, ordered collection of agents. It is built once at
// process start and read concurrently without locking afterward; insertion
// order is the stable tie-break for routing.
type Catalog struct {
	agents []Agent
	byID   map[string]int
}

// NewCatalog builds a catalog from the given agents, preserving order. Any
// agent without a prompt template gets the standard composed template.
func NewCatalog(agents ...Agent) *Catalog {
	c := &Catalog{
		agents: make([]Agent, len(agents)),
		byID:   make(map[string]int, len(agents)),
	}
	copy(c.agents, agents)
	for i := range c.agents {
		if c.agents[i].PromptTemplate == nil {
			agent := c.agents[i]
			c.agents[i].PromptTemplate = func(ctx *AgentContext) string {
				return ComposePrompt(agent, ctx)
			}
		}
		c.byID[c.agents[i].ID] = i
	}
	return c
}

// All returns the agents in registration order. The slice is a copy; the
// catalog itself is never mutated.
func (c *Catalog) All() []Agent {
	out := make([]Agent, len(c.agents))
	copy(out, c.agents)
	return out
}

// Get returns the agent with the given id.
func (c *Catalog) Get(id string) (Agent, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Agent{}, false
	}
	return c.agents[i], true
}

// Len returns the number of registered agents.
func (c *Catalog) Len() int { return len(c.agents) }

// DefaultCatalog registers the production persona set. Registration order is
// behavior: the strategist comes first so ambiguous ties resolve to the
// generalist family, and the traffic analyst precedes audience insights.
func DefaultCatalog() *Catalog {
	return NewCatalog(
		Agent{
			ID:          AgentGrowthStrategist,
			DisplayName: "Growth Strategist",
			Emoji:       "🚀",
			Description: "Generalist marketing strategist covering cross-channel performance, planning and prioritization.",
			Capabilities: []string{
				"cross-channel analysis", "growth planning", "prioritization", "reporting",
			},
			Keywords: []string{
				"strategy", "growth", "overview", "performance", "recommend",
				"improve", "insight", "marketing", "plan",
			},
		},
		Agent{
			ID:          AgentTrafficAnalyst,
			DisplayName: "Traffic Analyst",
			Emoji:       "📈",
			Description: "Website traffic specialist: sessions, engagement, bounce behavior and acquisition channels.",
			Capabilities: []string{
				"traffic analysis", "channel attribution", "engagement diagnostics",
			},
			Keywords: []string{
				"traffic", "bounce", "sessions", "pageviews", "visitors",
				"engagement", "source", "channel", "organic", "referral",
			},
		},
		Agent{
			ID:          AgentCampaignOptimizer,
			DisplayName: "Campaign Optimizer",
			Emoji:       "🎯",
			Description: "Paid-media specialist tuning campaign structure, bids and creative rotation across ad platforms.",
			Capabilities: []string{
				"campaign diagnostics", "bid strategy", "creative performance",
			},
			Keywords: []string{
				"campaign", "ads", "cpc", "ctr", "spend", "budget",
				"impression", "click", "conversion", "roas",
			},
		},
		Agent{
			ID:          AgentAudienceInsights,
			DisplayName: "Audience Insights",
			Emoji:       "👥",
			Description: "Audience specialist explaining who engages: demographics, geography and device behavior.",
			Capabilities: []string{
				"demographic analysis", "geographic analysis", "device segmentation",
			},
			Keywords: []string{
				"audience", "demographics", "age", "gender", "location",
				"city", "region", "device", "mobile", "desktop",
			},
		},
		Agent{
			ID:          AgentRevenuePlanner,
			DisplayName: "Revenue Planner",
			Emoji:       "💰",
			Description: "Spend-efficiency specialist connecting ad investment to revenue, ROI and forecasting.",
			Capabilities: []string{
				"roi analysis", "budget allocation", "forecasting",
			},
			Keywords: []string{
				"revenue", "sales", "roi", "profit", "cost", "value",
				"pricing", "forecast",
			},
		},
		Agent{
			ID:          AgentDataMentor,
			DisplayName: "Data Mentor",
			Emoji:       "🎓",
			Description: "Patient tutor that teaches marketing-analytics concepts using the student's own data as examples.",
			Capabilities: []string{
				"concept explanation", "guided learning", "terminology",
			},
			Keywords: []string{
				"explain", "learn", "teach", "understand", "definition",
				"mean", "concept",
			},
		},
	)
}
