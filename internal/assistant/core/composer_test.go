package core

import (
	"strings"
	"testing"
)

func testAgent(t *testing.T, id string) Agent {
	t.Helper()
	a, ok := DefaultCatalog().Get(id)
	if !ok {
		t.Fatalf("agent %s not registered", id)
	}
	return a
}

func TestComposePromptIdempotent(t *testing.T) {
	agent := testAgent(t, AgentTrafficAnalyst)
	ctx := &AgentContext{
		Mode:  ModeBusiness,
		Query: "how is my traffic doing",
		Client: &Client{
			Name: "Acme Shoes",
			Platforms: map[string]PlatformStatus{
				"googleAnalytics": {Connected: true},
				"metaAds":         {Connected: true},
			},
		},
		PlatformData: &PlatformDataBundle{
			GoogleAnalytics: &GoogleAnalyticsData{
				PropertyID: "p-1",
				Metrics:    GAMetrics{Sessions: 1200, Users: 900, Pageviews: 4000},
			},
		},
		DateRange: &DateRange{Start: "2026-08-01", End: "2026-08-28"},
	}
	first := ComposePrompt(agent, ctx)
	second := ComposePrompt(agent, ctx)
	if first != second {
		t.Fatalf("composition is not deterministic")
	}
}

func TestComposePromptStrategistSections(t *testing.T) {
	agent := testAgent(t, AgentGrowthStrategist)
	ctx := &AgentContext{
		Mode: ModeBusiness,
		Client: &Client{
			Name: "Acme Shoes",
			Platforms: map[string]PlatformStatus{
				"googleAnalytics": {Connected: true},
				"googleAds":       {Connected: false},
			},
		},
	}
	got := ComposePrompt(agent, ctx)
	if !strings.Contains(got, "You are Growth Strategist") {
		t.Fatalf("missing persona intro:\n%s", got)
	}
	if !strings.Contains(got, "CONNECTED PLATFORMS for Acme Shoes: Google Analytics.") {
		t.Fatalf("missing connected-platforms section:\n%s", got)
	}
	if !strings.Contains(got, "LIMITATIONS:") {
		t.Fatalf("missing limitations footer:\n%s", got)
	}
	if !strings.Contains(got, "EXAMPLE QUESTIONS YOU HANDLE WELL:") {
		t.Fatalf("missing example questions:\n%s", got)
	}
}

func TestComposePromptTutorVariant(t *testing.T) {
	agent := testAgent(t, AgentDataMentor)
	got := ComposePrompt(agent, &AgentContext{Mode: ModeEducation})
	if !strings.Contains(got, "marketing-analytics tutor") {
		t.Fatalf("education mode should use the tutor template:\n%s", got)
	}
	if strings.Contains(got, "marketing analytics specialist") {
		t.Fatalf("tutor prompt must not carry strategist text:\n%s", got)
	}
}

func TestComposePromptNoPlatformsGuidance(t *testing.T) {
	agent := testAgent(t, AgentGrowthStrategist)
	got := ComposePrompt(agent, &AgentContext{Mode: ModeBusiness})
	if !strings.Contains(got, "CONNECTED PLATFORMS: none yet.") {
		t.Fatalf("expected guidance when nothing is connected:\n%s", got)
	}
	if strings.Contains(got, "=== CONNECTED PLATFORM DATA ===") {
		t.Fatalf("no data block expected without platform data:\n%s", got)
	}
}

func TestComposePromptDateRange(t *testing.T) {
	agent := testAgent(t, AgentTrafficAnalyst)
	got := ComposePrompt(agent, &AgentContext{
		Mode:      ModeBusiness,
		DateRange: &DateRange{Start: "2026-08-01", End: "2026-08-28"},
	})
	if !strings.Contains(got, "DATE RANGE: the user is viewing 2026-08-01 through 2026-08-28.") {
		t.Fatalf("missing date range line:\n%s", got)
	}
}

func TestRouteAndComposeBounceRateScenario(t *testing.T) {
	catalog := DefaultCatalog()
	router := NewRouter(catalog)
	ctx := &AgentContext{
		Mode:  ModeBusiness,
		Query: "Why is my bounce rate so high on mobile",
		Client: &Client{
			Name:      "Acme Shoes",
			Platforms: map[string]PlatformStatus{"googleAnalytics": {Connected: true}},
		},
		PlatformData: &PlatformDataBundle{
			GoogleAnalytics: &GoogleAnalyticsData{
				PropertyID:   "p-1",
				PropertyName: "Main Site",
				Metrics:      GAMetrics{Sessions: 5000, Users: 4200, Pageviews: 9000, BounceRate: 0.62},
				Devices: []DeviceStat{
					{Category: "mobile", Sessions: 3000, BounceRate: 0.74},
					{Category: "desktop", Sessions: 2000, BounceRate: 0.44},
				},
			},
		},
	}
	decision := router.Route(ctx.Query, ctx)
	if decision.PrimaryAgent.ID != AgentTrafficAnalyst {
		t.Fatalf("expected traffic analyst, got %s", decision.PrimaryAgent.ID)
	}
	prompt := decision.PrimaryAgent.PromptTemplate(ctx)
	if !strings.Contains(prompt, "You are Traffic Analyst") {
		t.Fatalf("missing persona intro:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Device performance:") {
		t.Fatalf("missing device block:\n%s", prompt)
	}
	if !strings.Contains(prompt, "mobile: 3,000 sessions, 74.0% bounce rate") {
		t.Fatalf("missing mobile device row:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Bounce rate: 62.0%") {
		t.Fatalf("missing aggregate bounce rate:\n%s", prompt)
	}
}
