package core

import (
	"math"
	"strings"
	"testing"
)

func TestRouteTutoringModesUseDataMentor(t *testing.T) {
	r := NewRouter(DefaultCatalog())
	for _, mode := range []Mode{ModeEducation, ModeInstructor} {
		d := r.Route("what should I spend on ads", &AgentContext{Mode: mode})
		if d.PrimaryAgent.ID != AgentDataMentor {
			t.Fatalf("mode %s: expected %s, got %s", mode, AgentDataMentor, d.PrimaryAgent.ID)
		}
		if d.Confidence != 1.0 {
			t.Fatalf("mode %s: expected confidence 1.0, got %v", mode, d.Confidence)
		}
	}
}

func TestRouteBusinessKeywordMatch(t *testing.T) {
	r := NewRouter(DefaultCatalog())
	d := r.Route("compare my organic traffic against referral channels", &AgentContext{Mode: ModeBusiness})
	if d.PrimaryAgent.ID != AgentTrafficAnalyst {
		t.Fatalf("expected %s, got %s (%s)", AgentTrafficAnalyst, d.PrimaryAgent.ID, d.Reasoning)
	}
	if d.Confidence < 0.1 {
		t.Fatalf("confidence below floor: %v", d.Confidence)
	}
}

func TestRouteUniqueKeywordSelectsOwner(t *testing.T) {
	r := NewRouter(DefaultCatalog())
	d := r.Route("show me revenue", &AgentContext{Mode: ModeBusiness})
	if d.PrimaryAgent.ID != AgentRevenuePlanner {
		t.Fatalf("expected %s for its unique keyword, got %s (%s)",
			AgentRevenuePlanner, d.PrimaryAgent.ID, d.Reasoning)
	}
}

func TestRouteFallsBackBelowFloor(t *testing.T) {
	r := NewRouter(DefaultCatalog())
	d := r.Route("hello there", &AgentContext{Mode: ModeBusiness})
	if d.PrimaryAgent.ID != AgentGrowthStrategist {
		t.Fatalf("expected fallback to %s, got %s", AgentGrowthStrategist, d.PrimaryAgent.ID)
	}
	if d.Confidence != 0.5 {
		t.Fatalf("expected fallback confidence 0.5, got %v", d.Confidence)
	}
	if !strings.Contains(d.Reasoning, "confidence floor") {
		t.Fatalf("fallback reasoning should mention the confidence floor: %q", d.Reasoning)
	}
}

func TestRouteTieBreaksByRegistrationOrder(t *testing.T) {
	// "bounce" scores the traffic analyst and "mobile" scores audience
	// insights identically; the earlier registration must win.
	r := NewRouter(DefaultCatalog())
	d := r.Route("Why is my bounce rate so high on mobile", &AgentContext{Mode: ModeBusiness})
	if d.PrimaryAgent.ID != AgentTrafficAnalyst {
		t.Fatalf("expected tie to resolve to %s, got %s", AgentTrafficAnalyst, d.PrimaryAgent.ID)
	}
	if math.Abs(d.Confidence-0.16) > 1e-9 {
		t.Fatalf("expected confidence 0.16, got %v", d.Confidence)
	}
}

func TestRouteEmptyModeDefaultsToScoring(t *testing.T) {
	r := NewRouter(DefaultCatalog())
	d := r.Route("which campaign has the best ctr for my budget", &AgentContext{})
	if d.PrimaryAgent.ID != AgentCampaignOptimizer {
		t.Fatalf("expected %s, got %s (%s)", AgentCampaignOptimizer, d.PrimaryAgent.ID, d.Reasoning)
	}
}

func TestRouteEmptyCatalog(t *testing.T) {
	r := NewRouter(NewCatalog())
	d := r.Route("anything", &AgentContext{Mode: ModeBusiness})
	if d.PrimaryAgent.ID != "" {
		t.Fatalf("expected zero decision on empty catalog, got %q", d.PrimaryAgent.ID)
	}
}
