package core

import (
	"fmt"
	"strings"
)

// personaKind tags the two instructional template families. The persona is
// dispatched once per composition, so template text and footer text cannot
// drift apart across call sites.
type personaKind int

const (
	personaStrategist personaKind = iota
	personaTutor
)

type persona struct {
	kind             personaKind
	limitations      string
	exampleQuestions []string
}

// personaFor maps the request mode to its persona variant. Business mode
// never receives the tutor template and tutoring modes never receive the
// strategist template, mirroring the router's dispatch policy.
func personaFor(mode Mode) persona {
	if mode.IsTutoring() {
		return persona{
			kind: personaTutor,
			limitations: strings.TrimSpace(`
LIMITATIONS:
- You teach from the data summaries above; never invent numbers that are not shown.
- You cannot change campaigns, budgets or account settings.
- If a concept needs data the student has not connected, say so and explain the concept abstractly.`),
			exampleQuestions: []string{
				"What does bounce rate actually measure?",
				"Why is CTR different from conversion rate?",
				"Walk me through what my traffic sources table means.",
			},
		}
	}
	return persona{
		kind: personaStrategist,
		limitations: strings.TrimSpace(`
LIMITATIONS:
- You only see the analytics summaries above, not the full account; large tables are truncated to top entries.
- You cannot make changes to any ad platform; give recommendations, not actions.
- When a platform reports a data error above, explain the gap instead of guessing figures.`),
		exampleQuestions: []string{
			"Why is my bounce rate so high on mobile?",
			"Which campaign should get more budget next month?",
			"Where are my highest-value visitors coming from?",
		},
	}
}

// intro renders the persona's opening instruction block for an agent.
func (p persona) intro(agent Agent) string {
	if p.kind == personaTutor {
		return strings.TrimSpace(fmt.Sprintf(`
You are %s %s, a patient marketing-analytics tutor.
%s

Teaching style:
- Explain one concept at a time in plain language, then tie it back to the student's own numbers when data is available below.
- Ask a short check-in question after each explanation.
- Prefer small worked examples over abstract definitions.`,
			agent.DisplayName, agent.Emoji, agent.Description))
	}
	return strings.TrimSpace(fmt.Sprintf(`
You are %s %s, a marketing analytics specialist for this client.
%s

How you answer:
- Ground every claim in the platform data below; quote the relevant figures.
- Lead with the direct answer, then the supporting evidence, then one or two concrete next steps.
- Flag data gaps explicitly rather than papering over them.`,
		agent.DisplayName, agent.Emoji, agent.Description))
}

// platformDisplayOrder fixes both the display names and the rendering order
// of the connected-platforms section, keeping composition deterministic.
var platformDisplayOrder = []struct {
	key  string
	name string
}{
	{"googleAnalytics", "Google Analytics"},
	{"googleAds", "Google Ads"},
	{"metaAds", "Meta Ads"},
	{"linkedInAds", "LinkedIn Ads"},
}

// connectedPlatformsSection describes which platforms the client has
// connected, with guidance text when there are none.
func connectedPlatformsSection(client *Client) string {
	var connected []string
	if client != nil {
		for _, p := range platformDisplayOrder {
			if st, ok := client.Platforms[p.key]; ok && st.Connected {
				connected = append(connected, p.name)
			}
		}
	}
	if len(connected) == 0 {
		return "CONNECTED PLATFORMS: none yet. Encourage the user to connect Google Analytics or an ad platform so you can answer from their real data; until then answer in general terms."
	}
	name := ""
	if client != nil && client.Name != "" {
		name = fmt.Sprintf(" for %s", client.Name)
	}
	return fmt.Sprintf("CONNECTED PLATFORMS%s: %s.", name, strings.Join(connected, ", "))
}

// footer renders the persona's fixed limitations and example questions.
func (p persona) footer() string {
	var b strings.Builder
	b.WriteString(p.limitations)
	b.WriteString("\n\nEXAMPLE QUESTIONS YOU HANDLE WELL:\n")
	for _, q := range p.exampleQuestions {
		fmt.Fprintf(&b, "- %s\n", q)
	}
	return strings.TrimRight(b.String(), "\n")
}
