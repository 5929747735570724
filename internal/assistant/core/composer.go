package core

import (
	"fmt"
	"strings"
)

// ComposePrompt renders the complete instruction text for an agent over a
// per-request context. Composition is a pure function of its inputs: repeated
// calls with the same arguments produce byte-identical output, so callers may
// compose speculatively (previews, retries) without side effects.
func ComposePrompt(agent Agent, ctx *AgentContext) string {
	if ctx == nil {
		ctx = &AgentContext{}
	}
	p := personaFor(ctx.Mode)

	sections := []string{
		p.intro(agent),
		connectedPlatformsSection(ctx.Client),
	}

	if line := dateRangeLine(ctx.DateRange); line != "" {
		sections = append(sections, line)
	}

	if ctx.PlatformData != nil {
		if data := BuildPlatformContext(ctx.PlatformData, ctx.SelectedFilters); data != "" {
			sections = append(sections, data)
		}
	}

	sections = append(sections, p.footer())
	return strings.Join(sections, "\n\n")
}

func dateRangeLine(dr *DateRange) string {
	if dr == nil {
		return ""
	}
	switch {
	case dr.Start != "" && dr.End != "":
		return fmt.Sprintf("DATE RANGE: the user is viewing %s through %s.", dr.Start, dr.End)
	case dr.Start != "":
		return fmt.Sprintf("DATE RANGE: the user is viewing data from %s onward.", dr.Start)
	case dr.End != "":
		return fmt.Sprintf("DATE RANGE: the user is viewing data up to %s.", dr.End)
	}
	return ""
}
