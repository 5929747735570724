package core

import (
	"fmt"
	"strings"
)

// formatAnalyticsMulti renders the multi-property Google Analytics section.
// A property drill-down emits its callout before any property summary so the
// downstream model is biased toward the selected entity.
func formatAnalyticsMulti(data *GoogleAnalyticsMultiData, filters SelectedFilters) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Google Analytics (%d properties)\n", len(data.Properties))

	if filters.PropertyID != "" {
		if filters.PropertyID == FilterAll {
			b.WriteString(">>> The user is viewing the cumulative all-properties view. Discuss aggregate performance across every property below.\n")
		} else if p := data.FindProperty(filters.PropertyID); p != nil {
			fmt.Fprintf(&b, ">>> The user has selected the property %q (%s) in the dashboard. Prioritize this property in your answer.\n", p.PropertyName, p.PropertyID)
		}
	}

	for i := range data.Properties {
		b.WriteString("\n")
		writeProperty(&b, &data.Properties[i].GoogleAnalyticsData)
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatAnalyticsSingle renders the single-property fallback section.
func formatAnalyticsSingle(data *GoogleAnalyticsData, filters SelectedFilters) string {
	var b strings.Builder
	b.WriteString("## Google Analytics\n")
	if filters.PropertyID == FilterAll {
		b.WriteString(">>> The user is viewing the cumulative all-properties view.\n")
	} else if filters.PropertyID != "" && filters.PropertyID == data.PropertyID {
		fmt.Fprintf(&b, ">>> The user has selected the property %q (%s) in the dashboard. Prioritize this property in your answer.\n", data.PropertyName, data.PropertyID)
	}
	b.WriteString("\n")
	writeProperty(&b, data)
	return strings.TrimRight(b.String(), "\n")
}

// writeProperty renders one property's summary. A property with no traffic
// gets a single status line instead of zero-filled metric rows, so the model
// never mistakes silence for measured zeros.
func writeProperty(b *strings.Builder, d *GoogleAnalyticsData) {
	name := d.PropertyName
	if name == "" {
		name = d.PropertyID
	}
	if name != "" {
		fmt.Fprintf(b, "Property %q (%s):\n", name, d.PropertyID)
	} else {
		b.WriteString("Property:\n")
	}

	if !d.Metrics.HasTraffic() && d.Realtime.ActiveUsers == 0 {
		b.WriteString("  No traffic recorded in the selected date range.\n")
		return
	}

	m := d.Metrics
	fmt.Fprintf(b, "  Sessions: %s | Users: %s (%s new) | Pageviews: %s\n",
		formatInt(m.Sessions), formatInt(m.Users), formatInt(m.NewUsers), formatInt(m.Pageviews))
	fmt.Fprintf(b, "  Bounce rate: %s | Engagement rate: %s | Avg session: %s\n",
		formatPercent(m.BounceRate), formatPercent(m.EngagementRate), formatDuration(m.AvgSessionDuration))
	fmt.Fprintf(b, "  Active users right now: %s\n", formatInt(d.Realtime.ActiveUsers))

	if len(d.TrafficSources) > 0 {
		rows, hidden := capRows(d.TrafficSources, maxSourceRows)
		b.WriteString("  Traffic sources:\n")
		for _, s := range rows {
			label := s.Source
			if s.Medium != "" {
				label += " / " + s.Medium
			}
			fmt.Fprintf(b, "    - %s: %s sessions\n", label, formatInt(s.Sessions))
		}
		if hidden > 0 {
			fmt.Fprintf(b, "    (%d more sources not shown)\n", hidden)
		}
	}

	if len(d.TopPages) > 0 {
		rows, hidden := capRows(d.TopPages, maxPageRows)
		b.WriteString("  Top pages:\n")
		for _, p := range rows {
			label := p.Path
			if p.Title != "" {
				label = fmt.Sprintf("%s (%s)", p.Title, p.Path)
			}
			fmt.Fprintf(b, "    - %s: %s views\n", label, formatInt(p.Views))
		}
		if hidden > 0 {
			fmt.Fprintf(b, "    (%d more pages not shown)\n", hidden)
		}
	}

	if len(d.Devices) > 0 {
		b.WriteString("  Device performance:\n")
		for _, dev := range d.Devices {
			fmt.Fprintf(b, "    - %s: %s sessions, %s bounce rate\n",
				dev.Category, formatInt(dev.Sessions), formatPercent(dev.BounceRate))
		}
	}

	if len(d.Cities) > 0 {
		rows, hidden := capRows(d.Cities, maxCityRows)
		b.WriteString("  Top cities:\n")
		for _, c := range rows {
			fmt.Fprintf(b, "    - %s: %s sessions\n", c.City, formatInt(c.Sessions))
		}
		if hidden > 0 {
			fmt.Fprintf(b, "    (%d more cities not shown)\n", hidden)
		}
	}
}
