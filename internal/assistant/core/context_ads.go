package core

import (
	"fmt"
	"sort"
	"strings"
)

// formatGoogleAds renders the Google Ads section. An upstream API error
// suppresses every numeric line: reporting "$0 spend" when the fetch failed
// would mislead the model.
func formatGoogleAds(data *GoogleAdsData, filters SelectedFilters) string {
	var b strings.Builder
	b.WriteString("## Google Ads\n")

	if data.Error != "" {
		fmt.Fprintf(&b, "Google Ads data could not be retrieved: %s\n", data.Error)
		b.WriteString("Figures for this platform are unavailable for the selected range; explain the gap instead of quoting zeros.\n")
		return strings.TrimRight(b.String(), "\n")
	}

	if filters.GoogleAdsCampaignID != "" {
		if filters.GoogleAdsCampaignID == FilterAll {
			b.WriteString(">>> The user is viewing all Google Ads campaigns cumulatively.\n")
		} else if c := data.FindCampaign(filters.GoogleAdsCampaignID); c != nil {
			fmt.Fprintf(&b, ">>> The user has selected the campaign %q (%s). Prioritize this campaign in your answer.\n", c.Name, c.ID)
		}
	}

	m := data.Metrics
	cur := m.Currency
	if m.Cost == 0 && m.Impressions == 0 && m.Clicks == 0 && len(data.Campaigns) == 0 {
		b.WriteString("No ad spend or delivery recorded in the selected date range.\n")
		return strings.TrimRight(b.String(), "\n")
	}

	fmt.Fprintf(&b, "Totals: %s spend | %s impressions | %s clicks | CTR %s | Avg CPC %s\n",
		formatMoney(m.Cost, cur), formatInt(m.Impressions), formatInt(m.Clicks),
		formatRate(m.CTR), formatMoney(m.AvgCPC, cur))
	fmt.Fprintf(&b, "Conversions: %s (value %s)\n",
		formatCount(m.Conversions), formatMoney(m.ConversionValue, cur))

	if len(data.Campaigns) > 0 {
		rows, hidden := capRows(data.Campaigns, maxCampaignRows)
		b.WriteString("Campaigns:\n")
		for _, c := range rows {
			fmt.Fprintf(&b, "  - %s%s: %s spend, %s impressions, %s clicks, %s conversions\n",
				c.Name, statusSuffix(c.Status),
				formatMoney(c.Cost, cur), formatInt(c.Impressions), formatInt(c.Clicks), formatCount(c.Conversions))
		}
		if hidden > 0 {
			fmt.Fprintf(&b, "  (%d more campaigns not shown)\n", hidden)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatMetaAds renders the Meta Ads section. Demographic and geographic
// tables are sorted by spend descending before capping; campaign lists keep
// the payload's order.
func formatMetaAds(data *MetaAdsData, filters SelectedFilters) string {
	var b strings.Builder
	b.WriteString("## Meta Ads\n")

	if filters.MetaCampaignID != "" {
		if filters.MetaCampaignID == FilterAll {
			b.WriteString(">>> The user is viewing all Meta campaigns cumulatively.\n")
		} else if c := data.FindCampaign(filters.MetaCampaignID); c != nil {
			fmt.Fprintf(&b, ">>> The user has selected the campaign %q (%s). Prioritize this campaign in your answer.\n", c.Name, c.ID)
		}
	}

	m := data.Metrics
	cur := m.Currency
	if m.Spend == 0 && m.Impressions == 0 && m.Clicks == 0 && len(data.Campaigns) == 0 {
		b.WriteString("No ad spend or delivery recorded in the selected date range.\n")
		return strings.TrimRight(b.String(), "\n")
	}

	fmt.Fprintf(&b, "Totals: %s spend | %s impressions | %s reach | %s clicks\n",
		formatMoney(m.Spend, cur), formatInt(m.Impressions), formatInt(m.Reach), formatInt(m.Clicks))
	fmt.Fprintf(&b, "CTR %s | CPC %s | CPM %s\n",
		formatRate(m.CTR), formatMoney(m.CPC, cur), formatMoney(m.CPM, cur))

	if len(data.Campaigns) > 0 {
		rows, hidden := capRows(data.Campaigns, maxCampaignRows)
		b.WriteString("Campaigns:\n")
		for _, c := range rows {
			fmt.Fprintf(&b, "  - %s%s: %s spend, %s impressions, %s clicks, %s results\n",
				c.Name, statusSuffix(c.Status),
				formatMoney(c.Spend, cur), formatInt(c.Impressions), formatInt(c.Clicks), formatInt(c.Results))
		}
		if hidden > 0 {
			fmt.Fprintf(&b, "  (%d more campaigns not shown)\n", hidden)
		}
	}

	if len(data.Demographics) > 0 {
		demo := make([]DemographicStat, len(data.Demographics))
		copy(demo, data.Demographics)
		sort.SliceStable(demo, func(i, j int) bool { return demo[i].Spend > demo[j].Spend })
		rows, _ := capRows(demo, maxBreakdownRows)
		b.WriteString("Top demographics by spend:\n")
		for _, d := range rows {
			fmt.Fprintf(&b, "  - %s %s: %s spend, %s impressions\n",
				d.Gender, d.Age, formatMoney(d.Spend, cur), formatInt(d.Impressions))
		}
	}

	if len(data.Geography) > 0 {
		geo := make([]GeoStat, len(data.Geography))
		copy(geo, data.Geography)
		sort.SliceStable(geo, func(i, j int) bool { return geo[i].Spend > geo[j].Spend })
		rows, _ := capRows(geo, maxBreakdownRows)
		b.WriteString("Top regions by spend:\n")
		for _, g := range rows {
			fmt.Fprintf(&b, "  - %s: %s spend, %s impressions\n",
				g.Region, formatMoney(g.Spend, cur), formatInt(g.Impressions))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatLinkedInAds renders the LinkedIn Ads section. Both the campaign
// group and the campaign drill-downs can be active at once.
func formatLinkedInAds(data *LinkedInAdsData, filters SelectedFilters) string {
	var b strings.Builder
	b.WriteString("## LinkedIn Ads\n")

	if filters.LinkedInCampaignGroupID != "" {
		if filters.LinkedInCampaignGroupID == FilterAll {
			b.WriteString(">>> The user is viewing all LinkedIn campaign groups cumulatively.\n")
		} else if g := data.FindCampaignGroup(filters.LinkedInCampaignGroupID); g != nil {
			fmt.Fprintf(&b, ">>> The user has selected the campaign group %q (%s). Prioritize this group in your answer.\n", g.Name, g.ID)
		}
	}
	if filters.LinkedInCampaignID != "" {
		if filters.LinkedInCampaignID == FilterAll {
			b.WriteString(">>> The user is viewing all LinkedIn campaigns cumulatively.\n")
		} else if c := data.FindCampaign(filters.LinkedInCampaignID); c != nil {
			fmt.Fprintf(&b, ">>> The user has selected the campaign %q (%s). Prioritize this campaign in your answer.\n", c.Name, c.ID)
		}
	}

	m := data.Metrics
	cur := m.Currency
	if m.Spend == 0 && m.Impressions == 0 && m.Clicks == 0 && len(data.Campaigns) == 0 && len(data.CampaignGroups) == 0 {
		b.WriteString("No ad spend or delivery recorded in the selected date range.\n")
		return strings.TrimRight(b.String(), "\n")
	}

	fmt.Fprintf(&b, "Totals: %s spend | %s impressions | %s clicks | CTR %s | %s conversions\n",
		formatMoney(m.Spend, cur), formatInt(m.Impressions), formatInt(m.Clicks),
		formatRate(m.CTR), formatInt(m.Conversions))

	if len(data.CampaignGroups) > 0 {
		rows, hidden := capRows(data.CampaignGroups, maxCampaignRows)
		b.WriteString("Campaign groups:\n")
		for _, g := range rows {
			fmt.Fprintf(&b, "  - %s%s: %s spend\n", g.Name, statusSuffix(g.Status), formatMoney(g.Spend, cur))
		}
		if hidden > 0 {
			fmt.Fprintf(&b, "  (%d more campaign groups not shown)\n", hidden)
		}
	}

	if len(data.Campaigns) > 0 {
		rows, hidden := capRows(data.Campaigns, maxCampaignRows)
		b.WriteString("Campaigns:\n")
		for _, c := range rows {
			fmt.Fprintf(&b, "  - %s%s: %s spend, %s impressions, %s clicks\n",
				c.Name, statusSuffix(c.Status),
				formatMoney(c.Spend, cur), formatInt(c.Impressions), formatInt(c.Clicks))
		}
		if hidden > 0 {
			fmt.Fprintf(&b, "  (%d more campaigns not shown)\n", hidden)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func statusSuffix(status string) string {
	if status == "" {
		return ""
	}
	return fmt.Sprintf(" [%s]", strings.ToLower(status))
}
