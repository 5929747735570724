package core

import "strings"

// Caps applied to breakdown tables to bound prompt growth. Campaign lists
// keep the payload's own order; demographic and geographic tables are
// re-sorted by spend before capping.
const (
	maxCampaignRows  = 5
	maxSourceRows    = 5
	maxPageRows      = 5
	maxCityRows      = 3
	maxBreakdownRows = 5
)

// BuildPlatformContext serializes the platform bundle into the ordered,
// bounded text block embedded in the final prompt. Platforms render in a
// fixed order: Google Analytics (multi-property preferred), Google Ads, Meta
// Ads, LinkedIn Ads. Returns "" when there is no data at all, with no
// leading separator.
func BuildPlatformContext(bundle *PlatformDataBundle, filters SelectedFilters) string {
	if bundle.IsEmpty() {
		return ""
	}
	bundle.Normalize()

	var sections []string
	if bundle.GoogleAnalyticsMulti != nil && len(bundle.GoogleAnalyticsMulti.Properties) > 0 {
		sections = append(sections, formatAnalyticsMulti(bundle.GoogleAnalyticsMulti, filters))
	} else if bundle.GoogleAnalytics != nil {
		sections = append(sections, formatAnalyticsSingle(bundle.GoogleAnalytics, filters))
	}
	if bundle.GoogleAds != nil {
		sections = append(sections, formatGoogleAds(bundle.GoogleAds, filters))
	}
	if bundle.MetaAds != nil {
		sections = append(sections, formatMetaAds(bundle.MetaAds, filters))
	}
	if bundle.LinkedInAds != nil {
		sections = append(sections, formatLinkedInAds(bundle.LinkedInAds, filters))
	}

	sections = dropEmpty(sections)
	if len(sections) == 0 {
		return ""
	}
	return "=== CONNECTED PLATFORM DATA ===\n\n" + strings.Join(sections, "\n\n")
}

func dropEmpty(sections []string) []string {
	out := sections[:0]
	for _, s := range sections {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}

// capRows bounds a table to n rows, reporting how many were hidden.
func capRows[T any](rows []T, n int) ([]T, int) {
	if len(rows) <= n {
		return rows, 0
	}
	return rows[:n], len(rows) - n
}
