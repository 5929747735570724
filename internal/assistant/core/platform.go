package core

// Per-platform analytics payload records. Every numeric field may be absent
// in the inbound JSON and decodes to zero; every list may be absent and
// decodes to nil. Normalize applies the remaining boundary defaults once so
// the formatters never need per-use-site nil checks.

// PlatformDataBundle maps platform keys to their payloads. All entries are
// optional; a nil or empty bundle produces no context at all.
type PlatformDataBundle struct {
	GoogleAnalytics      *GoogleAnalyticsData      `json:"googleAnalytics,omitempty"`
	GoogleAnalyticsMulti *GoogleAnalyticsMultiData `json:"googleAnalyticsMulti,omitempty"`
	GoogleAds            *GoogleAdsData            `json:"googleAds,omitempty"`
	MetaAds              *MetaAdsData              `json:"metaAds,omitempty"`
	LinkedInAds          *LinkedInAdsData          `json:"linkedInAds,omitempty"`
}

// IsEmpty reports whether no platform carries any payload.
func (b *PlatformDataBundle) IsEmpty() bool {
	if b == nil {
		return true
	}
	return b.GoogleAnalytics == nil && b.GoogleAnalyticsMulti == nil &&
		b.GoogleAds == nil && b.MetaAds == nil && b.LinkedInAds == nil
}

// Normalize fills boundary defaults on every present platform payload.
func (b *PlatformDataBundle) Normalize() {
	if b == nil {
		return
	}
	if b.GoogleAnalytics != nil {
		b.GoogleAnalytics.normalize()
	}
	if b.GoogleAnalyticsMulti != nil {
		for i := range b.GoogleAnalyticsMulti.Properties {
			b.GoogleAnalyticsMulti.Properties[i].normalize()
		}
	}
	if b.GoogleAds != nil {
		if b.GoogleAds.Metrics.Currency == "" {
			b.GoogleAds.Metrics.Currency = "USD"
		}
	}
	if b.MetaAds != nil {
		if b.MetaAds.Metrics.Currency == "" {
			b.MetaAds.Metrics.Currency = "USD"
		}
	}
	if b.LinkedInAds != nil {
		if b.LinkedInAds.Metrics.Currency == "" {
			b.LinkedInAds.Metrics.Currency = "USD"
		}
	}
}

// ---------- Google Analytics ----------

// GAMetrics is the aggregate metric set for one property and date range.
// Rates are fractions in [0,1]; AvgSessionDuration is seconds.
type GAMetrics struct {
	Sessions           int64   `json:"sessions"`
	Users              int64   `json:"users"`
	NewUsers           int64   `json:"new_users"`
	Pageviews          int64   `json:"pageviews"`
	BounceRate         float64 `json:"bounce_rate"`
	EngagementRate     float64 `json:"engagement_rate"`
	AvgSessionDuration float64 `json:"avg_session_duration"`
}

// HasTraffic reports whether the property saw any activity in range.
func (m GAMetrics) HasTraffic() bool {
	return m.Sessions > 0 || m.Users > 0 || m.Pageviews > 0
}

// GARealtime carries the live snapshot for a property.
type GARealtime struct {
	ActiveUsers int64 `json:"active_users"`
}

// TrafficSource is one row of the source/medium breakdown.
type TrafficSource struct {
	Source   string `json:"source"`
	Medium   string `json:"medium,omitempty"`
	Sessions int64  `json:"sessions"`
}

// PageStat is one row of the top-pages breakdown.
type PageStat struct {
	Path  string `json:"path"`
	Title string `json:"title,omitempty"`
	Views int64  `json:"views"`
}

// DeviceStat is one row of the device-category breakdown.
type DeviceStat struct {
	Category   string  `json:"category"`
	Sessions   int64   `json:"sessions"`
	BounceRate float64 `json:"bounce_rate"`
}

// CityStat is one row of the city breakdown.
type CityStat struct {
	City     string `json:"city"`
	Sessions int64  `json:"sessions"`
}

// GoogleAnalyticsData is the single-property payload, used as a fallback when
// no multi-property bundle is present.
type GoogleAnalyticsData struct {
	PropertyID     string          `json:"property_id,omitempty"`
	PropertyName   string          `json:"property_name,omitempty"`
	Metrics        GAMetrics       `json:"metrics"`
	Realtime       GARealtime      `json:"realtime"`
	TrafficSources []TrafficSource `json:"traffic_sources,omitempty"`
	TopPages       []PageStat      `json:"top_pages,omitempty"`
	Devices        []DeviceStat    `json:"devices,omitempty"`
	Cities         []CityStat      `json:"cities,omitempty"`
}

func (d *GoogleAnalyticsData) normalize() {
	if d.PropertyName == "" {
		d.PropertyName = d.PropertyID
	}
}

// GAProperty is one property inside a multi-property bundle.
type GAProperty struct {
	GoogleAnalyticsData
}

// GoogleAnalyticsMultiData aggregates several GA4 properties.
type GoogleAnalyticsMultiData struct {
	Properties []GAProperty `json:"properties,omitempty"`
}

// FindProperty returns the property with the given id, or nil.
func (d *GoogleAnalyticsMultiData) FindProperty(id string) *GAProperty {
	if d == nil {
		return nil
	}
	for i := range d.Properties {
		if d.Properties[i].PropertyID == id {
			return &d.Properties[i]
		}
	}
	return nil
}

// ---------- Google Ads ----------

// GoogleAdsMetrics is the account-level aggregate. CTR is a fraction;
// Cost, AvgCPC and ConversionValue are denominated in Currency.
type GoogleAdsMetrics struct {
	Currency        string  `json:"currency"`
	Cost            float64 `json:"cost"`
	Impressions     int64   `json:"impressions"`
	Clicks          int64   `json:"clicks"`
	CTR             float64 `json:"ctr"`
	AvgCPC          float64 `json:"avg_cpc"`
	Conversions     float64 `json:"conversions"`
	ConversionValue float64 `json:"conversion_value"`
}

// GoogleAdsCampaign is one campaign row, in the account's currency.
type GoogleAdsCampaign struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Status      string  `json:"status,omitempty"`
	Cost        float64 `json:"cost"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Conversions float64 `json:"conversions"`
}

// GoogleAdsData is the Google Ads payload. A non-empty Error marks an
// upstream API failure: only the error explanation is rendered and every
// numeric section is suppressed.
type GoogleAdsData struct {
	Error     string              `json:"error,omitempty"`
	Metrics   GoogleAdsMetrics    `json:"metrics"`
	Campaigns []GoogleAdsCampaign `json:"campaigns,omitempty"`
}

// FindCampaign returns the campaign with the given id, or nil.
func (d *GoogleAdsData) FindCampaign(id string) *GoogleAdsCampaign {
	if d == nil {
		return nil
	}
	for i := range d.Campaigns {
		if d.Campaigns[i].ID == id {
			return &d.Campaigns[i]
		}
	}
	return nil
}

// ---------- Meta Ads ----------

// MetaAdsMetrics is the Meta account aggregate. CTR is a fraction; CPC and
// CPM are denominated in Currency.
type MetaAdsMetrics struct {
	Currency    string  `json:"currency"`
	Spend       float64 `json:"spend"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Reach       int64   `json:"reach"`
	CTR         float64 `json:"ctr"`
	CPC         float64 `json:"cpc"`
	CPM         float64 `json:"cpm"`
}

// MetaCampaign is one Meta campaign row.
type MetaCampaign struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Status      string  `json:"status,omitempty"`
	Spend       float64 `json:"spend"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Results     int64   `json:"results"`
}

// DemographicStat is one age/gender cell of the Meta breakdown.
type DemographicStat struct {
	Age         string  `json:"age"`
	Gender      string  `json:"gender"`
	Spend       float64 `json:"spend"`
	Impressions int64   `json:"impressions"`
}

// GeoStat is one region row of the Meta breakdown.
type GeoStat struct {
	Region      string  `json:"region"`
	Spend       float64 `json:"spend"`
	Impressions int64   `json:"impressions"`
}

// MetaAdsData is the Meta Ads payload.
type MetaAdsData struct {
	Metrics      MetaAdsMetrics    `json:"metrics"`
	Campaigns    []MetaCampaign    `json:"campaigns,omitempty"`
	Demographics []DemographicStat `json:"demographics,omitempty"`
	Geography    []GeoStat         `json:"geography,omitempty"`
}

// FindCampaign returns the campaign with the given id, or nil.
func (d *MetaAdsData) FindCampaign(id string) *MetaCampaign {
	if d == nil {
		return nil
	}
	for i := range d.Campaigns {
		if d.Campaigns[i].ID == id {
			return &d.Campaigns[i]
		}
	}
	return nil
}

// ---------- LinkedIn Ads ----------

// LinkedInMetrics is the LinkedIn account aggregate.
type LinkedInMetrics struct {
	Currency    string  `json:"currency"`
	Spend       float64 `json:"spend"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	CTR         float64 `json:"ctr"`
	Conversions int64   `json:"conversions"`
}

// LinkedInCampaignGroup is one campaign-group row.
type LinkedInCampaignGroup struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Status string  `json:"status,omitempty"`
	Spend  float64 `json:"spend"`
}

// LinkedInCampaign is one campaign row.
type LinkedInCampaign struct {
	ID          string  `json:"id"`
	GroupID     string  `json:"group_id,omitempty"`
	Name        string  `json:"name"`
	Status      string  `json:"status,omitempty"`
	Spend       float64 `json:"spend"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
}

// LinkedInAdsData is the LinkedIn Ads payload.
type LinkedInAdsData struct {
	Metrics        LinkedInMetrics         `json:"metrics"`
	CampaignGroups []LinkedInCampaignGroup `json:"campaign_groups,omitempty"`
	Campaigns      []LinkedInCampaign      `json:"campaigns,omitempty"`
}

// FindCampaignGroup returns the campaign group with the given id, or nil.
func (d *LinkedInAdsData) FindCampaignGroup(id string) *LinkedInCampaignGroup {
	if d == nil {
		return nil
	}
	for i := range d.CampaignGroups {
		if d.CampaignGroups[i].ID == id {
			return &d.CampaignGroups[i]
		}
	}
	return nil
}

// FindCampaign returns the campaign with the given id, or nil.
func (d *LinkedInAdsData) FindCampaign(id string) *LinkedInCampaign {
	if d == nil {
		return nil
	}
	for i := range d.Campaigns {
		if d.Campaigns[i].ID == id {
			return &d.Campaigns[i]
		}
	}
	return nil
}
