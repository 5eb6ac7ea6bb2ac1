package handlers

import "os"

// Analytics holds client instrumentation configuration surfaced to templates.
type Analytics struct {
	GA4MeasurementID string // e.g. G-XXXXXXXXXX
	PlausibleDomain  string // Plausible site domain
	Debug            bool
}

// LoadAnalyticsFromEnv builds Analytics from environment variables.
func LoadAnalyticsFromEnv() Analytics {
	return Analytics{
		GA4MeasurementID: os.Getenv("FOLIO_GA_MEASUREMENT_ID"),
		PlausibleDomain:  os.Getenv("FOLIO_PLAUSIBLE_DOMAIN"),
		Debug:            os.Getenv("FOLIO_ANALYTICS_DEBUG") != "",
	}
}
