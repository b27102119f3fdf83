package lead

import "context"

// StatsStore keeps the running quote counters. RecordQuote takes the
// canonical location for aggregation plus the display form shown on the
// landing page.
type StatsStore interface {
	RecordQuote(ctx context.Context, canonical, display string, systemKw float64) error
	Summary(ctx context.Context) (Stats, error)
	TopLocations(ctx context.Context, limit int) ([]LocationCount, error)
}
