package lead

import (
	"time"

	"github.com/google/uuid"
)

// Record is the archived form of a served estimate. Numeric fields carry the
// integer-rounded display values; the size and payback are stored exactly as
// shown to the visitor.
type Record struct {
	ID               uuid.UUID `json:"id"`
	BillAmount       int       `json:"billAmount"`
	MonthlyUnits     int       `json:"monthlyUnits"`
	SystemSizeKw     string    `json:"systemSizeKw"`
	EstimatedCost    int       `json:"estimatedCost"`
	EstimatedSavings int       `json:"estimatedSavings"`
	PaybackPeriod    string    `json:"paybackPeriod"`
	Location         string    `json:"location,omitempty"`
	Source           string    `json:"source"`
	CreatedAt        time.Time `json:"createdAt"`
}

// Stats aggregates counters shown on the landing page and the stats endpoint.
type Stats struct {
	TotalQuotes int64   `json:"totalQuotes"`
	TotalKw     float64 `json:"totalKw"`
}

// LocationCount is one entry of the per-location quote ranking.
type LocationCount struct {
	Location string `json:"location"`
	Count    int64  `json:"count"`
}

// Overview is the aggregate served to the sales team and the landing page.
type Overview struct {
	Quotes       int64           `json:"quotes"`
	TotalKw      float64         `json:"totalKw"`
	TopLocations []LocationCount `json:"topLocations"`
}
