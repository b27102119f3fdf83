package estimate

// Config carries the runtime knobs of the estimate service. The sizing
// constants live in calculator.go; only the sales channel and lead tagging
// are configurable.
type Config struct {
	// WhatsAppPhone is the sales number in international digits-only form.
	WhatsAppPhone string
	// DefaultLocation tags leads whose form left the location blank.
	DefaultLocation string
	// LeadSource marks where archived leads came from.
	LeadSource string
}

// Request is the estimator form payload.
type Request struct {
	// Mode selects the meaning of Amount: "bill" or "units".
	Mode string `json:"mode"`
	// Amount is the monthly bill in rupees or consumption in kWh.
	Amount float64 `json:"amount"`
	// Location is optional free text from the form.
	Location string `json:"location,omitempty"`
}

// Response is rendered into the results panel. Numbers are display-rounded
// here; the underlying Result keeps full precision.
type Response struct {
	MonthlyUnits   int     `json:"monthlyUnits"`
	MonthlyBill    int     `json:"monthlyBill"`
	SystemSizeKw   float64 `json:"systemSizeKw"`
	SystemSize     string  `json:"systemSize"`
	EstimatedCost  int     `json:"estimatedCost"`
	CostDisplay    string  `json:"costDisplay"`
	MonthlySavings int     `json:"monthlySavings"`
	SavingsDisplay string  `json:"savingsDisplay"`
	PaybackYears   float64 `json:"paybackYears"`
	PaybackPeriod  string  `json:"paybackPeriod"`
	WhatsAppURL    string  `json:"whatsappUrl"`
}
