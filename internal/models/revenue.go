package models

// PeriodBucket holds accumulated revenue and transaction count for one
// calendar period (day, week, or month). Revenue is in major currency
// units, rounded to cents exactly once when the bucket is built.
type PeriodBucket struct {
	Period           string  `json:"period"`
	Revenue          float64 `json:"revenue"`
	TransactionCount int     `json:"transactionCount"`
}

// RevenueSummary provides aggregate figures for the analyzed date range
type RevenueSummary struct {
	TotalRevenue       float64 `json:"totalRevenue"`
	TransactionCount   int     `json:"transactionCount"`
	AverageTransaction float64 `json:"averageTransaction"`
}

// RevenueReport is the full payload returned by the revenue trends tool.
// On failure the summary is zeroed, the lists are empty, and Error carries
// the reason; errors never propagate past the tool boundary.
type RevenueReport struct {
	Summary    RevenueSummary `json:"summary"`
	PeriodData []PeriodBucket `json:"periodData"`
	Insights   []string       `json:"insights"`
	Error      string         `json:"error,omitempty"`
}

// EmptyRevenueReport returns a zeroed report with the given error message
func EmptyRevenueReport(errMsg string) *RevenueReport {
	return &RevenueReport{
		PeriodData: []PeriodBucket{},
		Insights:   []string{},
		Error:      errMsg,
	}
}
