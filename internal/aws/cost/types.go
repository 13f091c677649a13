package cost

// MetricUnblendedCost is the only metric requested.
const MetricUnblendedCost = "UnblendedCost"

// Window is the [Start, End) date range sent to Cost Explorer, as YYYY-MM-DD.
type Window struct {
	Start string
	End   string
}

// DailyCost is one DAILY bucket. Amount is kept as the decimal string the API returned.
type DailyCost struct {
	Date   string
	Amount string
	Unit   string
}
