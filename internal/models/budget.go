package models

// BudgetConfig holds the user's spending caps. All caps must be positive;
// the CLI boundary validates before any aggregation runs.
type BudgetConfig struct {
	UserID  string  `json:"user_id"`
	Daily   float64 `json:"daily"`
	Weekly  float64 `json:"weekly"`
	Monthly float64 `json:"monthly"`
}

// PeriodSummary is the aggregated view of one budget period.
type PeriodSummary struct {
	Period      string  `json:"period"` // daily | weekly | monthly
	Spent       float64 `json:"spent"`
	Cap         float64 `json:"cap"`
	Remaining   float64 `json:"remaining"` // may be negative
	PercentUsed float64 `json:"percent_used"`
	Status      string  `json:"status"` // healthy | warning | danger
}

// GroupTotal is one entry of a grouped breakdown, in first-seen order.
type GroupTotal struct {
	Key    string  `json:"key"`
	Amount float64 `json:"amount"`
}
