package journal

// TradingStats is the aggregate snapshot the backend computes for the
// current filter. The editor treats it as opaque and replaces it
// wholesale on every filter-scoped load. Decimal aggregates stay strings
// end to end so no precision is lost in display.
type TradingStats struct {
	TotalTrades   int          `json:"total_trades"`
	WinningTrades int          `json:"winning_trades"`
	LosingTrades  int          `json:"losing_trades"`
	TotalPNL      string       `json:"total_pnl"`
	WinRate       string       `json:"win_rate"`
	UpdatedAt     string       `json:"updated_at,omitempty"`
	Period        *StatsPeriod `json:"period,omitempty"`
}

// StatsPeriod identifies the month a stats snapshot covers. Absent when
// the snapshot spans all entries.
type StatsPeriod struct {
	Month     int    `json:"month"`
	Year      int    `json:"year"`
	MonthName string `json:"month_name"`
}

// TradingSummary is the all-time rollup with a per-month breakdown.
type TradingSummary struct {
	TotalEntries     int              `json:"total_entries"`
	TotalPNL         string           `json:"total_pnl"`
	WinRate          string           `json:"win_rate"`
	MonthlyBreakdown []MonthlySummary `json:"monthly_breakdown,omitempty"`
}

// MonthlySummary is one row of the summary breakdown. Month is the
// YYYY-MM key the entries were grouped by.
type MonthlySummary struct {
	Month   string `json:"month"`
	Entries int    `json:"entries"`
	PNL     string `json:"pnl"`
	WinRate string `json:"win_rate"`
}

// Filter selects which entries and stats are in view. The zero value is
// the implicit current period (the backend's default). ShowAll overrides
// month and year.
type Filter struct {
	Month   int
	Year    int
	ShowAll bool
}

// IsDefault reports whether the filter is the implicit current period.
func (f Filter) IsDefault() bool {
	return !f.ShowAll && (f.Month == 0 || f.Year == 0)
}
