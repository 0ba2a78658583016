package server

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rustyeddy/tradejournal/journal"
)

// Stats computes the aggregate snapshot for the filter. P&L sums use
// exact decimal arithmetic; the comparable Django backend stores pnl in
// a DecimalField and float accumulation would drift from it.
func (s *Store) Stats(f journal.Filter) (journal.TradingStats, error) {
	entries, err := s.List(f)
	if err != nil {
		return journal.TradingStats{}, err
	}

	stats := tally(entries)
	stats.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	if !f.ShowAll {
		stats.Period = &journal.StatsPeriod{
			Month:     f.Month,
			Year:      f.Year,
			MonthName: time.Month(f.Month).String(),
		}
	}
	return stats, nil
}

// Summary computes the all-time rollup with a per-month breakdown.
// Entries without a date count toward the totals but not the breakdown.
func (s *Store) Summary() (journal.TradingSummary, error) {
	entries, err := s.List(journal.Filter{ShowAll: true})
	if err != nil {
		return journal.TradingSummary{}, err
	}

	all := tally(entries)

	byMonth := make(map[string][]journal.WireEntry)
	for _, e := range entries {
		if e.Date == nil || len(*e.Date) < 7 {
			continue
		}
		key := (*e.Date)[:7]
		byMonth[key] = append(byMonth[key], e)
	}

	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))

	breakdown := make([]journal.MonthlySummary, 0, len(months))
	for _, m := range months {
		t := tally(byMonth[m])
		breakdown = append(breakdown, journal.MonthlySummary{
			Month:   m,
			Entries: t.TotalTrades,
			PNL:     t.TotalPNL,
			WinRate: t.WinRate,
		})
	}

	return journal.TradingSummary{
		TotalEntries:     all.TotalTrades,
		TotalPNL:         all.TotalPNL,
		WinRate:          all.WinRate,
		MonthlyBreakdown: breakdown,
	}, nil
}

func tally(entries []journal.WireEntry) journal.TradingStats {
	var (
		total  = decimal.Zero
		wins   int
		losses int
	)
	for _, e := range entries {
		pnl, err := decimal.NewFromString(e.PNL)
		if err != nil {
			continue
		}
		total = total.Add(pnl)
		switch pnl.Sign() {
		case 1:
			wins++
		case -1:
			losses++
		}
	}

	winRate := decimal.Zero
	if len(entries) > 0 {
		winRate = decimal.NewFromInt(int64(wins)).
			Mul(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(int64(len(entries))))
	}

	return journal.TradingStats{
		TotalTrades:   len(entries),
		WinningTrades: wins,
		LosingTrades:  losses,
		TotalPNL:      total.StringFixed(2),
		WinRate:       winRate.StringFixed(2),
	}
}
