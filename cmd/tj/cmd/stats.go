package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradejournal/journal"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show trading statistics for a period",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the all-time summary with monthly breakdown",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

var (
	statsMonth int
	statsYear  int
	statsAll   bool
)

func init() {
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(summaryCmd)
	statsCmd.Flags().IntVar(&statsMonth, "month", 0, "filter by month (1-12, requires --year)")
	statsCmd.Flags().IntVar(&statsYear, "year", 0, "filter by year (requires --month)")
	statsCmd.Flags().BoolVar(&statsAll, "all", false, "aggregate over all entries")
}

func runStats(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	stats, err := client.Stats(cmd.Context(), journal.Filter{
		Month: statsMonth, Year: statsYear, ShowAll: statsAll,
	})
	if err != nil {
		return fmt.Errorf("get stats: %w", err)
	}

	if stats.Period != nil {
		fmt.Printf("Period:        %s %d\n", stats.Period.MonthName, stats.Period.Year)
	} else {
		fmt.Println("Period:        all time")
	}
	fmt.Printf("Total trades:  %d\n", stats.TotalTrades)
	fmt.Printf("Winning:       %d\n", stats.WinningTrades)
	fmt.Printf("Losing:        %d\n", stats.LosingTrades)
	fmt.Printf("Total P&L:     %s\n", stats.TotalPNL)
	fmt.Printf("Win rate:      %s%%\n", stats.WinRate)
	return nil
}

func runSummary(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	sum, err := client.Summary(cmd.Context())
	if err != nil {
		return fmt.Errorf("get summary: %w", err)
	}

	fmt.Printf("Total entries: %d\n", sum.TotalEntries)
	fmt.Printf("Total P&L:     %s\n", sum.TotalPNL)
	fmt.Printf("Win rate:      %s%%\n", sum.WinRate)
	if len(sum.MonthlyBreakdown) > 0 {
		fmt.Println("\nMonth     Entries    P&L        Win rate")
		for _, m := range sum.MonthlyBreakdown {
			fmt.Printf("%-9s %-10d %-10s %s%%\n", m.Month, m.Entries, m.PNL, m.WinRate)
		}
	}
	return nil
}
