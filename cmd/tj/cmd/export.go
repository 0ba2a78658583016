package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradejournal/journal"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export journal entries to CSV",
	Long: `Export entries to CSV in wire encoding: tag fields comma-joined,
dates as YYYY-MM-DD, pnl as a decimal string.

Examples:
  tj export --out journal.csv --all
  tj export --out march.csv --month 3 --year 2024`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var (
	exportOut   string
	exportMonth int
	exportYear  int
	exportAll   bool
)

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file (default stdout)")
	exportCmd.Flags().IntVar(&exportMonth, "month", 0, "filter by month (1-12, requires --year)")
	exportCmd.Flags().IntVar(&exportYear, "year", 0, "filter by year (requires --month)")
	exportCmd.Flags().BoolVar(&exportAll, "all", false, "export all entries")
}

func runExport(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	entries, err := client.ListEntries(cmd.Context(), journal.Filter{
		Month: exportMonth, Year: exportYear, ShowAll: exportAll,
	})
	if err != nil {
		return fmt.Errorf("list entries: %w", err)
	}

	out := os.Stdout
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := journal.WriteCSV(out, entries); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	if exportOut != "" {
		fmt.Printf("exported %d entries to %s\n", len(entries), exportOut)
	}
	return nil
}
