package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradejournal/journal"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List journal entries for a period",
	Long: `List journal entries, filtered to the current month by default.

Examples:
  tj list
  tj list --month 3 --year 2024
  tj list --all --org`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var (
	filterMonth int
	filterYear  int
	filterAll   bool
	listOrg     bool
)

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().IntVar(&filterMonth, "month", 0, "filter by month (1-12, requires --year)")
	listCmd.Flags().IntVar(&filterYear, "year", 0, "filter by year (requires --month)")
	listCmd.Flags().BoolVar(&filterAll, "all", false, "show all entries regardless of period")
	listCmd.Flags().BoolVar(&listOrg, "org", false, "render entries as Org-mode blocks")
}

func listFilter() journal.Filter {
	return journal.Filter{Month: filterMonth, Year: filterYear, ShowAll: filterAll}
}

func runList(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	entries, err := client.ListEntries(cmd.Context(), listFilter())
	if err != nil {
		return fmt.Errorf("list entries: %w", err)
	}

	if listOrg {
		fmt.Println(journal.FormatEntriesOrg(entries))
		return nil
	}

	for _, e := range entries {
		fmt.Println(formatEntryLine(e))
	}
	fmt.Printf("%d entries\n", len(entries))
	return nil
}

func formatEntryLine(e journal.Entry) string {
	date := "----------"
	if e.Date != nil {
		date = journal.FormatDate(e.Date)
	}
	return fmt.Sprintf("%-6s %s  %-5s %9s  [%s] %s",
		e.ID, date, journal.JoinTags(e.Bias),
		journal.FormatNumber(e.PNL),
		journal.JoinTags(e.Results), journal.JoinTags(e.Array))
}
