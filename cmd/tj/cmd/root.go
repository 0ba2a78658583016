package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradejournal/api"
	"github.com/rustyeddy/tradejournal/config"
)

var rootCmd = &cobra.Command{
	Use:   "tj",
	Short: "A trading journal with inline field editing and period statistics",
	Long: `tj manages a list of dated trade records: bias, setup arrays, results,
emotions per trade phase, P&L, chart links and free-text notes.

It provides tools for:
  - Editing individual entry fields with optimistic local updates
  - Filtering entries and statistics by month or across all time
  - Running a local journal backend over SQLite
  - Exporting entries to CSV and Org-mode`,
}

var (
	cfgFile string
	apiURL  string
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "", "journal backend base URL")
}

// loadConfig resolves the effective configuration: file, then
// environment, then flags.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if cfgFile != "" {
		loaded, err := config.LoadFromFile(cfgFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.ApplyEnv()
	if apiURL != "" {
		cfg.API.BaseURL = apiURL
	}
	return cfg, nil
}

func newClient() (*api.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return api.NewClient(cfg.API.BaseURL), nil
}
