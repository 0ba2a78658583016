package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradejournal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the reference journal backend",
	Long: `Run a local journal backend over SQLite, speaking the same REST
contract the editor expects from a hosted backend.

Examples:
  tj serve
  tj serve --addr :9000 --db ./journal.sqlite`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var (
	serveAddr string
	serveDB   string
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")
	serveCmd.Flags().StringVar(&serveDB, "db", "", "path to SQLite database (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}
	if serveDB != "" {
		cfg.Server.DBPath = serveDB
	}

	store, err := server.Open(cfg.Server.DBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer store.Close()

	fmt.Printf("journal backend listening on %s (db %s)\n", cfg.Server.Addr, cfg.Server.DBPath)
	return http.ListenAndServe(cfg.Server.Addr, server.New(store))
}
