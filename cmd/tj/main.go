package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/rustyeddy/tradejournal/cmd/tj/cmd"
)

func main() {
	// A missing .env is fine; the defaults stand.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
