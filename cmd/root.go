package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/j2425716/facturador/internal/logger"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "facturador",
	Short: "facturador - single-user invoicing from the command line",
	Long: `facturador is a small single-user invoicing tool. It collects line
items for a client, computes IGV-inclusive totals (18%), renders a PDF
invoice and keeps the list of past invoices in a local JSON snapshot.

Unit prices are tax-inclusive: the taxable base is backed out of each line
total and IGV is computed on the summed base. All amounts use exact decimal
arithmetic with round-half-up at two decimal places.

Configuration is read from the environment (or a .env file):
  INVOICE_DATA_FILE - snapshot file (default: facturas.json)
  INVOICE_DIR       - directory for rendered PDFs (default: facturas)
  ASSETS_DIR        - optional branding assets (default: assets)`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.WithComponent("root")
		log.Info().
			Str("version", version).
			Msg("facturador executed")

		fmt.Println("facturador - single-user invoicing")
		fmt.Println("Use --help to see available commands and options.")
	},
}

func Execute() {
	log := logger.WithComponent("cmd")

	if err := rootCmd.Execute(); err != nil {
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print version information")
}
