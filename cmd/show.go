package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/j2425716/facturador/internal/logger"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one stored invoice in full detail",
	Long: `Print a stored invoice with its line items, the recomputed subtotal,
IGV, discount and total, the notes and the artifact path. The totals are
always recomputed from the full item list.`,
	Example: `  facturador show 5`,
	Args:    cobra.ExactArgs(1),
	RunE:    runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("show")

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid invoice id %q", args[0])
	}

	svc, err := buildService()
	if err != nil {
		return err
	}

	inv, err := svc.Get(id)
	if err != nil {
		return handleActionError(err, log)
	}

	printInvoice(inv)
	return nil
}
