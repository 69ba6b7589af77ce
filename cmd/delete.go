package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/j2425716/facturador/internal/logger"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a stored invoice and its PDF",
	Long: `Remove an invoice record from the snapshot and delete its rendered PDF.
There is no tombstone: the id disappears from the list, and if it was the
highest id it may be handed out again to the next new invoice.`,
	Example: `  facturador delete 5`,
	Args:    cobra.ExactArgs(1),
	RunE:    runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("delete")

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid invoice id %q", args[0])
	}

	svc, err := buildService()
	if err != nil {
		return err
	}

	if err := svc.Delete(id); err != nil {
		return handleActionError(err, log)
	}

	fmt.Printf("Factura %04d eliminada\n", id)
	return nil
}
