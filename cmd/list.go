package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/j2425716/facturador/internal/money"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the stored invoices, newest first",
	Long: `Print a table of all persisted invoices ordered by id, newest first,
with the recomputed total and the path of the rendered PDF.`,
	Example: `  facturador list`,
	Args:    cobra.NoArgs,
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	svc, err := buildService()
	if err != nil {
		return err
	}

	invoices := svc.List()
	if len(invoices) == 0 {
		fmt.Println("No hay facturas generadas")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "N°\tCLIENTE\tEMISIÓN\tTOTAL\tPDF")
	for _, inv := range invoices {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			inv.Number(), inv.Client, inv.IssueDate,
			money.Format(inv.Totals().Total), inv.ArtifactPath)
	}
	return w.Flush()
}
