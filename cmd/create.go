package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/j2425716/facturador/internal/factura"
	"github.com/j2425716/facturador/internal/logger"
	"github.com/j2425716/facturador/internal/money"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new invoice: render the PDF and persist the record",
	Long: `Build an invoice draft from the given client and line items, compute the
IGV-inclusive totals, render the PDF artifact and persist the record with
the next free id.

Each --item takes "description:quantity:unit-price" where the unit price
already includes IGV. The discount is subtracted from subtotal + IGV and
must not exceed the subtotal. The due date defaults to the issue date plus
30 days.`,
	Example: `  # One consulting line, no discount
  facturador create --client "Acme" --item "Consulting:2:100.00"

  # Several items, a discount and notes
  facturador create --client "Acme" \
    --item "Consulting:2:100.00" \
    --item "Soporte mensual:1:590.00" \
    --discount 50.00 \
    --notes "Pago por transferencia"

  # Explicit dates
  facturador create --client "Acme" --item "Consulting:1:118.00" \
    --issue-date 2026-08-28 --due-date 2026-09-15`,
	Args: cobra.NoArgs,
	RunE: runCreate,
}

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().StringP("client", "c", "", "Client the invoice is billed to (required)")
	createCmd.Flags().StringArrayP("item", "i", nil, `Line item as "description:quantity:unit-price" (repeatable)`)
	createCmd.Flags().StringP("discount", "d", "", "Discount amount, subtracted from subtotal + IGV")
	createCmd.Flags().StringP("notes", "n", "", "Free-form notes printed on the invoice")
	createCmd.Flags().String("issue-date", "", "Issue date as YYYY-MM-DD (default: today)")
	createCmd.Flags().String("due-date", "", "Due date as YYYY-MM-DD (default: issue date + 30 days)")
}

func runCreate(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("create")

	client, _ := cmd.Flags().GetString("client")
	itemSpecs, _ := cmd.Flags().GetStringArray("item")
	discountStr, _ := cmd.Flags().GetString("discount")
	notes, _ := cmd.Flags().GetString("notes")
	issueStr, _ := cmd.Flags().GetString("issue-date")
	dueStr, _ := cmd.Flags().GetString("due-date")

	svc, err := buildService()
	if err != nil {
		return err
	}

	draft := factura.NewDraft()
	draft.Client = client
	draft.Notes = notes

	if issueStr != "" {
		issue, err := parseDate(issueStr)
		if err != nil {
			return err
		}
		draft.IssueDate = issue
		draft.DueDate = issue.AddDays(factura.DefaultDueDays)
	}
	if dueStr != "" {
		due, err := parseDate(dueStr)
		if err != nil {
			return err
		}
		draft.DueDate = due
	}

	for _, spec := range itemSpecs {
		description, quantity, price, err := parseItemSpec(spec)
		if err != nil {
			return err
		}
		if err := draft.AddItem(description, quantity, price); err != nil {
			return handleActionError(err, log)
		}
	}

	if discountStr != "" {
		discount, err := decimal.NewFromString(discountStr)
		if err != nil {
			return fmt.Errorf("invalid discount %q: %w", discountStr, err)
		}
		draft.Discount = discount
	}

	log.Info().
		Str("client", client).
		Int("items", len(draft.Items)).
		Msg("Finalizing new invoice")

	inv, err := svc.Finalize(draft)
	if err != nil {
		return handleActionError(err, log)
	}

	printInvoice(inv)
	return nil
}

// printInvoice writes the invoice detail block used by create, edit and show.
func printInvoice(inv factura.Invoice) {
	totals := inv.Totals()

	fmt.Printf("Factura %s - %s\n", inv.Number(), inv.Client)
	fmt.Printf("  Emisión:     %s\n", inv.IssueDate)
	fmt.Printf("  Vencimiento: %s\n", inv.DueDate)
	fmt.Println("  Artículos:")
	for i, item := range inv.Items {
		fmt.Printf("    %d. %s  x%d  %s  (%s)\n",
			i+1, item.Description, item.Quantity,
			money.Format(item.UnitPrice), money.Format(item.Total()))
	}
	fmt.Printf("  Subtotal:  %s\n", money.Format(totals.Subtotal))
	fmt.Printf("  IGV (18%%): %s\n", money.Format(totals.Tax))
	fmt.Printf("  Descuento: -%s\n", money.Format(totals.Discount))
	fmt.Printf("  Total:     %s\n", money.Format(totals.Total))
	if inv.Notes != "" {
		fmt.Printf("  Notas: %s\n", inv.Notes)
	}
	fmt.Printf("  PDF: %s\n", inv.ArtifactPath)
}
