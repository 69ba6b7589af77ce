package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/j2425716/facturador/internal/logger"
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a stored invoice and regenerate its PDF",
	Long: `Load a stored invoice back into a draft, apply the given changes and
finalize it again under the same id. The record is replaced in place: the
collection size does not change and no other id is affected. A new PDF is
rendered and the one it replaces is removed.

Item numbers shown by 'facturador show' are 1-based. Removals are applied
after additions and replacements.`,
	Example: `  # Change the client, keep everything else
  facturador edit 5 --client "Acme S.A.C."

  # Replace item 2, add one more, drop item 1
  facturador edit 5 \
    --set-item "2:Consulting:3:118.00" \
    --add-item "Capacitación:1:236.00" \
    --remove-item 1

  # Update the discount and notes
  facturador edit 5 --discount 25.00 --notes "Cliente frecuente"`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().StringP("client", "c", "", "New client name")
	editCmd.Flags().StringArray("add-item", nil, `Append a line item "description:quantity:unit-price"`)
	editCmd.Flags().StringArray("set-item", nil, `Replace a line item "number:description:quantity:unit-price"`)
	editCmd.Flags().IntSlice("remove-item", nil, "Remove the line item with this number (repeatable)")
	editCmd.Flags().StringP("discount", "d", "", "New discount amount")
	editCmd.Flags().StringP("notes", "n", "", "New notes text")
	editCmd.Flags().String("issue-date", "", "New issue date as YYYY-MM-DD")
	editCmd.Flags().String("due-date", "", "New due date as YYYY-MM-DD")
}

func runEdit(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("edit")

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid invoice id %q", args[0])
	}

	svc, err := buildService()
	if err != nil {
		return err
	}

	draft, err := svc.BeginEdit(id)
	if err != nil {
		return handleActionError(err, log)
	}

	if cmd.Flags().Changed("client") {
		draft.Client, _ = cmd.Flags().GetString("client")
	}
	if cmd.Flags().Changed("notes") {
		draft.Notes, _ = cmd.Flags().GetString("notes")
	}
	if cmd.Flags().Changed("issue-date") {
		value, _ := cmd.Flags().GetString("issue-date")
		issue, err := parseDate(value)
		if err != nil {
			return err
		}
		draft.IssueDate = issue
	}
	if cmd.Flags().Changed("due-date") {
		value, _ := cmd.Flags().GetString("due-date")
		due, err := parseDate(value)
		if err != nil {
			return err
		}
		draft.DueDate = due
	}
	if cmd.Flags().Changed("discount") {
		value, _ := cmd.Flags().GetString("discount")
		discount, err := decimal.NewFromString(value)
		if err != nil {
			return fmt.Errorf("invalid discount %q: %w", value, err)
		}
		draft.Discount = discount
	}

	setSpecs, _ := cmd.Flags().GetStringArray("set-item")
	for _, spec := range setSpecs {
		number, description, quantity, price, err := parseSetItemSpec(spec)
		if err != nil {
			return err
		}
		if err := draft.UpdateItem(number-1, description, quantity, price); err != nil {
			return handleActionError(err, log)
		}
	}

	addSpecs, _ := cmd.Flags().GetStringArray("add-item")
	for _, spec := range addSpecs {
		description, quantity, price, err := parseItemSpec(spec)
		if err != nil {
			return err
		}
		if err := draft.AddItem(description, quantity, price); err != nil {
			return handleActionError(err, log)
		}
	}

	// Remove highest numbers first so earlier removals do not shift the rest.
	removals, _ := cmd.Flags().GetIntSlice("remove-item")
	sort.Sort(sort.Reverse(sort.IntSlice(removals)))
	for _, number := range removals {
		if err := draft.RemoveItem(number - 1); err != nil {
			return handleActionError(err, log)
		}
	}

	log.Info().
		Int("id", id).
		Msg("Re-finalizing edited invoice")

	inv, err := svc.Finalize(draft)
	if err != nil {
		return handleActionError(err, log)
	}

	printInvoice(inv)
	return nil
}

// parseSetItemSpec parses "number:description:quantity:unit-price".
func parseSetItemSpec(spec string) (int, string, int, decimal.Decimal, error) {
	sep := strings.Index(spec, ":")
	if sep < 0 {
		return 0, "", 0, decimal.Zero, fmt.Errorf("invalid item %q: expected \"number:description:quantity:unit-price\"", spec)
	}

	number, err := strconv.Atoi(spec[:sep])
	if err != nil {
		return 0, "", 0, decimal.Zero, fmt.Errorf("invalid item number in %q: %w", spec, err)
	}

	description, quantity, price, err := parseItemSpec(spec[sep+1:])
	if err != nil {
		return 0, "", 0, decimal.Zero, err
	}
	return number, description, quantity, price, nil
}
