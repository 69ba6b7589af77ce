package factura

import (
	"github.com/shopspring/decimal"

	"github.com/j2425716/facturador/internal/money"
)

// DefaultDueDays is the default payment term when no due date is given.
const DefaultDueDays = 30

// Draft is the caller-owned workspace for an invoice in progress. It is
// never persisted: finalizing a draft produces the invoice record, and
// editing a finalized invoice re-enters a draft pre-populated from it.
// All mutation goes through the action methods, which validate first and
// leave the draft untouched on rejection.
type Draft struct {
	Client    string
	Items     []LineItem
	Discount  decimal.Decimal
	Notes     string
	IssueDate Date
	DueDate   Date

	// EditingID is the reserved id of the invoice being edited, or 0 for a
	// new invoice. It stays reserved until a finalized write replaces the
	// old record.
	EditingID int
}

// NewDraft returns an empty draft issued today and due in 30 days.
func NewDraft() *Draft {
	today := Today()
	return &Draft{
		IssueDate: today,
		DueDate:   today.AddDays(DefaultDueDays),
	}
}

// DraftFromInvoice re-enters the draft workspace from a finalized invoice,
// keeping its id reserved for the replacement write.
func DraftFromInvoice(inv Invoice) *Draft {
	items := make([]LineItem, len(inv.Items))
	copy(items, inv.Items)
	return &Draft{
		Client:    inv.Client,
		Items:     items,
		Discount:  inv.Discount,
		Notes:     inv.Notes,
		IssueDate: inv.IssueDate,
		DueDate:   inv.DueDate,
		EditingID: inv.ID,
	}
}

// AddItem validates and appends a line item.
func (d *Draft) AddItem(description string, quantity int, unitPrice decimal.Decimal) error {
	if err := ValidateItem(description, quantity, unitPrice); err != nil {
		return err
	}
	d.Items = append(d.Items, LineItem{
		Description: description,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
	})
	return nil
}

// UpdateItem validates and replaces the line item at index (0-based).
func (d *Draft) UpdateItem(index int, description string, quantity int, unitPrice decimal.Decimal) error {
	if index < 0 || index >= len(d.Items) {
		return ErrItemIndexOutOfRange
	}
	if err := ValidateItem(description, quantity, unitPrice); err != nil {
		return err
	}
	d.Items[index] = LineItem{
		Description: description,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
	}
	return nil
}

// RemoveItem deletes the line item at index (0-based), preserving the order
// of the remaining items.
func (d *Draft) RemoveItem(index int) error {
	if index < 0 || index >= len(d.Items) {
		return ErrItemIndexOutOfRange
	}
	d.Items = append(d.Items[:index], d.Items[index+1:]...)
	return nil
}

// Totals computes the current totals block for the draft.
func (d *Draft) Totals() money.Totals {
	return money.ComputeTotals(moneyItems(d.Items), d.Discount)
}
