package factura

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ValidateItem checks a line item before it enters a draft: non-empty
// description, quantity of at least one, strictly positive price.
func ValidateItem(description string, quantity int, unitPrice decimal.Decimal) error {
	if strings.TrimSpace(description) == "" {
		return NewValidationError("description", description, "must not be empty")
	}
	if quantity < 1 {
		return NewValidationError("quantity", quantity, "must be at least 1")
	}
	if !unitPrice.IsPositive() {
		return NewValidationError("unit_price", unitPrice.String(), "must be greater than 0")
	}
	return nil
}

// ValidateDraft checks a draft before finalization. Validation failures are
// reported here, at the input boundary; they never reach the store.
func ValidateDraft(d *Draft) error {
	if strings.TrimSpace(d.Client) == "" {
		return ErrNoClient
	}
	if len(d.Items) == 0 {
		return ErrEmptyDraft
	}
	for _, item := range d.Items {
		if err := ValidateItem(item.Description, item.Quantity, item.UnitPrice); err != nil {
			return err
		}
	}
	if d.Discount.IsNegative() {
		return NewValidationError("discount", d.Discount.String(), "must not be negative")
	}
	if subtotal := d.Totals().Subtotal; d.Discount.GreaterThan(subtotal) {
		return NewValidationError("discount", d.Discount.String(),
			"must not exceed the subtotal of "+subtotal.StringFixed(2))
	}
	if d.DueDate.Before(d.IssueDate.Time) {
		return NewValidationError("due_date", d.DueDate.String(), "must not be before the issue date")
	}
	return nil
}
