// Package factura holds the invoice data model, the JSON snapshot store and
// the create/edit/delete lifecycle.
//
// The on-disk snapshot keeps the field names of the legacy data file
// (cliente, archivo, productos, descuento, fecha_emision, fecha_vencimiento,
// notas) so existing facturas.json files round-trip unchanged. Line items
// are stored as 3-element arrays [description, quantity, unit_price].
package factura

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/j2425716/facturador/internal/money"
)

func init() {
	// The legacy snapshot stores descuento and unit prices as bare JSON
	// numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

const dateLayout = "2006-01-02"

// Date is a calendar date serialized as an ISO-8601 date string.
type Date struct {
	time.Time
}

// Today returns the current calendar date.
func Today() Date {
	y, m, d := time.Now().Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// NewDate builds a Date from year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// AddDays returns the date n days later.
func (d Date) AddDays(n int) Date {
	return Date{d.Time.AddDate(0, 0, n)}
}

// String implements fmt.Stringer.
func (d Date) String() string {
	return d.Time.Format(dateLayout)
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time.Format(dateLayout))
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

// LineItem is a single invoice line. The unit price is tax-inclusive.
// Immutable once validated; owned by the invoice or by an in-progress draft.
type LineItem struct {
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// MarshalJSON serializes the item in the legacy tuple form
// ["description", quantity, unit_price].
func (li LineItem) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{
		li.Description,
		li.Quantity,
		json.RawMessage(li.UnitPrice.String()),
	})
}

// UnmarshalJSON parses the legacy tuple form.
func (li *LineItem) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 3 {
		return fmt.Errorf("line item: expected 3 elements, got %d", len(raw))
	}
	if err := json.Unmarshal(raw[0], &li.Description); err != nil {
		return fmt.Errorf("line item description: %w", err)
	}
	if err := json.Unmarshal(raw[1], &li.Quantity); err != nil {
		return fmt.Errorf("line item quantity: %w", err)
	}
	if err := li.UnitPrice.UnmarshalJSON(raw[2]); err != nil {
		return fmt.Errorf("line item unit price: %w", err)
	}
	return nil
}

// Total returns the tax-inclusive line total, quantity * unit price.
func (li LineItem) Total() decimal.Decimal {
	return money.LineTotal(li.Quantity, li.UnitPrice)
}

// Invoice is a finalized invoice record as persisted in the snapshot.
type Invoice struct {
	ID           int             `json:"id"`
	Client       string          `json:"cliente"`
	ArtifactPath string          `json:"archivo"`
	Items        []LineItem      `json:"productos"`
	Discount     decimal.Decimal `json:"descuento"`
	IssueDate    Date            `json:"fecha_emision"`
	DueDate      Date            `json:"fecha_vencimiento"`
	Notes        string          `json:"notas"`
}

// Totals recomputes the totals block from the persisted items and discount.
func (inv Invoice) Totals() money.Totals {
	return money.ComputeTotals(moneyItems(inv.Items), inv.Discount)
}

// Number returns the zero-padded human-readable invoice number, e.g. "0007".
func (inv Invoice) Number() string {
	return fmt.Sprintf("%04d", inv.ID)
}

func moneyItems(items []LineItem) []money.Item {
	out := make([]money.Item, len(items))
	for i, item := range items {
		out[i] = money.Item{Quantity: item.Quantity, UnitPrice: item.UnitPrice}
	}
	return out
}
