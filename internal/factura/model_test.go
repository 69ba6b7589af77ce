package factura_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/j2425716/facturador/internal/factura"
)

func TestLineItemJSONTupleForm(t *testing.T) {
	item := factura.LineItem{
		Description: "Consulting",
		Quantity:    2,
		UnitPrice:   decimal.RequireFromString("100.50"),
	}

	data, err := json.Marshal(item)
	require.NoError(t, err)
	assert.JSONEq(t, `["Consulting", 2, 100.5]`, string(data))

	var got factura.LineItem
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "Consulting", got.Description)
	assert.Equal(t, 2, got.Quantity)
	assert.True(t, got.UnitPrice.Equal(item.UnitPrice))
}

func TestLineItemRejectsWrongArity(t *testing.T) {
	var item factura.LineItem
	assert.Error(t, json.Unmarshal([]byte(`["Consulting", 2]`), &item))
	assert.Error(t, json.Unmarshal([]byte(`["Consulting", 2, 100, "extra"]`), &item))
	assert.Error(t, json.Unmarshal([]byte(`{"description": "Consulting"}`), &item))
}

// A record written by the legacy snapshot format parses unchanged.
func TestInvoiceParsesLegacySnapshotRecord(t *testing.T) {
	legacy := `{
        "id": 3,
        "cliente": "Acme",
        "archivo": "facturas/factura_0003_1700000000.pdf",
        "productos": [["Consulting", 2, 100.0], ["Soporte mensual", 1, 59.0]],
        "descuento": 10.5,
        "fecha_emision": "2025-01-15",
        "fecha_vencimiento": "2025-02-14",
        "notas": "Pago por transferencia"
    }`

	var inv factura.Invoice
	require.NoError(t, json.Unmarshal([]byte(legacy), &inv))

	assert.Equal(t, 3, inv.ID)
	assert.Equal(t, "Acme", inv.Client)
	assert.Equal(t, "facturas/factura_0003_1700000000.pdf", inv.ArtifactPath)
	require.Len(t, inv.Items, 2)
	assert.Equal(t, "Soporte mensual", inv.Items[1].Description)
	assert.True(t, inv.Items[0].UnitPrice.Equal(decimal.RequireFromString("100")))
	assert.True(t, inv.Discount.Equal(decimal.RequireFromString("10.5")))
	assert.Equal(t, "2025-01-15", inv.IssueDate.String())
	assert.Equal(t, "2025-02-14", inv.DueDate.String())
	assert.Equal(t, "Pago por transferencia", inv.Notes)
}

func TestDateRoundTrip(t *testing.T) {
	d := factura.NewDate(2026, time.August, 28)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-08-28"`, string(data))

	var got factura.Date
	require.NoError(t, json.Unmarshal(data, &got))
	assert.True(t, got.Equal(d.Time))

	assert.Error(t, json.Unmarshal([]byte(`"28/08/2026"`), &got))
}

func TestDateAddDays(t *testing.T) {
	d := factura.NewDate(2026, time.August, 28)
	assert.Equal(t, "2026-09-27", d.AddDays(30).String())
}

func TestInvoiceNumber(t *testing.T) {
	assert.Equal(t, "0007", factura.Invoice{ID: 7}.Number())
	assert.Equal(t, "1234", factura.Invoice{ID: 1234}.Number())
}
