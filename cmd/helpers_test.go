package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseItemSpec(t *testing.T) {
	tests := []struct {
		name         string
		spec         string
		wantDesc     string
		wantQuantity int
		wantPrice    string
	}{
		{"simple", "Consulting:2:100.00", "Consulting", 2, "100"},
		{"colon in description", "Soporte: nivel 2:1:59.00", "Soporte: nivel 2", 1, "59"},
		{"spaces around fields", " Consulting : 2 : 100.00 ", "Consulting", 2, "100"},
		{"integer price", "Consulting:1:118", "Consulting", 1, "118"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc, quantity, price, err := parseItemSpec(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDesc, desc)
			assert.Equal(t, tt.wantQuantity, quantity)
			assert.Equal(t, tt.wantPrice, price.String())
		})
	}
}

func TestParseItemSpecErrors(t *testing.T) {
	specs := []string{
		"",
		"Consulting",
		"Consulting:2",
		"Consulting:two:100.00",
		"Consulting:2:cien",
	}
	for _, spec := range specs {
		_, _, _, err := parseItemSpec(spec)
		assert.Error(t, err, "spec %q should be rejected", spec)
	}
}

func TestParseSetItemSpec(t *testing.T) {
	number, desc, quantity, price, err := parseSetItemSpec("2:Consulting:3:118.00")
	require.NoError(t, err)
	assert.Equal(t, 2, number)
	assert.Equal(t, "Consulting", desc)
	assert.Equal(t, 3, quantity)
	assert.Equal(t, "118", price.String())

	_, _, _, _, err = parseSetItemSpec("Consulting:3:118.00")
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	d, err := parseDate("2026-08-28")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-28", d.String())

	_, err = parseDate("28/08/2026")
	assert.Error(t, err)
}
