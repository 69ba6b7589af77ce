package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/j2425716/facturador/internal/config"
	"github.com/j2425716/facturador/internal/factura"
	"github.com/j2425716/facturador/internal/logger"
	"github.com/j2425716/facturador/internal/render"
)

// buildService wires config, store and renderer into the invoice service.
// A corrupt snapshot is surfaced as a warning and the service starts empty.
func buildService() (*factura.Service, error) {
	log := logger.WithComponent("cmd")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	if err := cfg.EnsureDirs(); err != nil {
		return nil, fmt.Errorf("preparing directories: %w", err)
	}

	store := factura.NewStore(cfg.DataFile)
	renderer := render.NewPDFRenderer(cfg.InvoiceDir, cfg.AssetsDir)

	svc, err := factura.NewService(store, renderer)
	if err != nil {
		var loadErr *factura.LoadError
		if !errors.As(err, &loadErr) {
			return nil, err
		}
		log.Warn().
			Err(loadErr).
			Msg("Could not load existing invoices, starting with an empty list")
		fmt.Printf("Warning: could not load existing invoices (%v), starting empty\n", loadErr.Err)
	}
	return svc, nil
}

// handleActionError translates lifecycle errors into user-facing messages.
// Validation problems name the offending field; store and render failures
// state that nothing was committed.
func handleActionError(err error, log zerolog.Logger) error {
	log.Error().Err(err).Msg("Invoice action failed")

	var validationErr *factura.ValidationError
	var renderErr *factura.RenderError
	var storeErr *factura.StoreError

	switch {
	case errors.Is(err, factura.ErrInvoiceNotFound):
		return fmt.Errorf("no invoice with that id exists. Use 'facturador list' to see the stored invoices")
	case errors.Is(err, factura.ErrNoClient):
		return fmt.Errorf("a client name is required. Use --client")
	case errors.Is(err, factura.ErrEmptyDraft):
		return fmt.Errorf("at least one line item is required. Use --item \"description:quantity:unit-price\"")
	case errors.Is(err, factura.ErrItemIndexOutOfRange):
		return fmt.Errorf("the line item index does not exist on this invoice. Use 'facturador show' to see the item numbers")
	case errors.As(err, &validationErr):
		return fmt.Errorf("invalid input: %v", validationErr)
	case errors.As(err, &renderErr):
		return fmt.Errorf("the PDF could not be generated, nothing was saved: %v", renderErr.Err)
	case errors.As(err, &storeErr):
		return fmt.Errorf("the invoice list could not be saved, the change was not committed: %v", storeErr.Err)
	default:
		return fmt.Errorf("invoice action failed: %w", err)
	}
}

// parseItemSpec parses "description:quantity:unit-price". The description
// may itself contain colons; quantity and price are taken from the right.
func parseItemSpec(spec string) (string, int, decimal.Decimal, error) {
	priceSep := strings.LastIndex(spec, ":")
	if priceSep < 0 {
		return "", 0, decimal.Zero, fmt.Errorf("invalid item %q: expected \"description:quantity:unit-price\"", spec)
	}
	qtySep := strings.LastIndex(spec[:priceSep], ":")
	if qtySep < 0 {
		return "", 0, decimal.Zero, fmt.Errorf("invalid item %q: expected \"description:quantity:unit-price\"", spec)
	}

	description := strings.TrimSpace(spec[:qtySep])

	quantity, err := strconv.Atoi(strings.TrimSpace(spec[qtySep+1 : priceSep]))
	if err != nil {
		return "", 0, decimal.Zero, fmt.Errorf("invalid item quantity in %q: %w", spec, err)
	}

	price, err := decimal.NewFromString(strings.TrimSpace(spec[priceSep+1:]))
	if err != nil {
		return "", 0, decimal.Zero, fmt.Errorf("invalid item price in %q: %w", spec, err)
	}

	return description, quantity, price, nil
}

// parseDate parses an ISO-8601 date flag value.
func parseDate(value string) (factura.Date, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return factura.Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", value)
	}
	return factura.Date{Time: t}, nil
}
