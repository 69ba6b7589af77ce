package factura

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/j2425716/facturador/internal/logger"
	"github.com/j2425716/facturador/internal/money"
)

// Renderer produces the durable invoice document. The lifecycle treats it as
// opaque: it receives already-validated, already-rounded data and returns a
// path to the artifact or a failure.
type Renderer interface {
	Render(inv Invoice, totals money.Totals) (string, error)
}

// Service drives the invoice lifecycle: Draft -> Finalized -> (Editing ->
// Finalized)* -> Deleted. It owns the in-memory collection and mirrors every
// mutation to the snapshot before control returns, so memory and disk stay
// consistent except for a crash before the write.
type Service struct {
	store    *Store
	renderer Renderer
	invoices []Invoice
	log      zerolog.Logger
}

// NewService loads the snapshot and returns the service. A malformed
// snapshot is not fatal: the service starts with an empty collection and the
// returned *LoadError tells the caller to surface a warning.
func NewService(store *Store, renderer Renderer) (*Service, error) {
	invoices, err := store.Load()
	return &Service{
		store:    store,
		renderer: renderer,
		invoices: invoices,
		log:      logger.WithComponent("service"),
	}, err
}

// List returns the invoices ordered newest id first.
func (s *Service) List() []Invoice {
	out := make([]Invoice, len(s.invoices))
	copy(out, s.invoices)
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

// Get returns the invoice with the given id.
func (s *Service) Get(id int) (Invoice, error) {
	for _, inv := range s.invoices {
		if inv.ID == id {
			return inv, nil
		}
	}
	return Invoice{}, ErrInvoiceNotFound
}

// BeginEdit re-enters the draft workspace from a finalized invoice. The
// original record stays in place until Finalize replaces it.
func (s *Service) BeginEdit(id int) (*Draft, error) {
	inv, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	return DraftFromInvoice(inv), nil
}

// Finalize turns a draft into a persisted invoice: validate, compute totals,
// render the PDF, then write the snapshot. Rendering strictly precedes
// persistence, so a render failure leaves the store untouched and the store
// never references a missing artifact. A draft carrying an EditingID
// replaces that record in place; otherwise the next free id is assigned.
func (s *Service) Finalize(d *Draft) (Invoice, error) {
	if err := ValidateDraft(d); err != nil {
		return Invoice{}, err
	}

	id := d.EditingID
	if id == 0 {
		id = NextID(s.invoices)
	}

	inv := Invoice{
		ID:        id,
		Client:    d.Client,
		Items:     d.Items,
		Discount:  d.Discount,
		IssueDate: d.IssueDate,
		DueDate:   d.DueDate,
		Notes:     d.Notes,
	}
	totals := d.Totals()

	path, err := s.renderer.Render(inv, totals)
	if err != nil {
		s.log.Error().
			Err(err).
			Int("id", id).
			Msg("Invoice rendering failed")
		return Invoice{}, &RenderError{InvoiceID: id, Err: err}
	}
	inv.ArtifactPath = path

	// Build the replacement collection, then persist it. The in-memory
	// collection is only swapped after the snapshot write succeeds.
	next := make([]Invoice, 0, len(s.invoices)+1)
	var replaced Invoice
	for _, existing := range s.invoices {
		if existing.ID == id {
			replaced = existing
			continue
		}
		next = append(next, existing)
	}
	next = append(next, inv)

	if err := s.store.Save(next); err != nil {
		return Invoice{}, err
	}
	s.invoices = next

	if replaced.ArtifactPath != "" && replaced.ArtifactPath != inv.ArtifactPath {
		s.store.RemoveArtifact(replaced)
	}

	s.log.Info().
		Int("id", inv.ID).
		Str("client", inv.Client).
		Str("total", totals.Total.StringFixed(2)).
		Str("artifact", inv.ArtifactPath).
		Msg("Invoice finalized")
	return inv, nil
}

// Delete removes an invoice record and its rendered artifact. There is no
// tombstone: a reload of the store no longer includes the id. The record is
// removed from the snapshot first; artifact removal is best-effort.
func (s *Service) Delete(id int) error {
	found := false
	var victim Invoice
	next := make([]Invoice, 0, len(s.invoices))
	for _, inv := range s.invoices {
		if inv.ID == id {
			found = true
			victim = inv
			continue
		}
		next = append(next, inv)
	}
	if !found {
		return ErrInvoiceNotFound
	}

	if err := s.store.Save(next); err != nil {
		return err
	}
	s.invoices = next
	s.store.RemoveArtifact(victim)

	s.log.Info().
		Int("id", id).
		Str("client", victim.Client).
		Msg("Invoice deleted")
	return nil
}
