// Package render generates the PDF artifact for a finalized invoice.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/rs/zerolog"

	"github.com/j2425716/facturador/internal/factura"
	"github.com/j2425716/facturador/internal/logger"
	"github.com/j2425716/facturador/internal/money"
)

// terms is the fixed terms-and-conditions text printed on every invoice.
var terms = []string{
	"1. El pago debe realizarse en la fecha de vencimiento indicada.",
	"2. Los precios incluyen IGV (18%).",
	"3. La factura es un documento oficial y debe conservarse para fines tributarios.",
	"4. Los productos entregados no tienen devolución salvo defectos de fábrica.",
	"5. Para cualquier reclamo, presentar esta factura dentro de las 24 horas siguientes.",
	"6. La empresa se reserva el derecho de modificar estos términos previo aviso.",
}

// PDFRenderer renders invoices as paginated A4 PDFs into a dedicated
// directory. It implements factura.Renderer.
type PDFRenderer struct {
	outDir    string
	assetsDir string
	now       func() time.Time
	log       zerolog.Logger
}

// NewPDFRenderer creates a renderer writing artifacts into outDir. A logo at
// <assetsDir>/logo.png is embedded in the header when present.
func NewPDFRenderer(outDir, assetsDir string) *PDFRenderer {
	return &PDFRenderer{
		outDir:    outDir,
		assetsDir: assetsDir,
		now:       time.Now,
		log:       logger.WithComponent("render"),
	}
}

// Render writes the PDF for an invoice and returns the artifact path. The
// file is named by invoice id plus a generation timestamp, so regenerating
// an edited invoice never overwrites the artifact it replaces.
func (r *PDFRenderer) Render(inv factura.Invoice, totals money.Totals) (string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Header with optional branding
	logoPath := filepath.Join(r.assetsDir, "logo.png")
	if _, err := os.Stat(logoPath); err == nil {
		pdf.Image(logoPath, 10, 10, 30, 0, false, "", 0, "")
		pdf.Ln(35)
	}

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(200, 10, "FACTURA", "", 1, "C", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(200, 10, tr(fmt.Sprintf("Fecha: %s", inv.IssueDate.Format("02/01/2006"))), "", 1, "L", false, 0, "")
	pdf.CellFormat(200, 10, tr(fmt.Sprintf("Vencimiento: %s", inv.DueDate.Format("02/01/2006"))), "", 1, "L", false, 0, "")
	pdf.CellFormat(200, 10, tr(fmt.Sprintf("Cliente: %s", inv.Client)), "", 1, "L", false, 0, "")
	pdf.CellFormat(200, 10, tr(fmt.Sprintf("Factura N°: %s", inv.Number())), "", 1, "L", false, 0, "")
	pdf.Ln(10)

	// Line item table
	pdf.SetFont("Arial", "B", 12)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(80, 10, "Producto", "1", 0, "L", true, 0, "")
	pdf.CellFormat(30, 10, "Cantidad", "1", 0, "L", true, 0, "")
	pdf.CellFormat(40, 10, "Precio Unit.", "1", 0, "L", true, 0, "")
	pdf.CellFormat(40, 10, "Total", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 12)
	for _, item := range inv.Items {
		desc := item.Description
		if len(desc) > 30 {
			desc = desc[:30]
		}
		pdf.CellFormat(80, 10, tr(desc), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 10, fmt.Sprintf("%d", item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 10, money.Format(item.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 10, money.Format(item.Total()), "1", 1, "R", false, 0, "")
	}

	// Totals block
	pdf.Ln(5)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(150, 10, "Subtotal:", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 10, money.Format(totals.Subtotal), "1", 1, "R", false, 0, "")
	pdf.CellFormat(150, 10, "IGV (18%):", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 10, money.Format(totals.Tax), "1", 1, "R", false, 0, "")
	pdf.CellFormat(150, 10, "Descuento:", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 10, "-"+money.Format(totals.Discount), "1", 1, "R", false, 0, "")
	pdf.CellFormat(150, 10, "Total a Pagar:", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 10, money.Format(totals.Total), "1", 1, "R", false, 0, "")

	// Notes, line by line
	if inv.Notes != "" {
		pdf.Ln(10)
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(190, 10, "Notas:", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(190, 7, tr(inv.Notes), "", "L", false)
	}

	// Fixed terms and conditions
	pdf.Ln(10)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 10, tr("Términos y Condiciones:"), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	for _, term := range terms {
		pdf.MultiCell(190, 7, tr(term), "", "L", false)
	}

	filename := filepath.Join(r.outDir, fmt.Sprintf("factura_%s_%d.pdf", inv.Number(), r.now().Unix()))
	if err := pdf.OutputFileAndClose(filename); err != nil {
		return "", fmt.Errorf("writing PDF %s: %w", filename, err)
	}

	r.log.Debug().
		Int("id", inv.ID).
		Str("artifact", filename).
		Msg("Invoice PDF rendered")
	return filename, nil
}
