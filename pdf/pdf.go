// Package pdf renders a finalized quotation into a paginated PDF document:
// a header block repeated on every page, the line-item table with automatic
// page breaks, a right-aligned totals block, the terms section, and a
// trailing references section for items that carry an image.
package pdf

import (
	"fmt"
	"image"
	"log"
	"os"

	_ "image/jpeg"
	_ "image/png"

	"github.com/go-pdf/fpdf"
)

// Line is one row of the item table. Amounts are pre-formatted by the
// caller so the renderer stays currency-agnostic.
type Line struct {
	Description string
	Quantity    string
	UnitPrice   string
	Subtotal    string
	// Image is the path of the relocated reference image, empty when the
	// item has none. Code identifies the reference in the trailing section.
	Image string
	Code  string
}

// Document is everything the renderer needs to lay out one quotation.
type Document struct {
	CompanyName    string
	CompanyTaxID   string
	CompanyAddress string
	LogoPath       string

	Number       string
	Date         string
	ClientName   string
	ClientAddr   string
	ClientEmail  string
	PaymentTerms string
	Validity     string
	DeliveryDate string

	Lines []Line

	Subtotal string
	TaxLabel string // e.g. "IGV (18%)"
	Tax      string
	Total    string

	Terms string
}

const (
	rowHeight   = 6.0
	breakMargin = 15.0
	imageWidth  = 80.0
)

var colWidths = [4]float64{90, 20, 30, 30}

// Render lays the document out and writes the artifact at path. It refuses
// an empty item list before touching the filesystem.
func Render(doc *Document, path string) error {
	if len(doc.Lines) == 0 {
		return fmt.Errorf("cannot render a quotation without items")
	}

	f := fpdf.New("P", "mm", "A4", "")
	l := &layout{f: f, tr: f.UnicodeTranslatorFromDescriptor(""), doc: doc}

	f.SetAutoPageBreak(true, breakMargin)
	f.SetHeaderFunc(l.header)
	f.SetFooterFunc(l.footer)
	f.AddPage()

	// Soft rule under the header.
	f.SetDrawColor(200, 200, 200)
	f.SetLineWidth(0.2)
	left, _, right, _ := f.GetMargins()
	pageW, _ := f.GetPageSize()
	f.Line(left, f.GetY(), pageW-right, f.GetY())
	f.Ln(4)

	l.metaBlock()
	l.itemTable()
	l.totalsBlock()
	l.termsBlock()
	l.referencesSection()

	return f.OutputFileAndClose(path)
}

// layout carries the document and the UTF-8 to cp1252 translator needed by
// the core Helvetica font.
type layout struct {
	f   *fpdf.Fpdf
	tr  func(string) string
	doc *Document
}

func (l *layout) header() {
	f := l.f
	if l.doc.LogoPath != "" && imageUsable(l.doc.LogoPath) {
		f.ImageOptions(l.doc.LogoPath, 10, 8, 30, 0, false, fpdf.ImageOptions{}, 0, "")
	}

	f.SetXY(45, 10)
	f.SetFont("Helvetica", "B", 16)
	name := l.doc.CompanyName
	if name == "" {
		name = "EMPRESA"
	}
	f.CellFormat(0, 8, l.tr(name), "", 1, "L", false, 0, "")

	f.SetFont("Helvetica", "", 10)
	if l.doc.CompanyTaxID != "" {
		f.SetX(45)
		f.CellFormat(0, 5, l.tr("RUC: "+l.doc.CompanyTaxID), "", 1, "L", false, 0, "")
	}
	if l.doc.CompanyAddress != "" {
		f.SetX(45)
		f.CellFormat(0, 5, l.tr("Dirección: "+l.doc.CompanyAddress), "", 1, "L", false, 0, "")
	}

	f.Ln(5)
	f.SetFont("Helvetica", "B", 15)
	title := "Cotización"
	if l.doc.Number != "" {
		title = "Cotización N°: " + l.doc.Number
	}
	f.CellFormat(0, 10, l.tr(title), "", 1, "C", false, 0, "")
	f.Ln(3)
}

func (l *layout) footer() {
	f := l.f
	f.SetY(-15)
	f.SetFont("Helvetica", "I", 8)
	f.CellFormat(0, 10, l.tr(fmt.Sprintf("Página %d", f.PageNo())), "", 0, "C", false, 0, "")
}

func (l *layout) metaBlock() {
	f := l.f
	f.SetFont("Helvetica", "", 11)
	f.SetTextColor(40, 40, 40)
	f.CellFormat(0, 6, l.tr("Fecha: "+l.doc.Date), "", 1, "L", false, 0, "")
	f.CellFormat(0, 6, l.tr("Cliente: "+l.doc.ClientName), "", 1, "L", false, 0, "")
	if l.doc.ClientAddr != "" {
		f.CellFormat(0, 6, l.tr("Dirección: "+l.doc.ClientAddr), "", 1, "L", false, 0, "")
	}
	if l.doc.ClientEmail != "" {
		f.CellFormat(0, 6, l.tr("Email: "+l.doc.ClientEmail), "", 1, "L", false, 0, "")
	}
	f.CellFormat(0, 6, l.tr("Condición: "+l.doc.PaymentTerms), "", 1, "L", false, 0, "")
	f.CellFormat(0, 6, l.tr("Validez: "+l.doc.Validity), "", 1, "L", false, 0, "")
	if l.doc.DeliveryDate != "" {
		f.CellFormat(0, 6, l.tr("Entrega: "+l.doc.DeliveryDate), "", 1, "L", false, 0, "")
	}
	f.Ln(8)
}

func (l *layout) tableHeader() {
	f := l.f
	headers := [4]string{"Descripción", "Cant.", "Precio", "Subtotal"}
	f.SetFont("Helvetica", "B", 11)
	f.SetFillColor(240, 240, 240)
	f.SetDrawColor(200, 200, 200)
	f.SetTextColor(30, 30, 30)
	for i, h := range headers {
		f.CellFormat(colWidths[i], 8, l.tr(h), "1", 0, "C", true, 0, "")
	}
	f.Ln(-1)
	f.SetFont("Helvetica", "", 10)
	f.SetTextColor(50, 50, 50)
}

func (l *layout) itemTable() {
	f := l.f
	l.tableHeader()

	_, pageH := f.GetPageSize()
	limit := pageH - breakMargin

	for _, line := range l.doc.Lines {
		desc := l.tr(line.Description)
		lines := f.SplitText(desc, colWidths[0])
		rowH := rowHeight * float64(len(lines))

		// Break the page before a row that would overflow it, and repeat
		// the table header on the new page.
		if f.GetY()+rowH > limit {
			f.AddPage()
			l.tableHeader()
		}

		x, y := f.GetXY()
		f.MultiCell(colWidths[0], rowHeight, desc, "1", "L", false)
		f.SetXY(x+colWidths[0], y)
		f.CellFormat(colWidths[1], rowH, line.Quantity, "1", 0, "R", false, 0, "")
		f.CellFormat(colWidths[2], rowH, l.tr(line.UnitPrice), "1", 0, "R", false, 0, "")
		f.CellFormat(colWidths[3], rowH, l.tr(line.Subtotal), "1", 0, "R", false, 0, "")
		f.SetXY(x, y+rowH)
	}
}

func (l *layout) totalsBlock() {
	f := l.f
	f.Ln(5)

	left, _, _, _ := f.GetMargins()
	tableWidth := colWidths[0] + colWidths[1] + colWidths[2] + colWidths[3]
	labelW, valueW := 80.0, 30.0
	startX := left + tableWidth - (labelW + valueW)

	f.SetFont("Helvetica", "", 10)
	f.SetTextColor(40, 40, 40)

	f.SetX(startX)
	f.CellFormat(labelW, 8, "SUBTOTAL:", "", 0, "R", false, 0, "")
	f.CellFormat(valueW, 8, l.tr(l.doc.Subtotal), "1", 1, "R", false, 0, "")

	f.SetX(startX)
	f.CellFormat(labelW, 8, l.tr(l.doc.TaxLabel+":"), "", 0, "R", false, 0, "")
	f.CellFormat(valueW, 8, l.tr(l.doc.Tax), "1", 1, "R", false, 0, "")

	f.SetX(startX)
	f.SetFont("Helvetica", "B", 11)
	f.SetFillColor(230, 230, 250)
	f.CellFormat(labelW, 8, "TOTAL:", "", 0, "R", true, 0, "")
	f.CellFormat(valueW, 8, l.tr(l.doc.Total), "1", 1, "R", true, 0, "")
}

func (l *layout) termsBlock() {
	if l.doc.Terms == "" {
		return
	}
	f := l.f
	f.Ln(10)
	f.SetFont("Helvetica", "B", 11)
	f.SetTextColor(40, 40, 40)
	f.CellFormat(0, 6, l.tr("Términos y Condiciones:"), "", 1, "L", false, 0, "")
	f.SetFont("Helvetica", "", 9)
	f.SetTextColor(50, 50, 50)
	f.MultiCell(0, 5, l.tr(l.doc.Terms), "", "L", false)
}

// referencesSection appends the reference images, one block per item that
// carries one, paginating when the remaining page height is too short. An
// image that cannot be decoded is skipped so one corrupt file never spoils
// the document.
func (l *layout) referencesSection() {
	f := l.f

	var refs []Line
	for _, line := range l.doc.Lines {
		if line.Image != "" {
			refs = append(refs, line)
		}
	}
	if len(refs) == 0 {
		return
	}

	_, pageH := f.GetPageSize()
	limit := pageH - breakMargin

	f.AddPage()
	f.SetFont("Helvetica", "B", 13)
	f.SetTextColor(30, 30, 30)
	f.CellFormat(0, 8, "Referencias", "", 1, "L", false, 0, "")
	f.Ln(2)

	for _, ref := range refs {
		w, h, ok := imageSize(ref.Image)
		if !ok {
			log.Printf("warning: skipping reference image %q", ref.Image)
			continue
		}
		imageH := imageWidth * h / w

		// Label line plus the scaled image must fit the remaining height.
		if f.GetY()+rowHeight+imageH > limit {
			f.AddPage()
		}

		f.SetFont("Helvetica", "B", 10)
		f.SetTextColor(40, 40, 40)
		f.CellFormat(0, 6, l.tr(ref.Code+" - "+ref.Description), "", 1, "L", false, 0, "")
		f.ImageOptions(ref.Image, f.GetX(), f.GetY(), imageWidth, 0, false, fpdf.ImageOptions{}, 0, "")
		f.SetY(f.GetY() + imageH + 4)
	}
}

// imageSize decodes only the image header and returns its dimensions.
func imageSize(path string) (w, h float64, ok bool) {
	file, err := os.Open(path)
	if err != nil {
		return 0, 0, false
	}
	defer file.Close()
	cfg, _, err := image.DecodeConfig(file)
	if err != nil || cfg.Width == 0 || cfg.Height == 0 {
		return 0, 0, false
	}
	return float64(cfg.Width), float64(cfg.Height), true
}

func imageUsable(path string) bool {
	_, _, ok := imageSize(path)
	return ok
}
