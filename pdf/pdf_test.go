package pdf

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func document() *Document {
	return &Document{
		CompanyName:    "Acme SAC",
		CompanyTaxID:   "20123456789",
		CompanyAddress: "Av. Principal 123, Lima",
		Number:         "COT-2026-00042",
		Date:           "2026-08-31",
		ClientName:     "Constructora Andina",
		ClientEmail:    "ventas@andina.pe",
		PaymentTerms:   "50% adelanto - 50% contraentrega",
		Validity:       "15 días",
		Lines: []Line{
			{Description: "Puerta contraplacada 90x200", Quantity: "4", UnitPrice: "S/350.00", Subtotal: "S/1,400.00", Code: "REF-01"},
			{Description: "Instalación", Quantity: "1", UnitPrice: "S/200.00", Subtotal: "S/200.00", Code: "REF-02"},
		},
		Subtotal: "S/1,600.00",
		TaxLabel: "IGV (18%)",
		Tax:      "S/288.00",
		Total:    "S/1,888.00",
		Terms:    "Precios válidos salvo error u omisión.",
	}
}

func writePNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 40, 30))
	for x := 0; x < 40; x++ {
		for y := 0; y < 30; y++ {
			img.Set(x, y, color.RGBA{uint8(x * 6), uint8(y * 8), 100, 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func assertPDF(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) < 4 || string(data[:4]) != "%PDF" {
		t.Errorf("%s does not look like a PDF", path)
	}
}

func TestRender(t *testing.T) {
	target := filepath.Join(t.TempDir(), "out.pdf")
	if err := Render(document(), target); err != nil {
		t.Fatal(err)
	}
	assertPDF(t, target)
}

func TestRenderRejectsEmpty(t *testing.T) {
	target := filepath.Join(t.TempDir(), "out.pdf")
	doc := document()
	doc.Lines = nil
	if err := Render(doc, target); err == nil {
		t.Fatal("expected an error on a document without lines")
	}
	if _, err := os.Stat(target); !os.IsNotExist(err) {
		t.Error("no file should be created for a rejected document")
	}
}

func TestRenderWithReferences(t *testing.T) {
	dir := t.TempDir()
	img := filepath.Join(dir, "ref.png")
	writePNG(t, img)

	doc := document()
	doc.Lines[0].Image = img

	target := filepath.Join(dir, "out.pdf")
	if err := Render(doc, target); err != nil {
		t.Fatal(err)
	}
	assertPDF(t, target)
}

func TestRenderSkipsCorruptImage(t *testing.T) {
	dir := t.TempDir()
	corrupt := filepath.Join(dir, "corrupt.png")
	if err := os.WriteFile(corrupt, []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}

	doc := document()
	doc.Lines[0].Image = corrupt
	doc.Lines[1].Image = filepath.Join(dir, "missing.png")

	target := filepath.Join(dir, "out.pdf")
	if err := Render(doc, target); err != nil {
		t.Fatalf("corrupt references must not fail the render: %v", err)
	}
	assertPDF(t, target)
}

func TestRenderManyLinesPaginates(t *testing.T) {
	doc := document()
	for i := 0; i < 60; i++ {
		doc.Lines = append(doc.Lines, Line{
			Description: "Listón de madera tornillo cepillado 2x2x10 con tratamiento",
			Quantity:    "10",
			UnitPrice:   "S/18.00",
			Subtotal:    "S/180.00",
		})
	}
	target := filepath.Join(t.TempDir(), "out.pdf")
	if err := Render(doc, target); err != nil {
		t.Fatal(err)
	}
	assertPDF(t, target)
}
