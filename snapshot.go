package cotizador

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var unsafeFilenameChars = regexp.MustCompile(`[^\w\s\-_.]`)

// SanitizeFilename strips characters that are unsafe in file names and
// replaces spaces with underscores.
func SanitizeFilename(s string) string {
	s = unsafeFilenameChars.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "  ", " ")
	return strings.ReplaceAll(s, " ", "_")
}

// DocumentFilename derives the rendered artifact's file name from the
// client name and the issued number, e.g. "Acme_SAC - COT-2025-00001.pdf".
func DocumentFilename(clientName, number string) string {
	safe := SanitizeFilename(clientName)
	if safe == "" {
		safe = "SinCliente"
	}
	return fmt.Sprintf("%s - %s.pdf", safe, number)
}

// Snapshot freezes the draft into a quotation record under the given issued
// number. Item images are relocated into referencesDir and renamed by number
// and 1-based item index; a reference that cannot be copied is logged and
// dropped from the snapshot rather than failing the whole operation.
func (d *Draft) Snapshot(number string, referencesDir string) (QuotationRecord, error) {
	if err := d.Validate(); err != nil {
		return QuotationRecord{}, err
	}

	base, version := SplitNumber(number)
	totals := d.Totals()

	items := make([]LineItem, len(d.Items))
	copy(items, d.Items)
	for i := range items {
		if items[i].Image == "" {
			continue
		}
		name, err := relocateImage(items[i].Image, referencesDir, number, i+1)
		if err != nil {
			log.Printf("warning: reference image for item %d skipped: %v", i+1, err)
			items[i].Image = ""
			continue
		}
		items[i].Image = name
	}

	return QuotationRecord{
		Number:       number,
		BaseNumber:   base,
		Version:      version,
		CreatedAt:    NowStamp(),
		DeliveryDate: d.DeliveryDate,
		Client:       d.Client,
		PaymentTerms: d.PaymentTerms,
		Validity:     d.Validity,
		Items:        items,
		Subtotal:     totals.Subtotal,
		TaxRate:      d.TaxRate,
		Tax:          totals.Tax,
		Total:        totals.Total,
		Currency:     d.Currency,
		TaxEnabled:   d.TaxEnabled,
		DocumentPath: DocumentFilename(d.Client.Name, number),
		Status:       StatusGenerated,
		Terms:        d.Terms,
	}, nil
}

// relocateImage copies a working image file into the references directory,
// renamed after the record number and item index, and returns the new file
// name (not the full path).
func relocateImage(src, referencesDir, number string, index int) (string, error) {
	ext := strings.ToLower(filepath.Ext(src))
	name := fmt.Sprintf("%s-%02d%s", SanitizeFilename(number), index, ext)

	if err := os.MkdirAll(referencesDir, 0755); err != nil {
		return "", fmt.Errorf("could not create references directory: %w", err)
	}

	in, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("could not open image %q: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(filepath.Join(referencesDir, name))
	if err != nil {
		return "", fmt.Errorf("could not create reference file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return "", fmt.Errorf("could not copy image %q: %w", src, err)
	}
	return name, nil
}
