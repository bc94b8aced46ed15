package cotizador

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// This file contains the spreadsheet export. The output is a flattened
// projection of the history store followed by a summary block appended as
// extra rows, which keeps the file human-readable even though the trailing
// block is not tabular CSV.

var csvHeader = []string{
	"number", "baseNumber", "version", "createdAt", "deliveryDate",
	"client", "email", "address", "taxId",
	"items", "subtotal", "taxRate", "tax", "total",
	"currency", "taxEnabled", "documentPath", "status",
}

// ExportCSV writes the history store as CSV rows plus the trailing summary
// block (grand total and per-status counts).
func ExportCSV(w io.Writer, h *History) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("could not write CSV header: %w", err)
	}

	for _, r := range h.Records() {
		delivery := ""
		if !r.DeliveryDate.IsZero() {
			delivery = r.DeliveryDate.String()
		}
		row := []string{
			r.Number,
			r.BaseNumber,
			strconv.Itoa(r.Version),
			r.CreatedAt,
			delivery,
			r.Client.Name,
			r.Client.Email,
			r.Client.Address,
			r.Client.TaxID,
			strconv.Itoa(len(r.Items)),
			Round2(r.Subtotal).StringFixed(2),
			r.TaxRate.String(),
			Round2(r.Tax).StringFixed(2),
			Round2(r.Total).StringFixed(2),
			string(r.Currency),
			strconv.FormatBool(r.TaxEnabled),
			r.DocumentPath,
			string(r.Status),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("could not write CSV row for %s: %w", r.Number, err)
		}
	}

	// Summary block: not valid tabular CSV, accepted as a human-readable
	// addendum for spreadsheet users.
	cw.Write([]string{})
	cw.Write([]string{"GRAND TOTAL", h.GrandTotal().StringFixed(2)})
	counts := h.StatusCounts()
	for _, s := range []Status{StatusGenerated, StatusSent, StatusAccepted, StatusRejected} {
		cw.Write([]string{string(s), strconv.Itoa(counts[s])})
	}

	cw.Flush()
	return cw.Error()
}
