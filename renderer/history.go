package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/cotizador"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

// HistoryMarkdown renders a listing of quotation records as a markdown
// table followed by a per-status count summary and the grand total of the
// listed records.
func HistoryMarkdown(records []cotizador.QuotationRecord) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Quotations")

	if len(records) == 0 {
		doc.PlainText("No quotations found.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Number", "Date", "Client", "Total", "Status"},
		Rows:   [][]string{},
	}

	counts := map[cotizador.Status]int{}
	grand := decimal.Zero
	for _, r := range records {
		table.Rows = append(table.Rows, []string{
			r.Number,
			r.CreatedAt,
			r.Client.Name,
			cotizador.M(r.Total, r.Currency).String(),
			string(r.Status),
		})
		counts[r.Status]++
		grand = grand.Add(cotizador.Round2(r.Total))
	}
	doc.Table(table)

	doc.LF()
	for _, s := range []cotizador.Status{
		cotizador.StatusGenerated,
		cotizador.StatusSent,
		cotizador.StatusAccepted,
		cotizador.StatusRejected,
	} {
		if n := counts[s]; n > 0 {
			doc.PlainText(fmt.Sprintf("- %s: %d", s, n))
		}
	}
	doc.LF()
	doc.PlainText(fmt.Sprintf("**Grand total**: %s", grand.StringFixed(2)))

	return doc.String()
}
