package renderer

import (
	"bytes"

	"github.com/etnz/cotizador"
	md "github.com/nao1215/markdown"
)

// ClientsMarkdown renders the client directory as a markdown table, one
// row per distinct client with the contact details of its latest record.
func ClientsMarkdown(dir *cotizador.Directory) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Clients")

	names := dir.Names()
	if len(names) == 0 {
		doc.PlainText("No clients yet.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
		},
		Header: []string{"Name", "Email", "RUC", "Address"},
		Rows:   [][]string{},
	}
	for _, name := range names {
		rec, ok := dir.Lookup(name)
		if !ok {
			continue
		}
		table.Rows = append(table.Rows, []string{
			rec.Client.Name,
			rec.Client.Email,
			rec.Client.TaxID,
			rec.Client.Address,
		})
	}
	doc.Table(table)

	return doc.String()
}
