package cotizador

import (
	"maps"
	"slices"
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"
)

// suggestCutoff is the minimum similarity ratio for a name to be suggested.
const suggestCutoff = 0.4

// Directory maps lowercased client names to the last record mentioning
// them, for autocomplete and quick-fill.
type Directory struct {
	byName map[string]QuotationRecord
}

// BuildDirectory derives the client directory from the history. Records are
// visited in file order, so for a repeated name the last-appended record
// wins; appends are chronological, which makes this most-recent-wins.
func BuildDirectory(h *History) *Directory {
	d := &Directory{byName: make(map[string]QuotationRecord)}
	for _, r := range h.Records() {
		name := strings.TrimSpace(r.Client.Name)
		if name == "" {
			continue
		}
		d.byName[strings.ToLower(name)] = r
	}
	return d
}

// Lookup returns the last known record for a client name. The match is an
// exact case-insensitive comparison, not a substring search.
func (d *Directory) Lookup(name string) (QuotationRecord, bool) {
	r, ok := d.byName[strings.ToLower(strings.TrimSpace(name))]
	return r, ok
}

// Names returns all distinct client names as last recorded, sorted.
func (d *Directory) Names() []string {
	keys := slices.Collect(maps.Keys(d.byName))
	slices.Sort(keys)
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, d.byName[k].Client.Name)
	}
	return names
}

// Suggest returns up to maxResults known names similar to the partial
// input, ordered by descending similarity. The ratio is a bigram-based
// similarity; ties keep their relative name order.
func (d *Directory) Suggest(partial string, maxResults int) []string {
	partial = strings.ToLower(strings.TrimSpace(partial))
	if partial == "" || maxResults < 1 {
		return nil
	}

	type scored struct {
		name  string
		ratio float32
	}
	var candidates []scored
	for _, name := range d.Names() {
		ratio, err := edlib.StringsSimilarity(partial, strings.ToLower(name), edlib.SorensenDice)
		if err != nil {
			continue
		}
		if ratio >= suggestCutoff {
			candidates = append(candidates, scored{name, ratio})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].ratio > candidates[j].ratio
	})

	if len(candidates) > maxResults {
		candidates = candidates[:maxResults]
	}
	names := make([]string, 0, len(candidates))
	for _, c := range candidates {
		names = append(names, c.name)
	}
	return names
}
