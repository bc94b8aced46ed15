package cotizador

import (
	"slices"
	"testing"
)

func directory(t *testing.T, clients ...Client) *Directory {
	t.Helper()
	h := NewHistory()
	for i, c := range clients {
		rec := record(FormatNumber("COT-2026", i+1), c.Name, StatusGenerated, "100")
		rec.Client = c
		if err := h.Append(rec); err != nil {
			t.Fatal(err)
		}
	}
	return BuildDirectory(h)
}

func TestLookup(t *testing.T) {
	dir := directory(t,
		Client{Name: "Acme SAC", Email: "old@acme.pe"},
		Client{Name: "acme sac", Email: "new@acme.pe", Address: "Av. Lima 1"},
		Client{Name: "Beta EIRL"},
	)

	// The latest record wins, case-insensitively.
	rec, ok := dir.Lookup("ACME SAC")
	if !ok {
		t.Fatal("Lookup failed")
	}
	if rec.Client.Email != "new@acme.pe" || rec.Client.Address != "Av. Lima 1" {
		t.Errorf("Lookup returned the older record: %+v", rec.Client)
	}

	if _, ok := dir.Lookup("Gamma"); ok {
		t.Error("Lookup of an unknown name should fail")
	}
	if _, ok := dir.Lookup("Acme"); ok {
		t.Error("Lookup is exact, a prefix should not match")
	}
}

func TestNames(t *testing.T) {
	dir := directory(t,
		Client{Name: "Beta EIRL"},
		Client{Name: "Acme SAC"},
		Client{Name: "Acme SAC"},
		Client{Name: ""},
	)
	got := dir.Names()
	want := []string{"Acme SAC", "Beta EIRL"}
	if !slices.Equal(got, want) {
		t.Errorf("Names = %v, want %v", got, want)
	}
}

func TestSuggest(t *testing.T) {
	dir := directory(t,
		Client{Name: "Constructora Andina"},
		Client{Name: "Constructora Pacifico"},
		Client{Name: "Ferreteria El Sol"},
	)

	got := dir.Suggest("constructora and", 5)
	if len(got) == 0 {
		t.Fatal("expected at least one suggestion")
	}
	if got[0] != "Constructora Andina" {
		t.Errorf("best suggestion = %q, want Constructora Andina", got[0])
	}
	for _, name := range got {
		if name == "Ferreteria El Sol" {
			t.Errorf("unrelated name %q suggested", name)
		}
	}

	if got := dir.Suggest("constructora", 1); len(got) > 1 {
		t.Errorf("maxResults not honored, got %v", got)
	}
	if got := dir.Suggest("", 5); got != nil {
		t.Errorf("empty partial should suggest nothing, got %v", got)
	}
}
