package words_test

import (
	"os"
	"path/filepath"
	"testing"

	"agentes/internal/words"
)

func writeList(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSkipsHeader(t *testing.T) {
	path := writeList(t, "category;word;difficulty\ncomida;paella;facil\nlugares;faro;medio\n")

	entries, err := words.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("loaded %d entries, want 2", len(entries))
	}
	if entries[0].Word != "paella" || entries[0].Category != "comida" || entries[0].Difficulty != "facil" {
		t.Errorf("first entry = %+v", entries[0])
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := words.Load(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Error("missing file did not error")
	}
}

func TestRandomRespectsFilters(t *testing.T) {
	entries := []words.Entry{
		{Category: "comida", Word: "paella", Difficulty: "facil"},
		{Category: "comida", Word: "ceviche", Difficulty: "medio"},
		{Category: "lugares", Word: "faro", Difficulty: "medio"},
	}

	for i := 0; i < 20; i++ {
		e := words.Random(entries, "comida", "medio")
		if e.Word != "ceviche" {
			t.Fatalf("filtered pick = %q, want ceviche", e.Word)
		}
	}

	// A filter with no matches falls back to the full list.
	e := words.Random(entries, "deportes", "")
	if e.Word == "" {
		t.Error("empty fallback pick")
	}
}
