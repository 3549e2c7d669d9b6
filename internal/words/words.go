// Package words loads the impostor word lists. Lists are ;-separated
// CSV files with a category;word;difficulty header row.
package words

import (
	"encoding/csv"
	"fmt"
	"math/rand/v2"
	"os"
)

// Entry is one playable word.
type Entry struct {
	Category   string
	Word       string
	Difficulty string
}

// Topics is the fixed category list offered to room creators.
var Topics = []string{
	"comida", "cine", "musica", "tecnologia", "deportes",
	"paises", "animales", "videojuegos", "objetos", "lugares",
}

// Load reads a word list from disk.
func Load(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ';'
	r.FieldsPerRecord = 3

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse word list %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("word list %s is empty", path)
	}

	entries := make([]Entry, 0, len(records)-1)
	for _, rec := range records[1:] { // skip header
		entries = append(entries, Entry{
			Category:   rec[0],
			Word:       rec[1],
			Difficulty: rec[2],
		})
	}
	return entries, nil
}

// Random picks a word matching the given category and difficulty.
// Empty filters match everything; a filter that matches nothing falls
// back to the full list rather than failing the round.
func Random(entries []Entry, category, difficulty string) Entry {
	var pool []Entry
	for _, e := range entries {
		if category != "" && e.Category != category {
			continue
		}
		if difficulty != "" && e.Difficulty != difficulty {
			continue
		}
		pool = append(pool, e)
	}
	if len(pool) == 0 {
		pool = entries
	}
	return pool[rand.IntN(len(pool))]
}
