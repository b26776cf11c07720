// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package refdata

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// InteractionTable holds the BioPlex protein-pair interaction list. Pairs
// are undirected: a protein matches a row whichever side it appears on.
type InteractionTable struct {
	pairs [][2]string
}

// LoadInteractions reads the BioPlex interaction list from dir. The symbol
// columns are located by header name, so extra columns (Uniprot accessions,
// confidence scores) are tolerated and ignored.
func LoadInteractions(dir string) (*InteractionTable, error) {
	path := filepath.Join(dir, InteractionFile)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening interaction table: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading interaction table header: %w", err)
	}
	colA, colB := -1, -1
	for i, name := range header {
		switch name {
		case "SymbolA":
			colA = i
		case "SymbolB":
			colB = i
		}
	}
	if colA < 0 || colB < 0 {
		return nil, fmt.Errorf("interaction table %s has no SymbolA/SymbolB columns", path)
	}

	table := &InteractionTable{}
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading interaction table: %w", err)
		}
		table.pairs = append(table.pairs, [2]string{record[colA], record[colB]})
	}
	return table, nil
}

// Partners returns the interaction partners of protein, deduplicated in
// first-seen row order. With secondary set, the partners of every direct
// partner are unioned in after the direct ones; since pairs are undirected
// the second hop folds the query protein itself back into the list.
// Returns nil when the protein appears in no row.
func (t *InteractionTable) Partners(protein string, secondary bool) []string {
	direct := t.directPartners(protein)
	if direct == nil || !secondary {
		return direct
	}

	seen := make(map[string]bool, len(direct))
	for _, p := range direct {
		seen[p] = true
	}
	all := direct
	for _, p := range direct {
		for _, hop := range t.directPartners(p) {
			if !seen[hop] {
				seen[hop] = true
				all = append(all, hop)
			}
		}
	}
	return all
}

func (t *InteractionTable) directPartners(protein string) []string {
	var partners []string
	seen := map[string]bool{}
	for _, pair := range t.pairs {
		var partner string
		switch protein {
		case pair[0]:
			partner = pair[1]
		case pair[1]:
			partner = pair[0]
		default:
			continue
		}
		if !seen[partner] {
			seen[partner] = true
			partners = append(partners, partner)
		}
	}
	return partners
}
