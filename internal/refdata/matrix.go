// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package refdata

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// MembershipMatrix holds the WikiPathways protein×pathway membership table.
// Rows are proteins, columns are pathways; both keep the order they have in
// the file.
type MembershipMatrix struct {
	pathways []string
	proteins []string
	rows     map[string][]bool
}

// LoadMatrix reads the WikiPathways membership matrix from dir. The first
// header field labels the protein column and may be blank; every other
// header field is a pathway name. Cells must parse as booleans, where
// "True"/"False" in any case and "1"/"0" are accepted.
func LoadMatrix(dir string) (*MembershipMatrix, error) {
	path := filepath.Join(dir, MatrixFile)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening membership matrix: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading membership matrix header: %w", err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("membership matrix %s has no pathway columns", path)
	}

	m := &MembershipMatrix{
		pathways: header[1:],
		rows:     map[string][]bool{},
	}
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading membership matrix: %w", err)
		}
		protein := record[0]
		flags := make([]bool, len(record)-1)
		for i, cell := range record[1:] {
			member, err := parseFlag(cell)
			if err != nil {
				return nil, fmt.Errorf("membership matrix %s: row %q, column %q: %w", path, protein, m.pathways[i], err)
			}
			flags[i] = member
		}
		if _, dup := m.rows[protein]; !dup {
			m.proteins = append(m.proteins, protein)
		}
		m.rows[protein] = flags
	}
	return m, nil
}

func parseFlag(cell string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(cell)) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("invalid membership flag %q", cell)
}

// Pathways returns every pathway name, in file column order.
func (m *MembershipMatrix) Pathways() []string {
	out := make([]string, len(m.pathways))
	copy(out, m.pathways)
	return out
}

// ProteinPathways returns the pathways protein belongs to, in column order.
// Returns nil when the protein is not in the matrix.
func (m *MembershipMatrix) ProteinPathways(protein string) []string {
	flags, ok := m.rows[protein]
	if !ok {
		return nil
	}
	var out []string
	for i, member := range flags {
		if member {
			out = append(out, m.pathways[i])
		}
	}
	return out
}

// PathwayProteins returns the proteins belonging to pathway, in row order.
// Returns nil when the pathway is not a column of the matrix.
func (m *MembershipMatrix) PathwayProteins(pathway string) []string {
	col := -1
	for i, name := range m.pathways {
		if name == pathway {
			col = i
			break
		}
	}
	if col < 0 {
		return nil
	}
	var out []string
	for _, protein := range m.proteins {
		if m.rows[protein][col] {
			out = append(out, protein)
		}
	}
	return out
}

// SharedPathwayPartners returns every other protein that shares at least one
// pathway with protein, in row order. The query protein itself is excluded.
func (m *MembershipMatrix) SharedPathwayPartners(protein string) []string {
	flags, ok := m.rows[protein]
	if !ok {
		return nil
	}
	var out []string
	for _, other := range m.proteins {
		if other == protein {
			continue
		}
		otherFlags := m.rows[other]
		for i, member := range flags {
			if member && otherFlags[i] {
				out = append(out, other)
				break
			}
		}
	}
	return out
}
