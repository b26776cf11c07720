// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reactome

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// ExpressionTable holds numeric values keyed by molecule identifier, one
// column per sample or aggregate. It is the payload the analysis service
// overlays on a pathway diagram.
type ExpressionTable struct {
	// IndexName labels the identifier column. Serialization forces it to
	// start with "#" as the analysis service requires, defaulting to
	// "#identifier" when empty.
	IndexName string

	Columns []string
	Rows    []ExpressionRow
}

// ExpressionRow is one molecule's values across all columns.
type ExpressionRow struct {
	Identifier string
	Values     []float64
}

// ReadExpressionTable loads a tab-separated expression file. The first
// header field names the identifier column; every other cell must be
// numeric, where empty, "nan" and "NaN" mean missing.
func ReadExpressionTable(path string) (*ExpressionTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening expression table: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading expression table header: %w", err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("expression table %s has no data columns", path)
	}

	table := &ExpressionTable{
		IndexName: header[0],
		Columns:   header[1:],
	}
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading expression table: %w", err)
		}
		row := ExpressionRow{
			Identifier: record[0],
			Values:     make([]float64, len(record)-1),
		}
		for i, cell := range record[1:] {
			v, err := parseExpressionValue(cell)
			if err != nil {
				return nil, fmt.Errorf("expression table %s: row %q, column %q: %w", path, row.Identifier, table.Columns[i], err)
			}
			row.Values[i] = v
		}
		table.Rows = append(table.Rows, row)
	}
	if len(table.Rows) == 0 {
		return nil, fmt.Errorf("expression table %s has no data rows", path)
	}
	return table, nil
}

func parseExpressionValue(cell string) (float64, error) {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" || strings.EqualFold(trimmed, "nan") {
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid numeric value %q", cell)
	}
	return v, nil
}

// TSV serializes the table to the tab-separated form the analysis service
// accepts: "#"-prefixed identifier header, NaN rendered as "nan".
func (t *ExpressionTable) TSV() string {
	name := t.IndexName
	if name == "" {
		name = "#identifier"
	} else if !strings.HasPrefix(name, "#") {
		name = "#" + name
	}

	var b strings.Builder
	b.WriteString(name)
	for _, col := range t.Columns {
		b.WriteString("\t")
		b.WriteString(col)
	}
	b.WriteString("\n")

	for _, row := range t.Rows {
		b.WriteString(row.Identifier)
		for _, v := range row.Values {
			b.WriteString("\t")
			b.WriteString(formatExpressionValue(v))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func formatExpressionValue(v float64) string {
	if math.IsNaN(v) {
		return "nan"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
