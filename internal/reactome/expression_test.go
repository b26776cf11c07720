// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reactome

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeExpressionFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "expression.tsv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

// --- Reading ---

func TestReadExpressionTable(t *testing.T) {
	path := writeExpressionFile(t, "protein\ttumor\tnormal\nP04637\t2.5\t-0.75\nQ00987\t1.25\t0\n")

	table, err := ReadExpressionTable(path)
	if err != nil {
		t.Fatalf("ReadExpressionTable: %v", err)
	}

	if table.IndexName != "protein" {
		t.Errorf("IndexName = %q, want %q", table.IndexName, "protein")
	}
	if len(table.Columns) != 2 || table.Columns[0] != "tumor" || table.Columns[1] != "normal" {
		t.Errorf("Columns = %v", table.Columns)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("len(Rows) = %d, want 2", len(table.Rows))
	}
	if table.Rows[0].Identifier != "P04637" || table.Rows[0].Values[0] != 2.5 || table.Rows[0].Values[1] != -0.75 {
		t.Errorf("Rows[0] = %+v", table.Rows[0])
	}
}

func TestReadExpressionTableMissingValues(t *testing.T) {
	path := writeExpressionFile(t, "protein\ttumor\tnormal\nP04637\tnan\t1.5\nQ00987\tNaN\t\n")

	table, err := ReadExpressionTable(path)
	if err != nil {
		t.Fatalf("ReadExpressionTable: %v", err)
	}

	if !math.IsNaN(table.Rows[0].Values[0]) {
		t.Errorf("Rows[0].Values[0] = %v, want NaN", table.Rows[0].Values[0])
	}
	if !math.IsNaN(table.Rows[1].Values[0]) || !math.IsNaN(table.Rows[1].Values[1]) {
		t.Errorf("Rows[1] = %+v, want NaN values", table.Rows[1])
	}
}

func TestReadExpressionTableBadValue(t *testing.T) {
	path := writeExpressionFile(t, "protein\ttumor\nP04637\thigh\n")

	_, err := ReadExpressionTable(path)
	if err == nil {
		t.Fatal("expected error for non-numeric cell")
	}
	for _, want := range []string{`row "P04637"`, `column "tumor"`, `"high"`} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error = %q, want substring %q", err.Error(), want)
		}
	}
}

func TestReadExpressionTableNoDataColumns(t *testing.T) {
	path := writeExpressionFile(t, "protein\nP04637\n")

	_, err := ReadExpressionTable(path)
	if err == nil {
		t.Fatal("expected error for a table with no data columns")
	}
	if !strings.Contains(err.Error(), "no data columns") {
		t.Errorf("error = %q", err.Error())
	}
}

func TestReadExpressionTableNoRows(t *testing.T) {
	path := writeExpressionFile(t, "protein\ttumor\n")

	_, err := ReadExpressionTable(path)
	if err == nil {
		t.Fatal("expected error for a table with no data rows")
	}
	if !strings.Contains(err.Error(), "no data rows") {
		t.Errorf("error = %q", err.Error())
	}
}

func TestReadExpressionTableMissingFile(t *testing.T) {
	_, err := ReadExpressionTable(filepath.Join(t.TempDir(), "absent.tsv"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "opening expression table") {
		t.Errorf("error = %q", err.Error())
	}
}

// --- Serialization ---

func TestExpressionTableTSVHeaderPrefix(t *testing.T) {
	tests := []struct {
		name      string
		indexName string
		wantFirst string
	}{
		{"empty defaults", "", "#identifier"},
		{"prefix added", "protein", "#protein"},
		{"prefix kept", "#gene", "#gene"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := &ExpressionTable{
				IndexName: tt.indexName,
				Columns:   []string{"tumor"},
				Rows:      []ExpressionRow{{Identifier: "P04637", Values: []float64{1}}},
			}
			got := table.TSV()
			if !strings.HasPrefix(got, tt.wantFirst+"\ttumor\n") {
				t.Errorf("TSV header = %q, want to start with %q", got, tt.wantFirst+"\ttumor")
			}
		})
	}
}

func TestExpressionTableTSVValues(t *testing.T) {
	table := &ExpressionTable{
		IndexName: "protein",
		Columns:   []string{"tumor", "normal"},
		Rows: []ExpressionRow{
			{Identifier: "P04637", Values: []float64{2.5, math.NaN()}},
			{Identifier: "Q00987", Values: []float64{-0.75, 0}},
		},
	}

	got := table.TSV()
	want := "#protein\ttumor\tnormal\nP04637\t2.5\tnan\nQ00987\t-0.75\t0\n"
	if got != want {
		t.Errorf("TSV() = %q, want %q", got, want)
	}
}
