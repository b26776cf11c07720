// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package interact queries protein-interaction web APIs and returns unified,
// deduplicated partner lists.
package interact

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/pathway-engine/pkg/types"
)

// Backend fetches interaction partners from a single remote database. Each
// backend (STRING, BioGRID) implements this interface.
type Backend interface {
	Name() string
	Partners(ctx context.Context, protein string, cfg types.InteractConfig) ([]string, error)
}

// Output holds the unioned partner list and any per-backend failures.
type Output struct {
	Partners      []types.Partner
	BackendErrors []string
}

// Partners queries each backend in turn and unions the partner lists in
// first-seen order, merging sources for symbols reported by more than one
// database. A failed backend is reported as a warning on w; an error is
// returned only when every backend fails.
func Partners(ctx context.Context, protein string, backends []Backend, cfg types.InteractConfig, w io.Writer) (Output, error) {
	if strings.TrimSpace(protein) == "" {
		return Output{}, fmt.Errorf("protein is empty: provide a gene symbol to query")
	}
	if len(backends) == 0 {
		return Output{}, fmt.Errorf("no interaction backends configured")
	}

	var out Output
	seen := make(map[string]int) // symbol → index in out.Partners
	for _, b := range backends {
		symbols, err := b.Partners(ctx, protein, cfg)
		if err != nil {
			out.BackendErrors = append(out.BackendErrors, fmt.Sprintf("%s: %v", b.Name(), err))
			fmt.Fprintf(w, "warning: backend %s failed: %v\n", b.Name(), err)
			continue
		}
		for _, symbol := range symbols {
			if idx, ok := seen[symbol]; ok {
				mergeSource(&out.Partners[idx], b.Name())
				continue
			}
			seen[symbol] = len(out.Partners)
			out.Partners = append(out.Partners, types.Partner{Symbol: symbol, Source: b.Name()})
		}
	}

	if len(out.BackendErrors) == len(backends) {
		return Output{}, fmt.Errorf("all interaction backends failed: %s", strings.Join(out.BackendErrors, "; "))
	}
	return out, nil
}

// mergeSource records that source also reported the partner.
func mergeSource(p *types.Partner, source string) {
	if p.Source != source && !strings.Contains(p.Source, source) {
		p.Source = p.Source + "," + source
	}
}

// FormatList writes one partner symbol per line, for piping into other tools.
func FormatList(out Output, w io.Writer) {
	for _, p := range out.Partners {
		fmt.Fprintln(w, p.Symbol)
	}
}

// FormatTable writes partners as a human-readable table to w.
func FormatTable(out Output, w io.Writer) {
	if len(out.Partners) == 0 {
		fmt.Fprintln(w, "No interaction partners found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-16s  %s\n", "Rank", "Partner", "Source")
	fmt.Fprintln(w, strings.Repeat("-", 42))
	for i, p := range out.Partners {
		fmt.Fprintf(w, "%-4d  %-16s  %s\n", i+1, p.Symbol, p.Source)
	}
	fmt.Fprintf(w, "\n%d partners\n", len(out.Partners))
}

// FormatJSON writes partners as indented JSON to w.
func FormatJSON(out Output, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out.Partners)
}
