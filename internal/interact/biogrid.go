// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package interact

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"

	"github.com/pdiddy/pathway-engine/internal/httputil"
	"github.com/pdiddy/pathway-engine/pkg/types"
)

// biogridAPIBase is the BioGRID interactions endpoint. Declared as a var so
// tests can substitute an httptest server.
var biogridAPIBase = "https://webservice.thebiogrid.org/interactions/"

// biogridDemoKey is the public example key from the BioGRID webservice
// documentation, used when no access key is configured.
const biogridDemoKey = "0ff59dcf3511928e78aad499688381c9"

// BioGridBackend queries the BioGRID interactions API.
type BioGridBackend struct {
	Client    *http.Client
	AccessKey string
}

// Name returns the backend identifier.
func (b *BioGridBackend) Name() string { return "biogrid" }

// Partners fetches interactions involving protein and collects the official
// symbol of each interactor A, deduplicated.
func (b *BioGridBackend) Partners(ctx context.Context, protein string, cfg types.InteractConfig) ([]string, error) {
	limit := cfg.Limit
	if limit <= 0 {
		limit = 25
	}
	species := cfg.SpeciesTaxon
	if species == "" {
		species = "9606"
	}
	key := b.AccessKey
	if key == "" {
		key = biogridDemoKey
	}

	params := url.Values{
		"searchNames":        {"true"},
		"geneList":           {protein},
		"includeInteractors": {"true"},
		"format":             {"json"},
		"taxId":              {species},
		"start":              {"0"},
		"max":                {fmt.Sprintf("%d", limit)},
		"accesskey":          {key},
	}
	reqURL := biogridAPIBase + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := b.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("BioGRID API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("BioGRID API: %w", httputil.ErrorFromResponse(resp))
	}

	// The response is an object keyed by interaction ID, not an array.
	var interactions map[string]biogridInteraction
	if err := json.NewDecoder(resp.Body).Decode(&interactions); err != nil {
		return nil, fmt.Errorf("parsing BioGRID response: %w", err)
	}

	// Interaction IDs are numeric; walk them in order so the partner list
	// is stable across runs.
	ids := make([]string, 0, len(interactions))
	for id := range interactions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, errA := strconv.Atoi(ids[i])
		b, errB := strconv.Atoi(ids[j])
		if errA != nil || errB != nil {
			return ids[i] < ids[j]
		}
		return a < b
	})

	var partners []string
	seen := map[string]bool{}
	for _, id := range ids {
		symbol := interactions[id].OfficialSymbolA
		if symbol != "" && !seen[symbol] {
			seen[symbol] = true
			partners = append(partners, symbol)
		}
	}
	return partners, nil
}

// BioGRID API JSON structure, one entry per interaction.
type biogridInteraction struct {
	BioGridID       int    `json:"BIOGRID_INTERACTION_ID"`
	OfficialSymbolA string `json:"OFFICIAL_SYMBOL_A"`
	OfficialSymbolB string `json:"OFFICIAL_SYMBOL_B"`
}
