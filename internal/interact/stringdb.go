// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package interact

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pdiddy/pathway-engine/internal/httputil"
	"github.com/pdiddy/pathway-engine/pkg/types"
)

// stringAPIBase is the STRING network endpoint. Declared as a var so tests
// can substitute an httptest server.
var stringAPIBase = "https://string-db.org/api/json/network"

// StringBackend queries the STRING protein-network API.
type StringBackend struct {
	Client *http.Client
}

// Name returns the backend identifier.
func (b *StringBackend) Name() string { return "string_db" }

// Partners fetches the STRING network around protein and returns every node
// name, deduplicated in response order. The query protein itself is part of
// the network, so it appears in the list.
func (b *StringBackend) Partners(ctx context.Context, protein string, cfg types.InteractConfig) ([]string, error) {
	limit := cfg.Limit
	if limit <= 0 {
		limit = 25
	}
	species := cfg.SpeciesTaxon
	if species == "" {
		species = "9606"
	}

	params := url.Values{
		"identifiers": {protein},
		"species":     {species},
		"limit":       {fmt.Sprintf("%d", limit)},
	}
	reqURL := stringAPIBase + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := b.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("STRING API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("STRING API: %w", httputil.ErrorFromResponse(resp))
	}

	var edges []stringEdge
	if err := json.NewDecoder(resp.Body).Decode(&edges); err != nil {
		return nil, fmt.Errorf("parsing STRING response: %w", err)
	}

	var partners []string
	seen := map[string]bool{}
	for _, edge := range edges {
		for _, name := range []string{edge.PreferredNameA, edge.PreferredNameB} {
			if name != "" && !seen[name] {
				seen[name] = true
				partners = append(partners, name)
			}
		}
	}
	if !seen[protein] {
		partners = append(partners, protein)
	}
	return partners, nil
}

// STRING API JSON structure. Each element is one edge of the network.
type stringEdge struct {
	StringIDA      string  `json:"stringId_A"`
	StringIDB      string  `json:"stringId_B"`
	PreferredNameA string  `json:"preferredName_A"`
	PreferredNameB string  `json:"preferredName_B"`
	Score          float64 `json:"score"`
}
