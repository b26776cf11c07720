// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reactome

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/pdiddy/pathway-engine/internal/httputil"
	"github.com/pdiddy/pathway-engine/pkg/types"
)

// PathwaysWithProteins finds the Reactome pathways containing each of the
// given gene or protein identifiers. Rows are sorted by pathway stable ID
// within each identifier and concatenated in input order. An identifier the
// service does not know is skipped with a warning on w (suppressed by
// opts.Quiet); any other failure stops the query.
func (c *Client) PathwaysWithProteins(ctx context.Context, ids []string, cfg types.ReactomeConfig, opts QueryOptions, w io.Writer) ([]types.PathwayMapping, error) {
	resource := opts.Resource
	if resource == "" {
		resource = "UniProt"
	}
	species := cfg.Species
	if species == "" {
		species = "Homo sapiens"
	}

	var all []types.PathwayMapping
	for _, id := range ids {
		rows, err := c.pathwaysFor(ctx, id, resource, species, cfg, opts.Quiet, w)
		if err != nil {
			return nil, err
		}
		all = append(all, rows...)
	}
	return all, nil
}

func (c *Client) pathwaysFor(ctx context.Context, id, resource, species string, cfg types.ReactomeConfig, quiet bool, w io.Writer) ([]types.PathwayMapping, error) {
	reqURL := fmt.Sprintf("%s/data/mapping/%s/%s/pathways?species=%s",
		contentServiceBase, url.PathEscape(resource), url.PathEscape(id), url.QueryEscape(species))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("Reactome mapping request for %q: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		respErr := httputil.ErrorFromResponse(resp)

		// A structured 404 means the identifier is unknown; anything else
		// is a real failure.
		var notFound struct {
			Messages []string `json:"messages"`
		}
		if jsonErr := json.Unmarshal([]byte(respErr.Body), &notFound); jsonErr != nil || len(notFound.Messages) == 0 {
			return nil, fmt.Errorf("Reactome mapping query for %q: %w", id, respErr)
		}
		if !quiet {
			fmt.Fprintf(w, "warning: the query for %q returned HTTP 404 (not found); you may have mistyped the identifier or the resource name: %s\n",
				id, strings.Join(notFound.Messages, "; "))
		}
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Reactome mapping query for %q: %w", id, httputil.ErrorFromResponse(resp))
	}

	var pathways []reactomePathway
	if err := json.NewDecoder(resp.Body).Decode(&pathways); err != nil {
		return nil, fmt.Errorf("parsing Reactome mapping response for %q: %w", id, err)
	}

	rows := make([]types.PathwayMapping, 0, len(pathways))
	for _, p := range pathways {
		rows = append(rows, types.PathwayMapping{
			Identifier: id,
			Pathway:    p.DisplayName,
			PathwayID:  p.StableID,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].PathwayID < rows[j].PathwayID })
	return rows, nil
}

// FormatMappingsTable writes pathway mappings as a human-readable table.
func FormatMappingsTable(rows []types.PathwayMapping, w io.Writer) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No pathways found.")
		return
	}

	fmt.Fprintf(w, "%-14s  %-16s  %s\n", "Identifier", "Pathway ID", "Pathway")
	fmt.Fprintln(w, strings.Repeat("-", 72))
	for _, row := range rows {
		fmt.Fprintf(w, "%-14s  %-16s  %s\n", row.Identifier, row.PathwayID, row.Pathway)
	}
	fmt.Fprintf(w, "\n%d pathway mappings\n", len(rows))
}

// FormatMappingsJSON writes pathway mappings as indented JSON.
func FormatMappingsJSON(rows []types.PathwayMapping, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// Reactome ContentService JSON structure for pathway mappings.
type reactomePathway struct {
	DBID        int64  `json:"dbId"`
	StableID    string `json:"stId"`
	DisplayName string `json:"displayName"`
}
