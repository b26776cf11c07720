// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reactome

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/pdiddy/pathway-engine/internal/httputil"
	"github.com/pdiddy/pathway-engine/pkg/types"
)

// ParticipantsInPathways lists the gene symbols participating in each of
// the given Reactome pathways. Members are sorted within each pathway and
// the combined table is deduplicated. A pathway ID that returns nothing is
// skipped with a warning on w (suppressed by opts.Quiet).
func (c *Client) ParticipantsInPathways(ctx context.Context, pathwayIDs []string, cfg types.ReactomeConfig, opts QueryOptions, w io.Writer) ([]types.Participant, error) {
	var all []types.Participant
	seen := map[types.Participant]bool{}
	for _, pathwayID := range pathwayIDs {
		members, err := c.participantsFor(ctx, pathwayID, cfg, opts.Quiet, w)
		if err != nil {
			return nil, err
		}
		for _, member := range members {
			row := types.Participant{PathwayID: pathwayID, Member: member}
			if !seen[row] {
				seen[row] = true
				all = append(all, row)
			}
		}
	}
	return all, nil
}

func (c *Client) participantsFor(ctx context.Context, pathwayID string, cfg types.ReactomeConfig, quiet bool, w io.Writer) ([]string, error) {
	reqURL := contentServiceBase + "/data/participants/" + url.PathEscape(pathwayID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("Reactome participants request for %q: %w", pathwayID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		warnNoParticipants(quiet, w, pathwayID)
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Reactome participants query for %q: %w", pathwayID, httputil.ErrorFromResponse(resp))
	}

	// An unknown ID can come back as 404 or as 200 with an empty body;
	// both count as no results.
	var participants []reactomeParticipant
	if err := json.NewDecoder(resp.Body).Decode(&participants); err != nil {
		if errors.Is(err, io.EOF) {
			participants = nil
		} else {
			return nil, fmt.Errorf("parsing Reactome participants response for %q: %w", pathwayID, err)
		}
	}
	if len(participants) == 0 {
		warnNoParticipants(quiet, w, pathwayID)
		return nil, nil
	}

	// Reference entities carry display names like "UniProt:P04637 TP53";
	// the member symbol is the second field.
	var members []string
	for _, p := range participants {
		for _, ref := range p.RefEntities {
			if !strings.HasPrefix(ref.DisplayName, "UniProt") {
				continue
			}
			fields := strings.Fields(ref.DisplayName)
			if len(fields) >= 2 {
				members = append(members, fields[1])
			}
		}
	}
	sort.Strings(members)
	return members, nil
}

func warnNoParticipants(quiet bool, w io.Writer, pathwayID string) {
	if quiet {
		return
	}
	fmt.Fprintf(w, "warning: the query for %q found no results; you may have mistyped the pathway ID\n", pathwayID)
}

// FormatParticipantsTable writes pathway participants as a human-readable table.
func FormatParticipantsTable(rows []types.Participant, w io.Writer) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No participants found.")
		return
	}

	fmt.Fprintf(w, "%-16s  %s\n", "Pathway ID", "Member")
	fmt.Fprintln(w, strings.Repeat("-", 36))
	for _, row := range rows {
		fmt.Fprintf(w, "%-16s  %s\n", row.PathwayID, row.Member)
	}
	fmt.Fprintf(w, "\n%d participants\n", len(rows))
}

// FormatParticipantsJSON writes pathway participants as indented JSON.
func FormatParticipantsJSON(rows []types.Participant, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// Reactome ContentService JSON structures for pathway participants.
type reactomeParticipant struct {
	PhysicalEntityID int64               `json:"peDbId"`
	DisplayName      string              `json:"displayName"`
	SchemaClass      string              `json:"schemaClass"`
	RefEntities      []reactomeRefEntity `json:"refEntities"`
}

type reactomeRefEntity struct {
	DBID        int64  `json:"dbId"`
	DisplayName string `json:"displayName"`
	SchemaClass string `json:"schemaClass"`
}
