// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reactome

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pdiddy/pathway-engine/pkg/types"
)

const participantsFixture = `[
	{
		"peDbId": 69489,
		"displayName": "TP53 [nucleoplasm]",
		"schemaClass": "EntityWithAccessionedSequence",
		"refEntities": [
			{"dbId": 69487, "displayName": "UniProt:P04637 TP53", "schemaClass": "ReferenceGeneProduct"}
		]
	},
	{
		"peDbId": 69490,
		"displayName": "MDM2 [nucleoplasm]",
		"schemaClass": "EntityWithAccessionedSequence",
		"refEntities": [
			{"dbId": 69488, "displayName": "UniProt:Q00987 MDM2", "schemaClass": "ReferenceGeneProduct"},
			{"dbId": 69491, "displayName": "ChEBI:15422 ATP", "schemaClass": "ReferenceMolecule"}
		]
	}
]`

// --- Member extraction ---

func TestParticipantsInPathwaysExtractsMembers(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, participantsFixture)
	}))
	defer ts.Close()
	swapContentService(t, ts.URL)

	c := &Client{HTTP: ts.Client()}
	var buf bytes.Buffer
	rows, err := c.ParticipantsInPathways(context.Background(), []string{"R-HSA-69541"}, testCfg(), QueryOptions{}, &buf)
	if err != nil {
		t.Fatalf("ParticipantsInPathways: %v", err)
	}

	// Members come back sorted, and the ChEBI reference is ignored.
	want := []types.Participant{
		{PathwayID: "R-HSA-69541", Member: "MDM2"},
		{PathwayID: "R-HSA-69541", Member: "TP53"},
	}
	if len(rows) != len(want) {
		t.Fatalf("rows = %+v, want %+v", rows, want)
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("rows[%d] = %+v, want %+v", i, rows[i], want[i])
		}
	}
}

func TestParticipantsInPathwaysDeduplicates(t *testing.T) {
	// The same reference entity can appear under several physical entities.
	resp := `[
		{"peDbId":1,"displayName":"TP53 [nucleoplasm]","refEntities":[{"dbId":10,"displayName":"UniProt:P04637 TP53"}]},
		{"peDbId":2,"displayName":"TP53 Tetramer","refEntities":[{"dbId":10,"displayName":"UniProt:P04637 TP53"}]}
	]`
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, resp)
	}))
	defer ts.Close()
	swapContentService(t, ts.URL)

	c := &Client{HTTP: ts.Client()}
	var buf bytes.Buffer
	rows, err := c.ParticipantsInPathways(context.Background(), []string{"R-HSA-69541"}, testCfg(), QueryOptions{}, &buf)
	if err != nil {
		t.Fatalf("ParticipantsInPathways: %v", err)
	}

	if len(rows) != 1 || rows[0].Member != "TP53" {
		t.Errorf("rows = %+v, want a single TP53 row", rows)
	}
}

func TestParticipantsInPathwaysMultiplePathways(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if strings.Contains(r.URL.Path, "R-HSA-1") {
			fmt.Fprint(w, `[{"peDbId":1,"displayName":"A","refEntities":[{"dbId":1,"displayName":"UniProt:P04637 TP53"}]}]`)
		} else {
			fmt.Fprint(w, `[{"peDbId":2,"displayName":"B","refEntities":[{"dbId":2,"displayName":"UniProt:P38398 BRCA1"}]}]`)
		}
	}))
	defer ts.Close()
	swapContentService(t, ts.URL)

	c := &Client{HTTP: ts.Client()}
	var buf bytes.Buffer
	rows, err := c.ParticipantsInPathways(context.Background(), []string{"R-HSA-1", "R-HSA-2"}, testCfg(), QueryOptions{}, &buf)
	if err != nil {
		t.Fatalf("ParticipantsInPathways: %v", err)
	}

	want := []types.Participant{
		{PathwayID: "R-HSA-1", Member: "TP53"},
		{PathwayID: "R-HSA-2", Member: "BRCA1"},
	}
	if len(rows) != len(want) {
		t.Fatalf("rows = %+v, want %+v", rows, want)
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("rows[%d] = %+v, want %+v", i, rows[i], want[i])
		}
	}
}

// --- Empty and not-found handling ---

func TestParticipantsInPathwaysNoResultsWarn(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "404",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
		},
		{
			name: "empty body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				// 200 with nothing in it.
			},
		},
		{
			name: "empty array",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				fmt.Fprint(w, `[]`)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(tt.handler)
			defer ts.Close()
			swapContentService(t, ts.URL)

			c := &Client{HTTP: ts.Client()}
			var buf bytes.Buffer
			rows, err := c.ParticipantsInPathways(context.Background(), []string{"R-HSA-BAD"}, testCfg(), QueryOptions{}, &buf)
			if err != nil {
				t.Fatalf("ParticipantsInPathways: %v", err)
			}
			if len(rows) != 0 {
				t.Errorf("rows = %+v, want none", rows)
			}
			if !strings.Contains(buf.String(), "R-HSA-BAD") {
				t.Errorf("warning = %q, want the pathway ID named", buf.String())
			}
		})
	}
}

func TestParticipantsInPathwaysQuiet(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()
	swapContentService(t, ts.URL)

	c := &Client{HTTP: ts.Client()}
	var buf bytes.Buffer
	_, err := c.ParticipantsInPathways(context.Background(), []string{"R-HSA-BAD"}, testCfg(), QueryOptions{Quiet: true}, &buf)
	if err != nil {
		t.Fatalf("ParticipantsInPathways: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("warnings = %q, want none with Quiet", buf.String())
	}
}

// --- Error cases ---

func TestParticipantsInPathwaysServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer ts.Close()
	swapContentService(t, ts.URL)

	c := &Client{HTTP: ts.Client()}
	var buf bytes.Buffer
	_, err := c.ParticipantsInPathways(context.Background(), []string{"R-HSA-69541"}, testCfg(), QueryOptions{}, &buf)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "HTTP 503") {
		t.Errorf("error = %q, want substring 'HTTP 503'", err.Error())
	}
}

// --- Formatting ---

func TestFormatParticipantsTable(t *testing.T) {
	rows := []types.Participant{
		{PathwayID: "R-HSA-69541", Member: "TP53"},
		{PathwayID: "R-HSA-69541", Member: "MDM2"},
	}

	var buf bytes.Buffer
	FormatParticipantsTable(rows, &buf)

	got := buf.String()
	for _, want := range []string{"Pathway ID", "R-HSA-69541", "TP53", "MDM2", "2 participants"} {
		if !strings.Contains(got, want) {
			t.Errorf("table output missing %q:\n%s", want, got)
		}
	}
}

func TestFormatParticipantsTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatParticipantsTable(nil, &buf)

	if !strings.Contains(buf.String(), "No participants found.") {
		t.Errorf("empty table output = %q", buf.String())
	}
}
