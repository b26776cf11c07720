// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package interact

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// --- Request construction ---

func TestBioGridPartnersRequestParams(t *testing.T) {
	var capturedReq *http.Request
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedReq = r
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{}`)
	}))
	defer ts.Close()

	old := biogridAPIBase
	biogridAPIBase = ts.URL
	defer func() { biogridAPIBase = old }()

	cfg := testCfg()
	cfg.Limit = 50

	b := &BioGridBackend{Client: ts.Client()}
	if _, err := b.Partners(context.Background(), "TP53", cfg); err != nil {
		t.Fatalf("Partners: %v", err)
	}

	q := capturedReq.URL.Query()
	tests := []struct{ param, want string }{
		{"searchNames", "true"},
		{"geneList", "TP53"},
		{"includeInteractors", "true"},
		{"format", "json"},
		{"taxId", "9606"},
		{"start", "0"},
		{"max", "50"},
		{"accesskey", biogridDemoKey},
	}
	for _, tt := range tests {
		if got := q.Get(tt.param); got != tt.want {
			t.Errorf("%s param = %q, want %q", tt.param, got, tt.want)
		}
	}
}

func TestBioGridPartnersConfiguredKey(t *testing.T) {
	var capturedReq *http.Request
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedReq = r
		fmt.Fprint(w, `{}`)
	}))
	defer ts.Close()

	old := biogridAPIBase
	biogridAPIBase = ts.URL
	defer func() { biogridAPIBase = old }()

	b := &BioGridBackend{Client: ts.Client(), AccessKey: "my-own-key"}
	if _, err := b.Partners(context.Background(), "TP53", testCfg()); err != nil {
		t.Fatalf("Partners: %v", err)
	}

	if got := capturedReq.URL.Query().Get("accesskey"); got != "my-own-key" {
		t.Errorf("accesskey param = %q, want configured key", got)
	}
}

// --- Response parsing ---

func TestBioGridPartnersNumericIDOrder(t *testing.T) {
	// Keys 9/10/100 sort differently as strings; the partner list must
	// follow numeric interaction ID order.
	resp := `{
		"100":{"BIOGRID_INTERACTION_ID":100,"OFFICIAL_SYMBOL_A":"EP300","OFFICIAL_SYMBOL_B":"TP53"},
		"9":{"BIOGRID_INTERACTION_ID":9,"OFFICIAL_SYMBOL_A":"TP53","OFFICIAL_SYMBOL_B":"MDM2"},
		"10":{"BIOGRID_INTERACTION_ID":10,"OFFICIAL_SYMBOL_A":"MDM2","OFFICIAL_SYMBOL_B":"TP53"}
	}`
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, resp)
	}))
	defer ts.Close()

	old := biogridAPIBase
	biogridAPIBase = ts.URL
	defer func() { biogridAPIBase = old }()

	b := &BioGridBackend{Client: ts.Client()}
	partners, err := b.Partners(context.Background(), "TP53", testCfg())
	if err != nil {
		t.Fatalf("Partners: %v", err)
	}

	want := []string{"TP53", "MDM2", "EP300"}
	if len(partners) != len(want) {
		t.Fatalf("partners = %v, want %v", partners, want)
	}
	for i := range want {
		if partners[i] != want[i] {
			t.Errorf("partners[%d] = %q, want %q", i, partners[i], want[i])
		}
	}
}

func TestBioGridPartnersDeduplicates(t *testing.T) {
	resp := `{
		"1":{"BIOGRID_INTERACTION_ID":1,"OFFICIAL_SYMBOL_A":"TP53","OFFICIAL_SYMBOL_B":"MDM2"},
		"2":{"BIOGRID_INTERACTION_ID":2,"OFFICIAL_SYMBOL_A":"TP53","OFFICIAL_SYMBOL_B":"EP300"},
		"3":{"BIOGRID_INTERACTION_ID":3,"OFFICIAL_SYMBOL_A":"MDM2","OFFICIAL_SYMBOL_B":"TP53"}
	}`
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, resp)
	}))
	defer ts.Close()

	old := biogridAPIBase
	biogridAPIBase = ts.URL
	defer func() { biogridAPIBase = old }()

	b := &BioGridBackend{Client: ts.Client()}
	partners, err := b.Partners(context.Background(), "TP53", testCfg())
	if err != nil {
		t.Fatalf("Partners: %v", err)
	}

	if len(partners) != 2 || partners[0] != "TP53" || partners[1] != "MDM2" {
		t.Errorf("partners = %v, want [TP53 MDM2]", partners)
	}
}

func TestBioGridPartnersEmptyResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{}`)
	}))
	defer ts.Close()

	old := biogridAPIBase
	biogridAPIBase = ts.URL
	defer func() { biogridAPIBase = old }()

	b := &BioGridBackend{Client: ts.Client()}
	partners, err := b.Partners(context.Background(), "NOSUCH", testCfg())
	if err != nil {
		t.Fatalf("Partners: %v", err)
	}
	if len(partners) != 0 {
		t.Errorf("partners = %v, want empty", partners)
	}
}

// --- Error cases ---

func TestBioGridPartnersHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer ts.Close()

	old := biogridAPIBase
	biogridAPIBase = ts.URL
	defer func() { biogridAPIBase = old }()

	b := &BioGridBackend{Client: ts.Client()}
	_, err := b.Partners(context.Background(), "TP53", testCfg())
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "HTTP 403") {
		t.Errorf("error = %q, want substring 'HTTP 403'", err.Error())
	}
}

func TestBioGridPartnersMalformedJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `[not an object]`)
	}))
	defer ts.Close()

	old := biogridAPIBase
	biogridAPIBase = ts.URL
	defer func() { biogridAPIBase = old }()

	b := &BioGridBackend{Client: ts.Client()}
	_, err := b.Partners(context.Background(), "TP53", testCfg())
	if err == nil {
		t.Fatal("expected error for non-object response")
	}
	if !strings.Contains(err.Error(), "parsing") {
		t.Errorf("error = %q, want substring 'parsing'", err.Error())
	}
}

// --- Backend name ---

func TestBioGridBackendName(t *testing.T) {
	b := &BioGridBackend{}
	if got := b.Name(); got != "biogrid" {
		t.Errorf("Name() = %q, want %q", got, "biogrid")
	}
}
