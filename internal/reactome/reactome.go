// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package reactome queries the Reactome content and analysis services:
// pathway mappings for gene/protein identifiers, pathway participants, and
// expression-data overlays on pathway diagrams.
package reactome

import (
	"fmt"
	"net/http"
)

// Base URLs for the Reactome services. Declared as vars so tests can
// substitute httptest servers.
var (
	contentServiceBase  = "https://reactome.org/ContentService"
	analysisServiceBase = "https://reactome.org/AnalysisService"
	pathwayBrowserBase  = "https://reactome.org/PathwayBrowser"
)

// Client calls the Reactome web services.
type Client struct {
	HTTP *http.Client
}

// QueryOptions control identifier resolution and warning behavior for the
// content-service queries.
type QueryOptions struct {
	// Resource is the database the identifiers come from, e.g. "UniProt",
	// "HGNC", "Ensembl". Defaults to "UniProt".
	Resource string

	// Quiet suppresses not-found warnings.
	Quiet bool
}

// InvalidParameterError reports an overlay option rejected before any
// request is sent.
type InvalidParameterError struct {
	Param  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid value for %s: %s", e.Param, e.Reason)
}
