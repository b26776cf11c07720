// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the pathway-engine stages.
package types

// Partner is one interacting protein reported by the remote interaction
// services. A symbol reported by more than one service carries the merged
// source list (e.g. "string_db,biogrid").
type Partner struct {
	// Symbol is the gene symbol of the interacting protein (e.g. "MDM2").
	Symbol string `json:"symbol" yaml:"symbol"`

	// Source identifies which service(s) reported the interaction.
	Source string `json:"source" yaml:"source"`
}

// PathwayMapping is one row of a Reactome pathway search result: the queried
// identifier and a pathway containing it.
type PathwayMapping struct {
	// Identifier is the queried gene or protein ID (e.g. "P04637").
	Identifier string `json:"id" yaml:"id"`

	// Pathway is the pathway display name.
	Pathway string `json:"pathway" yaml:"pathway"`

	// PathwayID is the Reactome stable identifier (e.g. "R-HSA-73929"),
	// usable with the overlay operation.
	PathwayID string `json:"pathway_id" yaml:"pathway_id"`
}

// Participant is one row of a Reactome participants result: a protein
// contained in the queried pathway.
type Participant struct {
	// PathwayID is the queried Reactome stable identifier.
	PathwayID string `json:"pathway_id" yaml:"pathway_id"`

	// Member is the gene symbol of a protein participating in the pathway.
	Member string `json:"member" yaml:"member"`
}
