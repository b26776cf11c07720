// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package refdata loads the bundled reference tables and answers membership
// and neighbor queries against them.
//
// Two tab-separated tables ship with the engine: the BioPlex protein-pair
// interaction list and the WikiPathways protein×pathway membership matrix.
// Both are re-read on every call, so lookups always reflect the on-disk
// file and repeated calls are independent.
package refdata

const (
	// InteractionFile is the bundled BioPlex interaction list.
	InteractionFile = "BioPlex_interactionList_v4a.tsv"

	// MatrixFile is the bundled WikiPathways membership matrix.
	MatrixFile = "WikiPathwaysDataframe.tsv"

	// DefaultDir is the data directory used when none is configured.
	DefaultDir = "refdata"
)
