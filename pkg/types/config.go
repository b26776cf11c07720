package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pathway-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// InteractConfig holds settings for the remote interaction fetchers.
type InteractConfig struct {
	HTTPConfig `yaml:",inline"`

	// Limit is the number of interacting partners requested from each
	// service (default 25).
	Limit int `json:"limit" yaml:"limit"`

	// SpeciesTaxon is the NCBI taxonomy ID sent to STRING and BioGrid
	// (default "9606", Homo sapiens).
	SpeciesTaxon string `json:"species_taxon" yaml:"species_taxon"`

	// EnableString controls whether the STRING backend is queried.
	EnableString bool `json:"enable_string" yaml:"enable_string"`

	// EnableBioGrid controls whether the BioGrid backend is queried.
	EnableBioGrid bool `json:"enable_biogrid" yaml:"enable_biogrid"`

	// BioGridAccessKey is the static access key sent with BioGrid requests.
	// Empty selects the service's published demo key.
	BioGridAccessKey string `json:"biogrid_access_key,omitempty" yaml:"biogrid_access_key,omitempty"`
}

// RefDataConfig holds settings for the bundled reference tables.
type RefDataConfig struct {
	// Dir is the directory holding the bundled tab-separated tables
	// (default "refdata").
	Dir string `json:"dir" yaml:"dir"`
}

// ReactomeConfig holds settings for the Reactome content and analysis clients.
type ReactomeConfig struct {
	HTTPConfig `yaml:",inline"`

	// Species is the species filter sent with content-service mapping
	// queries (default "Homo sapiens").
	Species string `json:"species" yaml:"species"`
}

// EvidenceConfig holds settings for the local evidence store.
type EvidenceConfig struct {
	// EvidenceDir is the directory holding the SQLite database and export
	// files (default "evidence").
	EvidenceDir string `json:"evidence_dir" yaml:"evidence_dir"`

	// MaxResults is the default maximum number of query results (default 50).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// EngineConfig groups all stage configurations.
type EngineConfig struct {
	Interact InteractConfig `json:"interact" yaml:"interact"`
	RefData  RefDataConfig  `json:"refdata" yaml:"refdata"`
	Reactome ReactomeConfig `json:"reactome" yaml:"reactome"`
	Evidence EvidenceConfig `json:"evidence" yaml:"evidence"`
}
