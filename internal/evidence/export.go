// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package evidence

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// ExportDocument bundles stored evidence for serialization. Sections not
// selected by the export kind are omitted.
type ExportDocument struct {
	Interactions []InteractionRecord `json:"interactions,omitempty" yaml:"interactions,omitempty"`
	Mappings     []MappingRecord     `json:"pathway_mappings,omitempty" yaml:"pathway_mappings,omitempty"`
	Participants []ParticipantRecord `json:"participants,omitempty" yaml:"participants,omitempty"`
}

const exportLimit = 100000

// ExportYAML writes evidence matching the filters to
// evidenceDir/export.yaml. An empty kind exports every kind; otherwise
// only the named section is written.
func (s *Store) ExportYAML(ctx context.Context, kind string, opts QueryOptions) error {
	doc, err := s.exportDocument(ctx, kind, opts)
	if err != nil {
		return err
	}

	path := filepath.Join(s.evidenceDir, "export.yaml")
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ExportJSON writes evidence matching the filters to
// evidenceDir/export.json. An empty kind exports every kind; otherwise
// only the named section is written.
func (s *Store) ExportJSON(ctx context.Context, kind string, opts QueryOptions) error {
	doc, err := s.exportDocument(ctx, kind, opts)
	if err != nil {
		return err
	}

	path := filepath.Join(s.evidenceDir, "export.json")
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func (s *Store) exportDocument(ctx context.Context, kind string, opts QueryOptions) (*ExportDocument, error) {
	switch kind {
	case "", KindInteractions, KindMappings, KindParticipants:
	default:
		return nil, fmt.Errorf("unknown evidence kind %q", kind)
	}

	opts.MaxResults = exportLimit

	var (
		doc ExportDocument
		err error
	)

	if kind == "" || kind == KindInteractions {
		if doc.Interactions, err = s.QueryInteractions(ctx, opts); err != nil {
			return nil, fmt.Errorf("querying interactions for export: %w", err)
		}
	}
	if kind == "" || kind == KindMappings {
		if doc.Mappings, err = s.QueryMappings(ctx, opts); err != nil {
			return nil, fmt.Errorf("querying pathway mappings for export: %w", err)
		}
	}
	if kind == "" || kind == KindParticipants {
		if doc.Participants, err = s.QueryParticipants(ctx, opts); err != nil {
			return nil, fmt.Errorf("querying participants for export: %w", err)
		}
	}

	return &doc, nil
}
