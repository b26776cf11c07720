// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package evidence

import (
	"context"
	"fmt"
	"strings"
)

// QueryOptions holds structured filters for evidence queries. Each query
// applies the filters that name its columns and ignores the rest.
type QueryOptions struct {
	// Protein filters interactions by the queried protein.
	Protein string

	// Partner filters interactions by partner symbol.
	Partner string

	// Identifier filters pathway mappings by the queried identifier.
	Identifier string

	// Pathway filters mappings and participants by pathway stable ID.
	Pathway string

	// Member filters participants by member symbol.
	Member string

	// Source filters by the reporting service. A row whose source list
	// contains the value matches, so "biogrid" finds rows recorded as
	// "string_db,biogrid".
	Source string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// InteractionRecord is a stored interaction with its run timestamp.
type InteractionRecord struct {
	Protein    string `json:"protein" yaml:"protein"`
	Partner    string `json:"partner" yaml:"partner"`
	Source     string `json:"source" yaml:"source"`
	RecordedAt string `json:"recorded_at" yaml:"recorded_at"`
}

// MappingRecord is a stored pathway mapping with its run timestamp.
type MappingRecord struct {
	Identifier string `json:"id" yaml:"id"`
	Pathway    string `json:"pathway" yaml:"pathway"`
	PathwayID  string `json:"pathway_id" yaml:"pathway_id"`
	Source     string `json:"source" yaml:"source"`
	RecordedAt string `json:"recorded_at" yaml:"recorded_at"`
}

// ParticipantRecord is a stored pathway member with its run timestamp.
type ParticipantRecord struct {
	PathwayID  string `json:"pathway_id" yaml:"pathway_id"`
	Member     string `json:"member" yaml:"member"`
	Source     string `json:"source" yaml:"source"`
	RecordedAt string `json:"recorded_at" yaml:"recorded_at"`
}

// QueryInteractions returns stored interactions matching the filters,
// sorted by protein then partner.
func (s *Store) QueryInteractions(ctx context.Context, opts QueryOptions) ([]InteractionRecord, error) {
	var (
		qb   strings.Builder
		args []any
	)

	qb.WriteString(
		`SELECT i.protein, i.partner, i.source, r.created_at
		FROM interactions i
		JOIN runs r ON i.run_id = r.id
		WHERE 1=1`)

	if opts.Protein != "" {
		qb.WriteString(` AND i.protein = ?`)
		args = append(args, opts.Protein)
	}
	if opts.Partner != "" {
		qb.WriteString(` AND i.partner = ?`)
		args = append(args, opts.Partner)
	}
	if opts.Source != "" {
		qb.WriteString(` AND instr(i.source, ?) > 0`)
		args = append(args, opts.Source)
	}

	qb.WriteString(` ORDER BY i.protein, i.partner LIMIT ?`)
	args = append(args, s.limit(opts))

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying interactions: %w", err)
	}
	defer rows.Close()

	var results []InteractionRecord
	for rows.Next() {
		var rec InteractionRecord
		if err := rows.Scan(&rec.Protein, &rec.Partner, &rec.Source, &rec.RecordedAt); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		results = append(results, rec)
	}
	return results, rows.Err()
}

// QueryMappings returns stored pathway mappings matching the filters,
// sorted by identifier then pathway ID.
func (s *Store) QueryMappings(ctx context.Context, opts QueryOptions) ([]MappingRecord, error) {
	var (
		qb   strings.Builder
		args []any
	)

	qb.WriteString(
		`SELECT m.identifier, m.pathway, m.pathway_id, m.source, r.created_at
		FROM pathway_mappings m
		JOIN runs r ON m.run_id = r.id
		WHERE 1=1`)

	if opts.Identifier != "" {
		qb.WriteString(` AND m.identifier = ?`)
		args = append(args, opts.Identifier)
	}
	if opts.Pathway != "" {
		qb.WriteString(` AND m.pathway_id = ?`)
		args = append(args, opts.Pathway)
	}
	if opts.Source != "" {
		qb.WriteString(` AND instr(m.source, ?) > 0`)
		args = append(args, opts.Source)
	}

	qb.WriteString(` ORDER BY m.identifier, m.pathway_id LIMIT ?`)
	args = append(args, s.limit(opts))

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying pathway mappings: %w", err)
	}
	defer rows.Close()

	var results []MappingRecord
	for rows.Next() {
		var rec MappingRecord
		if err := rows.Scan(&rec.Identifier, &rec.Pathway, &rec.PathwayID, &rec.Source, &rec.RecordedAt); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		results = append(results, rec)
	}
	return results, rows.Err()
}

// QueryParticipants returns stored pathway members matching the filters,
// sorted by pathway ID then member.
func (s *Store) QueryParticipants(ctx context.Context, opts QueryOptions) ([]ParticipantRecord, error) {
	var (
		qb   strings.Builder
		args []any
	)

	qb.WriteString(
		`SELECT p.pathway_id, p.member, p.source, r.created_at
		FROM participants p
		JOIN runs r ON p.run_id = r.id
		WHERE 1=1`)

	if opts.Pathway != "" {
		qb.WriteString(` AND p.pathway_id = ?`)
		args = append(args, opts.Pathway)
	}
	if opts.Member != "" {
		qb.WriteString(` AND p.member = ?`)
		args = append(args, opts.Member)
	}
	if opts.Source != "" {
		qb.WriteString(` AND instr(p.source, ?) > 0`)
		args = append(args, opts.Source)
	}

	qb.WriteString(` ORDER BY p.pathway_id, p.member LIMIT ?`)
	args = append(args, s.limit(opts))

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying participants: %w", err)
	}
	defer rows.Close()

	var results []ParticipantRecord
	for rows.Next() {
		var rec ParticipantRecord
		if err := rows.Scan(&rec.PathwayID, &rec.Member, &rec.Source, &rec.RecordedAt); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		results = append(results, rec)
	}
	return results, rows.Err()
}

func (s *Store) limit(opts QueryOptions) int {
	if opts.MaxResults > 0 {
		return opts.MaxResults
	}
	return s.maxResults
}
