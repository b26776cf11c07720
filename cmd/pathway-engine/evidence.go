package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pathway-engine/internal/evidence"
	"github.com/pdiddy/pathway-engine/pkg/types"
)

var evidenceCmd = &cobra.Command{
	Use:   "evidence",
	Short: "Query and export saved results",
	Long: `Evidence manages the local store of saved results. Fetch commands run
with --save record their rows here; query and export read them back. The
fetchers themselves never consult the store.`,
}

// --- query subcommand ---

var evidenceQueryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query saved results with structured filters",
	Long: `Query lists saved rows of one kind: interactions, mappings, or
participants. Filters narrow by protein, partner, identifier, pathway,
member, or source.`,
	RunE: runEvidenceQuery,
}

func runEvidenceQuery(cmd *cobra.Command, args []string) error {
	kind, _ := cmd.Flags().GetString("kind")
	jsonOut, _ := cmd.Flags().GetBool("json")

	store, err := evidence.NewStore(evidenceStoreConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	opts := evidenceQueryOpts(cmd)

	switch kind {
	case evidence.KindInteractions:
		results, err := store.QueryInteractions(ctx, opts)
		if err != nil {
			return err
		}
		return formatInteractionRecords(results, jsonOut)
	case evidence.KindMappings:
		results, err := store.QueryMappings(ctx, opts)
		if err != nil {
			return err
		}
		return formatMappingRecords(results, jsonOut)
	case evidence.KindParticipants:
		results, err := store.QueryParticipants(ctx, opts)
		if err != nil {
			return err
		}
		return formatParticipantRecords(results, jsonOut)
	case "":
		return fmt.Errorf("provide --kind: interactions, mappings, or participants")
	default:
		return fmt.Errorf("unknown kind %q: use interactions, mappings, or participants", kind)
	}
}

func formatInteractionRecords(results []evidence.InteractionRecord, jsonOut bool) error {
	if jsonOut {
		return printJSON(results)
	}
	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-16s  %-16s  %-20s  %s\n", "Protein", "Partner", "Source", "Recorded")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 78))
	for _, r := range results {
		fmt.Fprintf(os.Stdout, "%-16s  %-16s  %-20s  %s\n", r.Protein, r.Partner, r.Source, r.RecordedAt)
	}
	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

func formatMappingRecords(results []evidence.MappingRecord, jsonOut bool) error {
	if jsonOut {
		return printJSON(results)
	}
	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-12s  %-40s  %-16s  %s\n", "ID", "Pathway", "Pathway ID", "Recorded")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 94))
	for _, r := range results {
		pathway := r.Pathway
		if len(pathway) > 40 {
			pathway = pathway[:37] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-12s  %-40s  %-16s  %s\n", r.Identifier, pathway, r.PathwayID, r.RecordedAt)
	}
	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

func formatParticipantRecords(results []evidence.ParticipantRecord, jsonOut bool) error {
	if jsonOut {
		return printJSON(results)
	}
	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-16s  %-16s  %s\n", "Pathway ID", "Member", "Recorded")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 56))
	for _, r := range results {
		fmt.Fprintf(os.Stdout, "%-16s  %-16s  %s\n", r.PathwayID, r.Member, r.RecordedAt)
	}
	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

// --- export subcommand ---

var evidenceExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export saved results to YAML or JSON",
	Long: `Export writes saved rows to export.yaml or export.json under the
evidence directory. Supports the same --kind and filter flags as query;
without --kind, every kind is exported.`,
	RunE: runEvidenceExport,
}

func runEvidenceExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	kind, _ := cmd.Flags().GetString("kind")

	cfg := evidenceStoreConfig(cmd)
	store, err := evidence.NewStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	opts := evidenceQueryOpts(cmd)

	switch format {
	case "yaml", "":
		if err := store.ExportYAML(context.Background(), kind, opts); err != nil {
			return err
		}
		fmt.Printf("Exported to %s\n", filepath.Join(cfg.EvidenceDir, "export.yaml"))
	case "json":
		if err := store.ExportJSON(context.Background(), kind, opts); err != nil {
			return err
		}
		fmt.Printf("Exported to %s\n", filepath.Join(cfg.EvidenceDir, "export.json"))
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	return nil
}

// --- shared helpers ---

// saveEvidence opens the configured store, runs record inside it, and
// reports the new run ID on stderr.
func saveEvidence(cmd *cobra.Command, record func(context.Context, *evidence.Store) (string, error)) error {
	store, err := evidence.NewStore(evidenceStoreConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	runID, err := record(context.Background(), store)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Saved evidence run %s\n", runID)
	return nil
}

func evidenceStoreConfig(cmd *cobra.Command) types.EvidenceConfig {
	dir := configString(cmd, "evidence-dir", "evidence.evidence_dir")
	if dir == "" {
		dir = "evidence"
	}

	return types.EvidenceConfig{
		EvidenceDir: dir,
		MaxResults:  configInt(cmd, "max-results", "evidence.max_results"),
	}
}

func evidenceQueryOpts(cmd *cobra.Command) evidence.QueryOptions {
	protein, _ := cmd.Flags().GetString("protein")
	partner, _ := cmd.Flags().GetString("partner")
	identifier, _ := cmd.Flags().GetString("identifier")
	pathway, _ := cmd.Flags().GetString("pathway")
	member, _ := cmd.Flags().GetString("member")
	source, _ := cmd.Flags().GetString("source")
	limit, _ := cmd.Flags().GetInt("limit")

	return evidence.QueryOptions{
		Protein:    protein,
		Partner:    partner,
		Identifier: identifier,
		Pathway:    pathway,
		Member:     member,
		Source:     source,
		MaxResults: limit,
	}
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	evidenceCmd.PersistentFlags().String("evidence-dir", "evidence", "directory holding the evidence database and exports")
	evidenceCmd.PersistentFlags().Int("max-results", 50, "maximum number of query results")
	evidenceCmd.PersistentFlags().String("kind", "", "result kind: interactions, mappings, or participants")
	evidenceCmd.PersistentFlags().String("protein", "", "filter interactions by queried protein")
	evidenceCmd.PersistentFlags().String("partner", "", "filter interactions by partner symbol")
	evidenceCmd.PersistentFlags().String("identifier", "", "filter mappings by queried identifier")
	evidenceCmd.PersistentFlags().String("pathway", "", "filter by pathway stable ID")
	evidenceCmd.PersistentFlags().String("member", "", "filter participants by member symbol")
	evidenceCmd.PersistentFlags().String("source", "", "filter by reporting service")
	evidenceCmd.PersistentFlags().Int("limit", 0, "maximum results (0 = use default)")

	// Query flags.
	evidenceQueryCmd.Flags().Bool("json", false, "output results as JSON")

	// Export flags.
	evidenceExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	// Wire subcommands.
	evidenceCmd.AddCommand(evidenceQueryCmd)
	evidenceCmd.AddCommand(evidenceExportCmd)

	rootCmd.AddCommand(evidenceCmd)
}
