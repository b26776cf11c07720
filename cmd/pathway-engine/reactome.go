// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pathway-engine/internal/evidence"
	"github.com/pdiddy/pathway-engine/internal/reactome"
	"github.com/pdiddy/pathway-engine/pkg/types"
)

var reactomeCmd = &cobra.Command{
	Use:   "reactome",
	Short: "Query Reactome pathways, members, and expression overlays",
	Long: `Reactome queries the Reactome content and analysis services: pathway
mappings for gene or protein identifiers, member proteins of pathways, and
expression data overlaid on pathway diagrams in the Pathway Browser.`,
}

// --- pathways subcommand ---

var reactomePathwaysCmd = &cobra.Command{
	Use:   "pathways <identifiers...>",
	Short: "Find the pathways containing the given identifiers",
	Long: `Pathways maps gene or protein identifiers to the Reactome pathways
containing them. Identifiers default to UniProt accessions; use --resource
for another identifier database (HGNC, Ensembl, ChEBI, ...).

An identifier unknown to Reactome is skipped with a warning; --quiet
suppresses the warnings.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReactomePathways,
}

func runReactomePathways(cmd *cobra.Command, args []string) error {
	client, cfg := reactomeClient(cmd)

	var opts reactome.QueryOptions
	opts.Resource, _ = cmd.Flags().GetString("resource")
	opts.Quiet, _ = cmd.Flags().GetBool("quiet")

	rows, err := client.PathwaysWithProteins(context.Background(), args, cfg, opts, os.Stderr)
	if err != nil {
		return err
	}

	if save, _ := cmd.Flags().GetBool("save"); save {
		err := saveEvidence(cmd, func(ctx context.Context, store *evidence.Store) (string, error) {
			return store.RecordPathwayMappings(ctx, strings.Join(args, ","), "reactome", rows)
		})
		if err != nil {
			return err
		}
	}

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		return reactome.FormatMappingsJSON(rows, os.Stdout)
	}
	reactome.FormatMappingsTable(rows, os.Stdout)
	return nil
}

// --- participants subcommand ---

var reactomeParticipantsCmd = &cobra.Command{
	Use:   "participants <pathway-ids...>",
	Short: "List the member proteins of the given pathways",
	Long: `Participants lists the proteins participating in each of the given
Reactome pathways, identified by stable ID (e.g. R-HSA-73929). A pathway
with no results is skipped with a warning; --quiet suppresses the warnings.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReactomeParticipants,
}

func runReactomeParticipants(cmd *cobra.Command, args []string) error {
	client, cfg := reactomeClient(cmd)

	var opts reactome.QueryOptions
	opts.Quiet, _ = cmd.Flags().GetBool("quiet")

	rows, err := client.ParticipantsInPathways(context.Background(), args, cfg, opts, os.Stderr)
	if err != nil {
		return err
	}

	if save, _ := cmd.Flags().GetBool("save"); save {
		err := saveEvidence(cmd, func(ctx context.Context, store *evidence.Store) (string, error) {
			return store.RecordParticipants(ctx, strings.Join(args, ","), "reactome", rows)
		})
		if err != nil {
			return err
		}
	}

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		return reactome.FormatParticipantsJSON(rows, os.Stdout)
	}
	reactome.FormatParticipantsTable(rows, os.Stdout)
	return nil
}

// --- overlay subcommand ---

var reactomeOverlayCmd = &cobra.Command{
	Use:   "overlay <pathway-id>",
	Short: "Overlay expression data on a pathway diagram",
	Long: `Overlay submits a tab-separated expression table to the Reactome
analysis service and builds a Pathway Browser URL showing the data overlaid
on the given pathway. By default the URL opens in the system browser.

With --export, the rendered diagram is also downloaded; the file extension
must match --format. Use --column to pick a single data column for the
exported image, or -1 for all columns (a gif animates one frame per
column).`,
	Args: cobra.ExactArgs(1),
	RunE: runReactomeOverlay,
}

func runReactomeOverlay(cmd *cobra.Command, args []string) error {
	dataPath, _ := cmd.Flags().GetString("data")

	table, err := reactome.ReadExpressionTable(dataPath)
	if err != nil {
		return err
	}

	opts := reactome.DefaultOverlayOptions()
	opts.ExportPath, _ = cmd.Flags().GetString("export")
	if cmd.Flags().Changed("format") {
		opts.ImageFormat, _ = cmd.Flags().GetString("format")
	}
	if cmd.Flags().Changed("diagram-colors") {
		opts.DiagramColors, _ = cmd.Flags().GetString("diagram-colors")
	}
	if cmd.Flags().Changed("overlay-colors") {
		opts.OverlayColors, _ = cmd.Flags().GetString("overlay-colors")
	}
	if cmd.Flags().Changed("quality") {
		opts.Quality, _ = cmd.Flags().GetInt("quality")
	}
	if cmd.Flags().Changed("column") {
		opts.DisplayColumn, _ = cmd.Flags().GetInt("column")
	}
	if noBrowser, _ := cmd.Flags().GetBool("no-browser"); noBrowser {
		opts.OpenBrowser = false
	}

	client, cfg := reactomeClient(cmd)
	result, err := client.Overlay(context.Background(), table, args[0], cfg, opts, os.Stderr)
	if err != nil {
		return err
	}

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		return printJSON(result)
	}
	fmt.Printf("Viewer URL: %s\n", result.ViewerURL)
	if result.ExportPath != "" {
		fmt.Printf("Exported diagram: %s\n", result.ExportPath)
	}
	return nil
}

// --- shared helpers ---

// reactomeClient builds the HTTP client and config shared by the reactome
// subcommands.
func reactomeClient(cmd *cobra.Command) (*reactome.Client, types.ReactomeConfig) {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = defaultTimeout
	}

	cfg := types.ReactomeConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		Species: configString(cmd, "species", "reactome.species"),
	}
	return &reactome.Client{HTTP: &http.Client{Timeout: cfg.Timeout}}, cfg
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	reactomeCmd.PersistentFlags().Duration("timeout", 0, "HTTP request timeout (default 60s)")
	reactomeCmd.PersistentFlags().Bool("json", false, "output results as JSON")

	// Pathways flags.
	reactomePathwaysCmd.Flags().String("resource", "", "identifier database (default UniProt)")
	reactomePathwaysCmd.Flags().String("species", "", `species filter (default "Homo sapiens")`)
	reactomePathwaysCmd.Flags().Bool("quiet", false, "suppress not-found warnings")
	reactomePathwaysCmd.Flags().Bool("save", false, "record the results in the evidence store")
	reactomePathwaysCmd.Flags().String("evidence-dir", "evidence", "directory holding the evidence database")

	// Participants flags.
	reactomeParticipantsCmd.Flags().Bool("quiet", false, "suppress no-result warnings")
	reactomeParticipantsCmd.Flags().Bool("save", false, "record the results in the evidence store")
	reactomeParticipantsCmd.Flags().String("evidence-dir", "evidence", "directory holding the evidence database")

	// Overlay flags.
	reactomeOverlayCmd.Flags().String("data", "", "tab-separated expression table (required)")
	reactomeOverlayCmd.MarkFlagRequired("data")
	reactomeOverlayCmd.Flags().String("export", "", "write the overlaid diagram to this path")
	reactomeOverlayCmd.Flags().String("format", "", "exported image format: png, gif, svg, jpg, jpeg, or pptx (default png)")
	reactomeOverlayCmd.Flags().Int("column", 0, "data column overlaid in the export; -1 = all columns")
	reactomeOverlayCmd.Flags().String("diagram-colors", "", "diagram color profile: Modern or Standard (default Modern)")
	reactomeOverlayCmd.Flags().String("overlay-colors", "", `overlay color profile: Standard, Strosobar, or "Copper Plus" (default Standard)`)
	reactomeOverlayCmd.Flags().Int("quality", 0, "exported image quality, 1-10 (default 7)")
	reactomeOverlayCmd.Flags().Bool("no-browser", false, "do not open the viewer URL in the system browser")

	// Wire subcommands.
	reactomeCmd.AddCommand(reactomePathwaysCmd)
	reactomeCmd.AddCommand(reactomeParticipantsCmd)
	reactomeCmd.AddCommand(reactomeOverlayCmd)

	rootCmd.AddCommand(reactomeCmd)
}
