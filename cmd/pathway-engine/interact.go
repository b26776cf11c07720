package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pathway-engine/internal/evidence"
	"github.com/pdiddy/pathway-engine/internal/interact"
	"github.com/pdiddy/pathway-engine/pkg/types"
)

const (
	defaultTimeout   = 60 * time.Second
	defaultUserAgent = "pathway-engine/0.1"
)

var interactCmd = &cobra.Command{
	Use:   "interact <protein>",
	Short: "Fetch interacting partners from STRING and BioGrid",
	Long: `Interact queries the STRING and BioGrid web services for proteins
interacting with the given protein and merges the results, recording which
service reported each partner. A failed service is reported as a warning;
the command fails only when every service fails.

Use --backend to restrict the query to a single service.`,
	Args: cobra.ExactArgs(1),
	RunE: runInteract,
}

func init() {
	interactCmd.Flags().String("backend", "", "query a single backend: string_db or biogrid")
	interactCmd.Flags().Int("limit", 0, "maximum partners requested per backend (default 25)")
	interactCmd.Flags().String("species", "", "NCBI taxonomy ID (default 9606, human)")
	interactCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")
	interactCmd.Flags().String("access-key", "", "BioGrid access key (default: the biogrid-access-key secret, else the demo key)")
	interactCmd.Flags().Bool("list", false, "print bare symbols, one per line")
	interactCmd.Flags().Bool("json", false, "output results as JSON")
	interactCmd.Flags().Bool("save", false, "record the results in the evidence store")
	interactCmd.Flags().String("evidence-dir", "evidence", "directory holding the evidence database")

	rootCmd.AddCommand(interactCmd)
}

func runInteract(cmd *cobra.Command, args []string) error {
	protein := args[0]

	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = defaultTimeout
	}
	accessKey, _ := cmd.Flags().GetString("access-key")

	cfg := types.InteractConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		Limit:            configInt(cmd, "limit", "interact.limit"),
		SpeciesTaxon:     configString(cmd, "species", "interact.species_taxon"),
		EnableString:     configBool("interact.enable_string", true),
		EnableBioGrid:    configBool("interact.enable_biogrid", true),
		BioGridAccessKey: secretDefault("biogrid-access-key", accessKey),
	}

	backendName, _ := cmd.Flags().GetString("backend")
	backends, err := selectBackends(backendName, cfg)
	if err != nil {
		return err
	}

	out, err := interact.Partners(context.Background(), protein, backends, cfg, os.Stderr)
	if err != nil {
		return err
	}

	if save, _ := cmd.Flags().GetBool("save"); save {
		err := saveEvidence(cmd, func(ctx context.Context, store *evidence.Store) (string, error) {
			return store.RecordInteractions(ctx, protein, out.Partners)
		})
		if err != nil {
			return err
		}
	}

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		return interact.FormatJSON(out, os.Stdout)
	}
	if list, _ := cmd.Flags().GetBool("list"); list {
		interact.FormatList(out, os.Stdout)
		return nil
	}
	interact.FormatTable(out, os.Stdout)
	return nil
}

// selectBackends builds the backend list for the query. An explicit name
// overrides the enable flags from the config file.
func selectBackends(name string, cfg types.InteractConfig) ([]interact.Backend, error) {
	client := &http.Client{Timeout: cfg.Timeout}

	stringDB := &interact.StringBackend{Client: client}
	biogrid := &interact.BioGridBackend{Client: client, AccessKey: cfg.BioGridAccessKey}

	switch name {
	case "":
		var backends []interact.Backend
		if cfg.EnableString {
			backends = append(backends, stringDB)
		}
		if cfg.EnableBioGrid {
			backends = append(backends, biogrid)
		}
		return backends, nil
	case stringDB.Name():
		return []interact.Backend{stringDB}, nil
	case biogrid.Name():
		return []interact.Backend{biogrid}, nil
	default:
		return nil, fmt.Errorf("unknown backend %q: use string_db or biogrid", name)
	}
}
